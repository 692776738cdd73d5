package cmd

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/xzzpcb/xzzpcb-go/internal/metrics"
	"github.com/xzzpcb/xzzpcb-go/pkg/xzzpcb"
)

var (
	showProgress bool
	metricsAddr  string
)

var decodeCmd = &cobra.Command{
	Use:   "decode <board_file>",
	Short: "Decode an XZZPCB board file and print it as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runDecode,
}

func init() {
	decodeCmd.Flags().BoolVar(&showProgress, "progress", false, "log stage progress to stderr")
	decodeCmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "if set, serve Prometheus metrics on this address instead of printing the board JSON and exiting")
	rootCmd.AddCommand(decodeCmd)
}

func runDecode(_ *cobra.Command, args []string) error {
	baseLog := logrus.New()
	baseLog.SetLevel(logLevel())

	runID := uuid.New()
	log := withRunID(baseLog, runID)

	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("xzzpcb: failed to read %q: %w", args[0], err)
	}

	reg := metrics.NewRegistry()
	reg.InputBytes.Observe(float64(len(raw)))

	log.WithField("bytes", len(raw)).Info("decoding board")

	start := time.Now()
	board := xzzpcb.Decode(raw, func(p xzzpcb.Progress) {
		reg.StageGauge.WithLabelValues(string(p.Stage)).Set(float64(p.Percent))
		if showProgress {
			log.WithFields(logrus.Fields{
				"stage":   p.Stage,
				"percent": p.Percent,
			}).Info("decode progress")
		}
	})
	reg.DecodeDuration.Observe(time.Since(start).Seconds())

	for _, d := range board.Diagnostics {
		reg.Diagnostics.WithLabelValues(string(d.Kind)).Inc()
		log.WithFields(logrus.Fields{
			"kind":   d.Kind,
			"offset": d.Offset,
		}).Warn(d.Message)
	}

	log.WithField("entities", len(board.Entities)).Info("decode complete")

	if metricsAddr != "" {
		http.Handle("/metrics", reg.Handler())
		log.WithField("addr", metricsAddr).Info("serving metrics")
		return http.ListenAndServe(metricsAddr, nil)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(board)
}

func withRunID(log *logrus.Logger, id uuid.UUID) *logrus.Entry {
	return log.WithField("run_id", id.String())
}
