// Package metrics exposes Prometheus instrumentation for the xzzpcb CLI
// driver. The core decode package (pkg/xzzpcb) stays instrumentation-free
// per spec.md §5 ("the decoder performs no I/O"); this package wraps a
// Decode call from the outside and is an external collaborator, not part
// of the CORE.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry bundles the CLI's decode metrics behind a dedicated Prometheus
// registry, so embedding this package never collides with the default
// global registry.
type Registry struct {
	reg *prometheus.Registry

	DecodeDuration prometheus.Histogram
	InputBytes     prometheus.Histogram
	Diagnostics    *prometheus.CounterVec
	StageGauge     *prometheus.GaugeVec
}

// NewRegistry constructs and registers the decode metrics.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		reg: reg,
		DecodeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "xzzpcb",
			Name:      "decode_duration_seconds",
			Help:      "Wall-clock time spent in a single Decode call.",
			Buckets:   prometheus.DefBuckets,
		}),
		InputBytes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "xzzpcb",
			Name:      "decode_input_bytes",
			Help:      "Size in bytes of the buffer passed to Decode.",
			Buckets:   prometheus.ExponentialBuckets(1024, 4, 10),
		}),
		Diagnostics: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "xzzpcb",
			Name:      "decode_diagnostics_total",
			Help:      "Count of recovered diagnostics emitted by Decode, by kind.",
		}, []string{"kind"}),
		StageGauge: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "xzzpcb",
			Name:      "decode_stage_percent",
			Help:      "Most recent progress percent reported for a decode stage.",
		}, []string{"stage"}),
	}

	reg.MustRegister(r.DecodeDuration, r.InputBytes, r.Diagnostics, r.StageGauge)
	return r
}

// Handler returns an http.Handler serving this registry's metrics in the
// Prometheus exposition format, for use behind the CLI's --metrics-addr flag.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}
