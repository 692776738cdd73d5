package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "xzzpcb",
	Short: "xzzpcb decodes XZZPCB board files into structured boards",
	Long: `xzzpcb is a thin driver around the XZZPCB core decoder.

It unwraps the optional whole-file XOR obfuscation, walks the outer
tagged-block stream, decrypts DES-encrypted part payloads, and emits the
resulting board as JSON.

Examples:
  xzzpcb decode board.pcb             # decode and print JSON
  xzzpcb decode board.pcb --progress  # also print stage progress to stderr`,
	Version: "0.1.0",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}

func logLevel() logrus.Level {
	if verbose {
		return logrus.DebugLevel
	}
	return logrus.InfoLevel
}
