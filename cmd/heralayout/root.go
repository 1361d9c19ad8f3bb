// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

var (
	verbosity int
	quiet     bool
	noColor   bool
)

var rootCmd = &cobra.Command{
	Use:   "heralayout",
	Short: "Find padding-free struct field orders",
	Long: `heralayout reads struct descriptors, sorts their fields by decreasing
alignment and size, and compares the declared layout with the optimized one.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase log verbosity (-v info, -vv debug)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all logs")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}

// levelFromVerbosity maps -v counts to a level: warn by default, info at 1,
// debug from 2. quiet suppresses everything.
func levelFromVerbosity(v int, quiet bool) slog.Level {
	if quiet {
		return slog.Level(100)
	}
	switch v {
	case 0:
		return slog.LevelWarn
	case 1:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: levelFromVerbosity(verbosity, quiet),
	}))
}
