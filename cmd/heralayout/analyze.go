// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"code.hybscloud.com/hera/internal/layout"
)

var (
	analyzeFormat string
	analyzeWatch  bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze FILE...",
	Short: "Analyze struct descriptors",
	Long: `Analyze one or more YAML or TOML struct descriptors and print the
declared and optimized layouts.

Examples:
  heralayout analyze header.yaml
  heralayout analyze --format json a.yaml b.toml
  heralayout analyze --watch header.yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeFormat, "format", "f", string(FormatText), "Output format (text, json, yaml)")
	analyzeCmd.Flags().BoolVarP(&analyzeWatch, "watch", "w", false, "Re-analyze files when they change")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	format, err := ParseOutputFormat(analyzeFormat)
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr())
	out := cmd.OutOrStdout()
	color := !noColor && isTerminal(out)

	failed := 0
	for _, path := range args {
		if err := analyzeFile(out, logger, path, format, color); err != nil {
			logger.Error("analysis failed", "path", path, "error", err)
			failed++
		}
	}

	if analyzeWatch {
		ctx, stop := signal.NotifyContext(analyzeContext(cmd), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return watchFiles(ctx, logger, args, func(path string) {
			if err := analyzeFile(out, logger, path, format, color); err != nil {
				logger.Error("analysis failed", "path", path, "error", err)
			}
		})
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d descriptors failed", failed, len(args))
	}
	return nil
}

func analyzeFile(w io.Writer, logger *slog.Logger, path string, format OutputFormat, color bool) error {
	d, err := layout.Load(path)
	if err != nil {
		return err
	}
	logger.Debug("descriptor loaded", "path", path, "name", d.Name, "fields", len(d.Fields))
	rep, err := layout.Analyze(d)
	if err != nil {
		return err
	}
	logger.Info("analyzed", "name", rep.Name, "original", rep.OriginalSize, "optimized", rep.OptimizedSize)
	return WriteReport(w, rep, format, color)
}

// analyzeContext is the command context used when none is set.
func analyzeContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
