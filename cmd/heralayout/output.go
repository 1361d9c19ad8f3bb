// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"

	"code.hybscloud.com/hera/internal/layout"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

// ParseOutputFormat validates a --format value.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(s)); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported format: %s", s)
	}
}

const (
	ansiBold  = "\x1b[1m"
	ansiGreen = "\x1b[32m"
	ansiReset = "\x1b[0m"
)

// isTerminal reports whether w is a terminal, including Cygwin ptys.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// WriteReport writes rep to w in the given format. color only affects text.
func WriteReport(w io.Writer, rep *layout.Report, format OutputFormat, color bool) error {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	case FormatYAML:
		data, err := yaml.Marshal(rep)
		if err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}
		_, err = fmt.Fprintf(w, "---\n%s", data)
		return err
	case FormatText:
		return writeText(w, rep, color)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func writeText(w io.Writer, rep *layout.Report, color bool) error {
	paint := func(code, s string) string {
		if !color {
			return s
		}
		return code + s + ansiReset
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d -> %d bytes", paint(ansiBold, rep.Name), rep.OriginalSize, rep.OptimizedSize)
	if saved := rep.Saved(); saved > 0 {
		b.WriteString(paint(ansiGreen, fmt.Sprintf(" (saves %d)", saved)))
	}
	b.WriteString("\n")

	for _, part := range []struct {
		title string
		slots []layout.Slot
		size  uintptr
	}{
		{"declared", rep.Original, rep.OriginalSize},
		{"optimized", rep.Optimized, rep.OptimizedSize},
	} {
		fmt.Fprintf(&b, "  %s (padding %d)\n", part.title, layout.Padding(part.slots, part.size))
		tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "    OFFSET\tSIZE\tALIGN\tNAME\tTYPE")
		for _, s := range part.slots {
			fmt.Fprintf(tw, "    %d\t%d\t%d\t%s\t%s\n", s.Offset, s.Size, s.Align, s.Name, s.Type)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
