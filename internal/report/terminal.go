package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// TerminalWriter prints a summary to the terminal.
type TerminalWriter struct {
	output io.Writer
}

// NewTerminalWriter creates a TerminalWriter that outputs to the given writer.
func NewTerminalWriter(output io.Writer) *TerminalWriter {
	return &TerminalWriter{output: output}
}

// Write prints the summary with a colored heading and top list.
func (w *TerminalWriter) Write(summary Summary) error {
	heading := color.New(color.FgCyan, color.Bold)
	label := color.New(color.FgYellow)

	if _, err := heading.Fprintln(w.output, "Marvel characters report"); err != nil {
		return fmt.Errorf("heading.Fprintln > %w", err)
	}

	rows := []struct {
		name  string
		value string
	}{
		{"Characters", fmt.Sprintf("%d", summary.TotalCharacters)},
		{"With comics", fmt.Sprintf("%d", summary.WithComics)},
		{"Without comics", fmt.Sprintf("%d", summary.WithoutComics)},
		{"Total comic appearances", fmt.Sprintf("%d", summary.TotalComics)},
		{"Max comics for one character", fmt.Sprintf("%d", summary.MaxComics)},
		{"Average comics per character", fmt.Sprintf("%.1f", summary.AverageComics)},
	}
	for _, row := range rows {
		if _, err := label.Fprintf(w.output, "%-30s", row.name); err != nil {
			return fmt.Errorf("label.Fprintf > %w", err)
		}
		if _, err := fmt.Fprintln(w.output, row.value); err != nil {
			return fmt.Errorf("fmt.Fprintln > %w", err)
		}
	}

	if len(summary.Top) == 0 {
		return nil
	}

	if _, err := heading.Fprintf(w.output, "\nTop %d characters by comic count\n", len(summary.Top)); err != nil {
		return fmt.Errorf("heading.Fprintf > %w", err)
	}
	for i, character := range summary.Top {
		if _, err := fmt.Fprintf(w.output, "%2d. %s (%d comics)\n", i+1, character.Name, character.Comics); err != nil {
			return fmt.Errorf("fmt.Fprintf > %w", err)
		}
	}
	return nil
}
