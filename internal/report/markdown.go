package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
)

// MarkdownWriter outputs the summary in Markdown format, for sharing or for
// converting to PDF.
type MarkdownWriter struct {
	output io.Writer
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{output: output}
}

// Write outputs the full summary as Markdown.
func (w *MarkdownWriter) Write(summary Summary) error {
	md := markdown.NewMarkdown(w.output)

	md.H1("Marvel Characters Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Characters", strconv.Itoa(summary.TotalCharacters)},
			{"With comics", strconv.Itoa(summary.WithComics)},
			{"Without comics", strconv.Itoa(summary.WithoutComics)},
			{"Total comic appearances", strconv.Itoa(summary.TotalComics)},
			{"Max comics for one character", strconv.Itoa(summary.MaxComics)},
			{"Average comics per character", strconv.FormatFloat(summary.AverageComics, 'f', 1, 64)},
		},
	})
	md.PlainText("")

	if len(summary.Top) > 0 {
		md.H2("Top Characters by Comic Count")
		md.PlainText("")

		rows := make([][]string, 0, len(summary.Top))
		for i, character := range summary.Top {
			rows = append(rows, []string{
				strconv.Itoa(i + 1),
				escapePipes(character.Name),
				strconv.Itoa(character.Comics),
			})
		}
		md.Table(markdown.TableSet{
			Header: []string{"Rank", "Character", "Comics"},
			Rows:   rows,
		})
	}

	return md.Build()
}

func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
