package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/acervantes/marvelsync/internal/dataset"
	"github.com/acervantes/marvelsync/internal/report"
)

func newReportCommand() *cobra.Command {
	var (
		input        string
		topN         int
		markdownPath string
		exportPDF    bool
	)

	command := &cobra.Command{
		Use:   "report",
		Short: "Summarize a previously extracted characters CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if input == "" {
				input = cfg.CharactersCSVPath()
			}

			characters, err := dataset.ReadCharactersCSV(input)
			if err != nil {
				return fmt.Errorf("dataset.ReadCharactersCSV > %w", err)
			}
			summary := report.Summarize(characters, topN)

			if err := report.NewTerminalWriter(cmd.OutOrStdout()).Write(summary); err != nil {
				return fmt.Errorf("terminal report > %w", err)
			}

			if markdownPath == "" {
				if exportPDF {
					return fmt.Errorf("--pdf requires --markdown")
				}
				return nil
			}

			file, err := os.Create(markdownPath)
			if err != nil {
				return fmt.Errorf("os.Create(%s) > %w", markdownPath, err)
			}
			if err := report.NewMarkdownWriter(file).Write(summary); err != nil {
				_ = file.Close()
				return fmt.Errorf("markdown report > %w", err)
			}
			if err := file.Close(); err != nil {
				return fmt.Errorf("file.Close > %w", err)
			}

			if exportPDF {
				pdfPath, err := report.ConvertMarkdownToPDF(markdownPath)
				if err != nil {
					return fmt.Errorf("report.ConvertMarkdownToPDF > %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "PDF report written to %s\n", pdfPath)
			}
			return nil
		},
	}

	flags := command.Flags()
	flags.StringVar(&input, "input", "", "Characters CSV to summarize. Defaults to characters.csv in the configured data directory")
	flags.IntVar(&topN, "top", 10, "Number of characters in the top-by-comics list")
	flags.StringVar(&markdownPath, "markdown", "", "Also write the report as Markdown to this path")
	flags.BoolVar(&exportPDF, "pdf", false, "Also convert the Markdown report to PDF")

	return command
}
