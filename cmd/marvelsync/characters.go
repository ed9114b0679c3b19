package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/acervantes/marvelsync/internal/dataset"
	"github.com/acervantes/marvelsync/internal/marvel"
)

type OutputFormat string

const (
	FormatCSV  OutputFormat = "csv"
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

var (
	_          pflag.Value = (*OutputFormat)(nil)
	allFormats             = []OutputFormat{FormatCSV, FormatJSON, FormatYAML}
)

func (f *OutputFormat) Set(val string) error {
	for _, format := range allFormats {
		if val == string(format) {
			*f = format
			return nil
		}
	}
	return fmt.Errorf("invalid format: %s", val)
}

func (f OutputFormat) String() string {
	return string(f)
}

func (f *OutputFormat) Type() string {
	return "format"
}

func newCharactersCommand() *cobra.Command {
	var (
		limit  int
		output string
	)
	format := FormatCSV

	command := &cobra.Command{
		Use:   "characters",
		Short: "Fetch all Marvel characters and write them to a flat file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if err := cfg.RequireAPIKeys(); err != nil {
				return err
			}
			if output == "" {
				output = defaultCharactersPath(cfg.CharactersCSVPath(), format)
			}

			client := marvel.NewClient(cfg.Marvel)
			defer func() {
				_ = client.Close()
			}()

			paginator := marvel.NewPaginator(client, cfg.Marvel.PageSize).
				WithCache(cfg.Marvel.CacheDirectory)
			raws, err := paginator.FetchAll(cmd.Context(), marvel.CharactersPath, limit)
			if err != nil {
				return fmt.Errorf("paginator.FetchAll > %w", err)
			}

			switch format {
			case FormatJSON:
				// raw dump, keeps the full API schema
				if err := dataset.WriteJSON(output, raws); err != nil {
					return fmt.Errorf("dataset.WriteJSON > %w", err)
				}
			case FormatYAML:
				characters, err := dataset.FlattenCharacters(raws)
				if err != nil {
					return fmt.Errorf("dataset.FlattenCharacters > %w", err)
				}
				if err := dataset.WriteYAML(output, characters); err != nil {
					return fmt.Errorf("dataset.WriteYAML > %w", err)
				}
			case FormatCSV:
				fallthrough
			default:
				characters, err := dataset.FlattenCharacters(raws)
				if err != nil {
					return fmt.Errorf("dataset.FlattenCharacters > %w", err)
				}
				if err := dataset.WriteCharactersCSV(output, characters); err != nil {
					return fmt.Errorf("dataset.WriteCharactersCSV > %w", err)
				}
			}

			slog.Default().Info("characters saved", "records", len(raws), "output", output)
			return nil
		},
	}

	flags := command.Flags()
	flags.IntVar(&limit, "limit", 0, "Max number of records to retrieve. 0 retrieves all available records")
	flags.StringVar(&output, "output", "", "Output file path. Defaults to characters.csv in the configured data directory")
	flags.Var(&format, "format", fmt.Sprintf("Output format. Possible values are %v", allFormats))

	return command
}

// defaultCharactersPath swaps the default CSV extension when another format
// was requested.
func defaultCharactersPath(csvPath string, format OutputFormat) string {
	if format == FormatCSV {
		return csvPath
	}
	return strings.TrimSuffix(csvPath, ".csv") + "." + string(format)
}
