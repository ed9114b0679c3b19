package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/acervantes/marvelsync/internal/dataset"
	"github.com/acervantes/marvelsync/internal/marvel"
)

func newComicsCommand() *cobra.Command {
	var (
		limit       int
		characterID int
		output      string
	)

	command := &cobra.Command{
		Use:   "comics",
		Short: "Fetch Marvel comics and write them to a JSON file",
		Long: `Fetch Marvel comics and write them to a JSON file.

With --character-id, only the comics the given character appears in are
fetched.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if err := cfg.RequireAPIKeys(); err != nil {
				return err
			}
			if output == "" {
				output = cfg.ComicsJSONPath()
			}

			path := marvel.ComicsPath
			if characterID > 0 {
				path = marvel.CharacterComicsPath(characterID)
			}

			client := marvel.NewClient(cfg.Marvel)
			defer func() {
				_ = client.Close()
			}()

			paginator := marvel.NewPaginator(client, cfg.Marvel.PageSize).
				WithCache(cfg.Marvel.CacheDirectory)
			raws, err := paginator.FetchAll(cmd.Context(), path, limit)
			if err != nil {
				return fmt.Errorf("paginator.FetchAll > %w", err)
			}

			if err := dataset.WriteJSON(output, raws); err != nil {
				return fmt.Errorf("dataset.WriteJSON > %w", err)
			}

			slog.Default().Info("comics saved", "records", len(raws), "output", output)
			return nil
		},
	}

	flags := command.Flags()
	flags.IntVar(&limit, "limit", 0, "Max number of records to retrieve. 0 retrieves all available records")
	flags.IntVar(&characterID, "character-id", 0, "Only fetch comics this character appears in")
	flags.StringVar(&output, "output", "", "Output file path. Defaults to comics.json in the configured data directory")

	return command
}
