package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/acervantes/marvelsync/internal/database"
	"github.com/acervantes/marvelsync/internal/dataset"
	"github.com/acervantes/marvelsync/internal/store"
)

func newDBCommand() *cobra.Command {
	dbCommand := &cobra.Command{
		Use:   "db",
		Short: "Database commands",
	}

	dbCommand.AddCommand(newDBMigrateCommand())
	dbCommand.AddCommand(newDBImportCommand())
	dbCommand.AddCommand(newDBListCommand())
	return dbCommand
}

func newDBListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the character rows stored in MySQL",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			db, err := database.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("database.Open > %w", err)
			}
			defer func() {
				_ = db.Close()
			}()

			return listCharacters(cmd.Context(), store.NewDBCharacterRepository(db), cmd.OutOrStdout())
		},
	}
}

func listCharacters(ctx context.Context, repository store.CharacterRepository, writer io.Writer) error {
	characters, err := repository.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("repository.FindAll > %w", err)
	}

	for _, character := range characters {
		fmt.Fprintf(writer, "%d\t%s\t%d\n", character.ID, character.Name, character.Comics)
	}
	fmt.Fprintf(writer, "%d characters\n", len(characters))
	return nil
}

func newDBMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations to MySQL",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			db, err := database.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("database.Open > %w", err)
			}
			defer func() {
				_ = db.Close()
			}()

			if err := database.Migrate(db); err != nil {
				return fmt.Errorf("database.Migrate > %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Database schema is up to date")
			return nil
		},
	}
}

func newDBImportCommand() *cobra.Command {
	var (
		input          string
		dryRun         bool
		updateExisting bool
	)

	command := &cobra.Command{
		Use:   "import",
		Short: "Import an extracted characters file into MySQL",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if input == "" {
				input = cfg.CharactersCSVPath()
			}

			characters, err := readCharactersFile(input)
			if err != nil {
				return err
			}

			db, err := database.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("database.Open > %w", err)
			}
			defer func() {
				_ = db.Close()
			}()

			importer := store.NewImporter(store.NewDBCharacterRepository(db), cmd.OutOrStdout())
			if _, err := importer.Import(cmd.Context(), characters, store.ImportOptions{
				DryRun:         dryRun,
				UpdateExisting: updateExisting,
			}); err != nil {
				return fmt.Errorf("importer.Import > %w", err)
			}
			return nil
		},
	}

	flags := command.Flags()
	flags.StringVar(&input, "input", "", "Characters CSV or JSON file to import. Defaults to characters.csv in the configured data directory")
	flags.BoolVar(&dryRun, "dry-run", false, "Report what would change without writing")
	flags.BoolVar(&updateExisting, "update", false, "Update rows that already exist")

	return command
}

func readCharactersFile(path string) ([]dataset.FlatCharacter, error) {
	if strings.HasSuffix(path, ".json") {
		characters, err := dataset.ReadCharactersJSON(path)
		if err != nil {
			return nil, fmt.Errorf("dataset.ReadCharactersJSON > %w", err)
		}
		return characters, nil
	}
	characters, err := dataset.ReadCharactersCSV(path)
	if err != nil {
		return nil, fmt.Errorf("dataset.ReadCharactersCSV > %w", err)
	}
	return characters, nil
}
