package store

import (
	"context"
	"fmt"
	"io"

	"github.com/acervantes/marvelsync/internal/dataset"
)

// ImportResult tracks counts for one import run.
type ImportResult struct {
	New     int
	Updated int
	Skipped int
}

// ImportOptions controls import behavior.
type ImportOptions struct {
	DryRun         bool
	UpdateExisting bool
}

// Importer reads flattened character data and writes it to the DB.
type Importer struct {
	repo   CharacterRepository
	writer io.Writer
}

// NewImporter creates a new Importer.
func NewImporter(repo CharacterRepository, writer io.Writer) *Importer {
	return &Importer{
		repo:   repo,
		writer: writer,
	}
}

// Import upserts the given characters. Existing rows are skipped unless
// UpdateExisting is set; DryRun reports what would change without writing.
func (imp *Importer) Import(ctx context.Context, characters []dataset.FlatCharacter, opts ImportOptions) (*ImportResult, error) {
	var result ImportResult

	for _, character := range characters {
		existing, err := imp.repo.FindByID(ctx, character.ID)
		if err != nil {
			return nil, fmt.Errorf("repo.FindByID(%d) > %w", character.ID, err)
		}

		switch {
		case existing == nil:
			if !opts.DryRun {
				if err := imp.upsert(ctx, character); err != nil {
					return nil, err
				}
			}
			result.New++
			fmt.Fprintf(imp.writer, "new: %d %s\n", character.ID, character.Name)
		case opts.UpdateExisting:
			if !opts.DryRun {
				if err := imp.upsert(ctx, character); err != nil {
					return nil, err
				}
			}
			result.Updated++
			fmt.Fprintf(imp.writer, "updated: %d %s\n", character.ID, character.Name)
		default:
			result.Skipped++
		}
	}

	if opts.DryRun {
		fmt.Fprintf(imp.writer, "dry run: no rows were written\n")
	}
	fmt.Fprintf(imp.writer, "import finished: %d new, %d updated, %d skipped\n",
		result.New, result.Updated, result.Skipped)
	return &result, nil
}

func (imp *Importer) upsert(ctx context.Context, character dataset.FlatCharacter) error {
	row := &Character{
		ID:     character.ID,
		Name:   character.Name,
		Img:    character.Img,
		Comics: character.Comics,
	}
	if err := imp.repo.Upsert(ctx, row); err != nil {
		return fmt.Errorf("repo.Upsert(%d) > %w", character.ID, err)
	}
	return nil
}
