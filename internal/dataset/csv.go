package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

var characterCSVHeader = []string{"id", "name", "img", "comics"}

// WriteCharactersCSV writes the fixed character column set to path,
// overwriting any existing file. An empty dataset still produces a
// header-only file.
func WriteCharactersCSV(path string, characters []FlatCharacter) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("os.MkdirAll > %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("os.Create > %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	writer := csv.NewWriter(file)
	if err := writer.Write(characterCSVHeader); err != nil {
		return fmt.Errorf("writer.Write(header) > %w", err)
	}
	for _, character := range characters {
		record := []string{
			strconv.Itoa(character.ID),
			character.Name,
			character.Img,
			strconv.Itoa(character.Comics),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("writer.Write(record %d) > %w", character.ID, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("writer.Flush > %w", err)
	}
	return nil
}

// ReadCharactersCSV loads a characters CSV previously written by
// WriteCharactersCSV.
func ReadCharactersCSV(path string) ([]FlatCharacter, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("os.Open > %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	reader := csv.NewReader(file)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reader.ReadAll > %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("characters file %s has no header row", path)
	}

	characters := make([]FlatCharacter, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) != len(characterCSVHeader) {
			return nil, fmt.Errorf("row %d has %d columns, want %d", i+1, len(row), len(characterCSVHeader))
		}
		id, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, fmt.Errorf("row %d has an invalid id %q > %w", i+1, row[0], err)
		}
		comics, err := strconv.Atoi(row[3])
		if err != nil {
			return nil, fmt.Errorf("row %d has an invalid comics count %q > %w", i+1, row[3], err)
		}
		characters = append(characters, FlatCharacter{
			ID:     id,
			Name:   row[1],
			Img:    row[2],
			Comics: comics,
		})
	}
	return characters, nil
}
