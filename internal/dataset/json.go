package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// WriteJSON serializes data to path as JSON, overwriting any existing file.
// Raw records pass through untouched, so arbitrary resource dumps keep
// whatever schema the API returned.
func WriteJSON(path string, data any) error {
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

	if err := json.NewEncoder(file).Encode(data); err != nil {
		return fmt.Errorf("json.Encode > %w", err)
	}
	return nil
}

// ReadCharactersJSON loads a raw characters dump and flattens it.
func ReadCharactersJSON(path string) ([]FlatCharacter, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile > %w", err)
	}

	var raws []json.RawMessage
	if err := json.Unmarshal(contents, &raws); err != nil {
		return nil, fmt.Errorf("json.Unmarshal > %w", err)
	}
	return FlattenCharacters(raws)
}
