package dataset

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// WriteYAML serializes data to path as YAML, overwriting any existing file.
func WriteYAML(path string, data any) error {
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

	encoder := yaml.NewEncoder(file)
	defer func() {
		_ = encoder.Close()
	}()
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("yaml.Encode > %w", err)
	}
	return nil
}
