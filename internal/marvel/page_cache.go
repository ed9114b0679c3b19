package marvel

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// PageCache stores raw API pages on disk, one JSON file per page window.
type PageCache struct {
	rootDir string
}

func NewPageCache(cacheDirectory string) *PageCache {
	return &PageCache{
		rootDir: cacheDirectory,
	}
}

// pagePath derives the cache file from the resource path and the page window,
// e.g. /v1/public/characters at offset 0 limit 100 becomes
// v1-public-characters-0-100.json.
func (cache *PageCache) pagePath(resource string, offset, limit int) string {
	name := strings.ReplaceAll(strings.Trim(resource, "/"), "/", "-")
	return filepath.Join(cache.rootDir, fmt.Sprintf("%s-%d-%d.json", name, offset, limit))
}

// page returns the cached page for the resource window, fetching and storing
// it on a miss.
func (cache *PageCache) page(resource string, offset, limit int, fetch func() ([]byte, error)) ([]byte, error) {
	localFilePath := cache.pagePath(resource, offset, limit)
	if _, err := os.Stat(localFilePath); err == nil {
		contents, err := cache.read(localFilePath)
		if err != nil {
			return nil, fmt.Errorf("cache.read > %w", err)
		}
		return contents, nil
	}

	contents, err := fetch()
	if err != nil {
		return nil, fmt.Errorf("fetch page for cache > %w", err)
	}

	if err := os.MkdirAll(cache.rootDir, 0755); err != nil {
		return nil, fmt.Errorf("os.MkdirAll > %w", err)
	}
	file, err := os.Create(localFilePath)
	if err != nil {
		return nil, fmt.Errorf("os.Create > %w", err)
	}
	defer func() {
		_ = file.Close()
	}()
	if _, err := file.Write(contents); err != nil {
		return contents, fmt.Errorf("file.Write > %w", err)
	}
	return contents, nil
}

func (cache *PageCache) read(localFilePath string) ([]byte, error) {
	file, err := os.Open(localFilePath)
	if err != nil {
		return nil, fmt.Errorf("os.Open > %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	contents, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("io.ReadAll > %w", err)
	}
	return contents, nil
}
