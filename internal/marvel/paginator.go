package marvel

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
)

const (
	CharactersPath = "/v1/public/characters"
	ComicsPath     = "/v1/public/comics"
)

// CharacterComicsPath returns the sub-resource path listing the comics a
// character appears in.
func CharacterComicsPath(characterID int) string {
	return fmt.Sprintf("/v1/public/characters/%d/comics", characterID)
}

//go:generate mockgen -source=paginator.go -destination=../mocks/marvel/mock_getter.go -package=mock_marvel

// Getter issues one authenticated API call.
type Getter interface {
	Get(ctx context.Context, path string, params map[string]string) (*Envelope, error)
}

// Paginator walks a paginated resource collection page by page.
type Paginator struct {
	client   Getter
	pageSize int
	cache    *PageCache
}

func NewPaginator(client Getter, pageSize int) *Paginator {
	return &Paginator{
		client:   client,
		pageSize: pageSize,
	}
}

// WithCache stores raw pages under cacheDirectory so repeated runs skip the
// network. An empty directory leaves caching disabled.
func (p *Paginator) WithCache(cacheDirectory string) *Paginator {
	if cacheDirectory != "" {
		p.cache = NewPageCache(cacheDirectory)
	}
	return p
}

// FetchAll retrieves records from path until the server total or limit is
// reached. limit == 0 means all available records. Server ordering is
// preserved and no deduplication is performed.
func (p *Paginator) FetchAll(ctx context.Context, path string, limit int) ([]json.RawMessage, error) {
	var results []json.RawMessage
	offset := 0

	for {
		pageLimit := p.pageSize
		if limit > 0 && limit-len(results) < pageLimit {
			pageLimit = limit - len(results)
		}

		slog.Default().Info("collecting records",
			"path", path,
			"offset", offset,
			"limit", pageLimit,
		)
		envelope, err := p.fetchPage(ctx, path, offset, pageLimit)
		if err != nil {
			return nil, fmt.Errorf("p.fetchPage > %w", err)
		}

		total := envelope.Data.Total
		if offset == 0 {
			slog.Default().Info("total available records", "total", total)
		}
		if limit == 0 || limit > total {
			limit = total
		}

		results = append(results, envelope.Data.Results...)
		if len(results) > limit {
			results = results[:limit]
		}

		slog.Default().Info("collected records", "collected", len(results), "total", total)

		if len(results) >= limit {
			break
		}
		if len(envelope.Data.Results) == 0 {
			// the server advertised more records than it returns; stop
			// instead of requesting the same page forever
			break
		}
		offset += len(envelope.Data.Results)
	}

	return results, nil
}

func (p *Paginator) fetchPage(ctx context.Context, path string, offset, pageLimit int) (*Envelope, error) {
	params := map[string]string{
		"offset": strconv.Itoa(offset),
		"limit":  strconv.Itoa(pageLimit),
	}
	if p.cache == nil {
		return p.client.Get(ctx, path, params)
	}

	contents, err := p.cache.page(path, offset, pageLimit, func() ([]byte, error) {
		envelope, err := p.client.Get(ctx, path, params)
		if err != nil {
			return nil, fmt.Errorf("client.Get > %w", err)
		}
		body, err := json.Marshal(envelope)
		if err != nil {
			return nil, fmt.Errorf("json.Marshal > %w", err)
		}
		return body, nil
	})
	if err != nil {
		return nil, fmt.Errorf("cache.page > %w", err)
	}

	var envelope Envelope
	if err := json.Unmarshal(contents, &envelope); err != nil {
		return nil, fmt.Errorf("json.Unmarshal > %w", err)
	}
	return &envelope, nil
}
