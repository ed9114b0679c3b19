// Package dataset flattens raw API records into tabular rows and serializes
// them to flat files.
package dataset

import (
	"encoding/json"
	"fmt"

	"github.com/acervantes/marvelsync/internal/marvel"
)

// FlatCharacter is one row of the characters table.
type FlatCharacter struct {
	ID     int    `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	Img    string `json:"img" yaml:"img"`
	Comics int    `json:"comics" yaml:"comics"`
}

// FlatComic is one row of the comics table.
type FlatComic struct {
	ID          int     `json:"id" yaml:"id"`
	Title       string  `json:"title" yaml:"title"`
	IssueNumber float64 `json:"issueNumber" yaml:"issue_number"`
	PageCount   int     `json:"pageCount" yaml:"page_count"`
	OnSaleDate  string  `json:"onSaleDate" yaml:"on_sale_date"`
}

// characterRecord reads both the nested API shape and the already-flat shape,
// so flattening a flat record is a no-op.
type characterRecord struct {
	ID        int               `json:"id"`
	Name      string            `json:"name"`
	Thumbnail *marvel.Thumbnail `json:"thumbnail"`
	Comics    *marvel.ComicList `json:"comics"`
	Img       string            `json:"img"`
}

// FlattenCharacter extracts the fixed character column set from a raw record.
// Absent fields become zero values.
func FlattenCharacter(raw json.RawMessage) (FlatCharacter, error) {
	var record characterRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return FlatCharacter{}, fmt.Errorf("json.Unmarshal > %w", err)
	}

	flat := FlatCharacter{
		ID:   record.ID,
		Name: record.Name,
		Img:  record.Img,
	}
	if record.Thumbnail != nil {
		flat.Img = record.Thumbnail.URL()
	}
	if record.Comics != nil {
		flat.Comics = record.Comics.Available
	}
	return flat, nil
}

// FlattenCharacters flattens a full extraction run, preserving record order.
func FlattenCharacters(raws []json.RawMessage) ([]FlatCharacter, error) {
	characters := make([]FlatCharacter, 0, len(raws))
	for i, raw := range raws {
		flat, err := FlattenCharacter(raw)
		if err != nil {
			return nil, fmt.Errorf("FlattenCharacter(record %d) > %w", i, err)
		}
		characters = append(characters, flat)
	}
	return characters, nil
}

type comicRecord struct {
	ID          int                `json:"id"`
	Title       string             `json:"title"`
	IssueNumber float64            `json:"issueNumber"`
	PageCount   int                `json:"pageCount"`
	Dates       []marvel.ComicDate `json:"dates"`
	OnSaleDate  string             `json:"onSaleDate"`
}

// FlattenComic extracts the fixed comic column set from a raw record.
func FlattenComic(raw json.RawMessage) (FlatComic, error) {
	var record comicRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return FlatComic{}, fmt.Errorf("json.Unmarshal > %w", err)
	}

	flat := FlatComic{
		ID:          record.ID,
		Title:       record.Title,
		IssueNumber: record.IssueNumber,
		PageCount:   record.PageCount,
		OnSaleDate:  record.OnSaleDate,
	}
	if flat.OnSaleDate == "" {
		flat.OnSaleDate = marvel.Comic{Dates: record.Dates}.OnSaleDate()
	}
	return flat, nil
}

// FlattenComics flattens a full comics run, preserving record order.
func FlattenComics(raws []json.RawMessage) ([]FlatComic, error) {
	comics := make([]FlatComic, 0, len(raws))
	for i, raw := range raws {
		flat, err := FlattenComic(raw)
		if err != nil {
			return nil, fmt.Errorf("FlattenComic(record %d) > %w", i, err)
		}
		comics = append(comics, flat)
	}
	return comics, nil
}
