// https://developer.marvel.com/docs
package marvel

import (
	"encoding/json"
	"fmt"
)

// Envelope is the top-level structure every Marvel API response shares.
type Envelope struct {
	Code   int    `json:"code"`
	Status string `json:"status"`
	Data   Page   `json:"data"`
}

// Page is one bounded batch of records plus its pagination metadata.
// Records are kept raw so arbitrary resource types pass through untouched.
type Page struct {
	Offset  int               `json:"offset"`
	Limit   int               `json:"limit"`
	Total   int               `json:"total"`
	Count   int               `json:"count"`
	Results []json.RawMessage `json:"results"`
}

type Thumbnail struct {
	Path      string `json:"path"`
	Extension string `json:"extension"`
}

// URL joins the thumbnail path and extension into an image URL.
func (t Thumbnail) URL() string {
	if t.Path == "" {
		return ""
	}
	return t.Path + "." + t.Extension
}

// ComicList carries the number of comics attached to a character.
type ComicList struct {
	Available int `json:"available"`
}

func (c *ComicList) UnmarshalJSON(data []byte) error {
	// the comics field is an object in API records and a plain number in
	// already-flattened records
	if data[0] == '{' {
		var list struct {
			Available int `json:"available"`
		}
		if err := json.Unmarshal(data, &list); err != nil {
			return fmt.Errorf("json.Unmarshal > %w", err)
		}
		c.Available = list.Available
		return nil
	}
	if err := json.Unmarshal(data, &c.Available); err != nil {
		return fmt.Errorf("json.Unmarshal > %w", err)
	}
	return nil
}

type ComicDate struct {
	Type string `json:"type"`
	Date string `json:"date"`
}

type Comic struct {
	ID          int         `json:"id"`
	Title       string      `json:"title"`
	IssueNumber float64     `json:"issueNumber"`
	PageCount   int         `json:"pageCount"`
	Dates       []ComicDate `json:"dates"`
}

// OnSaleDate returns the comic's onsaleDate entry, or "" when absent.
func (c Comic) OnSaleDate() string {
	for _, date := range c.Dates {
		if date.Type == "onsaleDate" {
			return date.Date
		}
	}
	return ""
}
