// Package report renders summary views over an extracted characters dataset.
package report

import (
	"sort"

	"github.com/acervantes/marvelsync/internal/dataset"
)

// Summary aggregates a characters dataset for reporting.
type Summary struct {
	TotalCharacters int
	WithComics      int
	WithoutComics   int
	TotalComics     int
	MaxComics       int
	AverageComics   float64
	Top             []dataset.FlatCharacter
}

// Summarize computes dataset statistics and the topN characters by comic
// count. Ties keep the dataset order.
func Summarize(characters []dataset.FlatCharacter, topN int) Summary {
	summary := Summary{
		TotalCharacters: len(characters),
	}

	for _, character := range characters {
		if character.Comics > 0 {
			summary.WithComics++
		} else {
			summary.WithoutComics++
		}
		summary.TotalComics += character.Comics
		if character.Comics > summary.MaxComics {
			summary.MaxComics = character.Comics
		}
	}
	if summary.TotalCharacters > 0 {
		summary.AverageComics = float64(summary.TotalComics) / float64(summary.TotalCharacters)
	}

	top := make([]dataset.FlatCharacter, len(characters))
	copy(top, characters)
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Comics > top[j].Comics
	})
	if topN > 0 && topN < len(top) {
		top = top[:topN]
	}
	summary.Top = top

	return summary
}
