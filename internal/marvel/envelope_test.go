package marvel

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThumbnail_URL(t *testing.T) {
	tests := []struct {
		name      string
		thumbnail Thumbnail
		want      string
	}{
		{
			name: "path and extension are joined with a dot",
			thumbnail: Thumbnail{
				Path:      "http://i.annihil.us/u/prod/marvel/i/mg/c/e0/535fecbbb9784",
				Extension: "jpg",
			},
			want: "http://i.annihil.us/u/prod/marvel/i/mg/c/e0/535fecbbb9784.jpg",
		},
		{
			name:      "missing thumbnail yields an empty url",
			thumbnail: Thumbnail{},
			want:      "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.thumbnail.URL())
		})
	}
}

func TestComicList_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		data string
		want int
	}{
		{
			name: "API object form",
			data: `{"available":42,"collectionURI":"http://gateway.marvel.com/v1/public/characters/1011334/comics"}`,
			want: 42,
		},
		{
			name: "already-flattened number form",
			data: `42`,
			want: 42,
		},
		{
			name: "empty object",
			data: `{}`,
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var list ComicList
			require.NoError(t, json.Unmarshal([]byte(tt.data), &list))
			assert.Equal(t, tt.want, list.Available)
		})
	}
}

func TestComic_OnSaleDate(t *testing.T) {
	comic := Comic{
		Dates: []ComicDate{
			{Type: "focDate", Date: "2014-04-14T00:00:00-0400"},
			{Type: "onsaleDate", Date: "2014-04-30T00:00:00-0400"},
		},
	}
	assert.Equal(t, "2014-04-30T00:00:00-0400", comic.OnSaleDate())

	assert.Equal(t, "", Comic{}.OnSaleDate())
}
