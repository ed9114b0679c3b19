package marvel_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/acervantes/marvelsync/internal/marvel"
	mock_marvel "github.com/acervantes/marvelsync/internal/mocks/marvel"
)

func records(from, count int) []json.RawMessage {
	results := make([]json.RawMessage, 0, count)
	for i := 0; i < count; i++ {
		results = append(results, json.RawMessage(fmt.Sprintf(`{"id":%d}`, from+i)))
	}
	return results
}

func page(offset, total int, results []json.RawMessage) *marvel.Envelope {
	return &marvel.Envelope{
		Code:   200,
		Status: "Ok",
		Data: marvel.Page{
			Offset:  offset,
			Limit:   len(results),
			Total:   total,
			Count:   len(results),
			Results: results,
		},
	}
}

func TestPaginator_FetchAll(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		setup func(client *mock_marvel.MockGetter)

		want            []json.RawMessage
		wantError       bool
		wantErrorString string
	}{
		{
			name:  "all records across multiple pages in server order",
			limit: 0,
			setup: func(client *mock_marvel.MockGetter) {
				gomock.InOrder(
					client.EXPECT().
						Get(gomock.Any(), marvel.CharactersPath, map[string]string{"offset": "0", "limit": "100"}).
						Return(page(0, 250, records(0, 100)), nil),
					client.EXPECT().
						Get(gomock.Any(), marvel.CharactersPath, map[string]string{"offset": "100", "limit": "100"}).
						Return(page(100, 250, records(100, 100)), nil),
					client.EXPECT().
						Get(gomock.Any(), marvel.CharactersPath, map[string]string{"offset": "200", "limit": "100"}).
						Return(page(200, 250, records(200, 50)), nil),
				)
			},
			want: records(0, 250),
		},
		{
			name:  "limit smaller than page size requests a single truncated page",
			limit: 5,
			setup: func(client *mock_marvel.MockGetter) {
				client.EXPECT().
					Get(gomock.Any(), marvel.CharactersPath, map[string]string{"offset": "0", "limit": "5"}).
					Return(page(0, 250, records(0, 5)), nil)
			},
			want: records(0, 5),
		},
		{
			name:  "result is truncated when the server over-returns",
			limit: 3,
			setup: func(client *mock_marvel.MockGetter) {
				client.EXPECT().
					Get(gomock.Any(), marvel.CharactersPath, gomock.Any()).
					Return(page(0, 250, records(0, 100)), nil)
			},
			want: records(0, 3),
		},
		{
			name:  "zero server total yields an empty sequence",
			limit: 0,
			setup: func(client *mock_marvel.MockGetter) {
				client.EXPECT().
					Get(gomock.Any(), marvel.CharactersPath, gomock.Any()).
					Return(page(0, 0, nil), nil)
			},
			want: nil,
		},
		{
			name:  "limit above total stops at the total",
			limit: 500,
			setup: func(client *mock_marvel.MockGetter) {
				client.EXPECT().
					Get(gomock.Any(), marvel.CharactersPath, map[string]string{"offset": "0", "limit": "100"}).
					Return(page(0, 120, records(0, 100)), nil)
				client.EXPECT().
					Get(gomock.Any(), marvel.CharactersPath, map[string]string{"offset": "100", "limit": "20"}).
					Return(page(100, 120, records(100, 20)), nil)
			},
			want: records(0, 120),
		},
		{
			name:  "API error is propagated",
			limit: 0,
			setup: func(client *mock_marvel.MockGetter) {
				client.EXPECT().
					Get(gomock.Any(), marvel.CharactersPath, gomock.Any()).
					Return(nil, errors.New("request failed with status 401"))
			},
			wantError:       true,
			wantErrorString: "request failed with status 401",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := mock_marvel.NewMockGetter(ctrl)
			tt.setup(client)

			paginator := marvel.NewPaginator(client, 100)
			got, err := paginator.FetchAll(context.Background(), marvel.CharactersPath, tt.limit)
			if tt.wantError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrorString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPaginator_FetchAll_usesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock_marvel.NewMockGetter(ctrl)
	client.EXPECT().
		Get(gomock.Any(), marvel.ComicsPath, gomock.Any()).
		Return(page(0, 2, records(0, 2)), nil).
		Times(1)

	cacheDir := t.TempDir()
	paginator := marvel.NewPaginator(client, 100).WithCache(cacheDir)

	first, err := paginator.FetchAll(context.Background(), marvel.ComicsPath, 0)
	require.NoError(t, err)

	// the second run must be served entirely from the cache
	second, err := paginator.FetchAll(context.Background(), marvel.ComicsPath, 0)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
