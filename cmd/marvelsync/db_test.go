package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/acervantes/marvelsync/internal/dataset"
	mock_store "github.com/acervantes/marvelsync/internal/mocks/store"
	"github.com/acervantes/marvelsync/internal/store"
)

func TestReadCharactersFile(t *testing.T) {
	tempDir := t.TempDir()
	want := []dataset.FlatCharacter{
		{ID: 1, Name: "A", Img: "http://example.com/a.jpg", Comics: 2},
	}

	csvPath := filepath.Join(tempDir, "characters.csv")
	require.NoError(t, dataset.WriteCharactersCSV(csvPath, want))

	jsonPath := filepath.Join(tempDir, "characters.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(
		`[{"id": 1, "name": "A", "thumbnail": {"path": "http://example.com/a", "extension": "jpg"}, "comics": {"available": 2}}]`,
	), 0644))

	fromCSV, err := readCharactersFile(csvPath)
	require.NoError(t, err)
	assert.Equal(t, want, fromCSV)

	fromJSON, err := readCharactersFile(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, want, fromJSON)
}

func TestReadCharactersFile_missingFile(t *testing.T) {
	_, err := readCharactersFile(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestListCharacters(t *testing.T) {
	ctrl := gomock.NewController(t)
	repository := mock_store.NewMockCharacterRepository(ctrl)
	repository.EXPECT().
		FindAll(gomock.Any()).
		Return([]store.Character{
			{ID: 1011334, Name: "3-D Man", Comics: 12},
			{ID: 1017100, Name: "A-Bomb (HAS)", Comics: 4},
		}, nil)

	var output bytes.Buffer
	require.NoError(t, listCharacters(context.Background(), repository, &output))

	assert.Equal(t,
		"1011334\t3-D Man\t12\n"+
			"1017100\tA-Bomb (HAS)\t4\n"+
			"2 characters\n",
		output.String())
}

func TestListCharacters_repositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repository := mock_store.NewMockCharacterRepository(ctrl)
	repository.EXPECT().
		FindAll(gomock.Any()).
		Return(nil, errors.New("connection refused"))

	var output bytes.Buffer
	err := listCharacters(context.Background(), repository, &output)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
	assert.Empty(t, output.String())
}
