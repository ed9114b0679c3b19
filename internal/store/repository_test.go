package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var characterColumns = []string{"id", "name", "img", "comics", "created_at", "updated_at"}

func TestDBCharacterRepository_FindAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "mysql")
	repo := NewDBCharacterRepository(sqlxDB)
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(characterColumns).
		AddRow(1011334, "3-D Man", "http://example.com/a.jpg", 12, now, now).
		AddRow(1017100, "A-Bomb (HAS)", "http://example.com/b.jpg", 4, now, now)

	mock.ExpectQuery("SELECT \\* FROM characters ORDER BY id").WillReturnRows(rows)

	got, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, 1011334, got[0].ID)
	assert.Equal(t, "3-D Man", got[0].Name)
	assert.Equal(t, 12, got[0].Comics)
	assert.Equal(t, 1017100, got[1].ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBCharacterRepository_FindByID(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		id        int
		setupMock func(mock sqlmock.Sqlmock)
		want      *Character
		wantErr   bool
	}{
		{
			name: "found",
			id:   1011334,
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(characterColumns).
					AddRow(1011334, "3-D Man", "http://example.com/a.jpg", 12, now, now)
				mock.ExpectQuery("SELECT \\* FROM characters WHERE id = \\?").
					WithArgs(1011334).
					WillReturnRows(rows)
			},
			want: &Character{
				ID:        1011334,
				Name:      "3-D Man",
				Img:       "http://example.com/a.jpg",
				Comics:    12,
				CreatedAt: now,
				UpdatedAt: now,
			},
		},
		{
			name: "not found returns nil without error",
			id:   999,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT \\* FROM characters WHERE id = \\?").
					WithArgs(999).
					WillReturnRows(sqlmock.NewRows(characterColumns))
			},
			want: nil,
		},
		{
			name: "query error",
			id:   1,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT \\* FROM characters WHERE id = \\?").
					WithArgs(1).
					WillReturnError(errors.New("connection lost"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			sqlxDB := sqlx.NewDb(db, "mysql")
			repo := NewDBCharacterRepository(sqlxDB)
			tt.setupMock(mock)

			got, err := repo.FindByID(context.Background(), tt.id)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBCharacterRepository_Upsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "mysql")
	repo := NewDBCharacterRepository(sqlxDB)

	mock.ExpectExec("INSERT INTO characters").
		WithArgs(1011334, "3-D Man", "http://example.com/a.jpg", 12).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.Upsert(context.Background(), &Character{
		ID:     1011334,
		Name:   "3-D Man",
		Img:    "http://example.com/a.jpg",
		Comics: 12,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
