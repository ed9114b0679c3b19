// Package store mirrors flattened character rows into MySQL.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// Character is one row of the characters table.
type Character struct {
	ID        int       `db:"id"`
	Name      string    `db:"name"`
	Img       string    `db:"img"`
	Comics    int       `db:"comics"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

//go:generate mockgen -source=repository.go -destination=../mocks/store/mock_repository.go -package=mock_store

// CharacterRepository defines operations for managing character rows.
type CharacterRepository interface {
	FindAll(ctx context.Context) ([]Character, error)
	FindByID(ctx context.Context, id int) (*Character, error)
	Upsert(ctx context.Context, character *Character) error
}

// DBCharacterRepository implements CharacterRepository using MySQL.
type DBCharacterRepository struct {
	db *sqlx.DB
}

// NewDBCharacterRepository creates a new DBCharacterRepository.
func NewDBCharacterRepository(db *sqlx.DB) *DBCharacterRepository {
	return &DBCharacterRepository{db: db}
}

// FindAll returns all character rows.
func (r *DBCharacterRepository) FindAll(ctx context.Context) ([]Character, error) {
	var characters []Character
	if err := r.db.SelectContext(ctx, &characters, "SELECT * FROM characters ORDER BY id"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(characters) > %w", err)
	}
	return characters, nil
}

// FindByID returns a character row by its API id, or nil if not found.
func (r *DBCharacterRepository) FindByID(ctx context.Context, id int) (*Character, error) {
	var character Character
	err := r.db.GetContext(ctx, &character, "SELECT * FROM characters WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(character) > %w", err)
	}
	return &character, nil
}

// Upsert inserts or updates a character row.
func (r *DBCharacterRepository) Upsert(ctx context.Context, character *Character) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO characters (id, name, img, comics)
		VALUES (?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE name = VALUES(name), img = VALUES(img), comics = VALUES(comics)`,
		character.ID, character.Name, character.Img, character.Comics)
	if err != nil {
		return fmt.Errorf("db.ExecContext(upsert character) > %w", err)
	}
	return nil
}
