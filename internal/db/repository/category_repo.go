package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gokatarajesh/trivia-api/internal/db/queries"
	"github.com/gokatarajesh/trivia-api/internal/trivia"
)

type categoryStore interface {
	ListCategories(ctx context.Context) ([]queries.Category, error)
	GetCategory(ctx context.Context, id int32) (queries.Category, error)
	InsertCategory(ctx context.Context, typ string) (queries.Category, error)
}

// CategoryRepository maps category rows to trivia categories.
type CategoryRepository struct {
	store categoryStore
}

var _ trivia.CategoryPersistence = (*CategoryRepository)(nil)

// NewCategoryRepository wraps the generated queries for category access.
func NewCategoryRepository(store categoryStore) *CategoryRepository {
	return &CategoryRepository{store: store}
}

// ListCategories returns every category ordered by id.
func (r *CategoryRepository) ListCategories(ctx context.Context) ([]trivia.Category, error) {
	rows, err := r.store.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]trivia.Category, 0, len(rows))
	for _, row := range rows {
		out = append(out, toCategory(row))
	}
	return out, nil
}

// GetCategory fetches a category by id.
func (r *CategoryRepository) GetCategory(ctx context.Context, id int) (trivia.Category, error) {
	key, ok := toKey(id)
	if !ok {
		return trivia.Category{}, fmt.Errorf("category %d: %w", id, trivia.ErrNotFound)
	}
	row, err := r.store.GetCategory(ctx, key)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return trivia.Category{}, fmt.Errorf("category %d: %w", id, trivia.ErrNotFound)
		}
		return trivia.Category{}, err
	}
	return toCategory(row), nil
}

// InsertCategory stores a category; Postgres assigns the id.
func (r *CategoryRepository) InsertCategory(ctx context.Context, typ string) (trivia.Category, error) {
	row, err := r.store.InsertCategory(ctx, typ)
	if err != nil {
		if rejected(err) {
			return trivia.Category{}, fmt.Errorf("insert category: %v: %w", err, trivia.ErrUnprocessable)
		}
		return trivia.Category{}, err
	}
	return toCategory(row), nil
}

func toCategory(row queries.Category) trivia.Category {
	return trivia.Category{ID: int(row.ID), Type: row.Type}
}
