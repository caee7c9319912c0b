package trivia

import (
	"context"
	"fmt"
	"sort"
)

// CategoryStore exposes category reads and creation over a persistence backend.
type CategoryStore struct {
	db CategoryPersistence
}

// NewCategoryStore wraps db.
func NewCategoryStore(db CategoryPersistence) *CategoryStore {
	return &CategoryStore{db: db}
}

// List returns every category ordered by id.
func (s *CategoryStore) List(ctx context.Context) ([]Category, error) {
	categories, err := s.db.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	sort.SliceStable(categories, func(i, j int) bool { return categories[i].ID < categories[j].ID })
	return categories, nil
}

// Get returns the category with the given id.
func (s *CategoryStore) Get(ctx context.Context, id int) (Category, error) {
	category, err := s.db.GetCategory(ctx, id)
	if err != nil {
		return Category{}, fmt.Errorf("get category %d: %w", id, err)
	}
	return category, nil
}

// Create persists a new category with the given type label.
func (s *CategoryStore) Create(ctx context.Context, typ string) (Category, error) {
	if typ == "" {
		return Category{}, fmt.Errorf("create category: type is required: %w", ErrValidation)
	}
	category, err := s.db.InsertCategory(ctx, typ)
	if err != nil {
		return Category{}, fmt.Errorf("create category: %w", err)
	}
	return category, nil
}

// TypeMap maps category ids to their type labels.
func TypeMap(categories []Category) map[int]string {
	out := make(map[int]string, len(categories))
	for _, c := range categories {
		out[c.ID] = c.Type
	}
	return out
}
