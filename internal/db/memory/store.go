// Package memory is an in-process trivia backend for local runs and tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/gokatarajesh/trivia-api/internal/trivia"
)

// Store keeps categories and questions in maps. Ids are assigned from
// monotonic counters and never reused.
type Store struct {
	mu             sync.RWMutex
	categories     map[int]trivia.Category
	questions      map[int]trivia.Question
	nextCategoryID int
	nextQuestionID int
}

var (
	_ trivia.CategoryPersistence = (*Store)(nil)
	_ trivia.QuestionPersistence = (*Store)(nil)
)

// New returns an empty store.
func New() *Store {
	return &Store{
		categories:     make(map[int]trivia.Category),
		questions:      make(map[int]trivia.Question),
		nextCategoryID: 1,
		nextQuestionID: 1,
	}
}

// Seed loads fixed rows, keeping their ids. Counters move past the highest id.
func (s *Store) Seed(categories []trivia.Category, questions []trivia.Question) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range categories {
		s.categories[c.ID] = c
		if c.ID >= s.nextCategoryID {
			s.nextCategoryID = c.ID + 1
		}
	}
	for _, q := range questions {
		s.questions[q.ID] = q
		if q.ID >= s.nextQuestionID {
			s.nextQuestionID = q.ID + 1
		}
	}
}

func (s *Store) ListCategories(_ context.Context) ([]trivia.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]trivia.Category, 0, len(s.categories))
	for _, c := range s.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) GetCategory(_ context.Context, id int) (trivia.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.categories[id]
	if !ok {
		return trivia.Category{}, fmt.Errorf("category %d: %w", id, trivia.ErrNotFound)
	}
	return c, nil
}

func (s *Store) InsertCategory(_ context.Context, typ string) (trivia.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := trivia.Category{ID: s.nextCategoryID, Type: typ}
	s.categories[c.ID] = c
	s.nextCategoryID++
	return c, nil
}

func (s *Store) ListQuestions(_ context.Context, f trivia.QuestionFilter) ([]trivia.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	excluded := make(map[int]struct{}, len(f.ExcludeIDs))
	for _, id := range f.ExcludeIDs {
		excluded[id] = struct{}{}
	}
	needle := strings.ToLower(f.Search)

	out := make([]trivia.Question, 0, len(s.questions))
	for _, q := range s.questions {
		if _, skip := excluded[q.ID]; skip {
			continue
		}
		if f.CategoryID != nil && q.Category != *f.CategoryID {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(q.Question), needle) {
			continue
		}
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) GetQuestion(_ context.Context, id int) (trivia.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	q, ok := s.questions[id]
	if !ok {
		return trivia.Question{}, fmt.Errorf("question %d: %w", id, trivia.ErrNotFound)
	}
	return q, nil
}

func (s *Store) InsertQuestion(_ context.Context, in trivia.NewQuestion) (trivia.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q := trivia.Question{
		ID:         s.nextQuestionID,
		Question:   in.Question,
		Answer:     in.Answer,
		Category:   in.Category,
		Difficulty: in.Difficulty,
	}
	s.questions[q.ID] = q
	s.nextQuestionID++
	return q, nil
}

func (s *Store) DeleteQuestion(_ context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.questions[id]; !ok {
		return false, nil
	}
	delete(s.questions, id)
	return true, nil
}
