package trivia

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// QuestionStore exposes question reads, creation, deletion and search.
type QuestionStore struct {
	db QuestionPersistence
}

// NewQuestionStore wraps db.
func NewQuestionStore(db QuestionPersistence) *QuestionStore {
	return &QuestionStore{db: db}
}

// List returns every question ordered by id.
func (s *QuestionStore) List(ctx context.Context) ([]Question, error) {
	return s.list(ctx, QuestionFilter{}, "list questions")
}

// Get returns the question with the given id.
func (s *QuestionStore) Get(ctx context.Context, id int) (Question, error) {
	q, err := s.db.GetQuestion(ctx, id)
	if err != nil {
		return Question{}, fmt.Errorf("get question %d: %w", id, err)
	}
	return q, nil
}

// Create persists a question. Only a payload with every field unset is rejected;
// partially filled questions are accepted as-is.
func (s *QuestionStore) Create(ctx context.Context, in NewQuestion) (Question, error) {
	if in.empty() {
		return Question{}, fmt.Errorf("create question: all fields empty: %w", ErrValidation)
	}
	q, err := s.db.InsertQuestion(ctx, in)
	if err != nil {
		return Question{}, fmt.Errorf("create question: %w", err)
	}
	return q, nil
}

// Delete hard-deletes the question with the given id.
func (s *QuestionStore) Delete(ctx context.Context, id int) error {
	deleted, err := s.db.DeleteQuestion(ctx, id)
	if err != nil {
		return fmt.Errorf("delete question %d: %w", id, err)
	}
	if !deleted {
		return fmt.Errorf("delete question %d: %w", id, ErrNotFound)
	}
	return nil
}

// Search returns questions whose text contains term, ignoring case.
func (s *QuestionStore) Search(ctx context.Context, term string) ([]Question, error) {
	questions, err := s.list(ctx, QuestionFilter{Search: term}, "search questions")
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(term)
	return filter(questions, func(q Question) bool {
		return strings.Contains(strings.ToLower(q.Question), needle)
	}), nil
}

// ByCategory returns the questions referencing categoryID.
func (s *QuestionStore) ByCategory(ctx context.Context, categoryID int) ([]Question, error) {
	questions, err := s.list(ctx, QuestionFilter{CategoryID: &categoryID}, "questions by category")
	if err != nil {
		return nil, err
	}
	return filter(questions, func(q Question) bool { return q.Category == categoryID }), nil
}

func (s *QuestionStore) list(ctx context.Context, f QuestionFilter, op string) ([]Question, error) {
	questions, err := s.db.ListQuestions(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	sortByID(questions)
	return questions, nil
}

func sortByID(questions []Question) {
	sort.SliceStable(questions, func(i, j int) bool { return questions[i].ID < questions[j].ID })
}

func filter(questions []Question, keep func(Question) bool) []Question {
	out := make([]Question, 0, len(questions))
	for _, q := range questions {
		if keep(q) {
			out = append(out, q)
		}
	}
	return out
}
