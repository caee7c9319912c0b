package trivia_test

import (
	"context"
	"io"
	"math/rand"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gokatarajesh/trivia-api/internal/db/memory"
	"github.com/gokatarajesh/trivia-api/internal/trivia"
)

func testLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func seededStore(t *testing.T, categories []trivia.Category, questions []trivia.Question) *memory.Store {
	t.Helper()
	store := memory.New()
	store.Seed(categories, questions)
	return store
}

func newService(t *testing.T, store *memory.Store) *trivia.Service {
	t.Helper()
	return trivia.NewService(store, store, trivia.ServiceOptions{
		Rand: rand.New(rand.NewSource(7)),
	}, testLogger())
}

func seededService(t *testing.T) (*trivia.Service, *memory.Store) {
	t.Helper()
	store := seededStore(t, memory.SeedCategories(), memory.SeedQuestions())
	return newService(t, store), store
}

func generatedQuestions(n int, category int) []trivia.Question {
	out := make([]trivia.Question, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, trivia.Question{
			ID:         i,
			Question:   "Question number " + string(rune('A'+(i-1)%26)),
			Answer:     "answer",
			Category:   category,
			Difficulty: 1 + i%5,
		})
	}
	return out
}

func ids(questions []trivia.Question) []int {
	out := make([]int, 0, len(questions))
	for _, q := range questions {
		out = append(out, q.ID)
	}
	return out
}

func intPtr(v int) *int { return &v }

// mockCategories and mockQuestions stand in for a failing or scripted backend.
type mockCategories struct {
	mock.Mock
}

func (m *mockCategories) ListCategories(ctx context.Context) ([]trivia.Category, error) {
	args := m.Called(ctx)
	categories, _ := args.Get(0).([]trivia.Category)
	return categories, args.Error(1)
}

func (m *mockCategories) GetCategory(ctx context.Context, id int) (trivia.Category, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(trivia.Category), args.Error(1)
}

func (m *mockCategories) InsertCategory(ctx context.Context, typ string) (trivia.Category, error) {
	args := m.Called(ctx, typ)
	return args.Get(0).(trivia.Category), args.Error(1)
}

type mockQuestions struct {
	mock.Mock
}

func (m *mockQuestions) ListQuestions(ctx context.Context, f trivia.QuestionFilter) ([]trivia.Question, error) {
	args := m.Called(ctx, f)
	questions, _ := args.Get(0).([]trivia.Question)
	return questions, args.Error(1)
}

func (m *mockQuestions) GetQuestion(ctx context.Context, id int) (trivia.Question, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(trivia.Question), args.Error(1)
}

func (m *mockQuestions) InsertQuestion(ctx context.Context, in trivia.NewQuestion) (trivia.Question, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(trivia.Question), args.Error(1)
}

func (m *mockQuestions) DeleteQuestion(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func requireClass(t *testing.T, want error, err error) {
	t.Helper()
	require.Error(t, err)
	require.ErrorIs(t, trivia.Classify(err), want, "got %v", err)
}
