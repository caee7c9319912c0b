package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gokatarajesh/trivia-api/internal/trivia"
)

func TestStore_SeedKeepsIDsAndAdvancesCounters(t *testing.T) {
	s := New()
	s.Seed(SeedCategories(), SeedQuestions())
	ctx := context.Background()

	c, err := s.InsertCategory(ctx, "Culture")
	require.NoError(t, err)
	assert.Equal(t, 7, c.ID)

	q, err := s.InsertQuestion(ctx, trivia.NewQuestion{Question: "Q"})
	require.NoError(t, err)
	assert.Equal(t, 24, q.ID)

	got, err := s.GetQuestion(ctx, 23)
	require.NoError(t, err)
	assert.Equal(t, "Scarab", got.Answer)
}

func TestStore_IDsAreNotReused(t *testing.T) {
	s := New()
	ctx := context.Background()

	first, err := s.InsertQuestion(ctx, trivia.NewQuestion{Question: "one"})
	require.NoError(t, err)
	deleted, err := s.DeleteQuestion(ctx, first.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	second, err := s.InsertQuestion(ctx, trivia.NewQuestion{Question: "two"})
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)
}

func TestStore_GetMissing(t *testing.T) {
	s := New()
	ctx := context.Background()

	_, err := s.GetCategory(ctx, 1)
	assert.ErrorIs(t, err, trivia.ErrNotFound)
	_, err = s.GetQuestion(ctx, 1)
	assert.ErrorIs(t, err, trivia.ErrNotFound)

	deleted, err := s.DeleteQuestion(ctx, 1)
	assert.NoError(t, err)
	assert.False(t, deleted)
}

func TestStore_ListQuestionsFilters(t *testing.T) {
	s := New()
	s.Seed(SeedCategories(), SeedQuestions())
	ctx := context.Background()
	art := 2

	all, err := s.ListQuestions(ctx, trivia.QuestionFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 19)
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].ID, all[i].ID)
	}

	byCategory, err := s.ListQuestions(ctx, trivia.QuestionFilter{CategoryID: &art, ExcludeIDs: []int{16, 99}})
	require.NoError(t, err)
	var got []int
	for _, q := range byCategory {
		got = append(got, q.ID)
	}
	assert.Equal(t, []int{17, 18, 19}, got)

	search, err := s.ListQuestions(ctx, trivia.QuestionFilter{Search: "SOCCER world cup"})
	require.NoError(t, err)
	require.Len(t, search, 2)
	assert.Equal(t, 10, search[0].ID)
	assert.Equal(t, 11, search[1].ID)
}

func TestStore_ListCategoriesSorted(t *testing.T) {
	s := New()
	s.Seed([]trivia.Category{{ID: 5, Type: "E"}, {ID: 2, Type: "B"}, {ID: 9, Type: "I"}}, nil)

	got, err := s.ListCategories(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []trivia.Category{{ID: 2, Type: "B"}, {ID: 5, Type: "E"}, {ID: 9, Type: "I"}}, got)
}

func TestStore_ConcurrentInsertsGetUniqueIDs(t *testing.T) {
	s := New()
	ctx := context.Background()

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		seen = map[int]bool{}
	)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			q, err := s.InsertQuestion(ctx, trivia.NewQuestion{Question: "q"})
			assert.NoError(t, err)
			mu.Lock()
			defer mu.Unlock()
			assert.False(t, seen[q.ID], "duplicate id %d", q.ID)
			seen[q.ID] = true
		}()
	}
	wg.Wait()
	assert.Len(t, seen, 32)
}

func TestSeedQuestionsReferenceSeedCategories(t *testing.T) {
	known := trivia.TypeMap(SeedCategories())
	for _, q := range SeedQuestions() {
		_, ok := known[q.Category]
		assert.True(t, ok, "question %d references unknown category %d", q.ID, q.Category)
	}
}
