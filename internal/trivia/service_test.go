package trivia_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gokatarajesh/trivia-api/internal/trivia"
)

func scienceFixture(t *testing.T) *trivia.Service {
	t.Helper()
	store := seededStore(t,
		[]trivia.Category{{ID: 1, Type: "Science"}},
		[]trivia.Question{{ID: 1, Question: "What is H2O?", Answer: "Water", Category: 1, Difficulty: 1}},
	)
	return newService(t, store)
}

func TestService_QuestionsByCategory(t *testing.T) {
	svc := scienceFixture(t)
	ctx := context.Background()

	res, err := svc.QuestionsByCategory(ctx, 1, 1)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, []trivia.Question{{ID: 1, Question: "What is H2O?", Answer: "Water", Category: 1, Difficulty: 1}}, res.Questions)
	assert.Equal(t, 1, res.TotalQuestions)
	require.NotNil(t, res.CurrentCategory)
	assert.Equal(t, "Science", *res.CurrentCategory)

	_, err = svc.QuestionsByCategory(ctx, 2, 1)
	requireClass(t, trivia.ErrNotFound, err)
}

func TestService_SearchWithoutMatchesSucceeds(t *testing.T) {
	svc, _ := seededService(t)

	res, err := svc.SearchQuestions(context.Background(), "zzzznotfound", 1)

	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Empty(t, res.Questions)
	assert.Zero(t, res.TotalQuestions)
	assert.Nil(t, res.CurrentCategory)
}

func TestService_SearchEmptyTermNotFound(t *testing.T) {
	svc, _ := seededService(t)

	_, err := svc.SearchQuestions(context.Background(), "", 1)

	requireClass(t, trivia.ErrNotFound, err)
}

func TestService_SearchPagesMatches(t *testing.T) {
	svc := newService(t, seededStore(t, nil, generatedQuestions(23, 1)))
	ctx := context.Background()

	first, err := svc.SearchQuestions(ctx, "question NUMBER", 1)
	require.NoError(t, err)
	assert.Len(t, first.Questions, 10)
	assert.Equal(t, 23, first.TotalQuestions)

	third, err := svc.SearchQuestions(ctx, "question number", 3)
	require.NoError(t, err)
	assert.Equal(t, []int{21, 22, 23}, ids(third.Questions))
	assert.Equal(t, 23, third.TotalQuestions)
}

func TestService_CreateCategory(t *testing.T) {
	svc := scienceFixture(t)
	ctx := context.Background()

	_, err := svc.CreateCategory(ctx, "", map[string]any{"type": ""})
	requireClass(t, trivia.ErrValidation, err)

	payload := map[string]any{"type": "Culture"}
	res, err := svc.CreateCategory(ctx, "Culture", payload)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, 2, res.TypeID)
	assert.Equal(t, payload, res.Categories)

	got, err := svc.GetCategory(ctx, res.TypeID, 1)
	require.NoError(t, err)
	assert.Equal(t, "Culture", got.CategorySearchByID)
	assert.Equal(t, []trivia.Category{{ID: 2, Type: "Culture"}}, got.Categorie)
	assert.Equal(t, 1, got.TotalCategoryFind)
}

func TestService_GetCategoryMissing(t *testing.T) {
	svc, _ := seededService(t)

	_, err := svc.GetCategory(context.Background(), 1000, 1)

	requireClass(t, trivia.ErrNotFound, err)
}

func TestService_ListCategories(t *testing.T) {
	svc, _ := seededService(t)
	ctx := context.Background()

	res, err := svc.ListCategories(ctx, 1)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, 6, res.TotalCategories)
	assert.Equal(t, "Science", res.Categories[1])
	assert.Equal(t, "Sports", res.Categories[6])

	_, err = svc.ListCategories(ctx, 2)
	requireClass(t, trivia.ErrNotFound, err)

	empty := newService(t, seededStore(t, nil, nil))
	_, err = empty.ListCategories(ctx, 1)
	requireClass(t, trivia.ErrNotFound, err)
}

func TestService_ListQuestions(t *testing.T) {
	svc, _ := seededService(t)
	ctx := context.Background()

	first, err := svc.ListQuestions(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, first.Questions, 10)
	assert.Equal(t, 19, first.TotalQuestions)
	assert.Len(t, first.Categories, 6)
	assert.Nil(t, first.CurrentCategory)
	assert.Equal(t, 2, first.Questions[0].ID)

	second, err := svc.ListQuestions(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, second.Questions, 9)
	assert.Equal(t, 19, second.TotalQuestions)

	_, err = svc.ListQuestions(ctx, 3)
	requireClass(t, trivia.ErrNotFound, err)
}

func TestService_ListQuestionsWithDanglingCategory(t *testing.T) {
	store := seededStore(t,
		[]trivia.Category{{ID: 1, Type: "Science"}},
		[]trivia.Question{
			{ID: 1, Question: "Q1", Answer: "A1", Category: 1, Difficulty: 1},
			{ID: 2, Question: "Q2", Answer: "A2", Category: 99, Difficulty: 2},
		})
	svc := newService(t, store)

	res, err := svc.ListQuestions(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, ids(res.Questions))
	assert.Equal(t, 2, res.TotalQuestions)
	assert.Equal(t, map[int]string{1: "Science"}, res.Categories)
	assert.NotContains(t, res.Categories, 99)
}

func TestService_ListQuestionsCustomPageSize(t *testing.T) {
	store := seededStore(t, nil, generatedQuestions(7, 1))
	svc := trivia.NewService(store, store, trivia.ServiceOptions{PageSize: 3}, testLogger())

	res, err := svc.ListQuestions(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, []int{7}, ids(res.Questions))
	assert.Equal(t, 7, res.TotalQuestions)
}

func TestService_DeleteQuestionTwice(t *testing.T) {
	svc, _ := seededService(t)
	ctx := context.Background()

	res, err := svc.DeleteQuestion(ctx, 5, 1)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, 5, res.Deleted)
	assert.Equal(t, 18, res.TotalQuestions)
	assert.Len(t, res.Questions, 10)
	assert.NotContains(t, ids(res.Questions), 5)

	_, err = svc.DeleteQuestion(ctx, 5, 1)
	requireClass(t, trivia.ErrUnprocessable, err)
}

func TestService_CreateQuestion(t *testing.T) {
	svc, _ := seededService(t)
	ctx := context.Background()

	res, err := svc.CreateQuestion(ctx, trivia.NewQuestion{
		Question:   "What is the boiling point of water at sea level in Celsius?",
		Answer:     "100",
		Category:   1,
		Difficulty: 1,
	}, 2)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, 24, res.QuestionID)
	assert.Equal(t, 20, res.TotalQuestions)
	assert.Contains(t, ids(res.Questions), 24)

	_, err = svc.CreateQuestion(ctx, trivia.NewQuestion{}, 1)
	requireClass(t, trivia.ErrValidation, err)

	search, err := svc.SearchQuestions(ctx, "boiling", 1)
	require.NoError(t, err)
	assert.Equal(t, []int{24}, ids(search.Questions))
}

func TestService_NextQuizQuestion(t *testing.T) {
	svc, _ := seededService(t)
	ctx := context.Background()

	res, err := svc.NextQuizQuestion(ctx, trivia.QuizRequest{
		Category:          &trivia.QuizCategory{ID: 1, Type: "Science"},
		PreviousQuestions: []int{20, 21},
	})
	require.NoError(t, err)
	assert.True(t, res.Success)
	require.NotNil(t, res.Question)
	assert.Equal(t, 22, res.Question.ID)

	done, err := svc.NextQuizQuestion(ctx, trivia.QuizRequest{
		Category:          &trivia.QuizCategory{ID: 1},
		PreviousQuestions: []int{20, 21, 22},
	})
	require.NoError(t, err)
	assert.True(t, done.Success)
	assert.Nil(t, done.Question)

	_, err = svc.NextQuizQuestion(ctx, trivia.QuizRequest{Category: &trivia.QuizCategory{ID: 1}})
	requireClass(t, trivia.ErrValidation, err)
}

func TestService_PersistenceFailuresAreInternal(t *testing.T) {
	categories := new(mockCategories)
	questions := new(mockQuestions)
	boom := errors.New("relation \"questions\" does not exist")
	categories.On("ListCategories", mock.Anything).Return(nil, boom)
	categories.On("GetCategory", mock.Anything, 1).Return(trivia.Category{}, boom)
	questions.On("ListQuestions", mock.Anything, mock.Anything).Return(nil, boom)
	questions.On("DeleteQuestion", mock.Anything, 3).Return(false, boom)
	questions.On("InsertQuestion", mock.Anything, mock.Anything).Return(trivia.Question{}, boom)
	svc := trivia.NewService(categories, questions, trivia.ServiceOptions{}, testLogger())
	ctx := context.Background()

	_, err := svc.ListCategories(ctx, 1)
	requireClass(t, trivia.ErrInternal, err)
	_, err = svc.GetCategory(ctx, 1, 1)
	requireClass(t, trivia.ErrInternal, err)
	_, err = svc.ListQuestions(ctx, 1)
	requireClass(t, trivia.ErrInternal, err)
	_, err = svc.DeleteQuestion(ctx, 3, 1)
	requireClass(t, trivia.ErrInternal, err)
	_, err = svc.CreateQuestion(ctx, trivia.NewQuestion{Question: "q"}, 1)
	requireClass(t, trivia.ErrInternal, err)
	_, err = svc.SearchQuestions(ctx, "q", 1)
	requireClass(t, trivia.ErrInternal, err)
	_, err = svc.NextQuizQuestion(ctx, trivia.QuizRequest{
		Category:          &trivia.QuizCategory{ID: 0},
		PreviousQuestions: []int{},
	})
	requireClass(t, trivia.ErrInternal, err)
}

func TestService_StoreRejectionIsUnprocessable(t *testing.T) {
	categories := new(mockCategories)
	questions := new(mockQuestions)
	questions.On("InsertQuestion", mock.Anything, mock.Anything).
		Return(trivia.Question{}, errors.Join(trivia.ErrUnprocessable, errors.New("value out of range")))
	svc := trivia.NewService(categories, questions, trivia.ServiceOptions{}, testLogger())

	_, err := svc.CreateQuestion(context.Background(), trivia.NewQuestion{Difficulty: 1 << 40}, 1)

	requireClass(t, trivia.ErrUnprocessable, err)
	questions.AssertExpectations(t)
}
