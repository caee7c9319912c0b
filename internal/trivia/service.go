package trivia

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"
)

// Service composes category and question access into the API operations.
type Service struct {
	categories *CategoryStore
	questions  *QuestionStore
	selector   *Selector
	pageSize   int
	logger     zerolog.Logger
}

// ServiceOptions tunes paging and quiz randomness.
type ServiceOptions struct {
	PageSize int
	Rand     *rand.Rand
}

// NewService wires the stores and the quiz selector over the given backends.
func NewService(categories CategoryPersistence, questions QuestionPersistence, opts ServiceOptions, logger zerolog.Logger) *Service {
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = QuestionsPerPage
	}
	return &Service{
		categories: NewCategoryStore(categories),
		questions:  NewQuestionStore(questions),
		selector:   NewSelector(questions, opts.Rand),
		pageSize:   pageSize,
		logger:     logger.With().Str("component", "trivia").Logger(),
	}
}

// ListCategories returns the id->type map of all categories. A page past the
// end of the category list is not found.
func (s *Service) ListCategories(ctx context.Context, page int) (CategoriesResult, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return CategoriesResult{}, err
	}
	if len(Paginate(categories, page, CategoriesPerPage)) == 0 {
		return CategoriesResult{}, fmt.Errorf("list categories page %d: %w", page, ErrNotFound)
	}
	return CategoriesResult{
		Success:         true,
		Categories:      TypeMap(categories),
		TotalCategories: len(categories),
	}, nil
}

// GetCategory returns a single category.
func (s *Service) GetCategory(ctx context.Context, id, page int) (CategoryResult, error) {
	category, err := s.categories.Get(ctx, id)
	if err != nil {
		return CategoryResult{}, err
	}
	current := Paginate([]Category{category}, page, CategoriesPerPage)
	return CategoryResult{
		Success:            true,
		Categorie:          current,
		TotalCategoryFind:  len(current),
		CategorySearchByID: category.Type,
	}, nil
}

// CreateCategory persists a category and echoes the submitted payload.
func (s *Service) CreateCategory(ctx context.Context, typ string, payload map[string]any) (CreateCategoryResult, error) {
	category, err := s.categories.Create(ctx, typ)
	if err != nil {
		return CreateCategoryResult{}, err
	}
	s.logger.Info().Int("category_id", category.ID).Str("type", category.Type).Msg("category created")
	return CreateCategoryResult{
		Success:    true,
		TypeID:     category.ID,
		Categories: payload,
	}, nil
}

// ListQuestions returns a page of all questions with the category map.
func (s *Service) ListQuestions(ctx context.Context, page int) (QuestionsResult, error) {
	questions, err := s.questions.List(ctx)
	if err != nil {
		return QuestionsResult{}, err
	}
	current := Paginate(questions, page, s.pageSize)
	if len(current) == 0 {
		return QuestionsResult{}, fmt.Errorf("list questions page %d: %w", page, ErrNotFound)
	}
	categories, err := s.categories.List(ctx)
	if err != nil {
		return QuestionsResult{}, err
	}
	return QuestionsResult{
		Success:        true,
		Questions:      current,
		TotalQuestions: len(questions),
		Categories:     TypeMap(categories),
	}, nil
}

// DeleteQuestion removes a question and returns the refreshed page.
// Deleting an unknown id is unprocessable.
func (s *Service) DeleteQuestion(ctx context.Context, id, page int) (DeleteQuestionResult, error) {
	if err := s.questions.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return DeleteQuestionResult{}, fmt.Errorf("delete question %d: no such question: %w", id, ErrUnprocessable)
		}
		return DeleteQuestionResult{}, err
	}
	questionMutations.WithLabelValues("delete").Inc()
	s.logger.Info().Int("question_id", id).Msg("question deleted")

	remaining, err := s.questions.List(ctx)
	if err != nil {
		return DeleteQuestionResult{}, err
	}
	return DeleteQuestionResult{
		Success:        true,
		Deleted:        id,
		Questions:      Paginate(remaining, page, s.pageSize),
		TotalQuestions: len(remaining),
	}, nil
}

// CreateQuestion persists a question and returns the refreshed page.
func (s *Service) CreateQuestion(ctx context.Context, in NewQuestion, page int) (CreateQuestionResult, error) {
	created, err := s.questions.Create(ctx, in)
	if err != nil {
		return CreateQuestionResult{}, err
	}
	questionMutations.WithLabelValues("create").Inc()
	s.logger.Info().Int("question_id", created.ID).Int("category", created.Category).Msg("question created")

	all, err := s.questions.List(ctx)
	if err != nil {
		return CreateQuestionResult{}, err
	}
	return CreateQuestionResult{
		Success:        true,
		QuestionID:     created.ID,
		Questions:      Paginate(all, page, s.pageSize),
		TotalQuestions: len(all),
	}, nil
}

// SearchQuestions pages through questions containing term. No matches is a
// successful, empty result; an empty term is not found.
func (s *Service) SearchQuestions(ctx context.Context, term string, page int) (QuestionsResult, error) {
	if term == "" {
		return QuestionsResult{}, fmt.Errorf("search questions: empty search term: %w", ErrNotFound)
	}
	matches, err := s.questions.Search(ctx, term)
	if err != nil {
		return QuestionsResult{}, err
	}
	return QuestionsResult{
		Success:        true,
		Questions:      Paginate(matches, page, s.pageSize),
		TotalQuestions: len(matches),
	}, nil
}

// QuestionsByCategory pages through the questions of an existing category.
func (s *Service) QuestionsByCategory(ctx context.Context, categoryID, page int) (QuestionsResult, error) {
	category, err := s.categories.Get(ctx, categoryID)
	if err != nil {
		return QuestionsResult{}, err
	}
	matches, err := s.questions.ByCategory(ctx, categoryID)
	if err != nil {
		return QuestionsResult{}, err
	}
	current := category.Type
	return QuestionsResult{
		Success:         true,
		Questions:       Paginate(matches, page, s.pageSize),
		TotalQuestions:  len(matches),
		CurrentCategory: &current,
	}, nil
}

// NextQuizQuestion serves the next unseen question, or a null question once the
// pool is exhausted.
func (s *Service) NextQuizQuestion(ctx context.Context, req QuizRequest) (QuizResult, error) {
	q, err := s.selector.Next(ctx, req)
	if err != nil {
		return QuizResult{}, err
	}
	if q == nil {
		quizOutcomes.WithLabelValues(quizOutcomeExhausted).Inc()
		s.logger.Debug().
			Int("category", req.Category.ID).
			Int("previous", len(req.PreviousQuestions)).
			Msg("quiz pool exhausted")
	} else {
		quizOutcomes.WithLabelValues(quizOutcomeServed).Inc()
	}
	return QuizResult{Success: true, Question: q}, nil
}
