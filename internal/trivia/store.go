package trivia

import "context"

// CategoryPersistence is the category storage backend.
// GetCategory returns an error wrapping ErrNotFound when the id is unknown.
type CategoryPersistence interface {
	ListCategories(ctx context.Context) ([]Category, error)
	GetCategory(ctx context.Context, id int) (Category, error)
	InsertCategory(ctx context.Context, typ string) (Category, error)
}

// QuestionPersistence is the question storage backend.
// GetQuestion returns an error wrapping ErrNotFound when the id is unknown;
// DeleteQuestion reports false when no row was removed.
type QuestionPersistence interface {
	ListQuestions(ctx context.Context, filter QuestionFilter) ([]Question, error)
	GetQuestion(ctx context.Context, id int) (Question, error)
	InsertQuestion(ctx context.Context, q NewQuestion) (Question, error)
	DeleteQuestion(ctx context.Context, id int) (bool, error)
}
