package repository

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/gokatarajesh/trivia-api/internal/db/queries"
	"github.com/gokatarajesh/trivia-api/internal/trivia"
)

type questionStore interface {
	ListQuestions(ctx context.Context, arg queries.ListQuestionsParams) ([]queries.Question, error)
	GetQuestion(ctx context.Context, id int32) (queries.Question, error)
	InsertQuestion(ctx context.Context, arg queries.InsertQuestionParams) (queries.Question, error)
	DeleteQuestion(ctx context.Context, id int32) (int64, error)
}

// QuestionRepository maps question rows to trivia questions.
type QuestionRepository struct {
	store questionStore
}

var _ trivia.QuestionPersistence = (*QuestionRepository)(nil)

// NewQuestionRepository wraps the generated queries for question access.
func NewQuestionRepository(store questionStore) *QuestionRepository {
	return &QuestionRepository{store: store}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ListQuestions returns the questions matching f, ordered by id. The search term
// is matched literally; LIKE wildcards in it are escaped.
func (r *QuestionRepository) ListQuestions(ctx context.Context, f trivia.QuestionFilter) ([]trivia.Question, error) {
	var params queries.ListQuestionsParams
	if f.CategoryID != nil {
		key, ok := toKey(*f.CategoryID)
		if !ok {
			return []trivia.Question{}, nil
		}
		params.CategoryID = pgtype.Int4{Int32: key, Valid: true}
	}
	if f.Search != "" {
		params.Search = pgtype.Text{String: likeEscaper.Replace(f.Search), Valid: true}
	}
	params.ExcludeIDs = make([]int32, 0, len(f.ExcludeIDs))
	for _, id := range f.ExcludeIDs {
		if key, ok := toKey(id); ok {
			params.ExcludeIDs = append(params.ExcludeIDs, key)
		}
	}

	rows, err := r.store.ListQuestions(ctx, params)
	if err != nil {
		return nil, err
	}
	out := make([]trivia.Question, 0, len(rows))
	for _, row := range rows {
		out = append(out, toQuestion(row))
	}
	return out, nil
}

// GetQuestion fetches a question by id.
func (r *QuestionRepository) GetQuestion(ctx context.Context, id int) (trivia.Question, error) {
	key, ok := toKey(id)
	if !ok {
		return trivia.Question{}, fmt.Errorf("question %d: %w", id, trivia.ErrNotFound)
	}
	row, err := r.store.GetQuestion(ctx, key)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return trivia.Question{}, fmt.Errorf("question %d: %w", id, trivia.ErrNotFound)
		}
		return trivia.Question{}, err
	}
	return toQuestion(row), nil
}

// InsertQuestion stores a question; Postgres assigns the id. Values the
// columns cannot hold are unprocessable.
func (r *QuestionRepository) InsertQuestion(ctx context.Context, in trivia.NewQuestion) (trivia.Question, error) {
	category, okCategory := toInt4(in.Category)
	difficulty, okDifficulty := toInt4(in.Difficulty)
	if !okCategory || !okDifficulty {
		return trivia.Question{}, fmt.Errorf("insert question: value out of range: %w", trivia.ErrUnprocessable)
	}
	row, err := r.store.InsertQuestion(ctx, queries.InsertQuestionParams{
		Question:   in.Question,
		Answer:     in.Answer,
		Category:   category,
		Difficulty: difficulty,
	})
	if err != nil {
		if rejected(err) {
			return trivia.Question{}, fmt.Errorf("insert question: %v: %w", err, trivia.ErrUnprocessable)
		}
		return trivia.Question{}, err
	}
	return toQuestion(row), nil
}

// DeleteQuestion hard-deletes a question and reports whether a row was removed.
func (r *QuestionRepository) DeleteQuestion(ctx context.Context, id int) (bool, error) {
	key, ok := toKey(id)
	if !ok {
		return false, nil
	}
	affected, err := r.store.DeleteQuestion(ctx, key)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func toQuestion(row queries.Question) trivia.Question {
	return trivia.Question{
		ID:         int(row.ID),
		Question:   row.Question,
		Answer:     row.Answer,
		Category:   int(row.Category),
		Difficulty: int(row.Difficulty),
	}
}

// toKey converts an id to a serial key. Ids outside the column range cannot exist.
func toKey(id int) (int32, bool) {
	if id <= 0 || id > math.MaxInt32 {
		return 0, false
	}
	return int32(id), true
}

func toInt4(v int) (int32, bool) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, false
	}
	return int32(v), true
}

// rejected reports data exceptions and integrity violations (SQLSTATE classes 22 and 23).
func rejected(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return strings.HasPrefix(pgErr.Code, "22") || strings.HasPrefix(pgErr.Code, "23")
}
