package trivia

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// Selector picks the next unseen quiz question.
type Selector struct {
	db QuestionPersistence

	mu  sync.Mutex
	rng *rand.Rand
}

// NewSelector builds a selector. A nil rng is seeded from the clock.
func NewSelector(db QuestionPersistence, rng *rand.Rand) *Selector {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Selector{db: db, rng: rng}
}

// Next returns a uniformly random question that is not in req.PreviousQuestions,
// restricted to req.Category unless it is AllCategories. A nil question with a
// nil error means the pool is exhausted.
func (s *Selector) Next(ctx context.Context, req QuizRequest) (*Question, error) {
	if req.Category == nil {
		return nil, fmt.Errorf("next question: quiz_category is required: %w", ErrValidation)
	}
	if req.PreviousQuestions == nil {
		return nil, fmt.Errorf("next question: previous_questions is required: %w", ErrValidation)
	}

	f := QuestionFilter{ExcludeIDs: req.PreviousQuestions}
	if req.Category.ID != AllCategories {
		id := req.Category.ID
		f.CategoryID = &id
	}

	candidates, err := s.db.ListQuestions(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("next question: %w", err)
	}

	seen := make(map[int]struct{}, len(req.PreviousQuestions))
	for _, id := range req.PreviousQuestions {
		seen[id] = struct{}{}
	}
	pool := filter(candidates, func(q Question) bool {
		if _, ok := seen[q.ID]; ok {
			return false
		}
		return f.CategoryID == nil || q.Category == *f.CategoryID
	})
	if len(pool) == 0 {
		return nil, nil
	}

	// Sorting keeps a seeded rng reproducible whatever order the backend returns.
	sortByID(pool)
	picked := pool[s.intn(len(pool))]
	return &picked, nil
}

func (s *Selector) intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}
