package trivia

// AllCategories is the quiz category id that disables category filtering.
const AllCategories = 0

// Page sizes used by the listing endpoints.
const (
	QuestionsPerPage  = 10
	CategoriesPerPage = 10
)

// Category is a labeled grouping for questions.
type Category struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

// Question is a quiz item. Category references a Category id and may dangle.
type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// NewQuestion carries the fields accepted on question creation.
type NewQuestion struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// empty reports whether every field is unset.
func (n NewQuestion) empty() bool {
	return n.Question == "" && n.Answer == "" && n.Category == 0 && n.Difficulty == 0
}

// QuestionFilter narrows a question listing. Zero value lists everything.
type QuestionFilter struct {
	CategoryID *int
	Search     string
	ExcludeIDs []int
}

// QuizCategory is the category selector sent by quiz clients.
type QuizCategory struct {
	ID   int    `json:"id"`
	Type string `json:"type,omitempty"`
}

// QuizRequest asks for the next unseen question of a quiz session.
type QuizRequest struct {
	Category          *QuizCategory `json:"quiz_category" validate:"required"`
	PreviousQuestions []int         `json:"previous_questions" validate:"required"`
}
