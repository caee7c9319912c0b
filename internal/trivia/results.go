package trivia

// CategoriesResult answers GET /categories.
type CategoriesResult struct {
	Success         bool           `json:"success"`
	Categories      map[int]string `json:"categories"`
	TotalCategories int            `json:"total_categories"`
}

// CategoryResult answers GET /categories/{id}.
type CategoryResult struct {
	Success            bool       `json:"success"`
	Categorie          []Category `json:"categorie"`
	TotalCategoryFind  int        `json:"total_category_find"`
	CategorySearchByID string     `json:"category_search_by_id"`
}

// QuestionsResult is a page of questions. CurrentCategory is null unless the
// page was filtered by category.
type QuestionsResult struct {
	Success         bool           `json:"success"`
	Questions       []Question     `json:"questions"`
	TotalQuestions  int            `json:"total_questions"`
	Categories      map[int]string `json:"categories,omitempty"`
	CurrentCategory *string        `json:"current_category"`
}

// DeleteQuestionResult answers DELETE /questions/{id}.
type DeleteQuestionResult struct {
	Success        bool       `json:"success"`
	Deleted        int        `json:"deleted"`
	Questions      []Question `json:"questions"`
	TotalQuestions int        `json:"total_questions"`
}

// CreateQuestionResult answers POST /questions.
type CreateQuestionResult struct {
	Success        bool       `json:"success"`
	QuestionID     int        `json:"question_id"`
	Questions      []Question `json:"questions"`
	TotalQuestions int        `json:"total_questions"`
}

// CreateCategoryResult answers POST /categories; Categories echoes the request body.
type CreateCategoryResult struct {
	Success    bool           `json:"success"`
	TypeID     int            `json:"type_id"`
	Categories map[string]any `json:"categories"`
}

// QuizResult answers POST /quizzes. Question is null once the pool is exhausted.
type QuizResult struct {
	Success  bool      `json:"success"`
	Question *Question `json:"question"`
}
