package dto

import (
	"trivia/internal/domain"
)

// CategoryResponse represents a category in the API response
// @Description Category information
type CategoryResponse struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

// CategoriesResponse is the body of GET /categories
type CategoriesResponse struct {
	Success    bool               `json:"success"`
	Categories []CategoryResponse `json:"categories"`
}

// CategoryDetailResponse is the body of GET /categories/{id}
type CategoryDetailResponse struct {
	Success  bool             `json:"success"`
	Category CategoryResponse `json:"category"`
}

// QuestionResponse represents a question in the API response
// @Description Question information
type QuestionResponse struct {
	ID         int64  `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty int    `json:"difficulty"`
	Category   int64  `json:"category"`
}

// QuestionListResponse is a page of questions.
// CurrentCategory is null for listings that are not scoped to one category.
type QuestionListResponse struct {
	Success         bool               `json:"success"`
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int                `json:"total_questions"`
	Page            int                `json:"page,omitempty"`
	TotalPages      int                `json:"total_pages,omitempty"`
	Categories      []CategoryResponse `json:"categories,omitempty"`
	CurrentCategory *string            `json:"current_category"`
}

// QuestionDetailResponse is the body of GET /questions/{id}
type QuestionDetailResponse struct {
	Success  bool             `json:"success"`
	Question QuestionResponse `json:"question"`
}

// CreateQuestionRequest represents the body of POST /questions
// @Description Request body for adding a question
type CreateQuestionRequest struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty int    `json:"difficulty"`
	Category   FlexID `json:"category"`
}

// CreateQuestionResponse echoes the stored question
type CreateQuestionResponse struct {
	Success    bool   `json:"success"`
	QuestionID int64  `json:"question_id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty int    `json:"difficulty"`
	Category   int64  `json:"category"`
}

// DeleteQuestionResponse is the body of DELETE /questions/{id}
type DeleteQuestionResponse struct {
	Success bool  `json:"success"`
	Deleted int64 `json:"deleted"`
}

// SearchRequest represents the body of POST /questions/search.
// search_query is accepted as an alias of search_term.
// @Description Request body for searching questions
type SearchRequest struct {
	SearchTerm  string `json:"search_term"`
	SearchQuery string `json:"search_query,omitempty"`
}

// Term returns whichever of the two aliases was supplied.
func (r SearchRequest) Term() string {
	if r.SearchTerm != "" {
		return r.SearchTerm
	}
	return r.SearchQuery
}

// QuizCategory identifies the quiz scope; id 0 means every category.
// ID is nil when the client omitted it or sent null.
type QuizCategory struct {
	ID   *FlexID `json:"id" validate:"required"`
	Type string  `json:"type,omitempty"`
}

// CategoryID returns the requested category and whether one was sent.
func (q *QuizCategory) CategoryID() (int64, bool) {
	if q == nil || q.ID == nil {
		return 0, false
	}
	return q.ID.Int64(), true
}

// QuizRequest represents the body of POST /quizzes. PreviousQuestions is nil
// when the field was omitted or null, and an empty slice for [].
// @Description Request body for drawing the next quiz question
type QuizRequest struct {
	PreviousQuestions []int64       `json:"previous_questions" validate:"required"`
	QuizCategory      *QuizCategory `json:"quiz_category" validate:"required"`
	SessionID         string        `json:"session_id,omitempty"`
	StartSession      bool          `json:"start_session,omitempty"`
}

// QuizResponse carries the next question, or null once the quiz is exhausted
type QuizResponse struct {
	Success   bool              `json:"success"`
	Question  *QuestionResponse `json:"question"`
	Exhausted bool              `json:"exhausted"`
	SessionID string            `json:"session_id,omitempty"`
}

// HealthResponse is the body of GET /healthz
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Type: c.Type}
}

func ToCategoryResponses(categories []*domain.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, ToCategoryResponse(c))
	}
	return out
}

func ToQuestionResponse(q *domain.Question) QuestionResponse {
	return QuestionResponse{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Difficulty: q.Difficulty,
		Category:   q.CategoryID,
	}
}

func ToQuestionResponses(questions []*domain.Question) []QuestionResponse {
	out := make([]QuestionResponse, 0, len(questions))
	for _, q := range questions {
		out = append(out, ToQuestionResponse(q))
	}
	return out
}
