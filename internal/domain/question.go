package domain

import (
	"strings"
)

// QuestionsPerPage is the fixed page size for question listings
const QuestionsPerPage = 10

// AllCategories is the quiz category sentinel meaning "draw from every category"
const AllCategories int64 = 0

const (
	MinDifficulty = 1
	MaxDifficulty = 5
)

// Category represents a question category
type Category struct {
	ID   int64
	Type string
}

// Question represents a trivia question in the domain
type Question struct {
	ID         int64
	Question   string
	Answer     string
	Difficulty int   // 1 (easiest) .. 5
	CategoryID int64 // references Category.ID
}

// NewQuestion creates a new Question instance. The ID is assigned by the store.
func NewQuestion(question, answer string, difficulty int, categoryID int64) *Question {
	return &Question{
		Question:   strings.TrimSpace(question),
		Answer:     strings.TrimSpace(answer),
		Difficulty: difficulty,
		CategoryID: categoryID,
	}
}

// Validate validates the question
func (q *Question) Validate() error {
	var errs ValidationErrors
	if strings.TrimSpace(q.Question) == "" {
		errs = append(errs, NewMissingFieldError("question"))
	}
	if strings.TrimSpace(q.Answer) == "" {
		errs = append(errs, NewMissingFieldError("answer"))
	}
	if q.Difficulty < MinDifficulty || q.Difficulty > MaxDifficulty {
		errs = append(errs, NewOutOfRangeError("difficulty", q.Difficulty, MinDifficulty, MaxDifficulty))
	}
	if q.CategoryID < 1 {
		errs = append(errs, NewMissingFieldError("category"))
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PageRequest is a 1-based page number over a question listing
type PageRequest struct {
	Page int
}

// NewPageRequest normalizes an absent or non-positive page to the first page.
func NewPageRequest(page int) PageRequest {
	if page < 1 {
		page = 1
	}
	return PageRequest{Page: page}
}

// QuizState is the client-held state of one quiz session
type QuizState struct {
	CategoryID int64   // AllCategories for every category
	Previous   []int64 // ids already served in this session
}

// Served returns the previously served ids as a membership set.
func (s QuizState) Served() map[int64]struct{} {
	served := make(map[int64]struct{}, len(s.Previous))
	for _, id := range s.Previous {
		served[id] = struct{}{}
	}
	return served
}

// IsAllCategories reports whether the quiz draws from every category.
func (s QuizState) IsAllCategories() bool {
	return s.CategoryID == AllCategories
}
