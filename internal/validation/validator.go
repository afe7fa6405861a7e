package validation

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"trivia/internal/domain"
	"trivia/internal/dto"

	"github.com/oklog/ulid/v2"
)

const (
	MaxQuestionLength   = 1000
	MaxAnswerLength     = 500
	MaxSearchTermLength = 200
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ParseID parses a path id. Non-integer input is an InvalidArgument error;
// range checks are left to the lookup, which reports absent ids as not found.
func (v *Validator) ParseID(field, raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, domain.NewInvalidArgumentError(field+" must be an integer").
			WithContext(field, raw)
	}
	return id, nil
}

// ParsePage reads a page query value. Missing, non-numeric or non-positive
// input falls back to the first page.
func (v *Validator) ParsePage(raw string) int {
	page, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 1
	}
	return domain.NewPageRequest(page).Page
}

// ValidateCreateQuestionRequest validates the add question request
func (v *Validator) ValidateCreateQuestionRequest(req *dto.CreateQuestionRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	q := domain.NewQuestion(req.Question, req.Answer, req.Difficulty, req.Category.Int64())
	if err := q.Validate(); err != nil {
		if verrs, ok := err.(domain.ValidationErrors); ok {
			errors = append(errors, verrs...)
		}
	}

	if n := utf8.RuneCountInString(q.Question); n > MaxQuestionLength {
		errors = append(errors, domain.NewOutOfRangeError("question", n, 1, MaxQuestionLength))
	}
	if n := utf8.RuneCountInString(q.Answer); n > MaxAnswerLength {
		errors = append(errors, domain.NewOutOfRangeError("answer", n, 1, MaxAnswerLength))
	}

	return errors
}

// ValidateSearchTerm rejects empty and oversized search terms
func (v *Validator) ValidateSearchTerm(term string) error {
	if term == "" {
		return domain.ErrEmptySearchTerm
	}
	if n := utf8.RuneCountInString(term); n > MaxSearchTermLength {
		return domain.NewInvalidArgumentError("search term is too long").
			WithContext("max_length", MaxSearchTermLength)
	}
	return nil
}

// ValidateQuizRequest validates the quiz request
func (v *Validator) ValidateQuizRequest(req *dto.QuizRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if req.QuizCategory == nil {
		errors = append(errors, domain.NewMissingFieldError("quiz_category"))
	} else if id, ok := req.QuizCategory.CategoryID(); !ok {
		errors = append(errors, domain.NewMissingFieldError("quiz_category.id"))
	} else if id < 0 {
		errors = append(errors, domain.NewInvalidFormatError("quiz_category.id", id))
	}

	// [] starts a quiz; an absent list is a malformed request
	if req.PreviousQuestions == nil {
		errors = append(errors, domain.NewMissingFieldError("previous_questions"))
	}
	for _, id := range req.PreviousQuestions {
		if id < 1 {
			errors = append(errors, domain.NewInvalidFormatError("previous_questions", id))
			break
		}
	}

	if req.SessionID != "" && !isValidULID(req.SessionID) {
		errors = append(errors, domain.NewInvalidFormatError("session_id", req.SessionID))
	}

	return errors
}

// isValidULID checks if the string is a valid ULID
func isValidULID(s string) bool {
	_, err := ulid.ParseStrict(s)
	return err == nil
}
