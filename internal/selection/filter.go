package selection

import (
	"strings"

	"trivia/internal/domain"
)

// Predicate reports whether a question survives a filter
type Predicate func(q *domain.Question) bool

// Filter keeps the questions matching every predicate, preserving order.
func Filter(questions []*domain.Question, preds ...Predicate) []*domain.Question {
	out := make([]*domain.Question, 0, len(questions))
next:
	for _, q := range questions {
		if q == nil {
			continue
		}
		for _, p := range preds {
			if !p(q) {
				continue next
			}
		}
		out = append(out, q)
	}
	return out
}

// InCategory matches questions of one category.
func InCategory(categoryID int64) Predicate {
	return func(q *domain.Question) bool {
		return q.CategoryID == categoryID
	}
}

// ContainsText matches questions whose text contains term, ignoring case.
func ContainsText(term string) Predicate {
	needle := strings.ToLower(term)
	return func(q *domain.Question) bool {
		return strings.Contains(strings.ToLower(q.Question), needle)
	}
}

// NotIn matches questions whose id is absent from excluded.
func NotIn(excluded map[int64]struct{}) Predicate {
	return func(q *domain.Question) bool {
		_, seen := excluded[q.ID]
		return !seen
	}
}

// FilterByCategory keeps the questions of one category. An unknown category
// simply matches nothing.
func FilterByCategory(questions []*domain.Question, categoryID int64) []*domain.Question {
	return Filter(questions, InCategory(categoryID))
}

// FilterBySearch keeps the questions whose text contains term
// case-insensitively. An empty term is rejected instead of matching
// everything; whitespace is matched literally like any other text.
func FilterBySearch(questions []*domain.Question, term string) ([]*domain.Question, error) {
	if term == "" {
		return nil, domain.ErrEmptySearchTerm
	}
	return Filter(questions, ContainsText(term)), nil
}

// FilterForQuiz keeps the questions of categoryID (every category for
// domain.AllCategories) that are not in excluded.
func FilterForQuiz(questions []*domain.Question, categoryID int64, excluded []int64) []*domain.Question {
	state := domain.QuizState{CategoryID: categoryID, Previous: excluded}
	preds := []Predicate{NotIn(state.Served())}
	if !state.IsAllCategories() {
		preds = append(preds, InCategory(categoryID))
	}
	return Filter(questions, preds...)
}
