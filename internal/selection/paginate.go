package selection

import "trivia/internal/domain"

// Paginate returns the page-th window of domain.QuestionsPerPage questions.
// A page past the end, an empty input or a page below 1 yields an empty slice.
func Paginate(questions []*domain.Question, page int) []*domain.Question {
	// bounding page first keeps the offset below len(questions) without overflow
	if page < 1 || page > PageCount(len(questions)) {
		return []*domain.Question{}
	}
	start := (page - 1) * domain.QuestionsPerPage
	end := min(start+domain.QuestionsPerPage, len(questions))

	out := make([]*domain.Question, end-start)
	copy(out, questions[start:end])
	return out
}

// PageCount returns how many pages a listing of total questions spans.
func PageCount(total int) int {
	if total <= 0 {
		return 0
	}
	return (total + domain.QuestionsPerPage - 1) / domain.QuestionsPerPage
}
