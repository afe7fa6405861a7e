package selection

import (
	"math/rand/v2"

	"trivia/internal/domain"
)

// SampleOne picks one question uniformly at random. It returns false when
// remaining is empty, which marks the end of a quiz rather than an error.
func SampleOne(remaining []*domain.Question) (*domain.Question, bool) {
	return sampleWith(remaining, rand.IntN)
}

func sampleWith(remaining []*domain.Question, intN func(n int) int) (*domain.Question, bool) {
	if len(remaining) == 0 {
		return nil, false
	}
	return remaining[intN(len(remaining))], true
}

// NextQuizQuestion draws the next question of a quiz session. The caller adds
// the returned id to state.Previous before asking again.
func NextQuizQuestion(questions []*domain.Question, state domain.QuizState) (*domain.Question, bool) {
	return SampleOne(FilterForQuiz(questions, state.CategoryID, state.Previous))
}
