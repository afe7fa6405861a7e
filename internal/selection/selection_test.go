package selection

import (
	"fmt"
	"math"
	"testing"

	"trivia/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeQuestions(n int, categoryID int64) []*domain.Question {
	qs := make([]*domain.Question, 0, n)
	for i := 1; i <= n; i++ {
		qs = append(qs, &domain.Question{
			ID:         int64(i),
			Question:   fmt.Sprintf("Question %d", i),
			Answer:     fmt.Sprintf("Answer %d", i),
			Difficulty: 1,
			CategoryID: categoryID,
		})
	}
	return qs
}

func ids(qs []*domain.Question) []int64 {
	out := make([]int64, 0, len(qs))
	for _, q := range qs {
		out = append(out, q.ID)
	}
	return out
}

func TestPaginate_TwelveQuestions(t *testing.T) {
	qs := makeQuestions(12, 1)

	assert.Equal(t, []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, ids(Paginate(qs, 1)))
	assert.Equal(t, []int64{11, 12}, ids(Paginate(qs, 2)))
	assert.Empty(t, ids(Paginate(qs, 3)))
}

func TestPaginate_LengthFormula(t *testing.T) {
	for _, n := range []int{0, 1, 9, 10, 11, 25, 100} {
		qs := makeQuestions(n, 1)
		for p := 1; p <= 12; p++ {
			want := min(domain.QuestionsPerPage, max(0, n-(p-1)*domain.QuestionsPerPage))
			assert.Len(t, Paginate(qs, p), want, "n=%d page=%d", n, p)
		}
	}
}

func TestPaginate_ReconstructsSequence(t *testing.T) {
	qs := makeQuestions(37, 2)

	var rebuilt []*domain.Question
	for p := 1; p <= PageCount(len(qs)); p++ {
		rebuilt = append(rebuilt, Paginate(qs, p)...)
	}
	assert.Equal(t, ids(qs), ids(rebuilt))
	assert.Equal(t, 4, PageCount(len(qs)))
}

func TestPaginate_EdgeCases(t *testing.T) {
	qs := makeQuestions(5, 1)

	t.Run("empty input", func(t *testing.T) {
		page := Paginate(nil, 1)
		assert.NotNil(t, page)
		assert.Empty(t, page)
	})
	t.Run("non-positive page", func(t *testing.T) {
		assert.Empty(t, Paginate(qs, 0))
		assert.Empty(t, Paginate(qs, -3))
	})
	t.Run("does not alias input", func(t *testing.T) {
		page := Paginate(qs, 1)
		page[0] = &domain.Question{ID: 99}
		assert.Equal(t, int64(1), qs[0].ID)
	})
}

func TestPaginate_HugePage(t *testing.T) {
	qs := makeQuestions(12, 1)

	for _, page := range []int{math.MaxInt, 1844674407370955163, 3} {
		got := Paginate(qs, page)
		assert.NotNil(t, got, "page=%d", page)
		assert.Empty(t, got, "page=%d", page)
	}
}

func TestPageCount(t *testing.T) {
	assert.Equal(t, 0, PageCount(0))
	assert.Equal(t, 1, PageCount(1))
	assert.Equal(t, 1, PageCount(10))
	assert.Equal(t, 2, PageCount(11))
}

func TestFilterByCategory(t *testing.T) {
	qs := []*domain.Question{
		{ID: 1, CategoryID: 1},
		{ID: 2, CategoryID: 2},
		{ID: 3, CategoryID: 1},
		{ID: 4, CategoryID: 3},
	}

	assert.Equal(t, []int64{1, 3}, ids(FilterByCategory(qs, 1)))
	assert.Empty(t, FilterByCategory(qs, 42))
	assert.Len(t, qs, 4, "base collection must be untouched")
}

func TestFilterBySearch(t *testing.T) {
	qs := []*domain.Question{
		{ID: 1, Question: "What is the title of the 1990 fantasy film?"},
		{ID: 2, Question: "no match here"},
		{ID: 3, Question: "Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?"},
	}

	t.Run("title scenario", func(t *testing.T) {
		got, err := FilterBySearch(qs[:2], "title")
		require.NoError(t, err)
		assert.Equal(t, []int64{1}, ids(got))
	})

	t.Run("case insensitive and order preserving", func(t *testing.T) {
		got, err := FilterBySearch(qs, "TITLE")
		require.NoError(t, err)
		assert.Equal(t, []int64{1, 3}, ids(got))
	})

	t.Run("no match is empty not error", func(t *testing.T) {
		got, err := FilterBySearch(qs, "zebra")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("empty term rejected", func(t *testing.T) {
		got, err := FilterBySearch(qs, "")
		assert.Nil(t, got)
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})

	t.Run("whitespace is a literal term", func(t *testing.T) {
		got, err := FilterBySearch(qs, " ")
		require.NoError(t, err)
		assert.Equal(t, ids(qs), ids(got))

		got, err = FilterBySearch(qs, "   ")
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestFilterForQuiz(t *testing.T) {
	qs := []*domain.Question{
		{ID: 9, CategoryID: 5},
		{ID: 10, CategoryID: 6},
		{ID: 11, CategoryID: 6},
		{ID: 12, CategoryID: 6},
		{ID: 13, CategoryID: 1},
	}

	t.Run("category six scenario", func(t *testing.T) {
		remaining := FilterForQuiz(qs, 6, []int64{10, 11})
		assert.Equal(t, []int64{12}, ids(remaining))

		q, ok := SampleOne(remaining)
		require.True(t, ok)
		assert.Equal(t, int64(12), q.ID)
	})

	t.Run("all categories", func(t *testing.T) {
		remaining := FilterForQuiz(qs, domain.AllCategories, []int64{9, 13})
		assert.Equal(t, []int64{10, 11, 12}, ids(remaining))
	})

	t.Run("no exclusions equals category filter", func(t *testing.T) {
		assert.Equal(t, FilterByCategory(qs, 6), FilterForQuiz(qs, 6, nil))
		assert.Equal(t, FilterByCategory(qs, 6), FilterForQuiz(qs, 6, []int64{}))
	})

	t.Run("result disjoint from excluded", func(t *testing.T) {
		excluded := []int64{9, 11, 13, 777}
		for _, q := range FilterForQuiz(qs, domain.AllCategories, excluded) {
			assert.NotContains(t, excluded, q.ID)
		}
	})
}

func TestSampleOne(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		q, ok := SampleOne(nil)
		assert.False(t, ok)
		assert.Nil(t, q)
	})

	t.Run("single element", func(t *testing.T) {
		only := &domain.Question{ID: 7}
		for i := 0; i < 20; i++ {
			q, ok := SampleOne([]*domain.Question{only})
			require.True(t, ok)
			assert.Same(t, only, q)
		}
	})

	t.Run("index comes from source", func(t *testing.T) {
		qs := makeQuestions(4, 1)
		q, ok := sampleWith(qs, func(n int) int {
			assert.Equal(t, 4, n)
			return 2
		})
		require.True(t, ok)
		assert.Equal(t, int64(3), q.ID)
	})

	t.Run("every element reachable", func(t *testing.T) {
		qs := makeQuestions(5, 1)
		seen := make(map[int64]int)
		for i := 0; i < 2000; i++ {
			q, _ := SampleOne(qs)
			seen[q.ID]++
		}
		assert.Len(t, seen, 5)
	})
}

func TestQuizSession_ExhaustsEachQuestionOnce(t *testing.T) {
	qs := append(makeQuestions(15, 3), &domain.Question{ID: 100, CategoryID: 4})
	state := domain.QuizState{CategoryID: 3}

	iterations := 0
	for {
		q, ok := NextQuizQuestion(qs, state)
		if !ok {
			break
		}
		assert.NotContains(t, state.Previous, q.ID)
		assert.Equal(t, int64(3), q.CategoryID)
		state.Previous = append(state.Previous, q.ID)
		iterations++
		require.LessOrEqual(t, iterations, len(qs), "session did not terminate")
	}

	assert.Equal(t, len(FilterByCategory(qs, 3)), iterations)
	assert.ElementsMatch(t, ids(FilterByCategory(qs, 3)), state.Previous)
}
