package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"trivia/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAllQuestions(t *testing.T) {
	ctx := context.Background()

	t.Run("ordered by id", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewQuestionDatabaseAdapter(db)

		rows := sqlmock.NewRows(questionColumns).
			AddRow(1, "Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?", "Maya Angelou", 2, 4).
			AddRow(2, "What boxer's original name is Cassius Clay?", "Muhammad Ali", 1, 4)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, question, answer, difficulty, category FROM questions ORDER BY id`)).
			WillReturnRows(rows)

		got, err := repo.GetAllQuestions(ctx)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, int64(1), got[0].ID)
		assert.Equal(t, "Maya Angelou", got[0].Answer)
		assert.Equal(t, int64(4), got[1].CategoryID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("db error", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewQuestionDatabaseAdapter(db)

		mock.ExpectQuery(`FROM questions`).WillReturnError(errors.New("connection reset"))

		_, err := repo.GetAllQuestions(ctx)
		assert.ErrorContains(t, err, "connection reset")
	})
}

func TestGetQuestionsByCategory(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	rows := sqlmock.NewRows(questionColumns).
		AddRow(10, "Which is the only team to play in every soccer World Cup tournament?", "Brazil", 3, 6).
		AddRow(11, "Which country won the first ever soccer World Cup in 1930?", "Uruguay", 4, 6)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM questions WHERE category = $1 ORDER BY id`)).
		WithArgs(int64(6)).
		WillReturnRows(rows)

	got, err := repo.GetQuestionsByCategory(context.Background(), 6)
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, "Uruguay", got[1].Answer)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetQuestionByID(t *testing.T) {
	ctx := context.Background()
	query := regexp.QuoteMeta(`FROM questions WHERE id = $1`)

	t.Run("found", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewQuestionDatabaseAdapter(db)

		mock.ExpectQuery(query).WithArgs(int64(5)).
			WillReturnRows(sqlmock.NewRows(questionColumns).AddRow(5, "What is the heaviest organ in the human body?", "The Liver", 4, 1))

		got, err := repo.GetQuestionByID(ctx, 5)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "The Liver", got.Answer)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewQuestionDatabaseAdapter(db)

		mock.ExpectQuery(query).WithArgs(int64(404)).WillReturnError(sql.ErrNoRows)

		got, err := repo.GetQuestionByID(ctx, 404)
		assert.NoError(t, err)
		assert.Nil(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSaveQuestion(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	q := domain.NewQuestion("What is the largest lake in Africa?", "Lake Victoria", 2, 3)
	mock.ExpectQuery(`INSERT INTO questions \(question, answer, difficulty, category\)\s+VALUES \(\$1, \$2, \$3, \$4\) RETURNING id`).
		WithArgs(q.Question, q.Answer, 2, int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(24))

	require.NoError(t, repo.SaveQuestion(context.Background(), q))
	assert.Equal(t, int64(24), q.ID)
	assert.NoError(t, mock.ExpectationsWereMet())

	assert.Error(t, repo.SaveQuestion(context.Background(), nil))
}

func TestDeleteQuestion(t *testing.T) {
	ctx := context.Background()
	query := regexp.QuoteMeta(`DELETE FROM questions WHERE id = $1`)

	t.Run("deleted", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewQuestionDatabaseAdapter(db)

		mock.ExpectExec(query).WithArgs(int64(2)).WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.DeleteQuestion(ctx, 2))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewQuestionDatabaseAdapter(db)

		mock.ExpectExec(query).WithArgs(int64(1000)).WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.DeleteQuestion(ctx, 1000)
		assert.ErrorIs(t, err, domain.ErrQuestionNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
