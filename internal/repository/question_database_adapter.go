package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"trivia/internal/domain"
	"trivia/internal/repository/models"
)

const selectQuestions = `SELECT id, question, answer, difficulty, category FROM questions`

// QuestionDatabaseAdapter implements domain.QuestionRepository using sqlx
type QuestionDatabaseAdapter struct {
	db DBTX
}

// NewQuestionDatabaseAdapter creates a new instance of QuestionDatabaseAdapter
func NewQuestionDatabaseAdapter(db DBTX) domain.QuestionRepository {
	return &QuestionDatabaseAdapter{db: db}
}

// GetAllQuestions implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) GetAllQuestions(ctx context.Context) ([]*domain.Question, error) {
	var rows []models.Question
	exec := GetExecutor(ctx, a.db)
	if err := exec.SelectContext(ctx, &rows, selectQuestions+` ORDER BY id`); err != nil {
		return nil, fmt.Errorf("failed to get questions: %w", err)
	}
	return toDomainQuestions(rows), nil
}

// GetQuestionsByCategory implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) GetQuestionsByCategory(ctx context.Context, categoryID int64) ([]*domain.Question, error) {
	var rows []models.Question
	exec := GetExecutor(ctx, a.db)
	query := exec.Rebind(selectQuestions + ` WHERE category = ? ORDER BY id`)
	if err := exec.SelectContext(ctx, &rows, query, categoryID); err != nil {
		return nil, fmt.Errorf("failed to get questions for category %d: %w", categoryID, err)
	}
	return toDomainQuestions(rows), nil
}

// GetQuestionByID implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) GetQuestionByID(ctx context.Context, id int64) (*domain.Question, error) {
	var row models.Question
	exec := GetExecutor(ctx, a.db)
	query := exec.Rebind(selectQuestions + ` WHERE id = ?`)
	if err := exec.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get question by ID %d: %w", id, err)
	}
	return toDomainQuestion(&row), nil
}

// SaveQuestion implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) SaveQuestion(ctx context.Context, question *domain.Question) error {
	if question == nil {
		return fmt.Errorf("cannot save nil question")
	}
	row := toModelQuestion(question)
	exec := GetExecutor(ctx, a.db)

	var id int64
	switch exec.DriverName() {
	case "oracle":
		query := exec.Rebind(`INSERT INTO questions (question, answer, difficulty, category)
		VALUES (?, ?, ?, ?) RETURNING id INTO ?`)
		_, err := exec.ExecContext(ctx, query,
			row.Question, row.Answer, row.Difficulty, row.Category, sql.Out{Dest: &id})
		if err != nil {
			return fmt.Errorf("failed to save question: %w", err)
		}
	default:
		query := exec.Rebind(`INSERT INTO questions (question, answer, difficulty, category)
		VALUES (?, ?, ?, ?) RETURNING id`)
		err := exec.QueryRowxContext(ctx, query,
			row.Question, row.Answer, row.Difficulty, row.Category).Scan(&id)
		if err != nil {
			return fmt.Errorf("failed to save question: %w", err)
		}
	}

	question.ID = id
	return nil
}

// DeleteQuestion implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) DeleteQuestion(ctx context.Context, id int64) error {
	exec := GetExecutor(ctx, a.db)
	result, err := exec.ExecContext(ctx, exec.Rebind(`DELETE FROM questions WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("failed to delete question %d: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.NewQuestionNotFoundError(id)
	}
	return nil
}

func toDomainQuestion(m *models.Question) *domain.Question {
	return &domain.Question{
		ID:         m.ID,
		Question:   m.Question,
		Answer:     m.Answer,
		Difficulty: m.Difficulty,
		CategoryID: m.Category,
	}
}

func toDomainQuestions(rows []models.Question) []*domain.Question {
	out := make([]*domain.Question, len(rows))
	for i := range rows {
		out[i] = toDomainQuestion(&rows[i])
	}
	return out
}

func toModelQuestion(q *domain.Question) *models.Question {
	return &models.Question{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Difficulty: q.Difficulty,
		Category:   q.CategoryID,
	}
}
