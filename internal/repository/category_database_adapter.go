package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"trivia/internal/domain"
	"trivia/internal/repository/models"
)

const selectCategories = `SELECT id, type FROM categories`

// CategoryDatabaseAdapter implements domain.CategoryRepository using sqlx
type CategoryDatabaseAdapter struct {
	db DBTX
}

// NewCategoryDatabaseAdapter creates a new instance of CategoryDatabaseAdapter
func NewCategoryDatabaseAdapter(db DBTX) domain.CategoryRepository {
	return &CategoryDatabaseAdapter{db: db}
}

// GetAllCategories returns all categories ordered by type
func (r *CategoryDatabaseAdapter) GetAllCategories(ctx context.Context) ([]*domain.Category, error) {
	var rows []models.Category
	exec := GetExecutor(ctx, r.db)
	if err := exec.SelectContext(ctx, &rows, selectCategories+` ORDER BY type`); err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}

	categories := make([]*domain.Category, len(rows))
	for i := range rows {
		categories[i] = convertToDomainCategory(&rows[i])
	}
	return categories, nil
}

// GetCategoryByID returns one category, or nil when it does not exist
func (r *CategoryDatabaseAdapter) GetCategoryByID(ctx context.Context, id int64) (*domain.Category, error) {
	var row models.Category
	exec := GetExecutor(ctx, r.db)
	if err := exec.GetContext(ctx, &row, exec.Rebind(selectCategories+` WHERE id = ?`), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category by ID %d: %w", id, err)
	}
	return convertToDomainCategory(&row), nil
}

func convertToDomainCategory(category *models.Category) *domain.Category {
	return &domain.Category{
		ID:   category.ID,
		Type: category.Type,
	}
}
