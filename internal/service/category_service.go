package service

import (
	"context"

	"trivia/internal/domain"
	"trivia/internal/dto"
)

// CategoryService defines the interface for category lookups
type CategoryService interface {
	GetCategories(ctx context.Context) (*dto.CategoriesResponse, error)
	GetCategory(ctx context.Context, id int64) (*dto.CategoryDetailResponse, error)
}

type categoryService struct {
	repo domain.CategoryRepository
}

// NewCategoryService creates a new instance of categoryService
func NewCategoryService(repo domain.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) GetCategories(ctx context.Context) (*dto.CategoriesResponse, error) {
	categories, err := s.repo.GetAllCategories(ctx)
	if err != nil {
		return nil, domain.NewInternalError("failed to get categories", err)
	}
	return &dto.CategoriesResponse{
		Success:    true,
		Categories: dto.ToCategoryResponses(categories),
	}, nil
}

func (s *categoryService) GetCategory(ctx context.Context, id int64) (*dto.CategoryDetailResponse, error) {
	category, err := s.repo.GetCategoryByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("failed to get category", err)
	}
	if category == nil {
		return nil, domain.NewCategoryNotFoundError(id)
	}
	return &dto.CategoryDetailResponse{
		Success:  true,
		Category: dto.ToCategoryResponse(category),
	}, nil
}
