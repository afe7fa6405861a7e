package service

import (
	"context"
	"errors"
	"fmt"

	"trivia/internal/domain"
	"trivia/internal/dto"
	"trivia/internal/logger"
	"trivia/internal/metrics"
	"trivia/internal/selection"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// QuestionService defines the interface for question listing and management
type QuestionService interface {
	ListQuestions(ctx context.Context, page int) (*dto.QuestionListResponse, error)
	ListQuestionsByCategory(ctx context.Context, categoryID int64, page int) (*dto.QuestionListResponse, error)
	// SearchQuestions returns every match when page is 0, one page otherwise.
	SearchQuestions(ctx context.Context, term string, page int) (*dto.QuestionListResponse, error)
	GetQuestion(ctx context.Context, id int64) (*dto.QuestionDetailResponse, error)
	CreateQuestion(ctx context.Context, req *dto.CreateQuestionRequest) (*dto.CreateQuestionResponse, error)
	DeleteQuestion(ctx context.Context, id int64) (*dto.DeleteQuestionResponse, error)
}

type questionService struct {
	questions  domain.QuestionRepository
	categories domain.CategoryRepository
	tx         domain.TransactionManager
}

// NewQuestionService creates a new instance of questionService
func NewQuestionService(
	questions domain.QuestionRepository,
	categories domain.CategoryRepository,
	tx domain.TransactionManager,
) QuestionService {
	return &questionService{
		questions:  questions,
		categories: categories,
		tx:         tx,
	}
}

func (s *questionService) ListQuestions(ctx context.Context, page int) (*dto.QuestionListResponse, error) {
	var (
		all        []*domain.Question
		categories []*domain.Category
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		all, err = s.questions.GetAllQuestions(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = s.categories.GetAllCategories(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, domain.NewInternalError("failed to list questions", err)
	}

	paged := selection.Paginate(all, page)
	if len(paged) == 0 {
		return nil, emptyPageError(page)
	}

	return &dto.QuestionListResponse{
		Success:         true,
		Questions:       dto.ToQuestionResponses(paged),
		TotalQuestions:  len(all),
		Page:            page,
		TotalPages:      selection.PageCount(len(all)),
		Categories:      dto.ToCategoryResponses(categories),
		CurrentCategory: nil,
	}, nil
}

func (s *questionService) ListQuestionsByCategory(ctx context.Context, categoryID int64, page int) (*dto.QuestionListResponse, error) {
	var (
		all      []*domain.Question
		category *domain.Category
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		category, err = s.categories.GetCategoryByID(gctx, categoryID)
		return err
	})
	g.Go(func() error {
		var err error
		all, err = s.questions.GetAllQuestions(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, domain.NewInternalError("failed to list questions by category", err)
	}
	if category == nil {
		return nil, domain.NewCategoryNotFoundError(categoryID)
	}

	inCategory := selection.FilterByCategory(all, categoryID)
	paged := selection.Paginate(inCategory, page)
	if len(paged) == 0 {
		return nil, emptyPageError(page).WithContext("category_id", categoryID)
	}

	return &dto.QuestionListResponse{
		Success:         true,
		Questions:       dto.ToQuestionResponses(paged),
		TotalQuestions:  len(inCategory),
		Page:            page,
		TotalPages:      selection.PageCount(len(inCategory)),
		CurrentCategory: &category.Type,
	}, nil
}

func (s *questionService) SearchQuestions(ctx context.Context, term string, page int) (*dto.QuestionListResponse, error) {
	all, err := s.questions.GetAllQuestions(ctx)
	if err != nil {
		return nil, domain.NewInternalError("failed to search questions", err)
	}

	matches, err := selection.FilterBySearch(all, term)
	if err != nil {
		return nil, err
	}

	resp := &dto.QuestionListResponse{
		Success:         true,
		TotalQuestions:  len(matches),
		CurrentCategory: nil,
	}
	if page > 0 {
		resp.Questions = dto.ToQuestionResponses(selection.Paginate(matches, page))
		resp.Page = page
		resp.TotalPages = selection.PageCount(len(matches))
	} else {
		resp.Questions = dto.ToQuestionResponses(matches)
	}
	return resp, nil
}

func (s *questionService) GetQuestion(ctx context.Context, id int64) (*dto.QuestionDetailResponse, error) {
	q, err := s.questions.GetQuestionByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("failed to get question", err)
	}
	if q == nil {
		return nil, domain.NewQuestionNotFoundError(id)
	}
	return &dto.QuestionDetailResponse{
		Success:  true,
		Question: dto.ToQuestionResponse(q),
	}, nil
}

func (s *questionService) CreateQuestion(ctx context.Context, req *dto.CreateQuestionRequest) (*dto.CreateQuestionResponse, error) {
	q := domain.NewQuestion(req.Question, req.Answer, req.Difficulty, req.Category.Int64())
	if err := q.Validate(); err != nil {
		return nil, err
	}

	err := s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		category, err := s.categories.GetCategoryByID(txCtx, q.CategoryID)
		if err != nil {
			return domain.NewInternalError("failed to look up category", err)
		}
		if category == nil {
			return domain.NewUnprocessableError("category does not exist", domain.NewCategoryNotFoundError(q.CategoryID)).
				WithContext("category", q.CategoryID)
		}
		if err := s.questions.SaveQuestion(txCtx, q); err != nil {
			return domain.NewInternalError("failed to save question", err)
		}
		return nil
	})
	if err != nil {
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			return nil, err
		}
		return nil, domain.NewInternalError("failed to create question", err)
	}

	metrics.QuestionsCreated.Inc()
	logger.Get().Info("Question created",
		zap.Int64("question_id", q.ID),
		zap.Int64("category_id", q.CategoryID))

	return &dto.CreateQuestionResponse{
		Success:    true,
		QuestionID: q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Difficulty: q.Difficulty,
		Category:   q.CategoryID,
	}, nil
}

func (s *questionService) DeleteQuestion(ctx context.Context, id int64) (*dto.DeleteQuestionResponse, error) {
	if err := s.questions.DeleteQuestion(ctx, id); err != nil {
		if errors.Is(err, domain.ErrQuestionNotFound) {
			return nil, err
		}
		return nil, domain.NewInternalError("failed to delete question", err)
	}

	metrics.QuestionsDeleted.Inc()
	logger.Get().Info("Question deleted", zap.Int64("question_id", id))

	return &dto.DeleteQuestionResponse{Success: true, Deleted: id}, nil
}

func emptyPageError(page int) *domain.DomainError {
	return domain.NewNotFoundError(fmt.Sprintf("no questions found on page %d", page)).
		WithContext("page", page)
}
