package handler

import (
	"trivia/internal/domain"
	"trivia/internal/dto"
	"trivia/internal/logger"
	"trivia/internal/middleware"
	"trivia/internal/service"
	"trivia/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// QuestionHandler handles question-related HTTP requests
type QuestionHandler struct {
	service   service.QuestionService
	validator *validation.Validator
}

// NewQuestionHandler creates a new QuestionHandler instance
func NewQuestionHandler(service service.QuestionService) *QuestionHandler {
	return &QuestionHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// ListQuestions godoc
// @Summary List questions
// @Description Ten questions per page ordered by id, with every category
// @Tags questions
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Success 200 {object} dto.QuestionListResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /questions [get]
func (h *QuestionHandler) ListQuestions(c *fiber.Ctx) error {
	resp, err := h.service.ListQuestions(c.UserContext(), middleware.ValidatedPage(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetQuestion godoc
// @Summary Get a question
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.QuestionDetailResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /questions/{id} [get]
func (h *QuestionHandler) GetQuestion(c *fiber.Ctx) error {
	resp, err := h.service.GetQuestion(c.UserContext(), middleware.ValidatedID(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// CreateQuestion godoc
// @Summary Add a question
// @Tags questions
// @Accept json
// @Produce json
// @Param request body dto.CreateQuestionRequest true "Question"
// @Success 201 {object} dto.CreateQuestionResponse
// @Failure 422 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /questions [post]
func (h *QuestionHandler) CreateQuestion(c *fiber.Ctx) error {
	var req dto.CreateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Get().Debug("Failed to parse create question body", zap.Error(err))
		return domain.NewUnprocessableError("request body must be a JSON question", err)
	}

	if errs := h.validator.ValidateCreateQuestionRequest(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.CreateQuestion(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// DeleteQuestion godoc
// @Summary Delete a question
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.DeleteQuestionResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /questions/{id} [delete]
func (h *QuestionHandler) DeleteQuestion(c *fiber.Ctx) error {
	resp, err := h.service.DeleteQuestion(c.UserContext(), middleware.ValidatedID(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SearchQuestions godoc
// @Summary Search questions
// @Description Case-insensitive substring match on the question text. Without page every match is returned.
// @Tags questions
// @Accept json
// @Produce json
// @Param request body dto.SearchRequest true "Search term"
// @Param page query int false "Page number"
// @Success 200 {object} dto.QuestionListResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Router /questions/search [post]
func (h *QuestionHandler) SearchQuestions(c *fiber.Ctx) error {
	var req dto.SearchRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidArgumentError("request body must be a JSON object")
	}

	term := req.Term()
	if err := h.validator.ValidateSearchTerm(term); err != nil {
		return err
	}

	page := 0
	if c.Query("page") != "" {
		page = h.validator.ParsePage(c.Query("page"))
	}

	resp, err := h.service.SearchQuestions(c.UserContext(), term, page)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
