package handler

import (
	"trivia/internal/domain"
	"trivia/internal/dto"
	"trivia/internal/service"
	"trivia/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles quiz play requests
type QuizHandler struct {
	service   service.QuizService
	validator *validation.Validator
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService) *QuizHandler {
	return &QuizHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// NextQuestion godoc
// @Summary Draw the next quiz question
// @Description Returns a random question of the category (id 0 for all) that is not in previous_questions. question is null once the quiz is exhausted.
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.QuizRequest true "Quiz state"
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /quizzes [post]
func (h *QuizHandler) NextQuestion(c *fiber.Ctx) error {
	var req dto.QuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidArgumentError("request body must be a JSON quiz state")
	}

	if errs := h.validator.ValidateQuizRequest(&req); len(errs) > 0 {
		return domain.NewInvalidArgumentError("invalid quiz request").WithContext("errors", errs)
	}

	resp, err := h.service.NextQuestion(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
