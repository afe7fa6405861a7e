package handler

import (
	"trivia/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// APIPrefix is the versioned mount point of the trivia API
const APIPrefix = "/api/v1.0"

// Handlers bundles the route handlers of the API
type Handlers struct {
	Category *CategoryHandler
	Question *QuestionHandler
	Quiz     *QuizHandler
	Health   *HealthHandler
}

// RegisterRoutes mounts every API route on app.
func RegisterRoutes(app fiber.Router, h Handlers) {
	vm := middleware.NewValidationMiddleware()

	if h.Health != nil {
		app.Get("/healthz", h.Health.Health)
	}

	api := app.Group(APIPrefix)

	api.Get("/categories", h.Category.GetCategories)
	api.Get("/categories/:id", vm.ValidateID("category_id"), h.Category.GetCategory)
	api.Get("/categories/:id/questions", vm.ValidateID("category_id"), vm.ValidatePage(), h.Category.GetCategoryQuestions)

	api.Get("/questions", vm.ValidatePage(), h.Question.ListQuestions)
	api.Post("/questions", h.Question.CreateQuestion)
	api.Post("/questions/search", h.Question.SearchQuestions)
	api.Post("/search", h.Question.SearchQuestions)
	api.Get("/questions/:id", vm.ValidateID("question_id"), h.Question.GetQuestion)
	api.Delete("/questions/:id", vm.ValidateID("question_id"), h.Question.DeleteQuestion)

	api.Post("/quizzes", h.Quiz.NextQuestion)
}
