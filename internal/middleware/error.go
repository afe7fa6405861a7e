package middleware

import (
	"errors"
	"net/http"

	"trivia/internal/domain"
	"trivia/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorResponse represents the standard error response structure
type ErrorResponse struct {
	Success bool                   `json:"success"`
	Error   int                    `json:"error"`
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// ValidationErrorResponse represents validation error response
type ValidationErrorResponse struct {
	Success bool                     `json:"success"`
	Error   int                      `json:"error"`
	Code    string                   `json:"code"`
	Message string                   `json:"message"`
	Errors  []domain.ValidationError `json:"errors"`
}

// ErrorHandler is a centralized error handling middleware
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		log := logger.Get().With(
			zap.String("path", c.Path()),
			zap.String("request_id", RequestIDFromCtx(c)),
		)

		var validationErrs domain.ValidationErrors
		if errors.As(err, &validationErrs) {
			log.Warn("Validation errors occurred", zap.Int("error_count", len(validationErrs)))
			return c.Status(http.StatusUnprocessableEntity).JSON(ValidationErrorResponse{
				Success: false,
				Error:   http.StatusUnprocessableEntity,
				Code:    string(domain.CodeValidation),
				Message: "Request validation failed",
				Errors:  validationErrs,
			})
		}

		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			statusCode := mapDomainErrorToHTTPStatus(domainErr)

			fields := []zap.Field{
				zap.String("code", string(domainErr.Code)),
				zap.String("message", domainErr.Message),
				zap.Int("status", statusCode),
			}
			if domainErr.Cause != nil {
				fields = append(fields, zap.Error(domainErr.Cause))
			}
			if statusCode >= http.StatusInternalServerError {
				log.Error("Domain error occurred", fields...)
			} else {
				log.Info("Request rejected", fields...)
			}

			response := ErrorResponse{
				Success: false,
				Error:   statusCode,
				Code:    string(domainErr.Code),
				Message: domainErr.Message,
			}
			if len(domainErr.Context) > 0 {
				response.Details = domainErr.Context
			}
			return c.Status(statusCode).JSON(response)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			log.Warn("Fiber error occurred",
				zap.Int("code", fiberErr.Code),
				zap.String("message", fiberErr.Message),
			)
			return c.Status(fiberErr.Code).JSON(ErrorResponse{
				Success: false,
				Error:   fiberErr.Code,
				Code:    "HTTP_ERROR",
				Message: fiberErr.Message,
			})
		}

		log.Error("Unknown error occurred", zap.Error(err))

		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Success: false,
			Error:   http.StatusInternalServerError,
			Code:    string(domain.CodeInternal),
			Message: "Internal server error",
		})
	}
}

// mapDomainErrorToHTTPStatus maps domain errors to HTTP status codes
func mapDomainErrorToHTTPStatus(err *domain.DomainError) int {
	switch err.Code {
	case domain.CodeNotFound, domain.CodeQuestionNotFound, domain.CodeCategoryNotFound:
		return http.StatusNotFound
	case domain.CodeInvalidArgument, domain.CodeInvalidFormat:
		return http.StatusBadRequest
	case domain.CodeUnprocessable, domain.CodeValidation, domain.CodeMissingField, domain.CodeOutOfRange:
		return http.StatusUnprocessableEntity
	case domain.CodeCache:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
