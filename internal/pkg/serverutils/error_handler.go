package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"hr-chatbot-be/internal/pkg/apperrors"
)

// ErrorResponse is the flat failure envelope the UI expects. No structured
// error detail crosses this boundary.
func ErrorResponse(message string) fiber.Map {
	return fiber.Map{"error": message}
}

// ErrorHandlerMiddleware converts errors bubbling out of handlers into an
// HTTP error status plus a generic failure body. Nothing here crashes the
// process; callers are expected to retry manually.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		status := fiber.StatusInternalServerError
		message := "Failed to process request"

		var fiberErr *fiber.Error
		switch {
		case errors.As(err, &fiberErr):
			status = fiberErr.Code
			message = fiberErr.Message
		case errors.Is(err, apperrors.ErrValidation):
			status = fiber.StatusBadRequest
			message = "Invalid request"
		case errors.Is(err, apperrors.ErrNotFound):
			status = fiber.StatusNotFound
			message = "Not found"
		case errors.Is(err, apperrors.ErrParse):
			status = fiber.StatusBadRequest
			message = "Failed to parse model output"
		case errors.Is(err, apperrors.ErrProvider):
			status = fiber.StatusBadGateway
			message = "Model provider request failed"
		}

		return ctx.Status(status).JSON(ErrorResponse(message))
	}
}
