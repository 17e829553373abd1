package presenter

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/artem13815/hr/screening/pkg/apperrors"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

// DataResponse wraps list payloads.
type DataResponse[T any] struct {
	Data   []T `json:"data"`
	Limit  int `json:"limit,omitempty"`
	Offset int `json:"offset,omitempty"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Message: message})
}

// Fail maps a use case error onto a status code. Only unclassified errors are
// logged; their text is not sent to the client.
func Fail(c *fiber.Ctx, log *zap.Logger, err error) error {
	status := StatusOf(err)
	if status == http.StatusInternalServerError {
		log.Error("request failed",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return Error(c, status, "internal error")
	}
	return Error(c, status, err.Error())
}

// StatusOf classifies err by the apperrors sentinel it wraps.
func StatusOf(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrUnsupportedFormat):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, apperrors.ErrExtraction),
		errors.Is(err, apperrors.ErrCorpusTooLarge):
		return http.StatusUnprocessableEntity
	case errors.Is(err, apperrors.ErrInvalidQuery),
		errors.Is(err, apperrors.ErrInvalidThreshold):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
