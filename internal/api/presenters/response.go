package presenters

import (
	"errors"

	"github.com/simmi-91/freezer-storage-app/domain"

	"github.com/gofiber/fiber/v2"
)

type Response struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Error   string      `json:"error,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data interface{}, code int, message string) error {
	return c.Status(code).JSON(Response{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *fiber.Ctx, code int, message string, err error) error {
	res := Response{
		Status:  false,
		Message: message,
	}
	if err != nil {
		res.Error = err.Error()
	}
	return c.Status(code).JSON(res)
}

// StatusForError maps the domain error taxonomy onto HTTP statuses so the
// rendering layer can branch on them.
func StatusForError(err error) int {
	switch {
	case domain.IsValidationError(err):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrItemNotFound),
		errors.Is(err, domain.ErrInvalidPhotoScan),
		errors.Is(err, domain.ErrUnknownScreen):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrMutationInFlight):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrStoreUnavailable):
		return fiber.StatusServiceUnavailable
	case errors.Is(err, domain.ErrInvalidSortKey),
		errors.Is(err, domain.ErrParseUUID),
		errors.Is(err, domain.ErrNotOnForm):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusBadRequest
	}
}
