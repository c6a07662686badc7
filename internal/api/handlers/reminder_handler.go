package handlers

import (
	"github.com/simmi-91/freezer-storage-app/domain"
	"github.com/simmi-91/freezer-storage-app/internal/api/presenters"
	"github.com/simmi-91/freezer-storage-app/pkg/reminder"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ReminderHandler interface {
		SendDigest(c *fiber.Ctx) error
	}

	reminderHandler struct {
		reminderService reminder.ReminderService
		validator       *validator.Validate
	}
)

func NewReminderHandler(reminderService reminder.ReminderService, validator *validator.Validate) ReminderHandler {
	return &reminderHandler{
		reminderService: reminderService,
		validator:       validator,
	}
}

func (h *reminderHandler) SendDigest(c *fiber.Ctx) error {
	req := new(domain.SendDigestRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSendDigest, err)
	}

	res, err := h.reminderService.SendExpiryDigest(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSendDigest, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSendDigest)
}
