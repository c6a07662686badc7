package handlers

import (
	"github.com/simmi-91/freezer-storage-app/domain"
	"github.com/simmi-91/freezer-storage-app/internal/api/presenters"
	"github.com/simmi-91/freezer-storage-app/pkg/navigation"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	NavigationHandler interface {
		GetCurrent(c *fiber.Ctx) error
		Navigate(c *fiber.Ctx) error
		Back(c *fiber.Ctx) error
		SaveForm(c *fiber.Ctx) error
		CancelForm(c *fiber.Ctx) error
	}

	navigationHandler struct {
		navigationService navigation.NavigationService
		validator         *validator.Validate
	}
)

func NewNavigationHandler(navigationService navigation.NavigationService, validator *validator.Validate) NavigationHandler {
	return &navigationHandler{
		navigationService: navigationService,
		validator:         validator,
	}
}

func (h *navigationHandler) GetCurrent(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, h.navigationService.Current(), fiber.StatusOK, domain.MessageSuccessNavigate)
}

func (h *navigationHandler) Navigate(c *fiber.Ctx) error {
	req := new(domain.NavigateRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedNavigate, err)
	}

	res, err := h.navigationService.Navigate(*req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusForError(err), domain.MessageFailedNavigate, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessNavigate)
}

func (h *navigationHandler) Back(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, h.navigationService.Back(), fiber.StatusOK, domain.MessageSuccessNavigate)
}

func (h *navigationHandler) SaveForm(c *fiber.Ctx) error {
	res, err := h.navigationService.SaveForm()
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusForError(err), domain.MessageFailedNavigate, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessNavigate)
}

func (h *navigationHandler) CancelForm(c *fiber.Ctx) error {
	res, err := h.navigationService.CancelForm()
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusForError(err), domain.MessageFailedNavigate, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessNavigate)
}
