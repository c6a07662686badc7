package handlers

import (
	"net/url"
	"strconv"
	"time"

	"github.com/simmi-91/freezer-storage-app/domain"
	"github.com/simmi-91/freezer-storage-app/internal/api/presenters"
	"github.com/simmi-91/freezer-storage-app/pkg/expiry"
	"github.com/simmi-91/freezer-storage-app/pkg/inventory"
	"github.com/simmi-91/freezer-storage-app/pkg/views"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ItemHandler interface {
		AddItem(c *fiber.Ctx) error
		UpdateItem(c *fiber.Ctx) error
		DeleteItem(c *fiber.Ctx) error
		AddItemBatch(c *fiber.Ctx) error
		GetItems(c *fiber.Ctx) error
		GetItem(c *fiber.Ctx) error
		BrowseItems(c *fiber.Ctx) error
		GetDashboard(c *fiber.Ctx) error
		GetCategoryOptions(c *fiber.Ctx) error
		SuggestExpiry(c *fiber.Ctx) error
		GetStoreStatus(c *fiber.Ctx) error
	}

	itemHandler struct {
		inventoryService inventory.InventoryService
		validator        *validator.Validate
	}
)

func NewItemHandler(inventoryService inventory.InventoryService, validator *validator.Validate) ItemHandler {
	return &itemHandler{
		inventoryService: inventoryService,
		validator:        validator,
	}
}

func (h *itemHandler) AddItem(c *fiber.Ctx) error {
	req := new(domain.AddItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddItem, err)
	}

	res, err := h.inventoryService.AddItem(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusForError(err), domain.MessageFailedAddItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddItem)
}

func (h *itemHandler) UpdateItem(c *fiber.Ctx) error {
	id, err := parseItemID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateItem, err)
	}

	req := new(domain.UpdateItemRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateItem, err)
	}

	res, err := h.inventoryService.UpdateItem(c.Context(), id, *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusForError(err), domain.MessageFailedUpdateItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateItem)
}

func (h *itemHandler) DeleteItem(c *fiber.Ctx) error {
	id, err := parseItemID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteItem, err)
	}

	if err := h.inventoryService.DeleteItem(c.Context(), id); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusForError(err), domain.MessageFailedDeleteItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteItem)
}

func (h *itemHandler) AddItemBatch(c *fiber.Ctx) error {
	req := new(domain.BatchAddRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBatchAdd, err)
	}

	res := h.inventoryService.AddItemBatch(c.Context(), req.Items)
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessBatchAdd)
}

func (h *itemHandler) GetItems(c *fiber.Ctx) error {
	items := h.inventoryService.List()
	return presenters.SuccessResponse(c, fiber.Map{
		"items":  inventory.ToResponses(items, time.Now()),
		"status": h.inventoryService.Status(),
	}, fiber.StatusOK, domain.MessageSuccessGetItems)
}

func (h *itemHandler) GetItem(c *fiber.Ctx) error {
	id, err := parseItemID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetItems, err)
	}

	item, err := h.inventoryService.Get(id)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusForError(err), domain.MessageFailedGetItems, err)
	}

	return presenters.SuccessResponse(c, inventory.ToResponse(item, time.Now()), fiber.StatusOK, domain.MessageSuccessGetItems)
}

func (h *itemHandler) BrowseItems(c *fiber.Ctx) error {
	sortKey, err := domain.ParseSortKey(c.Query("sort"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetItems, err)
	}

	selected, err := parseCategoryQuery(c.Query("category"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetItems, err)
	}
	items := h.inventoryService.List()

	// A selected category that just lost its last item resets to "all"
	// instead of serving an empty-looking list.
	effective, reset := views.ResolveFilter(items, selected)

	filtered := views.Browse(items, domain.BrowseQuery{
		Search:   c.Query("search"),
		Category: effective,
		Sort:     sortKey,
	})

	return presenters.SuccessResponse(c, fiber.Map{
		"items": inventory.ToResponses(filtered, time.Now()),
		"filter": domain.CategoryOptionsResponse{
			Options:  views.CategoryOptions(items),
			Selected: effective,
			Reset:    reset,
		},
		"sort":   sortKey,
		"status": h.inventoryService.Status(),
	}, fiber.StatusOK, domain.MessageSuccessGetItems)
}

func (h *itemHandler) GetDashboard(c *fiber.Ctx) error {
	now := time.Now()
	agg := views.Dashboard(h.inventoryService.List(), now)

	res := domain.DashboardResponse{
		TotalItems:     agg.TotalItems,
		Expired:        inventory.ToResponses(agg.Expired, now),
		ExpiringSoon:   inventory.ToResponses(agg.ExpiringSoon, now),
		CategoryCounts: agg.CategoryCounts,
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDashboard)
}

func (h *itemHandler) GetCategoryOptions(c *fiber.Ctx) error {
	selected, err := parseCategoryQuery(c.Query("selected"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetItems, err)
	}

	items := h.inventoryService.List()
	effective, reset := views.ResolveFilter(items, selected)

	return presenters.SuccessResponse(c, domain.CategoryOptionsResponse{
		Options:  views.CategoryOptions(items),
		Selected: effective,
		Reset:    reset,
	}, fiber.StatusOK, domain.MessageSuccessGetCategories)
}

func (h *itemHandler) SuggestExpiry(c *fiber.Ctx) error {
	// Path params arrive URL-encoded ("Prepared%20Meals").
	raw := c.Params("category")
	if decoded, decodeErr := url.PathUnescape(raw); decodeErr == nil {
		raw = decoded
	}
	category, err := domain.ParseCategory(raw)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSuggestExpiry, err)
	}

	from := time.Now()
	earliest, latest := expiry.Suggest(category, from)

	return presenters.SuccessResponse(c, domain.SuggestExpiryResponse{
		Category: category,
		Earliest: earliest.Format(domain.DateLayout),
		Latest:   latest.Format(domain.DateLayout),
		Shelf:    category.ShelfLife(),
	}, fiber.StatusOK, domain.MessageSuccessSuggestExpiry)
}

func (h *itemHandler) GetStoreStatus(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, h.inventoryService.Status(), fiber.StatusOK, domain.MessageSuccessGetItems)
}

// parseCategoryQuery rejects filters outside the closed set so that the
// filter-reset signal stays reserved for a selection that genuinely emptied.
func parseCategoryQuery(raw string) (domain.Category, error) {
	if raw == "" || raw == string(domain.CategoryAll) {
		return domain.CategoryAll, nil
	}
	return domain.ParseCategory(raw)
}

func parseItemID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, domain.ErrItemNotFound
	}
	return uint(id), nil
}
