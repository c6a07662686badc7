package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddItem       = "freezer item added successfully"
	MessageSuccessUpdateItem    = "freezer item updated successfully"
	MessageSuccessDeleteItem    = "freezer item deleted successfully"
	MessageSuccessGetItems      = "freezer items retrieved successfully"
	MessageSuccessBatchAdd      = "freezer items imported"
	MessageSuccessGetDashboard  = "dashboard retrieved successfully"
	MessageSuccessGetCategories = "category options retrieved successfully"
	MessageSuccessSuggestExpiry = "expiry suggestion computed"

	MessageFailedAddItem       = "failed to add freezer item"
	MessageFailedUpdateItem    = "failed to update freezer item"
	MessageFailedDeleteItem    = "failed to delete freezer item"
	MessageFailedGetItems      = "failed to retrieve freezer items"
	MessageFailedBatchAdd      = "failed to import freezer items"
	MessageFailedGetDashboard  = "failed to retrieve dashboard"
	MessageFailedSuggestExpiry = "failed to compute expiry suggestion"

	ErrItemNotFound      = errors.New("freezer item not found")
	ErrEmptyName         = errors.New("name must not be empty")
	ErrInvalidQuantity   = errors.New("quantity must be positive")
	ErrInvalidExpiryDate = errors.New("invalid expiry date")
	ErrInvalidDateAdded  = errors.New("invalid date added")
	ErrMutationInFlight  = errors.New("another mutation for this item is still in flight")
)

// IsValidationError reports whether err is a draft-invariant violation, i.e.
// something the caller can fix by correcting input before any store call.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrEmptyName) ||
		errors.Is(err, ErrInvalidQuantity) ||
		errors.Is(err, ErrInvalidExpiryDate) ||
		errors.Is(err, ErrInvalidDateAdded) ||
		errors.Is(err, ErrInvalidCategory)
}

type (
	AddItemRequest struct {
		Name       string  `json:"name" validate:"required"`
		Category   string  `json:"category" validate:"required"`
		Quantity   float64 `json:"quantity" validate:"required,gt=0"`
		Unit       string  `json:"unit" validate:"required"`
		DateAdded  string  `json:"date_added" validate:"omitempty"` // empty means unknown
		ExpiryDate string  `json:"expiry_date" validate:"required"`
		Notes      string  `json:"notes"`
	}

	// UpdateItemRequest carries partial changes. Zero values leave a field
	// untouched; DateAdded distinguishes "unchanged" (nil) from "set to
	// unknown" (pointer to empty string).
	UpdateItemRequest struct {
		Name       string  `json:"name" validate:"omitempty"`
		Category   string  `json:"category" validate:"omitempty"`
		Quantity   float64 `json:"quantity" validate:"omitempty,gt=0"`
		Unit       string  `json:"unit" validate:"omitempty"`
		DateAdded  *string `json:"date_added,omitempty"`
		ExpiryDate string  `json:"expiry_date" validate:"omitempty"`
		Notes      *string `json:"notes,omitempty"`
	}

	BatchAddRequest struct {
		Items []AddItemRequest `json:"items" validate:"required,min=1,dive"`
	}

	// BatchAddResponse reports per-draft outcomes; earlier successes stay
	// committed when a later draft fails.
	BatchAddResponse struct {
		Saved  []ItemResponse   `json:"saved"`
		Failed []BatchAddFailed `json:"failed"`
	}

	BatchAddFailed struct {
		Index int    `json:"index"`
		Name  string `json:"name"`
		Error string `json:"error"`
	}

	ItemResponse struct {
		ID          uint      `json:"id"`
		Name        string    `json:"name"`
		Category    Category  `json:"category"`
		Quantity    float64   `json:"quantity"`
		Unit        string    `json:"unit"`
		DateAdded   string    `json:"date_added,omitempty"` // empty when unknown
		ExpiryDate  string    `json:"expiry_date"`
		Notes       string    `json:"notes"`
		Urgency     string    `json:"urgency"`
		UrgencyText string    `json:"urgency_text"`
		CreatedAt   time.Time `json:"created_at"`
	}

	CategoryCount struct {
		Category Category `json:"category"`
		Count    int      `json:"count"`
	}

	DashboardResponse struct {
		TotalItems     int             `json:"total_items"`
		Expired        []ItemResponse  `json:"expired"`
		ExpiringSoon   []ItemResponse  `json:"expiring_soon"`
		CategoryCounts []CategoryCount `json:"category_counts"`
	}

	// CategoryOptionsResponse lists the categories currently offered as
	// browse filters. Reset is true when the previously selected category no
	// longer holds any item and the filter should fall back to "all".
	CategoryOptionsResponse struct {
		Options  []Category `json:"options"`
		Selected Category   `json:"selected"`
		Reset    bool       `json:"reset"`
	}

	SuggestExpiryResponse struct {
		Category Category  `json:"category"`
		Earliest string    `json:"earliest"`
		Latest   string    `json:"latest"`
		Shelf    ShelfLife `json:"shelf_life"`
	}
)
