package domain

import (
	"errors"
)

var (
	MessageSuccessNavigate = "navigation applied"
	MessageFailedNavigate  = "failed to navigate"

	ErrUnknownScreen = errors.New("unknown screen")
	ErrNotOnForm     = errors.New("current screen is not a form")
)

type Screen string

const (
	ScreenDashboard    Screen = "dashboard"
	ScreenBrowseList   Screen = "browse"
	ScreenAddForm      Screen = "add"
	ScreenEditForm     Screen = "edit"
	ScreenPhotoCapture Screen = "photo"
)

// ViewMode is the tagged state describing the active screen. ItemID is set
// only for the edit form; Category and Sort only for a pre-filtered browse
// list.
type ViewMode struct {
	Screen   Screen   `json:"screen"`
	ItemID   uint     `json:"item_id,omitempty"`
	Category Category `json:"category,omitempty"`
	Sort     SortKey  `json:"sort,omitempty"`
}

type (
	NavigateRequest struct {
		Screen   string `json:"screen" validate:"required"`
		ItemID   uint   `json:"item_id"`
		Category string `json:"category"`
		Sort     string `json:"sort"`
	}

	ViewModeResponse struct {
		Current ViewMode `json:"current"`
		Depth   int      `json:"history_depth"`
	}
)
