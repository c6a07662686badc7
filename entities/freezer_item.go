package entities

import (
	"time"
)

type FreezerItem struct {
	ID         uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string     `json:"name"`
	Category   string     `json:"category"`
	Quantity   float64    `json:"quantity"`
	Unit       string     `json:"unit"`
	DateAdded  *time.Time `json:"date_added,omitempty"` // nil means the user marked it unknown
	ExpiryDate time.Time  `json:"expiry_date"`
	Notes      string     `json:"notes"`

	Timestamp
}
