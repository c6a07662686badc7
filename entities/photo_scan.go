package entities

import (
	"github.com/google/uuid"
)

type PhotoScan struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ImageURL string    `json:"image_url"`
	Status   string    `json:"status"` // "Pending", "Processed", "Failed"
	Results  string    `json:"results,omitempty" gorm:"type:text"`

	Timestamp
}
