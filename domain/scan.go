package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessUploadPhoto = "photo uploaded successfully"
	MessageSuccessGetScan     = "scan retrieved successfully"
	MessageSuccessSaveScanned = "recognized items saved"

	MessageFailedUploadPhoto = "failed to upload photo"
	MessageFailedGetScan     = "failed to retrieve scan"
	MessageFailedSaveScanned = "failed to save recognized items"

	ErrParseUUID         = errors.New("failed to parse UUID")
	ErrInvalidPhotoScan  = errors.New("invalid photo scan ID")
	ErrRecognitionFailed = errors.New("photo recognition failed")
)

type (
	UploadPhotoRequest struct {
		Image *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	UploadPhotoResponse struct {
		ScanID   string `json:"scan_id"`
		ImageURL string `json:"image_url"`
		Status   string `json:"status"`
	}

	// RecognizedItem is the recognizer's untrusted draft output; saving it
	// goes through the same validation as any manual create.
	RecognizedItem struct {
		Name       string  `json:"name"`
		Category   string  `json:"category"`
		Quantity   float64 `json:"quantity"`
		Unit       string  `json:"unit"`
		ExpiryDate string  `json:"expiry_date"`
		Confidence float64 `json:"confidence"`
	}

	ScanResponse struct {
		ScanID   string           `json:"scan_id"`
		ImageURL string           `json:"image_url"`
		Status   string           `json:"status"`
		Items    []RecognizedItem `json:"items,omitempty"`
		Error    string           `json:"error,omitempty"`
	}

	SaveScannedItemsRequest struct {
		Items []AddItemRequest `json:"items" validate:"required,min=1,dive"`
	}
)
