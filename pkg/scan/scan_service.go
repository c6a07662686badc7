package scan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/simmi-91/freezer-storage-app/domain"
	"github.com/simmi-91/freezer-storage-app/entities"
	"github.com/simmi-91/freezer-storage-app/internal/utils/storage"
	"github.com/simmi-91/freezer-storage-app/pkg/inventory"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ScanStatusPending   = "Pending"
	ScanStatusProcessed = "Processed"
	ScanStatusFailed    = "Failed"
	ScanStatusCompleted = "Completed"
)

type (
	ScanService interface {
		UploadPhoto(ctx context.Context, req domain.UploadPhotoRequest) (domain.UploadPhotoResponse, error)
		GetScan(ctx context.Context, id string) (domain.ScanResponse, error)
		SaveScannedItems(ctx context.Context, scanID string, req domain.SaveScannedItemsRequest) (domain.BatchAddResponse, error)
	}

	scanService struct {
		scanRepository ScanRepository
		inventory      inventory.InventoryService
		s3             storage.AwsS3
	}
)

func NewScanService(scanRepository ScanRepository, inventoryService inventory.InventoryService, s3 storage.AwsS3) ScanService {
	return &scanService{
		scanRepository: scanRepository,
		inventory:      inventoryService,
		s3:             s3,
	}
}

// UploadPhoto stores the image, records a pending scan, and kicks off
// recognition in the background. The caller polls GetScan for the outcome.
func (s *scanService) UploadPhoto(ctx context.Context, req domain.UploadPhotoRequest) (domain.UploadPhotoResponse, error) {
	scanID := uuid.New()
	fileName := fmt.Sprintf("photo-%s", scanID.String())
	objectKey, err := s.s3.UploadFile(fileName, req.Image, "photos", storage.AllowImage...)
	if err != nil {
		return domain.UploadPhotoResponse{}, err
	}

	imageURL := s.s3.GetPublicLinkKey(objectKey)

	photoScan := &entities.PhotoScan{
		ID:       scanID,
		ImageURL: imageURL,
		Status:   ScanStatusPending,
	}

	if err := s.scanRepository.CreateScan(ctx, photoScan); err != nil {
		_ = s.s3.DeleteFile(objectKey)
		return domain.UploadPhotoResponse{}, err
	}

	go func() {
		items, err := recognizeItems(context.Background(), req.Image)
		if err != nil {
			photoScan.Status = ScanStatusFailed
			photoScan.Results = fmt.Sprintf("Error: %s", err.Error())
			_ = s.scanRepository.UpdateScan(context.Background(), photoScan)
			return
		}

		resultsJSON, _ := json.Marshal(items)
		photoScan.Status = ScanStatusProcessed
		photoScan.Results = string(resultsJSON)
		_ = s.scanRepository.UpdateScan(context.Background(), photoScan)
	}()

	return domain.UploadPhotoResponse{
		ScanID:   scanID.String(),
		ImageURL: imageURL,
		Status:   ScanStatusPending,
	}, nil
}

func (s *scanService) GetScan(ctx context.Context, id string) (domain.ScanResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ScanResponse{}, domain.ErrParseUUID
	}

	photoScan, err := s.scanRepository.GetScanByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ScanResponse{}, domain.ErrInvalidPhotoScan
		}
		return domain.ScanResponse{}, err
	}

	res := domain.ScanResponse{
		ScanID:   photoScan.ID.String(),
		ImageURL: photoScan.ImageURL,
		Status:   photoScan.Status,
	}

	switch photoScan.Status {
	case ScanStatusProcessed:
		var items []domain.RecognizedItem
		if err := json.Unmarshal([]byte(photoScan.Results), &items); err != nil {
			return domain.ScanResponse{}, domain.ErrRecognitionFailed
		}
		res.Items = items
	case ScanStatusFailed:
		res.Error = photoScan.Results
	}

	return res, nil
}

// SaveScannedItems commits the reviewed drafts through the inventory service.
// Recognizer output gets no special trust: every draft is validated the same
// way a manual create is, and a failed draft never rolls back earlier ones.
func (s *scanService) SaveScannedItems(ctx context.Context, scanID string, req domain.SaveScannedItemsRequest) (domain.BatchAddResponse, error) {
	if _, err := uuid.Parse(scanID); err != nil {
		return domain.BatchAddResponse{}, domain.ErrParseUUID
	}

	photoScan, err := s.scanRepository.GetScanByID(ctx, scanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.BatchAddResponse{}, domain.ErrInvalidPhotoScan
		}
		return domain.BatchAddResponse{}, err
	}

	batch := s.inventory.AddItemBatch(ctx, req.Items)

	if len(batch.Failed) == 0 {
		photoScan.Status = ScanStatusCompleted
		if err := s.scanRepository.UpdateScan(ctx, photoScan); err != nil {
			return batch, err
		}
	}

	return batch, nil
}
