package scan

import (
	"context"

	"github.com/simmi-91/freezer-storage-app/entities"

	"gorm.io/gorm"
)

type (
	ScanRepository interface {
		CreateScan(ctx context.Context, photoScan *entities.PhotoScan) error
		GetScanByID(ctx context.Context, id string) (*entities.PhotoScan, error)
		UpdateScan(ctx context.Context, photoScan *entities.PhotoScan) error
	}

	scanRepository struct {
		db *gorm.DB
	}
)

func NewScanRepository(db *gorm.DB) ScanRepository {
	return &scanRepository{db: db}
}

func (r *scanRepository) CreateScan(ctx context.Context, photoScan *entities.PhotoScan) error {
	return r.db.WithContext(ctx).Create(photoScan).Error
}

func (r *scanRepository) GetScanByID(ctx context.Context, id string) (*entities.PhotoScan, error) {
	var photoScan entities.PhotoScan
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&photoScan).Error; err != nil {
		return nil, err
	}
	return &photoScan, nil
}

func (r *scanRepository) UpdateScan(ctx context.Context, photoScan *entities.PhotoScan) error {
	return r.db.WithContext(ctx).Save(photoScan).Error
}
