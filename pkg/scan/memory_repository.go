package scan

import (
	"context"
	"sync"

	"github.com/simmi-91/freezer-storage-app/entities"

	"gorm.io/gorm"
)

// memoryScanRepository mirrors the database repository for runs without a
// reachable database.
type memoryScanRepository struct {
	mu    sync.Mutex
	scans map[string]entities.PhotoScan
}

func NewMemoryScanRepository() ScanRepository {
	return &memoryScanRepository{scans: make(map[string]entities.PhotoScan)}
}

func (r *memoryScanRepository) CreateScan(_ context.Context, photoScan *entities.PhotoScan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scans[photoScan.ID.String()] = *photoScan
	return nil
}

func (r *memoryScanRepository) GetScanByID(_ context.Context, id string) (*entities.PhotoScan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	photoScan, ok := r.scans[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &photoScan, nil
}

func (r *memoryScanRepository) UpdateScan(_ context.Context, photoScan *entities.PhotoScan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.scans[photoScan.ID.String()]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.scans[photoScan.ID.String()] = *photoScan
	return nil
}
