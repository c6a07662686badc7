package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/simmi-91/freezer-storage-app/domain"
	"github.com/simmi-91/freezer-storage-app/entities"
	"github.com/simmi-91/freezer-storage-app/pkg/expiry"

	"gorm.io/gorm"
)

type LoadState string

const (
	LoadPending LoadState = "loading"
	LoadReady   LoadState = "ready"
	LoadFailed  LoadState = "error"
)

// LoadStatus tells the rendering layer whether the canonical collection is
// usable. A failed first load is screen-fatal; later per-item failures are
// reported on the operation itself and never touch this status.
type LoadStatus struct {
	State LoadState `json:"state"`
	Error string    `json:"error,omitempty"`
}

type (
	InventoryService interface {
		Load(ctx context.Context) error
		Status() LoadStatus
		List() []entities.FreezerItem
		Get(id uint) (entities.FreezerItem, error)
		Has(id uint) bool
		AddItem(ctx context.Context, req domain.AddItemRequest) (domain.ItemResponse, error)
		UpdateItem(ctx context.Context, id uint, req domain.UpdateItemRequest) (domain.ItemResponse, error)
		DeleteItem(ctx context.Context, id uint) error
		AddItemBatch(ctx context.Context, reqs []domain.AddItemRequest) domain.BatchAddResponse
	}

	inventoryService struct {
		repo ItemRepository

		mu       sync.Mutex
		items    []entities.FreezerItem
		inflight map[uint]struct{}
		state    LoadState
		loadErr  error
	}
)

func NewInventoryService(repo ItemRepository) InventoryService {
	return &inventoryService{
		repo:     repo,
		inflight: make(map[uint]struct{}),
		state:    LoadPending,
	}
}

// Load pulls the full collection from the backing store. Until it succeeds
// the service serves an empty collection with a non-ready status.
func (s *inventoryService) Load(ctx context.Context) error {
	items, err := s.repo.ListAll(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = LoadFailed
		s.loadErr = err
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	s.items = items
	s.state = LoadReady
	s.loadErr = nil
	return nil
}

func (s *inventoryService) Status() LoadStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	status := LoadStatus{State: s.state}
	if s.loadErr != nil {
		status.Error = s.loadErr.Error()
	}
	return status
}

// List returns a snapshot of the canonical collection. It never fails; before
// a successful Load it is simply empty.
func (s *inventoryService) List() []entities.FreezerItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneItems(s.items)
}

func (s *inventoryService) Get(id uint) (entities.FreezerItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx := s.indexOf(id); idx >= 0 {
		return s.items[idx], nil
	}
	return entities.FreezerItem{}, domain.ErrItemNotFound
}

func (s *inventoryService) Has(id uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.indexOf(id) >= 0
}

func (s *inventoryService) AddItem(ctx context.Context, req domain.AddItemRequest) (domain.ItemResponse, error) {
	item, err := draftFromRequest(req)
	if err != nil {
		return domain.ItemResponse{}, err
	}

	if err := s.repo.Insert(ctx, &item); err != nil {
		return domain.ItemResponse{}, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	s.mu.Lock()
	s.items = append(s.items, item)
	s.mu.Unlock()

	return ToResponse(item, time.Now()), nil
}

func (s *inventoryService) UpdateItem(ctx context.Context, id uint, req domain.UpdateItemRequest) (domain.ItemResponse, error) {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return domain.ItemResponse{}, domain.ErrItemNotFound
	}
	if _, busy := s.inflight[id]; busy {
		s.mu.Unlock()
		return domain.ItemResponse{}, domain.ErrMutationInFlight
	}
	updated := s.items[idx]
	if err := applyChanges(&updated, req); err != nil {
		s.mu.Unlock()
		return domain.ItemResponse{}, err
	}
	s.inflight[id] = struct{}{}
	s.mu.Unlock()

	err := s.repo.Replace(ctx, &updated)

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ItemResponse{}, domain.ErrItemNotFound
		}
		return domain.ItemResponse{}, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	// Re-find: the slice may have shifted while the write was in flight.
	if idx = s.indexOf(id); idx >= 0 {
		s.items[idx] = updated
	}
	return ToResponse(updated, time.Now()), nil
}

func (s *inventoryService) DeleteItem(ctx context.Context, id uint) error {
	s.mu.Lock()
	if s.indexOf(id) < 0 {
		s.mu.Unlock()
		return domain.ErrItemNotFound
	}
	if _, busy := s.inflight[id]; busy {
		s.mu.Unlock()
		return domain.ErrMutationInFlight
	}
	s.inflight[id] = struct{}{}
	s.mu.Unlock()

	err := s.repo.Remove(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrItemNotFound
		}
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	if idx := s.indexOf(id); idx >= 0 {
		s.items = append(s.items[:idx], s.items[idx+1:]...)
	}
	return nil
}

// AddItemBatch commits each draft independently. A failure partway leaves the
// earlier creates committed and is reported per draft.
func (s *inventoryService) AddItemBatch(ctx context.Context, reqs []domain.AddItemRequest) domain.BatchAddResponse {
	var res domain.BatchAddResponse
	for i, req := range reqs {
		saved, err := s.AddItem(ctx, req)
		if err != nil {
			res.Failed = append(res.Failed, domain.BatchAddFailed{
				Index: i,
				Name:  req.Name,
				Error: err.Error(),
			})
			continue
		}
		res.Saved = append(res.Saved, saved)
	}
	return res
}

// indexOf must be called with s.mu held.
func (s *inventoryService) indexOf(id uint) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

func draftFromRequest(req domain.AddItemRequest) (entities.FreezerItem, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return entities.FreezerItem{}, domain.ErrEmptyName
	}
	category, err := domain.ParseCategory(req.Category)
	if err != nil {
		return entities.FreezerItem{}, err
	}
	if req.Quantity <= 0 {
		return entities.FreezerItem{}, domain.ErrInvalidQuantity
	}
	expiryDate, err := time.Parse(domain.DateLayout, req.ExpiryDate)
	if err != nil {
		return entities.FreezerItem{}, domain.ErrInvalidExpiryDate
	}

	var dateAdded *time.Time
	if req.DateAdded != "" {
		parsed, err := time.Parse(domain.DateLayout, req.DateAdded)
		if err != nil {
			return entities.FreezerItem{}, domain.ErrInvalidDateAdded
		}
		dateAdded = &parsed
	}

	return entities.FreezerItem{
		Name:       name,
		Category:   string(category),
		Quantity:   req.Quantity,
		Unit:       req.Unit,
		DateAdded:  dateAdded,
		ExpiryDate: expiryDate,
		Notes:      req.Notes,
	}, nil
}

func applyChanges(item *entities.FreezerItem, req domain.UpdateItemRequest) error {
	if req.Name != "" {
		name := strings.TrimSpace(req.Name)
		if name == "" {
			return domain.ErrEmptyName
		}
		item.Name = name
	}
	if req.Category != "" {
		category, err := domain.ParseCategory(req.Category)
		if err != nil {
			return err
		}
		item.Category = string(category)
	}
	if req.Quantity != 0 {
		if req.Quantity < 0 {
			return domain.ErrInvalidQuantity
		}
		item.Quantity = req.Quantity
	}
	if req.Unit != "" {
		item.Unit = req.Unit
	}
	if req.DateAdded != nil {
		if *req.DateAdded == "" {
			item.DateAdded = nil
		} else {
			parsed, err := time.Parse(domain.DateLayout, *req.DateAdded)
			if err != nil {
				return domain.ErrInvalidDateAdded
			}
			item.DateAdded = &parsed
		}
	}
	if req.ExpiryDate != "" {
		parsed, err := time.Parse(domain.DateLayout, req.ExpiryDate)
		if err != nil {
			return domain.ErrInvalidExpiryDate
		}
		item.ExpiryDate = parsed
	}
	if req.Notes != nil {
		item.Notes = *req.Notes
	}
	return nil
}

func ToResponse(item entities.FreezerItem, today time.Time) domain.ItemResponse {
	resp := domain.ItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Category:    domain.Category(item.Category),
		Quantity:    item.Quantity,
		Unit:        item.Unit,
		ExpiryDate:  item.ExpiryDate.Format(domain.DateLayout),
		Notes:       item.Notes,
		Urgency:     string(expiry.Classify(item.ExpiryDate, today)),
		UrgencyText: expiry.Label(item.ExpiryDate, today),
		CreatedAt:   item.CreatedAt,
	}
	if item.DateAdded != nil {
		resp.DateAdded = item.DateAdded.Format(domain.DateLayout)
	}
	return resp
}

func ToResponses(items []entities.FreezerItem, today time.Time) []domain.ItemResponse {
	responses := make([]domain.ItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, ToResponse(item, today))
	}
	return responses
}
