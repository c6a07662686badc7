package inventory

import (
	"context"
	"sync"

	"github.com/simmi-91/freezer-storage-app/entities"

	"gorm.io/gorm"
)

// memoryItemRepository keeps items in process memory with a monotonic ID
// counter. It stands in for the database when none is reachable and backs the
// test suite.
type memoryItemRepository struct {
	mu      sync.Mutex
	items   []entities.FreezerItem
	counter uint
}

func NewMemoryItemRepository() ItemRepository {
	return &memoryItemRepository{}
}

func (r *memoryItemRepository) ListAll(_ context.Context) ([]entities.FreezerItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return cloneItems(r.items), nil
}

func (r *memoryItemRepository) Insert(_ context.Context, item *entities.FreezerItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counter++
	item.ID = r.counter
	r.items = append(r.items, *item)
	return nil
}

func (r *memoryItemRepository) Replace(_ context.Context, item *entities.FreezerItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == item.ID {
			r.items[i] = *item
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *memoryItemRepository) Remove(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// cloneItems copies the slice so callers cannot mutate internal state.
func cloneItems(src []entities.FreezerItem) []entities.FreezerItem {
	out := make([]entities.FreezerItem, len(src))
	copy(out, src)
	return out
}
