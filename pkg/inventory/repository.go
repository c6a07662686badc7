package inventory

import (
	"context"

	"github.com/simmi-91/freezer-storage-app/entities"

	"gorm.io/gorm"
)

type (
	// ItemRepository is the backing-store contract. Insert assigns the ID;
	// Replace and Remove report gorm.ErrRecordNotFound when the row is gone.
	ItemRepository interface {
		ListAll(ctx context.Context) ([]entities.FreezerItem, error)
		Insert(ctx context.Context, item *entities.FreezerItem) error
		Replace(ctx context.Context, item *entities.FreezerItem) error
		Remove(ctx context.Context, id uint) error
	}

	itemRepository struct {
		db *gorm.DB
	}
)

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) ListAll(ctx context.Context) ([]entities.FreezerItem, error) {
	var items []entities.FreezerItem
	if err := r.db.WithContext(ctx).Order("id asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepository) Insert(ctx context.Context, item *entities.FreezerItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itemRepository) Replace(ctx context.Context, item *entities.FreezerItem) error {
	res := r.db.WithContext(ctx).Model(&entities.FreezerItem{}).
		Where("id = ?", item.ID).
		Select("*").Omit("id", "created_at").
		Updates(item)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *itemRepository) Remove(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.FreezerItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
