package repository

import (
	"context"

	"gorm.io/gorm"

	"canteen/internal/model"
)

// MenuRepository defines menu item persistence operations.
type MenuRepository interface {
	Create(ctx context.Context, item *model.MenuItem) error
	Update(ctx context.Context, item *model.MenuItem) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.MenuItem, error)
	List(ctx context.Context) ([]model.MenuItem, error)
	Count(ctx context.Context) (int64, error)
}

type menuRepository struct {
	db *gorm.DB
}

// NewMenuRepository creates a new menu repository.
func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{db: db}
}

// Create creates a new menu item.
func (r *menuRepository) Create(ctx context.Context, item *model.MenuItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// Update updates an existing menu item.
func (r *menuRepository) Update(ctx context.Context, item *model.MenuItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// Delete removes a menu item. It returns gorm.ErrRecordNotFound when no row matched.
func (r *menuRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.MenuItem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// FindByID finds a menu item by ID.
func (r *menuRepository) FindByID(ctx context.Context, id uint) (*model.MenuItem, error) {
	var item model.MenuItem
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// List returns all menu items ordered by ID.
func (r *menuRepository) List(ctx context.Context) ([]model.MenuItem, error) {
	var items []model.MenuItem
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Count returns the number of menu items.
func (r *menuRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.MenuItem{}).Count(&count).Error
	return count, err
}
