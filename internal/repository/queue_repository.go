package repository

import (
	"context"

	"gorm.io/gorm"

	"canteen/internal/model"
)

// QueueRepository defines queue entry persistence operations.
type QueueRepository interface {
	Create(ctx context.Context, entry *model.QueueEntry) error
	FindByID(ctx context.Context, id uint) (*model.QueueEntry, error)
	UpdateStatus(ctx context.Context, id uint, status model.QueueStatus) error
	Delete(ctx context.Context, id uint) error
	ListWaiting(ctx context.Context) ([]model.QueueEntry, error)
	ListDone(ctx context.Context, limit int) ([]model.QueueEntry, error)
	CountWaitingUpTo(ctx context.Context, id uint) (int64, error)
}

type queueRepository struct {
	db *gorm.DB
}

// NewQueueRepository creates a new queue repository.
func NewQueueRepository(db *gorm.DB) QueueRepository {
	return &queueRepository{db: db}
}

// Create creates a new queue entry.
func (r *queueRepository) Create(ctx context.Context, entry *model.QueueEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// FindByID finds a queue entry by ID.
func (r *queueRepository) FindByID(ctx context.Context, id uint) (*model.QueueEntry, error) {
	var entry model.QueueEntry
	if err := r.db.WithContext(ctx).First(&entry, id).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// UpdateStatus sets the status of an entry.
func (r *queueRepository) UpdateStatus(ctx context.Context, id uint, status model.QueueStatus) error {
	return r.db.WithContext(ctx).Model(&model.QueueEntry{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// Delete removes an entry. It returns gorm.ErrRecordNotFound when no row matched.
func (r *queueRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.QueueEntry{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListWaiting returns waiting entries, oldest first.
func (r *queueRepository) ListWaiting(ctx context.Context) ([]model.QueueEntry, error) {
	var entries []model.QueueEntry
	err := r.db.WithContext(ctx).
		Where("status = ?", model.QueueStatusWaiting).
		Order("created_at ASC").Order("id ASC").
		Find(&entries).Error
	return entries, err
}

// ListDone returns the most recent served entries, newest first.
func (r *queueRepository) ListDone(ctx context.Context, limit int) ([]model.QueueEntry, error) {
	var entries []model.QueueEntry
	err := r.db.WithContext(ctx).
		Where("status = ?", model.QueueStatusDone).
		Order("created_at DESC").Order("id DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}

// CountWaitingUpTo counts waiting entries whose ID is not greater than id.
func (r *queueRepository) CountWaitingUpTo(ctx context.Context, id uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.QueueEntry{}).
		Where("status = ? AND id <= ?", model.QueueStatusWaiting, id).
		Count(&count).Error
	return count, err
}
