package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"canteen/internal/errors"
	"canteen/internal/model"
	"canteen/internal/notify"
	"canteen/internal/repository"
)

// DoneListLimit caps how many served entries the admin panel shows.
const DoneListLimit = 20

// QueueService lists and administers the serving queue.
type QueueService interface {
	Waiting(ctx context.Context) ([]model.QueueEntry, error)
	Done(ctx context.Context) ([]model.QueueEntry, error)
	Get(ctx context.Context, id uint) (*model.QueueEntry, error)
	MarkDone(ctx context.Context, actor *model.User, id uint) (*model.QueueEntry, error)
	Restore(ctx context.Context, actor *model.User, id uint) (*model.QueueEntry, error)
	Delete(ctx context.Context, actor *model.User, id uint) (*model.QueueEntry, error)
}

type queueService struct {
	repo   repository.QueueRepository
	events notify.Publisher
}

// NewQueueService creates a new queue service.
func NewQueueService(repo repository.QueueRepository, events notify.Publisher) QueueService {
	if events == nil {
		events = notify.Nop{}
	}
	return &queueService{repo: repo, events: events}
}

// Waiting returns waiting entries in arrival order.
func (s *queueService) Waiting(ctx context.Context) ([]model.QueueEntry, error) {
	entries, err := s.repo.ListWaiting(ctx)
	if err != nil {
		return nil, fmt.Errorf("list waiting: %w", err)
	}
	return entries, nil
}

// Done returns the most recently served entries, newest first.
func (s *queueService) Done(ctx context.Context) ([]model.QueueEntry, error) {
	entries, err := s.repo.ListDone(ctx, DoneListLimit)
	if err != nil {
		return nil, fmt.Errorf("list done: %w", err)
	}
	return entries, nil
}

// Get returns one entry.
func (s *queueService) Get(ctx context.Context, id uint) (*model.QueueEntry, error) {
	entry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrQueueEntryNotFound
		}
		return nil, fmt.Errorf("find queue entry: %w", err)
	}
	return entry, nil
}

// MarkDone moves an entry to done.
func (s *queueService) MarkDone(ctx context.Context, actor *model.User, id uint) (*model.QueueEntry, error) {
	return s.transition(ctx, actor, id, model.QueueStatusDone, notify.EventServed)
}

// Restore moves an entry back to waiting.
func (s *queueService) Restore(ctx context.Context, actor *model.User, id uint) (*model.QueueEntry, error) {
	return s.transition(ctx, actor, id, model.QueueStatusWaiting, notify.EventRestored)
}

// Delete removes an entry permanently.
func (s *queueService) Delete(ctx context.Context, actor *model.User, id uint) (*model.QueueEntry, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	entry, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrQueueEntryNotFound
		}
		return nil, fmt.Errorf("delete queue entry: %w", err)
	}
	s.publish(ctx, notify.EventRemoved, entry)
	return entry, nil
}

// transition applies a status change. There is no precondition on the
// current status beyond the entry existing; concurrent admins race and the
// last write wins.
func (s *queueService) transition(ctx context.Context, actor *model.User, id uint, status model.QueueStatus, eventType string) (*model.QueueEntry, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	entry, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, fmt.Errorf("update queue entry status: %w", err)
	}
	entry.Status = status
	s.publish(ctx, eventType, entry)
	return entry, nil
}

func (s *queueService) publish(ctx context.Context, eventType string, entry *model.QueueEntry) {
	s.events.Publish(ctx, notify.Event{
		Type:    eventType,
		EntryID: entry.ID,
		Name:    entry.Name,
		At:      time.Now().UTC(),
	})
}
