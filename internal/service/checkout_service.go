package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"canteen/internal/errors"
	"canteen/internal/model"
	"canteen/internal/notify"
	"canteen/internal/repository"
	"canteen/internal/session"
)

// CheckoutService turns a paid cart into a place in the serving queue.
type CheckoutService interface {
	Checkout(ctx context.Context, sess *session.Session, customerName string) (*model.Admission, error)
}

type checkoutService struct {
	carts     CartService
	queueRepo repository.QueueRepository
	payments  PaymentGateway
	events    notify.Publisher
	// admission serializes insert+count so two checkouts in this process
	// never observe the same position
	admission sync.Mutex
}

// NewCheckoutService creates a new checkout service.
func NewCheckoutService(carts CartService, queueRepo repository.QueueRepository, payments PaymentGateway, events notify.Publisher) CheckoutService {
	if payments == nil {
		payments = ApprovingGateway{}
	}
	if events == nil {
		events = notify.Nop{}
	}
	return &checkoutService{
		carts:     carts,
		queueRepo: queueRepo,
		payments:  payments,
		events:    events,
	}
}

// Checkout charges the cart total, admits the customer to the queue and
// empties the cart. A declined payment leaves the cart as it was.
func (s *checkoutService) Checkout(ctx context.Context, sess *session.Session, customerName string) (*model.Admission, error) {
	view, err := s.carts.View(ctx, sess)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(customerName)

	approved, err := s.payments.Charge(ctx, name, view.Total)
	if err != nil {
		return nil, fmt.Errorf("charge: %w", err)
	}
	if !approved {
		return nil, errors.ErrPaymentDeclined
	}

	admission, err := s.admit(ctx, name)
	if err != nil {
		return nil, err
	}

	s.carts.Clear(sess)
	s.events.Publish(ctx, notify.Event{
		Type:     notify.EventJoined,
		EntryID:  admission.EntryID,
		Name:     name,
		Position: admission.Position,
		At:       time.Now().UTC(),
	})
	return admission, nil
}

// admit creates a waiting entry and ranks it among waiting entries by ID.
func (s *checkoutService) admit(ctx context.Context, name string) (*model.Admission, error) {
	s.admission.Lock()
	defer s.admission.Unlock()

	entry := &model.QueueEntry{Name: name, Status: model.QueueStatusWaiting}
	if err := s.queueRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("create queue entry: %w", err)
	}
	position, err := s.queueRepo.CountWaitingUpTo(ctx, entry.ID)
	if err != nil {
		return nil, fmt.Errorf("count queue position: %w", err)
	}
	return &model.Admission{EntryID: entry.ID, Position: int(position)}, nil
}
