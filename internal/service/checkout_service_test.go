package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "canteen/internal/errors"
	"canteen/internal/model"
	"canteen/internal/notify"
	"canteen/internal/session"
)

func newCheckoutFixture() (*MockMenuRepository, *MockQueueRepository, *MockPaymentGateway, *eventRecorder, CheckoutService) {
	menuRepo := new(MockMenuRepository)
	menuRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.MenuItem{ID: 1, Name: "Borsch", Price: decimal.NewFromInt(1500)}, nil)
	queueRepo := new(MockQueueRepository)
	gateway := new(MockPaymentGateway)
	events := &eventRecorder{}
	svc := NewCheckoutService(NewCartService(menuRepo), queueRepo, gateway, events)
	return menuRepo, queueRepo, gateway, events, svc
}

func TestCheckoutService_Admits(t *testing.T) {
	_, queueRepo, gateway, events, svc := newCheckoutFixture()
	gateway.On("Charge", mock.Anything, "Ivan", mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(decimal.NewFromInt(3000))
	})).Return(true, nil)
	queueRepo.On("Create", mock.Anything, mock.MatchedBy(func(e *model.QueueEntry) bool {
		return e.Name == "Ivan" && e.Status == model.QueueStatusWaiting
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*model.QueueEntry).ID = 7
	}).Return(nil)
	queueRepo.On("CountWaitingUpTo", mock.Anything, uint(7)).Return(int64(2), nil)

	sess := session.New()
	sess.AddToCart(1, 2)

	admission, err := svc.Checkout(context.Background(), sess, "  Ivan ")
	require.NoError(t, err)
	assert.Equal(t, uint(7), admission.EntryID)
	assert.Equal(t, 2, admission.Position)
	assert.Empty(t, sess.Cart())
	require.Len(t, events.events, 1)
	assert.Equal(t, notify.EventJoined, events.events[0].Type)
	assert.Equal(t, 2, events.events[0].Position)

	gateway.AssertExpectations(t)
	queueRepo.AssertExpectations(t)
}

func TestCheckoutService_DeclinedPaymentKeepsCart(t *testing.T) {
	_, queueRepo, gateway, events, svc := newCheckoutFixture()
	gateway.On("Charge", mock.Anything, "Ivan", mock.Anything).Return(false, nil)

	sess := session.New()
	sess.AddToCart(1, 2)

	admission, err := svc.Checkout(context.Background(), sess, "Ivan")
	assert.ErrorIs(t, err, apperrors.ErrPaymentDeclined)
	assert.Nil(t, admission)
	assert.Equal(t, 2, sess.Cart().Quantity(1))
	assert.Empty(t, events.events)
	queueRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCheckoutService_GatewayErrorKeepsCart(t *testing.T) {
	_, queueRepo, gateway, _, svc := newCheckoutFixture()
	gateway.On("Charge", mock.Anything, mock.Anything, mock.Anything).Return(false, errors.New("gateway timeout"))

	sess := session.New()
	sess.AddToCart(1, 1)

	_, err := svc.Checkout(context.Background(), sess, "Ivan")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrPaymentDeclined)
	assert.Equal(t, 1, sess.Cart().Quantity(1))
	queueRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCheckoutService_StoreFailureKeepsCart(t *testing.T) {
	_, queueRepo, gateway, _, svc := newCheckoutFixture()
	gateway.On("Charge", mock.Anything, mock.Anything, mock.Anything).Return(true, nil)
	queueRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("disk full"))

	sess := session.New()
	sess.AddToCart(1, 1)

	_, err := svc.Checkout(context.Background(), sess, "Ivan")
	assert.Error(t, err)
	assert.Equal(t, 1, sess.Cart().Quantity(1))
}

func TestApprovingGateway(t *testing.T) {
	ok, err := ApprovingGateway{}.Charge(context.Background(), "", decimal.Zero)
	assert.NoError(t, err)
	assert.True(t, ok)
}
