package service

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"canteen/internal/db"
	"canteen/internal/model"
	"canteen/internal/repository"
	"canteen/internal/session"
)

type workflow struct {
	menu     MenuService
	carts    CartService
	checkout CheckoutService
	queue    QueueService
	queueDB  repository.QueueRepository
}

func newWorkflow(t *testing.T) *workflow {
	t.Helper()
	gormDB, err := db.NewSQLite(":memory:")
	require.NoError(t, err)
	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.Migrate(gormDB, false))
	t.Cleanup(func() { _ = sqlDB.Close() })

	menuRepo := repository.NewMenuRepository(gormDB)
	queueRepo := repository.NewQueueRepository(gormDB)
	carts := NewCartService(menuRepo)
	return &workflow{
		menu:     NewMenuService(menuRepo, nil),
		carts:    carts,
		checkout: NewCheckoutService(carts, queueRepo, ApprovingGateway{}, nil),
		queue:    NewQueueService(queueRepo, nil),
		queueDB:  queueRepo,
	}
}

func TestWorkflow_CartToQueue(t *testing.T) {
	ctx := context.Background()
	w := newWorkflow(t)

	a, err := w.menu.Create(ctx, admin, "A", "1500")
	require.NoError(t, err)
	require.NoError(t, w.queueDB.Create(ctx, &model.QueueEntry{Name: "earlier", Status: model.QueueStatusWaiting}))

	sess := session.New()
	_, _, err = w.carts.Add(ctx, sess, a.ID, "2")
	require.NoError(t, err)
	assert.Equal(t, session.Cart{session.Key(a.ID): 2}, sess.Cart())

	view, err := w.carts.View(ctx, sess)
	require.NoError(t, err)
	require.Len(t, view.Lines, 1)
	assert.True(t, view.Lines[0].Subtotal.Equal(decimal.NewFromInt(3000)))
	assert.True(t, view.Total.Equal(decimal.NewFromInt(3000)))

	admission, err := w.checkout.Checkout(ctx, sess, "Ivan")
	require.NoError(t, err)
	assert.Equal(t, 2, admission.Position)
	assert.Empty(t, sess.Cart())

	entry, err := w.queue.Get(ctx, admission.EntryID)
	require.NoError(t, err)
	assert.Equal(t, "Ivan", entry.Name)
	assert.Equal(t, model.QueueStatusWaiting, entry.Status)
}

func TestWorkflow_PriceChangeRepricesCart(t *testing.T) {
	ctx := context.Background()
	w := newWorkflow(t)

	item, err := w.menu.Create(ctx, admin, "Plov", "2800")
	require.NoError(t, err)
	sess := session.New()
	_, _, err = w.carts.Add(ctx, sess, item.ID, "1")
	require.NoError(t, err)

	_, err = w.menu.Update(ctx, admin, item.ID, "Plov", "3000")
	require.NoError(t, err)
	view, err := w.carts.View(ctx, sess)
	require.NoError(t, err)
	assert.True(t, view.Total.Equal(decimal.NewFromInt(3000)))

	_, err = w.menu.Delete(ctx, admin, item.ID)
	require.NoError(t, err)
	view, err = w.carts.View(ctx, sess)
	require.NoError(t, err)
	assert.Empty(t, view.Lines)
	assert.Equal(t, 1, sess.Cart().Quantity(item.ID))
}

func TestWorkflow_ServeRestoreDelete(t *testing.T) {
	ctx := context.Background()
	w := newWorkflow(t)

	var admissions []*model.Admission
	for _, name := range []string{"first", "second", "third"} {
		a, err := w.checkout.Checkout(ctx, session.New(), name)
		require.NoError(t, err)
		admissions = append(admissions, a)
	}
	assert.Equal(t, []int{1, 2, 3}, []int{admissions[0].Position, admissions[1].Position, admissions[2].Position})

	_, err := w.queue.MarkDone(ctx, admin, admissions[0].EntryID)
	require.NoError(t, err)

	waiting, err := w.queue.Waiting(ctx)
	require.NoError(t, err)
	assert.Equal(t, []uint{admissions[1].EntryID, admissions[2].EntryID}, ids(waiting))
	done, err := w.queue.Done(ctx)
	require.NoError(t, err)
	assert.Equal(t, []uint{admissions[0].EntryID}, ids(done))

	// a newcomer ranks behind the two still waiting
	late, err := w.checkout.Checkout(ctx, session.New(), "late")
	require.NoError(t, err)
	assert.Equal(t, 3, late.Position)

	_, err = w.queue.Restore(ctx, admin, admissions[0].EntryID)
	require.NoError(t, err)
	waiting, err = w.queue.Waiting(ctx)
	require.NoError(t, err)
	assert.Len(t, waiting, 4)
	done, err = w.queue.Done(ctx)
	require.NoError(t, err)
	assert.Empty(t, done)

	_, err = w.queue.Delete(ctx, admin, admissions[1].EntryID)
	require.NoError(t, err)
	waiting, err = w.queue.Waiting(ctx)
	require.NoError(t, err)
	assert.NotContains(t, ids(waiting), admissions[1].EntryID)
	done, err = w.queue.Done(ctx)
	require.NoError(t, err)
	assert.NotContains(t, ids(done), admissions[1].EntryID)
}

func TestWorkflow_ConcurrentCheckoutsGetDistinctPositions(t *testing.T) {
	ctx := context.Background()
	w := newWorkflow(t)

	const n = 10
	positions := make([]int, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			a, err := w.checkout.Checkout(ctx, session.New(), "")
			if assert.NoError(t, err) {
				positions[i] = a.Position
			}
		}(i)
	}
	wg.Wait()

	seen := make(map[int]bool)
	for _, p := range positions {
		assert.False(t, seen[p], "duplicate position %d", p)
		seen[p] = true
	}
	for p := 1; p <= n; p++ {
		assert.True(t, seen[p])
	}
}

func ids(entries []model.QueueEntry) []uint {
	out := make([]uint, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.ID)
	}
	return out
}
