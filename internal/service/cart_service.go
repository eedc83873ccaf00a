package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"canteen/internal/errors"
	"canteen/internal/model"
	"canteen/internal/repository"
	"canteen/internal/session"
)

// CartService manages the session cart.
type CartService interface {
	Add(ctx context.Context, sess *session.Session, itemID uint, rawQuantity string) (*model.MenuItem, int, error)
	View(ctx context.Context, sess *session.Session) (*model.CartView, error)
	Clear(sess *session.Session)
	Count(sess *session.Session) int
}

type cartService struct {
	menuRepo repository.MenuRepository
}

// NewCartService creates a new cart service.
func NewCartService(menuRepo repository.MenuRepository) CartService {
	return &cartService{menuRepo: menuRepo}
}

// Add puts quantity units of the item into the cart. On any error the cart
// is left untouched.
func (s *cartService) Add(ctx context.Context, sess *session.Session, itemID uint, rawQuantity string) (*model.MenuItem, int, error) {
	quantity, err := parseQuantity(rawQuantity)
	if err != nil {
		return nil, 0, err
	}

	item, err := s.menuRepo.FindByID(ctx, itemID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, 0, errors.ErrMenuItemNotFound
		}
		return nil, 0, fmt.Errorf("find menu item: %w", err)
	}

	if sess.Cart().Quantity(item.ID)+quantity > MaxCartQuantity {
		return nil, 0, errors.ErrInvalidQuantity
	}
	sess.AddToCart(item.ID, quantity)
	return item, quantity, nil
}

// View prices the cart at current menu prices. Items that no longer exist
// are left out of the view but stay in the stored cart.
func (s *cartService) View(ctx context.Context, sess *session.Session) (*model.CartView, error) {
	cart := sess.Cart()
	view := &model.CartView{Lines: []model.CartLine{}, Total: decimal.Zero}

	for _, id := range cart.ItemIDs() {
		item, err := s.menuRepo.FindByID(ctx, id)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				continue
			}
			return nil, fmt.Errorf("find menu item %d: %w", id, err)
		}
		quantity := cart.Quantity(id)
		subtotal := item.Price.Mul(decimal.NewFromInt(int64(quantity)))
		view.Lines = append(view.Lines, model.CartLine{
			ItemID:   item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: quantity,
			Subtotal: subtotal,
		})
		view.Total = view.Total.Add(subtotal)
	}
	return view, nil
}

// Clear empties the cart.
func (s *cartService) Clear(sess *session.Session) {
	sess.ClearCart()
}

// Count returns the number of units in the cart.
func (s *cartService) Count(sess *session.Session) int {
	return sess.Cart().Units()
}

// MaxCartQuantity caps the units of one item held in a cart.
const MaxCartQuantity = 999

// parseQuantity defaults a blank quantity to 1 and rejects anything that is
// not an integer in 1..MaxCartQuantity.
func parseQuantity(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 1, nil
	}
	quantity, err := strconv.Atoi(raw)
	if err != nil || quantity <= 0 || quantity > MaxCartQuantity {
		return 0, errors.ErrInvalidQuantity
	}
	return quantity, nil
}
