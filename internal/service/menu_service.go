package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"canteen/internal/cache"
	"canteen/internal/errors"
	"canteen/internal/model"
	"canteen/internal/repository"
)

const (
	menuCacheKey = "menu:all"
	menuCacheTTL = 5 * time.Minute
)

// MenuService manages the canteen menu.
type MenuService interface {
	List(ctx context.Context) ([]model.MenuItem, error)
	Create(ctx context.Context, actor *model.User, name, rawPrice string) (*model.MenuItem, error)
	Update(ctx context.Context, actor *model.User, id uint, name, rawPrice string) (*model.MenuItem, error)
	Delete(ctx context.Context, actor *model.User, id uint) (*model.MenuItem, error)
	Export(ctx context.Context, actor *model.User, w io.Writer) error
}

type menuService struct {
	repo  repository.MenuRepository
	cache *cache.Client
}

// NewMenuService creates a new menu service.
func NewMenuService(repo repository.MenuRepository, cache *cache.Client) MenuService {
	return &menuService{repo: repo, cache: cache}
}

// List returns every menu item, served from cache when possible.
func (s *menuService) List(ctx context.Context) ([]model.MenuItem, error) {
	var cached []model.MenuItem
	if s.cache.GetJSON(ctx, menuCacheKey, &cached) {
		return cached, nil
	}

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list menu: %w", err)
	}
	s.cache.SetJSON(ctx, menuCacheKey, items, menuCacheTTL)
	return items, nil
}

// Create adds a menu item after validating name and price.
func (s *menuService) Create(ctx context.Context, actor *model.User, name, rawPrice string) (*model.MenuItem, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	name, price, err := validateMenuInput(name, rawPrice)
	if err != nil {
		return nil, err
	}

	item := &model.MenuItem{Name: name, Price: price}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create menu item: %w", err)
	}
	s.invalidate(ctx)
	return item, nil
}

// Update replaces name and price of an existing item.
func (s *menuService) Update(ctx context.Context, actor *model.User, id uint, name, rawPrice string) (*model.MenuItem, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	item, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	name, price, err := validateMenuInput(name, rawPrice)
	if err != nil {
		return nil, err
	}

	item.Name = name
	item.Price = price
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("update menu item: %w", err)
	}
	s.invalidate(ctx)
	return item, nil
}

// Delete removes an item and returns what was removed.
func (s *menuService) Delete(ctx context.Context, actor *model.User, id uint) (*model.MenuItem, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	item, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrMenuItemNotFound
		}
		return nil, fmt.Errorf("delete menu item: %w", err)
	}
	s.invalidate(ctx)
	return item, nil
}

// Export writes the menu as an xlsx workbook.
func (s *menuService) Export(ctx context.Context, actor *model.User, w io.Writer) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	items, err := s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("list menu: %w", err)
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Menu")
	if err != nil {
		return fmt.Errorf("add sheet: %w", err)
	}
	header := sheet.AddRow()
	for _, h := range []string{"ID", "Name", "Price", "UpdatedAt"} {
		header.AddCell().SetValue(h)
	}
	for _, item := range items {
		row := sheet.AddRow()
		row.AddCell().SetValue(item.ID)
		row.AddCell().SetValue(item.Name)
		row.AddCell().SetValue(item.Price.StringFixed(2))
		row.AddCell().SetValue(item.UpdatedAt.Format("2006-01-02 15:04:05"))
	}
	return file.Write(w)
}

func (s *menuService) find(ctx context.Context, id uint) (*model.MenuItem, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrMenuItemNotFound
		}
		return nil, fmt.Errorf("find menu item: %w", err)
	}
	return item, nil
}

// invalidate drops the cached listing. On failure the old listing may be
// served until menuCacheTTL expires.
func (s *menuService) invalidate(ctx context.Context) {
	if err := s.cache.Delete(ctx, menuCacheKey); err != nil {
		log.Printf("menu cache invalidation failed, listing may be stale for up to %s: %v", menuCacheTTL, err)
	}
}

// maxMenuPrice is the largest value a decimal(10,2) price column holds.
var maxMenuPrice = decimal.RequireFromString("99999999.99")

// validateMenuInput trims the name and parses the price; both must be present
// and the price positive, at most two decimal places and within maxMenuPrice.
func validateMenuInput(name, rawPrice string) (string, decimal.Decimal, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(rawPrice))
	if err != nil {
		return "", decimal.Zero, errors.ErrInvalidPrice
	}
	if !price.IsPositive() || !price.Equal(price.Round(2)) || price.GreaterThan(maxMenuPrice) {
		return "", decimal.Zero, errors.ErrInvalidPrice
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", decimal.Zero, errors.ErrEmptyName
	}
	return name, price, nil
}
