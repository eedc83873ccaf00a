package main

import (
	"context"
	"fmt"
	"log"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"canteen/internal/config"
	"canteen/internal/db"
	"canteen/internal/model"
	"canteen/internal/repository"
	"canteen/internal/service"
)

const (
	adminUsername = "admin"
	adminEmail    = "admin@canteen.kz"
	adminPassword = "1234"
)

// initialMenu is loaded into an empty menu table.
var initialMenu = []struct {
	Name  string
	Price int64
}{
	{"Борщ с говядиной", 1500},
	{"Плов 'Узбекский'", 2800},
	{"Салат Цезарь", 1800},
	{"Компот из сухофруктов", 500},
	{"Хлеб белый", 100},
}

func main() {
	log.Println("Starting seed script...")

	// Load configuration
	cfg := config.Load()

	// Connect to database
	gormDB, err := db.Open(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := db.Migrate(gormDB, cfg.ResetDB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	created, err := seedAdmin(ctx, repository.NewUserRepository(gormDB))
	if err != nil {
		log.Fatalf("Failed to seed admin: %v", err)
	}
	if created {
		log.Printf("Administrator %q created", adminUsername)
	} else {
		log.Printf("Administrator %q already exists", adminUsername)
	}

	added, err := seedMenu(ctx, repository.NewMenuRepository(gormDB))
	if err != nil {
		log.Fatalf("Failed to seed menu: %v", err)
	}
	log.Printf("Seed completed successfully!")
	log.Printf("  - Menu items created: %d", added)
}

// seedAdmin creates the administrator account unless it already exists.
func seedAdmin(ctx context.Context, repo repository.UserRepository) (bool, error) {
	_, err := repo.FindByUsername(ctx, adminUsername)
	if err == nil {
		return false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return false, fmt.Errorf("error checking admin: %w", err)
	}

	hash, err := service.HashPassword(adminPassword)
	if err != nil {
		return false, err
	}
	admin := &model.User{
		Username:     adminUsername,
		Email:        adminEmail,
		PasswordHash: hash,
		IsAdmin:      true,
	}
	if err := repo.Create(ctx, admin); err != nil {
		return false, fmt.Errorf("error creating admin: %w", err)
	}
	return true, nil
}

// seedMenu fills an empty menu. A menu that already has items is left alone.
func seedMenu(ctx context.Context, repo repository.MenuRepository) (int, error) {
	count, err := repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("error counting menu items: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	for _, entry := range initialMenu {
		item := &model.MenuItem{Name: entry.Name, Price: decimal.NewFromInt(entry.Price)}
		if err := repo.Create(ctx, item); err != nil {
			return 0, fmt.Errorf("error creating menu item %q: %w", entry.Name, err)
		}
	}
	return len(initialMenu), nil
}
