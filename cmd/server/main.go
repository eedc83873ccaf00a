package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"canteen/docs"
	"canteen/internal/auth"
	"canteen/internal/cache"
	"canteen/internal/config"
	"canteen/internal/db"
	"canteen/internal/handler"
	"canteen/internal/notify"
	"canteen/internal/repository"
	"canteen/internal/router"
	"canteen/internal/service"
	"canteen/internal/session"
	"canteen/internal/view"
)

// @title Canteen API
// @version 1.0
// @description Canteen ordering: menu, session cart, payment and the serving queue.
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gormDB, err := db.Open(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	if cfg.ResetDB {
		log.Println("RESET_DB=true detected, dropping all tables...")
	}
	if err := db.Migrate(gormDB, cfg.ResetDB); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()
	if err := cacheClient.Ping(ctx); err != nil {
		log.Printf("redis unavailable, running without cache: %v", err)
	}

	// Queue events go to live displays and, when configured, the broker
	hub := notify.NewHub()
	go hub.Run(ctx)
	events := notify.Multi{hub}
	if cfg.AMQPURL != "" {
		publisher, err := notify.DialAMQP(cfg.AMQPURL)
		if err != nil {
			log.Printf("amqp disabled: %v", err)
		} else {
			defer publisher.Close()
			events = append(events, publisher)
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	menuRepo := repository.NewMenuRepository(gormDB)
	queueRepo := repository.NewQueueRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)
	sessions := session.NewStore(cfg.SessionSecret, cfg.CookieSecure)

	// Initialize services
	userService := service.NewUserService(userRepo, cacheClient)
	authService := service.NewAuthService(userRepo, userService, jwtService, tokenStore)
	menuService := service.NewMenuService(menuRepo, cacheClient)
	cartService := service.NewCartService(menuRepo)
	queueService := service.NewQueueService(queueRepo, events)
	checkoutService := service.NewCheckoutService(cartService, queueRepo, service.ApprovingGateway{}, events)

	renderer, err := view.NewRenderer(view.Location(cfg.DisplayTimezone))
	if err != nil {
		log.Fatalf("templates: %v", err)
	}

	e := echo.New()
	e.Renderer = renderer

	// Initialize handlers
	layout := handler.NewLayout(cartService)
	router.Register(e, cfg, sessions, jwtService, authService, router.Handlers{
		Shop:    handler.NewShopHandler(layout, menuService, cartService, checkoutService, queueService),
		Admin:   handler.NewAdminHandler(layout, menuService, queueService),
		Auth:    handler.NewAuthHandler(authService, cfg.CookieSecure),
		Profile: handler.NewProfileHandler(layout, userService),
		API:     handler.NewAPIHandler(menuService, queueService, hub),
	})

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "https://"), "http://")
	}
	log.Printf("Swagger documentation available at: %s", swaggerURL(cfg))

	go func() {
		addr := ":" + cfg.ServerPort
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server start: %v", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
}

// swaggerURL builds the docs URL. SwaggerHost may already include a scheme.
func swaggerURL(cfg *config.Config) string {
	host := cfg.SwaggerHost
	if host == "" {
		host = "localhost:" + cfg.ServerPort
	}
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "http://" + host
	}
	return host + "/swagger/index.html"
}
