package main

import (
	"log"
	"net/http"

	_ "agenda/docs" // swagger docs

	"github.com/labstack/echo/v4"

	"agenda/internal/auth"
	"agenda/internal/cache"
	"agenda/internal/config"
	"agenda/internal/db"
	"agenda/internal/handler"
	"agenda/internal/model"
	"agenda/internal/repository"
	"agenda/internal/router"
	"agenda/internal/service"
)

// @title Agenda API
// @version 1.0
// @description Contacts and cards CRUD with signup/login issuing JWT bearer tokens.
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.Contact{},
		&model.Card{},
		&model.Account{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	contactRepo := repository.NewContactRepository(gormDB)
	cardRepo := repository.NewCardRepository(gormDB)
	accountRepo := repository.NewAccountRepository(gormDB)

	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Initialize services
	contactService := service.NewContactService(contactRepo, cacheClient)
	cardService := service.NewCardService(cardRepo, cacheClient)
	authService := service.NewAuthService(accountRepo, jwtService)

	// Initialize handlers
	contactHandler := handler.NewContactHandler(contactService)
	cardHandler := handler.NewCardHandler(cardService)
	authHandler := handler.NewAuthHandler(authService)

	// Register routes
	router.Register(
		e,
		cfg,
		jwtService,
		contactHandler,
		cardHandler,
		authHandler,
	)

	if cfg.SwaggerHost != "" {
		log.Printf("Swagger documentation available at: %s/swagger/index.html", cfg.SwaggerHost)
	} else {
		log.Printf("Swagger documentation available at: http://localhost:%s/swagger/index.html", cfg.ServerPort)
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
