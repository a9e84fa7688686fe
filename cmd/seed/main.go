package main

import (
	"context"
	"log"

	"github.com/shopspring/decimal"

	"agenda/internal/config"
	"agenda/internal/db"
	"agenda/internal/model"
	"agenda/internal/repository"
)

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.Contact{}, &model.Card{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	contactRepo := repository.NewContactRepository(gormDB)
	cardRepo := repository.NewCardRepository(gormDB)
	ctx := context.Background()

	contacts := []model.Contact{
		{FirstName: "Ana", LastName: "García", Email: "ana.garcia@example.com", Phone: "+34 600 111 222"},
		{FirstName: "Luis", LastName: "Martínez", Email: "luis.martinez@example.com", Phone: "+34 600 333 444"},
		{FirstName: "María", LastName: "López", Email: "maria.lopez@example.com", Phone: "+34 600 555 666"},
	}
	for i := range contacts {
		if err := contactRepo.Create(ctx, &contacts[i]); err != nil {
			log.Fatalf("Failed to seed contact %s: %v", contacts[i].Email, err)
		}
	}
	log.Printf("Seeded %d contacts", len(contacts))

	cards := []model.Card{
		{CardNumber: "4111 **** **** 1111", CardExpiry: "12/27", Cardholder: "Ana García", Balance: decimal.NewFromFloat(150.00)},
		{CardNumber: "5500 **** **** 0004", CardExpiry: "06/28", Cardholder: "Luis Martínez", Balance: decimal.NewFromFloat(42.50)},
	}
	for i := range cards {
		if err := cardRepo.Create(ctx, &cards[i]); err != nil {
			log.Fatalf("Failed to seed card %s: %v", cards[i].CardNumber, err)
		}
	}
	log.Printf("Seeded %d cards", len(cards))

	log.Println("Seed completed successfully!")
}
