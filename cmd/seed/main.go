package main

import (
	"context"
	"log"

	"carrental/internal/config"
	"carrental/internal/database"
	"carrental/internal/domain"
	"carrental/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := repository.Migrate(db); err != nil {
		log.Fatal("migration failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM car")
	db.Exec("DELETE FROM profiles")

	ctx := context.Background()
	cars := repository.NewCarRepository(db)
	profiles := repository.NewProfileRepository(db)

	// ================== FLEET ==================
	log.Println("Creating fleet...")
	fleet := []domain.Car{
		{
			Name:    "Toyota Camry 70",
			Photo:   "https://images.example.com/cars/camry-70.jpg",
			Details: "2.5L sedan, automatic, air conditioning, up to 5 passengers",
			Price:   175000,
		},
		{
			Name:    "Hyundai Sonata",
			Photo:   "https://images.example.com/cars/sonata.jpg",
			Details: "2.0L sedan, automatic, cruise control",
			Price:   140000,
		},
		{
			Name:    "Kia Sportage",
			Photo:   "https://images.example.com/cars/sportage.jpg",
			Details: "Crossover, all wheel drive, roomy trunk",
			Price:   196000,
		},
		{
			Name:    "Toyota Land Cruiser Prado",
			Photo:   "https://images.example.com/cars/prado.jpg",
			Details: "Off-road SUV, 7 seats, diesel",
			Price:   350000,
		},
	}
	for i := range fleet {
		if err := cars.Create(ctx, &fleet[i]); err != nil {
			log.Fatal("seed car failed:", err)
		}
		log.Printf("Car created: %s (weekly %.0f)", fleet[i].Name, fleet[i].Price)
	}

	// ================== DEMO CUSTOMER ==================
	log.Println("Creating demo customer...")
	hash, err := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}
	demo := domain.Profile{
		Username:     "demo",
		FullName:     "Demo Customer",
		Age:          25,
		Citizenship:  "Kazakhstan",
		Gender:       "other",
		PasswordHash: string(hash),
	}
	if err := profiles.Create(ctx, &demo); err != nil {
		log.Fatal("seed profile failed:", err)
	}
	log.Println("Customer created: demo / demo1234")

	log.Printf("Admin account comes from config: %s", cfg.AdminUsername)
	log.Println("Seed complete.")
}
