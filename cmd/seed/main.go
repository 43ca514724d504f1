package main

import (
	"log"

	"github.com/joho/godotenv"

	"fotokarte/internal/config"
	"fotokarte/internal/database"
	"fotokarte/internal/domain"
)

// Seeds a handful of locations for local development. Images are attached
// afterwards through the upload endpoint.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	locations := []domain.Location{
		{Title: "Brandenburger Tor", Description: "Erster gemeinsamer Ausflug", Latitude: 52.516275, Longitude: 13.377704, Date: "2024-05-12"},
		{Title: "Landungsbrücken", Description: "Hafenrundfahrt bei Sonnenuntergang", Latitude: 53.546111, Longitude: 9.966389, Date: "2024-07-03"},
		{Title: "Neuschwanstein", Description: "Wanderung zur Marienbrücke", Latitude: 47.557574, Longitude: 10.749800, Date: "2024-09-21"},
		{Title: "Zugspitze", Description: "Winterwochenende", Latitude: 47.421066, Longitude: 10.985296, Date: "2025-01-18"},
	}

	for i := range locations {
		if err := db.Create(&locations[i]).Error; err != nil {
			log.Fatalf("seed %q: %v", locations[i].Title, err)
		}
		log.Printf("seeded location %d: %s", locations[i].ID, locations[i].Title)
	}
}
