package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/mathangi54/Travelling-System/internal/config"
	"github.com/mathangi54/Travelling-System/internal/database"
)

// seed-demo loads the Sri Lanka demo catalogue into the configured
// database: tours, a demo admin account, sample bookings and guides.
func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.NewConnection(cfg.Database)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.EnsureSchema(db); err != nil {
		logger.Fatalf("Failed to ensure database schema: %v", err)
	}

	seeds := database.NewSeedRepository(db)

	result, err := seeds.SeedToursIfEmpty()
	if err != nil {
		logger.Fatalf("Failed to seed tours: %v", err)
	}
	if result.Seeded {
		logger.WithField("tours_added", result.ToursAdded).Info("tours seeded")
	} else {
		logger.WithField("existing_tours", result.ExistingTours).Info("tours already present, skipped")
	}

	guides, err := seeds.ReseedGuides()
	if err != nil {
		logger.Fatalf("Failed to seed guides: %v", err)
	}
	logger.WithField("guides_added", guides).Info("guides seeded")
}
