package main

import (
	"context"
	"log"

	"fprsim/adapters/postgres"
	"fprsim/adapters/rng"
	"fprsim/adapters/stats"
	"fprsim/app"
	"fprsim/internal/config"
	"fprsim/ports"
	"fprsim/ui"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[Main] Failed to load configuration: %v", err)
	}

	service := app.NewSimulationService(stats.NewNormalSampler(), stats.NewWelchTTest(), rng.NewPCGAdapter())
	if cfg.Simulation.Workers > 0 {
		service.SetWorkers(cfg.Simulation.Workers)
	}

	var repository ports.ResultRepository
	if cfg.Database.Enabled {
		db, err := sqlx.Connect("postgres", cfg.Database.URL)
		if err != nil {
			log.Fatalf("[Main] Failed to connect to database: %v", err)
		}
		repo := postgres.NewResultRepository(db)
		if err := repo.Migrate(context.Background()); err != nil {
			log.Fatalf("[Main] Failed to migrate database: %v", err)
		}
		repository = repo
		log.Println("[Main] Result persistence enabled")
	} else {
		log.Println("[Main] DATABASE_URL not set, result persistence disabled")
	}

	application := ui.NewApp(service, repository, cfg.Simulation)
	if err := application.Serve(cfg.Server.Port); err != nil {
		log.Fatalf("[Main] Server failed: %v", err)
	}
}
