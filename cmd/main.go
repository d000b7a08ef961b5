package main

import (
	"log"

	"github.com/berkaykan001/MacroBalance/config"
	"github.com/berkaykan001/MacroBalance/routes"
	"github.com/berkaykan001/MacroBalance/services"
	"github.com/berkaykan001/MacroBalance/storage"
)

func main() {
	cfg := config.Load()

	db, err := config.OpenDB(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	store := storage.NewStore(db)
	if err := store.Migrate(); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	catalog := services.NewCatalogService(store)
	catalog.Load()

	plans := services.NewMealPlanService(store, catalog)
	plans.Load()

	targets := services.NewTargetService(store)
	targets.Load()

	progress := services.NewProgressService(plans, targets)
	analytics := services.NewAnalyticsService(plans, targets)

	r := routes.SetupRouter(catalog, plans, targets, progress, analytics)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
