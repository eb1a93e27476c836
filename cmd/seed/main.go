package main

import (
	"github.com/Lounge-Area/fivemshop/config"
	"github.com/Lounge-Area/fivemshop/database"
	"github.com/Lounge-Area/fivemshop/pkg/logx"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logx.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logx.Init(cfg.App.Environment)

	if !cfg.Database.BackendConfigured() {
		logx.Fatal().Msg("Backend not configured; set DB_HOST and DB_PASSWORD")
	}

	db, err := database.Connect(&cfg.Database, cfg.App.IsDevelopment())
	if err != nil {
		logx.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		logx.Fatal().Err(err).Msg("Migration failed")
	}
	if err := database.SeedData(db); err != nil {
		logx.Fatal().Err(err).Msg("Seeding failed")
	}
}
