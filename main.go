package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/Lounge-Area/fivemshop/cart"
	"github.com/Lounge-Area/fivemshop/catalog"
	"github.com/Lounge-Area/fivemshop/config"
	"github.com/Lounge-Area/fivemshop/database"
	"github.com/Lounge-Area/fivemshop/nui"
	"github.com/Lounge-Area/fivemshop/pkg/logx"
	"github.com/Lounge-Area/fivemshop/web"
	"github.com/Lounge-Area/fivemshop/web/handlers"
	"gorm.io/gorm"
)

func main() {
	// Command line flags
	var (
		migrate = flag.Bool("migrate", false, "Run database migration on startup")
		seed    = flag.Bool("seed", false, "Seed database with the embedded catalog snapshot")
	)
	flag.Parse()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logx.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logx.Init(cfg.App.Environment)

	// The backend decision is made once here: an unconfigured or
	// unreachable backend degrades the whole session to the static
	// catalog, it never aborts startup.
	var db *gorm.DB
	if cfg.Database.BackendConfigured() {
		db, err = database.Connect(&cfg.Database, cfg.App.IsDevelopment())
		if err != nil {
			logx.Error().Err(err).Msg("Backend connection failed, running in fallback mode")
			db = nil
		}
	} else {
		logx.Warn().Msg("Backend not configured, running in fallback mode")
	}

	if db != nil {
		if *migrate {
			if err := database.AutoMigrate(db); err != nil {
				logx.Fatal().Err(err).Msg("Migration failed")
			}
		}
		if *seed {
			if err := database.SeedData(db); err != nil {
				logx.Fatal().Err(err).Msg("Seeding failed")
			}
		}
	}

	bridge := nui.FromConfig(cfg.NUI)
	resolver := catalog.NewResolver(db)
	mutator := catalog.NewMutator(db)
	carts := cart.NewManager(bridge)

	// Readiness signal to the host, once at startup.
	bridge.Notify(nui.ActionReady, map[string]any{
		"catalogSize": resolver.CatalogSize(context.Background()),
	})

	server := web.NewServer(handlers.New(resolver, mutator, carts, bridge))

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		logx.Info().Msg("Shutting down...")
		if err := server.Shutdown(); err != nil {
			logx.Error().Err(err).Msg("Shutdown failed")
		}
		if db != nil {
			if err := database.Close(db); err != nil {
				logx.Error().Err(err).Msg("Closing database failed")
			}
		}
	}()

	if err := server.Start(cfg.App.Port); err != nil {
		logx.Fatal().Err(err).Msg("Server stopped")
	}
}
