package database

import (
	"fmt"
	"time"

	"github.com/Lounge-Area/fivemshop/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the remote catalog database. Callers decide whether to
// connect at all (the availability probe lives in config); a returned
// error means the session should degrade to fallback mode.
func Connect(cfg *config.DatabaseConfig, development bool) (*gorm.DB, error) {
	var gormLogger logger.Interface
	if development {
		gormLogger = NewQueryLogger(logger.Info)
	} else {
		gormLogger = NewQueryLogger(logger.Warn)
	}

	db, err := gorm.Open(postgres.Open(cfg.GetDSN()), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// Connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// Close closes the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
