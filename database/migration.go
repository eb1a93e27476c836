package database

import (
	"fmt"

	"github.com/Lounge-Area/fivemshop/models"
	"github.com/Lounge-Area/fivemshop/pkg/logx"
	"gorm.io/gorm"
)

// AutoMigrate creates or updates the catalog tables.
func AutoMigrate(db *gorm.DB) error {
	logx.Info().Msg("Starting GORM AutoMigrate...")

	err := db.AutoMigrate(
		&models.Category{},
		&models.Subcategory{},
		&models.Shop{},
		&models.Product{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}

	logx.Info().Msg("Migration complete")
	return nil
}
