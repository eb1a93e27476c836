package database

import (
	"fmt"

	"github.com/Lounge-Area/fivemshop/catalog"
	"github.com/Lounge-Area/fivemshop/models"
	"github.com/Lounge-Area/fivemshop/pkg/logx"
	"gorm.io/gorm"
)

// SeedData loads the embedded catalog snapshot into an empty remote
// database so a fresh backend starts with the same catalog the
// fallback mode serves.
func SeedData(db *gorm.DB) error {
	var count int64
	db.Model(&models.Category{}).Count(&count)
	if count > 0 {
		logx.Info().Msg("Database already has data. Skipping seed.")
		return nil
	}

	logx.Info().Msg("Database is empty. Starting seed process...")

	return db.Transaction(func(tx *gorm.DB) error {
		categories := catalog.StaticCategories()

		for i := range categories {
			subcategories := categories[i].Subcategories
			categories[i].Subcategories = nil

			if err := tx.Create(&categories[i]).Error; err != nil {
				return fmt.Errorf("failed to seed category %s: %w", categories[i].Name, err)
			}
			for j := range subcategories {
				if err := tx.Create(&subcategories[j]).Error; err != nil {
					return fmt.Errorf("failed to seed subcategory %s: %w", subcategories[j].Name, err)
				}
			}
		}

		products := catalog.StaticProducts()
		for i := range products {
			if err := tx.Create(&products[i]).Error; err != nil {
				return fmt.Errorf("failed to seed product %s: %w", products[i].Name, err)
			}
		}

		logx.Info().Int("categories", len(categories)).Int("products", len(products)).Msg("Seed complete")
		return nil
	})
}
