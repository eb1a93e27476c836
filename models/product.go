package models

import (
	"time"

	"github.com/lib/pq"
)

// Product represents the products table
type Product struct {
	ID            string         `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Name          string         `gorm:"type:varchar(200);not null" json:"name"`
	Price         float64        `gorm:"type:decimal(12,2);not null;check:price >= 0" json:"price"`
	CategoryID    string         `gorm:"type:varchar(64);not null;index" json:"category_id"`
	SubcategoryID *string        `gorm:"type:varchar(64);index" json:"subcategory_id"`
	ShopID        *string        `gorm:"type:varchar(64);index" json:"shop_id"`
	Description   string         `gorm:"type:text" json:"description"`
	ImageURL      string         `gorm:"type:text" json:"image_url"`
	InStock       bool           `gorm:"default:true" json:"in_stock"`
	StockQuantity int            `gorm:"default:0;check:stock_quantity >= 0" json:"stock_quantity"`
	Tags          pq.StringArray `gorm:"type:text[]" json:"tags"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// TableName specifies the table name for Product
func (Product) TableName() string {
	return "products"
}
