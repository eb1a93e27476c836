package models

import "time"

// Category represents the categories table. Subcategories is assembled
// at resolution time, not a stored association.
// Identifier columns are varchar, not uuid: ids are opaque strings.
// The embedded snapshot uses slugs ("tools", "ht001") and the mutator
// assigns UUID strings, and both must seed into the same schema.
type Category struct {
	ID        string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null;unique" json:"name"`
	Icon      string    `gorm:"type:varchar(50)" json:"icon"`
	CreatedAt time.Time `json:"created_at"`

	Subcategories []Subcategory `gorm:"-" json:"subcategories"`
}

// TableName specifies the table name for Category
func (Category) TableName() string {
	return "categories"
}

// Subcategory represents the subcategories table. Count is derived at
// resolution time from the resolved product set; it is never stored.
type Subcategory struct {
	ID         string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Name       string    `gorm:"type:varchar(100);not null" json:"name"`
	CategoryID string    `gorm:"type:varchar(64);not null;index" json:"category_id"`
	CreatedAt  time.Time `json:"created_at"`

	Count int64 `gorm:"-" json:"count"`
}

// TableName specifies the table name for Subcategory
func (Subcategory) TableName() string {
	return "subcategories"
}
