package models

import "time"

// Shop represents the shops table. Shops exist only in the remote
// backend; fallback mode has no shop data.
type Shop struct {
	ID           string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Name         string    `gorm:"type:varchar(200);not null" json:"name"`
	Description  string    `gorm:"type:text" json:"description"`
	Location     string    `gorm:"type:varchar(200)" json:"location"`
	OpeningHours string    `gorm:"type:varchar(100)" json:"opening_hours"`
	OwnerID      *string   `gorm:"type:varchar(64)" json:"owner_id"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName specifies the table name for Shop
func (Shop) TableName() string {
	return "shops"
}
