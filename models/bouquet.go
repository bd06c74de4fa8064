package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category is the closed set of bouquet categories.
type Category string

const (
	CategoryDate        Category = "date"
	CategoryBirthday    Category = "birthday"
	CategoryWedding     Category = "wedding"
	CategoryJustBecause Category = "just-because"
)

// Bouquet is a sellable flower arrangement. Deleted bouquets stay in the
// table (soft delete) so historical order items keep their reference, but
// they disappear from every catalog read.
type Bouquet struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string         `gorm:"type:varchar(255);not null" json:"name"`
	Price       int            `gorm:"not null" json:"price"` // whole currency units
	Category    Category       `gorm:"type:varchar(20);not null" json:"category"`
	Description string         `gorm:"type:text" json:"description"`
	Composition StringList     `gorm:"type:text" json:"composition"`
	Images      StringList     `gorm:"type:text" json:"images"` // first is primary
	Size        string         `gorm:"type:varchar(64)" json:"size"`
	IsActive    bool           `gorm:"not null;default:true" json:"isActive"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// BouquetRequest is the payload for creating or updating a bouquet.
type BouquetRequest struct {
	Name        string   `json:"name" binding:"required"`
	Price       int      `json:"price" binding:"required,gt=0"`
	Category    Category `json:"category" binding:"required,oneof=date birthday wedding just-because"`
	Description string   `json:"description"`
	Composition []string `json:"composition"`
	Images      []string `json:"images"`
	Size        string   `json:"size"`
	IsActive    *bool    `json:"isActive"` // nil on create means active
}
