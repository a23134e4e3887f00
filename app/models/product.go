package models

import (
	"time"
)

type Product struct {
	ID          string         `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	Slug        string         `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Description string         `gorm:"type:text" json:"description,omitempty"`
	Price       int64          `gorm:"not null" json:"price"`
	CategoryID  string         `gorm:"size:36;not null;index" json:"categoryId"`
	Category    Category       `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Featured    bool           `gorm:"not null;default:false" json:"featured"`
	InStock     bool           `gorm:"not null;default:true" json:"inStock"`
	Images      []ProductImage `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// ProductWithImageCount backs the admin product list, which shows a
// thumbnail plus the total number of images per product.
type ProductWithImageCount struct {
	Product
	ImageCount int64 `json:"imageCount"`
}
