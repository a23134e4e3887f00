package models

import (
	"time"
)

// ProductImage rows are owned by their product: deleting the product
// removes them. The image with the lowest Order value is the primary
// image by convention; Order values are not required to be contiguous
// or unique.
type ProductImage struct {
	ID        string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	URL       string    `gorm:"size:500;not null" json:"url"`
	Key       string    `gorm:"size:255" json:"key,omitempty"`
	Alt       string    `gorm:"size:255" json:"alt,omitempty"`
	Order     int       `gorm:"column:display_order;not null;default:0" json:"order"`
	ProductID string    `gorm:"size:36;not null;index" json:"productId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
