package models

import (
	"time"
)

type Category struct {
	ID          string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Slug        string    `gorm:"size:100;not null;uniqueIndex" json:"slug"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Image       string    `gorm:"size:500" json:"image,omitempty"`
	Products    []Product `gorm:"foreignKey:CategoryID" json:"products,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CategoryWithCount is what the public category listing returns: the
// category row plus how many products reference it.
type CategoryWithCount struct {
	Category
	ProductCount int64 `json:"productCount"`
}
