package models

import (
	"time"
)

// SiteSettingsID is the fixed primary key of the singleton settings row.
const SiteSettingsID = "default"

type SiteSettings struct {
	ID           string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	SiteName     string    `gorm:"size:255" json:"siteName"`
	Tagline      string    `gorm:"size:255" json:"tagline"`
	Whatsapp     string    `gorm:"size:50" json:"whatsapp"`
	Instagram    string    `gorm:"size:100" json:"instagram"`
	Facebook     string    `gorm:"size:100" json:"facebook"`
	AboutText    string    `gorm:"type:text" json:"aboutText"`
	HeroTitle    string    `gorm:"size:255" json:"heroTitle"`
	HeroSubtitle string    `gorm:"size:255" json:"heroSubtitle"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// DefaultSiteSettings is the payload the first reader creates when the
// singleton row is missing.
func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		ID:        SiteSettingsID,
		SiteName:  "Ahmad Rafay Handwork",
		Tagline:   "Beautiful Embroidery, Honest Prices",
		Whatsapp:  "03199119572",
		Instagram: "@ahmadrafayhandwork",
		Facebook:  "Ahmad Rafay Handwork",
	}
}
