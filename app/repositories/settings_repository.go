package repositories

import (
	"context"

	"github.com/AliAbdullahpgr/ahmad-raffay-ecommerce/app/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingsRepositoryImpl interface {
	GetOrCreate(ctx context.Context) (*models.SiteSettings, error)
	Upsert(ctx context.Context, fields map[string]interface{}) (*models.SiteSettings, error)
}

type settingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepositoryImpl {
	return &settingsRepository{db}
}

// ensureDefault inserts the default singleton row if absent. The
// insert uses ON CONFLICT DO NOTHING so two concurrent first readers
// cannot both create it; the loser of the race just re-reads.
func (r *settingsRepository) ensureDefault(ctx context.Context) error {
	defaults := models.DefaultSiteSettings()
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&defaults).Error
}

func (r *settingsRepository) GetOrCreate(ctx context.Context) (*models.SiteSettings, error) {
	if err := r.ensureDefault(ctx); err != nil {
		return nil, err
	}

	var settings models.SiteSettings
	if err := r.db.WithContext(ctx).First(&settings, "id = ?", models.SiteSettingsID).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

// Upsert applies a partial update to the singleton, creating it first
// when absent. Last writer wins; there is no version check.
func (r *settingsRepository) Upsert(ctx context.Context, fields map[string]interface{}) (*models.SiteSettings, error) {
	if err := r.ensureDefault(ctx); err != nil {
		return nil, err
	}

	if len(fields) > 0 {
		err := r.db.WithContext(ctx).
			Model(&models.SiteSettings{}).
			Where("id = ?", models.SiteSettingsID).
			Updates(fields).Error
		if err != nil {
			return nil, err
		}
	}

	var settings models.SiteSettings
	if err := r.db.WithContext(ctx).First(&settings, "id = ?", models.SiteSettingsID).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}
