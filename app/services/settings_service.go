package services

import (
	"context"

	"github.com/AliAbdullahpgr/ahmad-raffay-ecommerce/app/apperrors"
	"github.com/AliAbdullahpgr/ahmad-raffay-ecommerce/app/models"
	"github.com/AliAbdullahpgr/ahmad-raffay-ecommerce/app/repositories"
	"github.com/go-playground/validator/v10"
)

type UpdateSettingsInput struct {
	SiteName     *string `json:"siteName" validate:"omitempty,min=1,max=255"`
	Tagline      *string `json:"tagline" validate:"omitempty,max=255"`
	Whatsapp     *string `json:"whatsapp" validate:"omitempty,max=50"`
	Instagram    *string `json:"instagram" validate:"omitempty,max=100"`
	Facebook     *string `json:"facebook" validate:"omitempty,max=100"`
	AboutText    *string `json:"aboutText"`
	HeroTitle    *string `json:"heroTitle" validate:"omitempty,max=255"`
	HeroSubtitle *string `json:"heroSubtitle" validate:"omitempty,max=255"`
}

// SettingsService manages the singleton site configuration row: lazy
// creation with defaults on first read, last-writer-wins upsert on write.
type SettingsService struct {
	settingsRepo repositories.SettingsRepositoryImpl
	validator    *validator.Validate
}

func NewSettingsService(settingsRepo repositories.SettingsRepositoryImpl, validator *validator.Validate) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo, validator: validator}
}

func (s *SettingsService) Get(ctx context.Context) (*models.SiteSettings, error) {
	settings, err := s.settingsRepo.GetOrCreate(ctx)
	if err != nil {
		return nil, apperrors.Store(err)
	}
	return settings, nil
}

func (s *SettingsService) Update(ctx context.Context, input UpdateSettingsInput) (*models.SiteSettings, error) {
	if err := s.validator.Struct(&input); err != nil {
		return nil, validationError(err)
	}

	fields := map[string]interface{}{}
	if input.SiteName != nil {
		fields["site_name"] = *input.SiteName
	}
	if input.Tagline != nil {
		fields["tagline"] = *input.Tagline
	}
	if input.Whatsapp != nil {
		fields["whatsapp"] = *input.Whatsapp
	}
	if input.Instagram != nil {
		fields["instagram"] = *input.Instagram
	}
	if input.Facebook != nil {
		fields["facebook"] = *input.Facebook
	}
	if input.AboutText != nil {
		fields["about_text"] = *input.AboutText
	}
	if input.HeroTitle != nil {
		fields["hero_title"] = *input.HeroTitle
	}
	if input.HeroSubtitle != nil {
		fields["hero_subtitle"] = *input.HeroSubtitle
	}

	settings, err := s.settingsRepo.Upsert(ctx, fields)
	if err != nil {
		return nil, apperrors.Store(err)
	}
	return settings, nil
}
