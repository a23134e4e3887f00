package repositories

import (
	"context"

	"github.com/AliAbdullahpgr/ahmad-raffay-ecommerce/app/models"
	"gorm.io/gorm"
)

type ProductImageRepositoryImpl interface {
	Create(ctx context.Context, image *models.ProductImage) error
	GetByID(ctx context.Context, id string) (*models.ProductImage, error)
	Delete(ctx context.Context, id string) error
}

type productImageRepository struct {
	db *gorm.DB
}

func NewProductImageRepository(db *gorm.DB) ProductImageRepositoryImpl {
	return &productImageRepository{db}
}

func (r *productImageRepository) Create(ctx context.Context, image *models.ProductImage) error {
	return r.db.WithContext(ctx).Create(image).Error
}

func (r *productImageRepository) GetByID(ctx context.Context, id string) (*models.ProductImage, error) {
	var image models.ProductImage
	err := r.db.WithContext(ctx).First(&image, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &image, nil
}

func (r *productImageRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.ProductImage{}, "id = ?", id).Error
}
