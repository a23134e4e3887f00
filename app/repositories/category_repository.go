package repositories

import (
	"context"

	"github.com/AliAbdullahpgr/ahmad-raffay-ecommerce/app/models"
	"gorm.io/gorm"
)

type CategoryRepositoryImpl interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id string) (*models.Category, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	GetBySlugWithProducts(ctx context.Context, slug string) (*models.Category, error)
	GetAllWithCounts(ctx context.Context) ([]models.CategoryWithCount, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
	CountProducts(ctx context.Context, categoryID string) (int64, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepositoryImpl {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepository) GetByID(ctx context.Context, id string) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).First(&category, "slug = ?", slug).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

// GetBySlugWithProducts loads the category with its in-stock products,
// newest first, each carrying only its primary image.
func (r *categoryRepository) GetBySlugWithProducts(ctx context.Context, slug string) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).
		Preload("Products", func(db *gorm.DB) *gorm.DB {
			return db.Where("in_stock = ?", true).Order("created_at DESC").Order("id DESC")
		}).
		Preload("Products.Images", orderedImages).
		First(&category, "slug = ?", slug).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	keepPrimaryImage(category.Products)
	return &category, nil
}

func (r *categoryRepository) GetAllWithCounts(ctx context.Context) ([]models.CategoryWithCount, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error
	if err != nil {
		return nil, err
	}

	result := make([]models.CategoryWithCount, len(categories))
	for i, category := range categories {
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&models.Product{}).
			Where("category_id = ?", category.ID).
			Count(&count).Error; err != nil {
			return nil, err
		}
		result[i] = models.CategoryWithCount{Category: category, ProductCount: count}
	}
	return result, nil
}

func (r *categoryRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&models.Category{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *categoryRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Category{}, "id = ?", id).Error
}

func (r *categoryRepository) CountProducts(ctx context.Context, categoryID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error
	return count, err
}
