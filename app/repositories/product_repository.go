package repositories

import (
	"context"

	"github.com/AliAbdullahpgr/ahmad-raffay-ecommerce/app/models"
	"gorm.io/gorm"
)

// ProductFilter narrows the paginated product listing. Nil boolean
// pointers mean "no filter on this column".
type ProductFilter struct {
	CategorySlug string
	Featured     *bool
	InStock      *bool
}

type ProductRepositoryImpl interface {
	ListPage(ctx context.Context, filter ProductFilter, limit int, cursor *models.Product) ([]models.Product, error)
	GetFeatured(ctx context.Context, limit int) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	GetBySlug(ctx context.Context, slug string) (*models.Product, error)
	GetByCategorySlug(ctx context.Context, slug string) ([]models.Product, error)
	AdminList(ctx context.Context) ([]models.ProductWithImageCount, error)
	ListForFeed(ctx context.Context) ([]models.Product, error)
	Count(ctx context.Context) (int64, error)
	CountByCategorySlug(ctx context.Context, slug string) (int64, error)
	CountFeatured(ctx context.Context) (int64, error)
	CountOutOfStock(ctx context.Context) (int64, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepositoryImpl {
	return &productRepository{db}
}

func orderedImages(db *gorm.DB) *gorm.DB {
	return db.Order("display_order ASC")
}

// keepPrimaryImage trims each product's eagerly loaded image set to the
// lowest-order one. GORM preloads cannot limit per parent row, so the
// trim happens after the fetch.
func keepPrimaryImage(products []models.Product) {
	for i := range products {
		if len(products[i].Images) > 1 {
			products[i].Images = products[i].Images[:1]
		}
	}
}

// ListPage returns up to limit products ordered newest-first. When a
// cursor row is supplied the page starts at that row (inclusive), with
// (created_at, id) descending as the keyset so concurrent inserts at
// the head never shift an already-issued cursor.
func (p *productRepository) ListPage(ctx context.Context, filter ProductFilter, limit int, cursor *models.Product) ([]models.Product, error) {
	var products []models.Product

	query := p.db.WithContext(ctx).
		Model(&models.Product{}).
		Preload("Category").
		Preload("Images", orderedImages)

	if filter.CategorySlug != "" {
		query = query.
			Joins("JOIN categories ON categories.id = products.category_id").
			Where("categories.slug = ?", filter.CategorySlug)
	}
	if filter.Featured != nil {
		query = query.Where("products.featured = ?", *filter.Featured)
	}
	if filter.InStock != nil {
		query = query.Where("products.in_stock = ?", *filter.InStock)
	}
	if cursor != nil {
		query = query.Where(
			"products.created_at < ? OR (products.created_at = ? AND products.id <= ?)",
			cursor.CreatedAt, cursor.CreatedAt, cursor.ID,
		)
	}

	err := query.
		Order("products.created_at DESC").
		Order("products.id DESC").
		Limit(limit).
		Find(&products).Error

	return products, err
}

func (p *productRepository) GetFeatured(ctx context.Context, limit int) ([]models.Product, error) {
	var products []models.Product
	err := p.db.WithContext(ctx).
		Preload("Category").
		Preload("Images", orderedImages).
		Where("featured = ? AND in_stock = ?", true, true).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	keepPrimaryImage(products)
	return products, nil
}

func (p *productRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := p.db.WithContext(ctx).
		Preload("Category").
		Preload("Images", orderedImages).
		First(&product, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (p *productRepository) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	err := p.db.WithContext(ctx).
		Preload("Category").
		Preload("Images", orderedImages).
		First(&product, "slug = ?", slug).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (p *productRepository) GetByCategorySlug(ctx context.Context, slug string) ([]models.Product, error) {
	var products []models.Product
	err := p.db.WithContext(ctx).
		Joins("JOIN categories ON categories.id = products.category_id").
		Where("categories.slug = ? AND products.in_stock = ?", slug, true).
		Preload("Category").
		Preload("Images", orderedImages).
		Order("products.created_at DESC").
		Order("products.id DESC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	keepPrimaryImage(products)
	return products, nil
}

func (p *productRepository) AdminList(ctx context.Context) ([]models.ProductWithImageCount, error) {
	var products []models.Product
	err := p.db.WithContext(ctx).
		Preload("Category").
		Preload("Images", orderedImages).
		Order("created_at DESC").
		Order("id DESC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}

	result := make([]models.ProductWithImageCount, len(products))
	for i, product := range products {
		count := int64(len(product.Images))
		if len(product.Images) > 1 {
			product.Images = product.Images[:1]
		}
		result[i] = models.ProductWithImageCount{Product: product, ImageCount: count}
	}
	return result, nil
}

// ListForFeed loads every product with its category and full ordered
// image set, most recently updated first, for the merchant feed and
// sitemap projections.
func (p *productRepository) ListForFeed(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := p.db.WithContext(ctx).
		Preload("Category").
		Preload("Images", orderedImages).
		Order("updated_at DESC").
		Find(&products).Error
	return products, err
}

func (p *productRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := p.db.WithContext(ctx).Model(&models.Product{}).Count(&total).Error
	return total, err
}

func (p *productRepository) CountByCategorySlug(ctx context.Context, slug string) (int64, error) {
	var total int64
	err := p.db.WithContext(ctx).
		Model(&models.Product{}).
		Joins("JOIN categories ON categories.id = products.category_id").
		Where("categories.slug = ?", slug).
		Count(&total).Error
	return total, err
}

func (p *productRepository) CountFeatured(ctx context.Context) (int64, error) {
	var total int64
	err := p.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("featured = ?", true).
		Count(&total).Error
	return total, err
}

func (p *productRepository) CountOutOfStock(ctx context.Context) (int64, error) {
	var total int64
	err := p.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("in_stock = ?", false).
		Count(&total).Error
	return total, err
}

// Create inserts the product and any nested images in one transaction,
// so no reader ever sees the product without its requested images.
func (p *productRepository) Create(ctx context.Context, product *models.Product) error {
	return p.db.WithContext(ctx).Create(product).Error
}

func (p *productRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	return p.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", id).
		Updates(fields).Error
}

// Delete removes the product and all images it owns. The child delete
// runs explicitly inside the transaction rather than relying on the
// database cascade, so the ownership rule holds on every backend.
func (p *productRepository) Delete(ctx context.Context, id string) error {
	return p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&models.ProductImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Product{}, "id = ?", id).Error
	})
}
