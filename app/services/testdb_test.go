package services

import (
	"context"
	"testing"
	"time"

	"github.com/AliAbdullahpgr/ahmad-raffay-ecommerce/app/models"
	"github.com/AliAbdullahpgr/ahmad-raffay-ecommerce/app/models/migrations"
	"github.com/AliAbdullahpgr/ahmad-raffay-ecommerce/app/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	// A sqlite :memory: database exists per connection; cap the pool at
	// one so concurrent reads in GetStats all see the same database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := migrations.AutoMigrate(db); err != nil {
		t.Fatalf("AutoMigrate failed: %v", err)
	}
	return db
}

type testServices struct {
	db       *gorm.DB
	query    *CatalogQueryService
	mutation *CatalogMutationService
	settings *SettingsService
}

func setupServices(t *testing.T) *testServices {
	t.Helper()
	db := setupTestDB(t)
	validate := validator.New()

	productRepo := repositories.NewProductRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	imageRepo := repositories.NewProductImageRepository(db)
	settingsRepo := repositories.NewSettingsRepository(db)

	return &testServices{
		db:       db,
		query:    NewCatalogQueryService(productRepo, categoryRepo, validate),
		mutation: NewCatalogMutationService(productRepo, categoryRepo, imageRepo, validate),
		settings: NewSettingsService(settingsRepo, validate),
	}
}

func createTestCategory(t *testing.T, db *gorm.DB, name, slug string) *models.Category {
	t.Helper()
	category := &models.Category{
		ID:        uuid.New().String(),
		Name:      name,
		Slug:      slug,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("Failed to create category %s: %v", slug, err)
	}
	return category
}

type testProductOpts struct {
	featured  bool
	inStock   bool
	createdAt time.Time
	images    []models.ProductImage
}

func createTestProduct(t *testing.T, db *gorm.DB, categoryID, slug string, opts testProductOpts) *models.Product {
	t.Helper()
	if opts.createdAt.IsZero() {
		opts.createdAt = time.Now()
	}
	product := &models.Product{
		ID:         uuid.New().String(),
		Name:       slug,
		Slug:       slug,
		Price:      1000,
		CategoryID: categoryID,
		Featured:   opts.featured,
		InStock:    opts.inStock,
		CreatedAt:  opts.createdAt,
		UpdatedAt:  opts.createdAt,
	}
	for i := range opts.images {
		opts.images[i].ID = uuid.New().String()
		opts.images[i].ProductID = product.ID
	}
	product.Images = opts.images
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("Failed to create product %s: %v", slug, err)
	}
	return product
}

func testCtx() context.Context {
	return context.Background()
}
