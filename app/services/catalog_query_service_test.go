package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/AliAbdullahpgr/ahmad-raffay-ecommerce/app/apperrors"
	"github.com/AliAbdullahpgr/ahmad-raffay-ecommerce/app/models"
)

func TestListProductsPaginationPartition(t *testing.T) {
	svc := setupServices(t)
	category := createTestCategory(t, svc.db, "Shirts", "shirts")

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		createTestProduct(t, svc.db, category.ID, fmt.Sprintf("shirt-%d", i), testProductOpts{
			inStock:   true,
			createdAt: base.Add(time.Duration(i) * time.Minute),
		})
	}

	seen := map[string]bool{}
	cursor := ""
	pages := 0
	var lastCreatedAt time.Time
	for {
		page, err := svc.query.ListProducts(testCtx(), ListProductsInput{Limit: 3, Cursor: cursor})
		if err != nil {
			t.Fatalf("ListProducts failed: %v", err)
		}
		for _, product := range page.Products {
			if seen[product.ID] {
				t.Fatalf("Product %s returned twice across pages", product.Slug)
			}
			seen[product.ID] = true
			if pages > 0 || len(seen) > 1 {
				if product.CreatedAt.After(lastCreatedAt) {
					t.Fatalf("Products not ordered newest-first: %s after %s", product.CreatedAt, lastCreatedAt)
				}
			}
			lastCreatedAt = product.CreatedAt
		}
		pages++
		if page.NextCursor == "" {
			break
		}
		cursor = page.NextCursor
		if pages > 10 {
			t.Fatal("Pagination did not terminate")
		}
	}

	if len(seen) != 7 {
		t.Errorf("Expected 7 distinct products across pages, got %d", len(seen))
	}
	if pages != 3 {
		t.Errorf("Expected 3 pages of limit 3 for 7 rows, got %d", pages)
	}
}

func TestListProductsPaginationSameTimestamp(t *testing.T) {
	svc := setupServices(t)
	category := createTestCategory(t, svc.db, "Shirts", "shirts")

	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		createTestProduct(t, svc.db, category.ID, fmt.Sprintf("same-ts-%d", i), testProductOpts{
			inStock:   true,
			createdAt: createdAt,
		})
	}

	seen := map[string]bool{}
	cursor := ""
	for {
		page, err := svc.query.ListProducts(testCtx(), ListProductsInput{Limit: 2, Cursor: cursor})
		if err != nil {
			t.Fatalf("ListProducts failed: %v", err)
		}
		for _, product := range page.Products {
			if seen[product.ID] {
				t.Fatalf("Product %s duplicated despite id tiebreak", product.ID)
			}
			seen[product.ID] = true
		}
		if page.NextCursor == "" {
			break
		}
		cursor = page.NextCursor
	}

	if len(seen) != 5 {
		t.Errorf("Expected 5 distinct products, got %d", len(seen))
	}
}

func TestListProductsFilters(t *testing.T) {
	svc := setupServices(t)
	shirts := createTestCategory(t, svc.db, "Shirts", "shirts")
	trousers := createTestCategory(t, svc.db, "Trousers", "trousers")

	createTestProduct(t, svc.db, shirts.ID, "featured-shirt", testProductOpts{featured: true, inStock: true})
	createTestProduct(t, svc.db, shirts.ID, "plain-shirt", testProductOpts{inStock: true})
	createTestProduct(t, svc.db, trousers.ID, "sold-out-trouser", testProductOpts{inStock: false})

	page, err := svc.query.ListProducts(testCtx(), ListProductsInput{CategorySlug: "shirts"})
	if err != nil {
		t.Fatalf("ListProducts by category failed: %v", err)
	}
	if len(page.Products) != 2 {
		t.Errorf("Expected 2 shirts, got %d", len(page.Products))
	}

	featured := true
	page, err = svc.query.ListProducts(testCtx(), ListProductsInput{Featured: &featured})
	if err != nil {
		t.Fatalf("ListProducts by featured failed: %v", err)
	}
	if len(page.Products) != 1 || page.Products[0].Slug != "featured-shirt" {
		t.Errorf("Expected only the featured shirt, got %+v", page.Products)
	}

	inStock := false
	page, err = svc.query.ListProducts(testCtx(), ListProductsInput{InStock: &inStock})
	if err != nil {
		t.Fatalf("ListProducts by stock failed: %v", err)
	}
	if len(page.Products) != 1 || page.Products[0].Slug != "sold-out-trouser" {
		t.Errorf("Expected only the out-of-stock trouser, got %+v", page.Products)
	}
}

func TestListProductsValidation(t *testing.T) {
	svc := setupServices(t)

	_, err := svc.query.ListProducts(testCtx(), ListProductsInput{Limit: 101})
	if apperrors.KindOf(err) != apperrors.KindValidation {
		t.Errorf("Expected validation error for limit 101, got %v", err)
	}

	_, err = svc.query.ListProducts(testCtx(), ListProductsInput{Limit: -1})
	if apperrors.KindOf(err) != apperrors.KindValidation {
		t.Errorf("Expected validation error for negative limit, got %v", err)
	}

	_, err = svc.query.ListProducts(testCtx(), ListProductsInput{Cursor: "no-such-id"})
	if apperrors.KindOf(err) != apperrors.KindValidation {
		t.Errorf("Expected validation error for unknown cursor, got %v", err)
	}
}

func TestGetFeatured(t *testing.T) {
	svc := setupServices(t)
	category := createTestCategory(t, svc.db, "Shirts", "shirts")

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 6; i++ {
		createTestProduct(t, svc.db, category.ID, fmt.Sprintf("featured-%d", i), testProductOpts{
			featured:  true,
			inStock:   true,
			createdAt: base.Add(time.Duration(i) * time.Minute),
			images: []models.ProductImage{
				{URL: "https://img.example/a.jpg", Order: 1},
				{URL: "https://img.example/b.jpg", Order: 0},
			},
		})
	}
	createTestProduct(t, svc.db, category.ID, "featured-sold-out", testProductOpts{featured: true, inStock: false})

	products, err := svc.query.GetFeatured(testCtx())
	if err != nil {
		t.Fatalf("GetFeatured failed: %v", err)
	}
	if len(products) != 4 {
		t.Fatalf("Expected at most 4 featured products, got %d", len(products))
	}
	for _, product := range products {
		if !product.InStock {
			t.Errorf("Out-of-stock product %s in featured list", product.Slug)
		}
		if len(product.Images) != 1 {
			t.Errorf("Expected exactly one (primary) image, got %d", len(product.Images))
		} else if product.Images[0].Order != 0 {
			t.Errorf("Primary image should have the lowest order, got %d", product.Images[0].Order)
		}
	}
	if products[0].Slug != "featured-5" {
		t.Errorf("Expected newest featured product first, got %s", products[0].Slug)
	}
}

func TestGetProductByIDOrSlug(t *testing.T) {
	svc := setupServices(t)
	category := createTestCategory(t, svc.db, "Shirts", "shirts")
	first := createTestProduct(t, svc.db, category.ID, "first", testProductOpts{inStock: true})
	createTestProduct(t, svc.db, category.ID, "second", testProductOpts{inStock: true})

	_, err := svc.query.GetProduct(testCtx(), "", "")
	if apperrors.KindOf(err) != apperrors.KindValidation {
		t.Errorf("Expected validation error when neither id nor slug given, got %v", err)
	}

	product, err := svc.query.GetProduct(testCtx(), first.ID, "")
	if err != nil {
		t.Fatalf("GetProduct by id failed: %v", err)
	}
	if product == nil || product.Slug != "first" {
		t.Errorf("Expected product 'first', got %+v", product)
	}

	product, err = svc.query.GetProduct(testCtx(), "", "second")
	if err != nil {
		t.Fatalf("GetProduct by slug failed: %v", err)
	}
	if product == nil || product.Slug != "second" {
		t.Errorf("Expected product 'second', got %+v", product)
	}

	// id wins when both are supplied
	product, err = svc.query.GetProduct(testCtx(), first.ID, "second")
	if err != nil {
		t.Fatalf("GetProduct with both failed: %v", err)
	}
	if product == nil || product.Slug != "first" {
		t.Errorf("Expected id to take precedence over slug, got %+v", product)
	}

	product, err = svc.query.GetProduct(testCtx(), "", "missing")
	if err != nil {
		t.Fatalf("GetProduct for missing slug failed: %v", err)
	}
	if product != nil {
		t.Errorf("Expected nil for unknown slug, got %+v", product)
	}
}

func TestGetProductsByCategory(t *testing.T) {
	svc := setupServices(t)
	shirts := createTestCategory(t, svc.db, "Shirts", "shirts")

	createTestProduct(t, svc.db, shirts.ID, "in-stock-shirt", testProductOpts{
		inStock: true,
		images: []models.ProductImage{
			{URL: "https://img.example/a.jpg", Order: 2},
			{URL: "https://img.example/primary.jpg", Order: 0},
		},
	})
	createTestProduct(t, svc.db, shirts.ID, "sold-out-shirt", testProductOpts{inStock: false})

	products, err := svc.query.GetProductsByCategory(testCtx(), "shirts")
	if err != nil {
		t.Fatalf("GetProductsByCategory failed: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("Expected only the in-stock shirt, got %d products", len(products))
	}
	if len(products[0].Images) != 1 || products[0].Images[0].URL != "https://img.example/primary.jpg" {
		t.Errorf("Expected only the primary image, got %+v", products[0].Images)
	}

	products, err = svc.query.GetProductsByCategory(testCtx(), "no-such-category")
	if err != nil {
		t.Fatalf("GetProductsByCategory for unknown slug failed: %v", err)
	}
	if len(products) != 0 {
		t.Errorf("Expected empty result for unknown category, got %d", len(products))
	}
}

func TestGetStatsEmptyCatalog(t *testing.T) {
	svc := setupServices(t)

	stats, err := svc.query.GetStats(testCtx())
	if err != nil {
		t.Fatalf("GetStats failed: %v", err)
	}
	if stats.Total != 0 || stats.Shirts != 0 || stats.Trousers != 0 || stats.Featured != 0 || stats.OutOfStock != 0 {
		t.Errorf("Expected all-zero stats on empty catalog, got %+v", stats)
	}
}

func TestGetStatsSeededCatalog(t *testing.T) {
	svc := setupServices(t)
	shirts := createTestCategory(t, svc.db, "Shirts", "shirts")
	trousers := createTestCategory(t, svc.db, "Trousers", "trousers")

	createTestProduct(t, svc.db, shirts.ID, "shirt-1", testProductOpts{featured: true, inStock: true})
	createTestProduct(t, svc.db, shirts.ID, "shirt-2", testProductOpts{inStock: false})
	createTestProduct(t, svc.db, shirts.ID, "shirt-3", testProductOpts{inStock: true})
	createTestProduct(t, svc.db, trousers.ID, "trouser-1", testProductOpts{inStock: true})
	createTestProduct(t, svc.db, trousers.ID, "trouser-2", testProductOpts{inStock: true})

	stats, err := svc.query.GetStats(testCtx())
	if err != nil {
		t.Fatalf("GetStats failed: %v", err)
	}
	expected := ProductStats{Total: 5, Shirts: 3, Trousers: 2, Featured: 1, OutOfStock: 1}
	if *stats != expected {
		t.Errorf("Expected stats %+v, got %+v", expected, *stats)
	}
}

func TestListCategoriesWithCounts(t *testing.T) {
	svc := setupServices(t)
	shirts := createTestCategory(t, svc.db, "Shirts", "shirts")
	createTestCategory(t, svc.db, "Trousers", "trousers")
	createTestProduct(t, svc.db, shirts.ID, "a-shirt", testProductOpts{inStock: true})

	categories, err := svc.query.ListCategories(testCtx())
	if err != nil {
		t.Fatalf("ListCategories failed: %v", err)
	}
	if len(categories) != 2 {
		t.Fatalf("Expected 2 categories, got %d", len(categories))
	}
	// name ascending
	if categories[0].Name != "Shirts" || categories[1].Name != "Trousers" {
		t.Errorf("Expected name-ascending order, got %s then %s", categories[0].Name, categories[1].Name)
	}
	if categories[0].ProductCount != 1 || categories[1].ProductCount != 0 {
		t.Errorf("Unexpected product counts: %+v", categories)
	}
}

func TestGetCategoryBySlugWithProducts(t *testing.T) {
	svc := setupServices(t)
	shirts := createTestCategory(t, svc.db, "Shirts", "shirts")
	createTestProduct(t, svc.db, shirts.ID, "visible", testProductOpts{inStock: true})
	createTestProduct(t, svc.db, shirts.ID, "hidden", testProductOpts{inStock: false})

	category, err := svc.query.GetCategoryBySlug(testCtx(), "shirts")
	if err != nil {
		t.Fatalf("GetCategoryBySlug failed: %v", err)
	}
	if category == nil {
		t.Fatal("Expected category, got nil")
	}
	if len(category.Products) != 1 || category.Products[0].Slug != "visible" {
		t.Errorf("Expected only in-stock products, got %+v", category.Products)
	}

	category, err = svc.query.GetCategoryBySlug(testCtx(), "missing")
	if err != nil {
		t.Fatalf("GetCategoryBySlug for unknown slug failed: %v", err)
	}
	if category != nil {
		t.Errorf("Expected nil for unknown category, got %+v", category)
	}
}
