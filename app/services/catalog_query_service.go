package services

import (
	"context"

	"github.com/AliAbdullahpgr/ahmad-raffay-ecommerce/app/apperrors"
	"github.com/AliAbdullahpgr/ahmad-raffay-ecommerce/app/helpers"
	"github.com/AliAbdullahpgr/ahmad-raffay-ecommerce/app/models"
	"github.com/AliAbdullahpgr/ahmad-raffay-ecommerce/app/repositories"
	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"
)

const (
	defaultPageLimit  = 50
	maxPageLimit      = 100
	featuredPageLimit = 4

	shirtsCategorySlug   = "shirts"
	trousersCategorySlug = "trousers"
)

type ListProductsInput struct {
	CategorySlug string `json:"categorySlug" validate:"omitempty,max=100"`
	Featured     *bool  `json:"featured"`
	InStock      *bool  `json:"inStock"`
	Limit        int    `json:"limit" validate:"min=1,max=100"`
	Cursor       string `json:"cursor" validate:"omitempty,max=36"`
}

type ProductPage struct {
	Products   []models.Product `json:"products"`
	NextCursor string           `json:"nextCursor,omitempty"`
}

type ProductStats struct {
	Total      int64 `json:"total"`
	Shirts     int64 `json:"shirts"`
	Trousers   int64 `json:"trousers"`
	Featured   int64 `json:"featured"`
	OutOfStock int64 `json:"outOfStock"`
}

// CatalogQueryService exposes the read-only projections over products
// and categories, for both the public storefront and the admin panel.
type CatalogQueryService struct {
	productRepo  repositories.ProductRepositoryImpl
	categoryRepo repositories.CategoryRepositoryImpl
	validator    *validator.Validate
}

func NewCatalogQueryService(
	productRepo repositories.ProductRepositoryImpl,
	categoryRepo repositories.CategoryRepositoryImpl,
	validator *validator.Validate,
) *CatalogQueryService {
	return &CatalogQueryService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		validator:    validator,
	}
}

func validationError(err error) error {
	if errs, ok := err.(validator.ValidationErrors); ok {
		return apperrors.Validation("%s", helpers.JoinValidationErrors(helpers.FormatValidationErrors(errs)))
	}
	return apperrors.Validation("invalid input")
}

// ListProducts pages through products newest-first with keyset
// pagination. The returned NextCursor is the id of the first row of
// the following page; it is absent when the page was not full.
func (s *CatalogQueryService) ListProducts(ctx context.Context, input ListProductsInput) (*ProductPage, error) {
	if input.Limit == 0 {
		input.Limit = defaultPageLimit
	}
	if err := s.validator.Struct(&input); err != nil {
		return nil, validationError(err)
	}

	var cursor *models.Product
	if input.Cursor != "" {
		cursorRow, err := s.productRepo.GetByID(ctx, input.Cursor)
		if err != nil {
			return nil, apperrors.Store(err)
		}
		if cursorRow == nil {
			return nil, apperrors.Validation("cursor does not reference an existing product")
		}
		cursor = cursorRow
	}

	filter := repositories.ProductFilter{
		CategorySlug: input.CategorySlug,
		Featured:     input.Featured,
		InStock:      input.InStock,
	}

	products, err := s.productRepo.ListPage(ctx, filter, input.Limit+1, cursor)
	if err != nil {
		return nil, apperrors.Store(err)
	}

	page := &ProductPage{Products: products}
	if len(products) > input.Limit {
		page.Products = products[:input.Limit]
		page.NextCursor = products[input.Limit].ID
	}
	return page, nil
}

func (s *CatalogQueryService) GetFeatured(ctx context.Context) ([]models.Product, error) {
	products, err := s.productRepo.GetFeatured(ctx, featuredPageLimit)
	if err != nil {
		return nil, apperrors.Store(err)
	}
	return products, nil
}

// GetProduct resolves a product by id or slug; id wins when both are
// supplied. A missing product is (nil, nil), not an error.
func (s *CatalogQueryService) GetProduct(ctx context.Context, id, slug string) (*models.Product, error) {
	if id == "" && slug == "" {
		return nil, apperrors.Validation("either id or slug is required")
	}

	var (
		product *models.Product
		err     error
	)
	if id != "" {
		product, err = s.productRepo.GetByID(ctx, id)
	} else {
		product, err = s.productRepo.GetBySlug(ctx, slug)
	}
	if err != nil {
		return nil, apperrors.Store(err)
	}
	return product, nil
}

func (s *CatalogQueryService) GetProductsByCategory(ctx context.Context, slug string) ([]models.Product, error) {
	if slug == "" {
		return nil, apperrors.Validation("slug is required")
	}
	products, err := s.productRepo.GetByCategorySlug(ctx, slug)
	if err != nil {
		return nil, apperrors.Store(err)
	}
	return products, nil
}

func (s *CatalogQueryService) ListCategories(ctx context.Context) ([]models.CategoryWithCount, error) {
	categories, err := s.categoryRepo.GetAllWithCounts(ctx)
	if err != nil {
		return nil, apperrors.Store(err)
	}
	return categories, nil
}

func (s *CatalogQueryService) GetCategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	if slug == "" {
		return nil, apperrors.Validation("slug is required")
	}
	category, err := s.categoryRepo.GetBySlugWithProducts(ctx, slug)
	if err != nil {
		return nil, apperrors.Store(err)
	}
	return category, nil
}

func (s *CatalogQueryService) AdminListProducts(ctx context.Context) ([]models.ProductWithImageCount, error) {
	products, err := s.productRepo.AdminList(ctx)
	if err != nil {
		return nil, apperrors.Store(err)
	}
	return products, nil
}

// GetStats computes the five dashboard counts concurrently. The counts
// are independent reads with no cross-consistency guarantee; interleaved
// mutations may leave them mutually inconsistent.
func (s *CatalogQueryService) GetStats(ctx context.Context) (*ProductStats, error) {
	var stats ProductStats

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats.Total, err = s.productRepo.Count(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		stats.Shirts, err = s.productRepo.CountByCategorySlug(gctx, shirtsCategorySlug)
		return err
	})
	g.Go(func() error {
		var err error
		stats.Trousers, err = s.productRepo.CountByCategorySlug(gctx, trousersCategorySlug)
		return err
	})
	g.Go(func() error {
		var err error
		stats.Featured, err = s.productRepo.CountFeatured(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		stats.OutOfStock, err = s.productRepo.CountOutOfStock(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, apperrors.Store(err)
	}
	return &stats, nil
}
