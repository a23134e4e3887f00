package services

import (
	"context"
	"time"

	"github.com/AliAbdullahpgr/ahmad-raffay-ecommerce/app/apperrors"
	"github.com/AliAbdullahpgr/ahmad-raffay-ecommerce/app/models"
	"github.com/AliAbdullahpgr/ahmad-raffay-ecommerce/app/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type CreateCategoryInput struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Slug        string `json:"slug" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"omitempty"`
	Image       string `json:"image" validate:"omitempty,url"`
}

type UpdateCategoryInput struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Slug        *string `json:"slug" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description"`
	Image       *string `json:"image" validate:"omitempty,url"`
}

type CreateImageInput struct {
	URL   string `json:"url" validate:"required,url"`
	Key   string `json:"key" validate:"omitempty,max=255"`
	Alt   string `json:"alt" validate:"omitempty,max=255"`
	Order int    `json:"order"`
}

type CreateProductInput struct {
	Name        string             `json:"name" validate:"required,min=1,max=255"`
	Slug        string             `json:"slug" validate:"required,min=1,max=255"`
	Description string             `json:"description"`
	Price       int64              `json:"price" validate:"min=0"`
	CategoryID  string             `json:"categoryId" validate:"required"`
	Featured    bool               `json:"featured"`
	InStock     *bool              `json:"inStock"`
	Images      []CreateImageInput `json:"images" validate:"omitempty,dive"`
}

type UpdateProductInput struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=255"`
	Slug        *string `json:"slug" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description"`
	Price       *int64  `json:"price" validate:"omitempty,min=0"`
	CategoryID  *string `json:"categoryId" validate:"omitempty"`
	Featured    *bool   `json:"featured"`
	InStock     *bool   `json:"inStock"`
}

type AddImageInput struct {
	ProductID string `json:"productId" validate:"required"`
	URL       string `json:"url" validate:"required,url"`
	Key       string `json:"key" validate:"omitempty,max=255"`
	Alt       string `json:"alt" validate:"omitempty,max=255"`
	Order     int    `json:"order"`
}

// CatalogMutationService owns every catalog write and the invariants
// that plain column constraints cannot express: slug uniqueness,
// category referential guards, product/image ownership.
type CatalogMutationService struct {
	productRepo  repositories.ProductRepositoryImpl
	categoryRepo repositories.CategoryRepositoryImpl
	imageRepo    repositories.ProductImageRepositoryImpl
	validator    *validator.Validate
}

func NewCatalogMutationService(
	productRepo repositories.ProductRepositoryImpl,
	categoryRepo repositories.CategoryRepositoryImpl,
	imageRepo repositories.ProductImageRepositoryImpl,
	validator *validator.Validate,
) *CatalogMutationService {
	return &CatalogMutationService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		imageRepo:    imageRepo,
		validator:    validator,
	}
}

func (s *CatalogMutationService) CreateCategory(ctx context.Context, input CreateCategoryInput) (*models.Category, error) {
	if err := s.validator.Struct(&input); err != nil {
		return nil, validationError(err)
	}

	existing, err := s.categoryRepo.GetBySlug(ctx, input.Slug)
	if err != nil {
		return nil, apperrors.Store(err)
	}
	if existing != nil {
		return nil, apperrors.Conflict("a category with slug %q already exists", input.Slug)
	}

	category := &models.Category{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Slug:        input.Slug,
		Description: input.Description,
		Image:       input.Image,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, apperrors.Store(err)
	}
	return category, nil
}

func (s *CatalogMutationService) UpdateCategory(ctx context.Context, id string, input UpdateCategoryInput) (*models.Category, error) {
	if err := s.validator.Struct(&input); err != nil {
		return nil, validationError(err)
	}

	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.Store(err)
	}
	if category == nil {
		return nil, apperrors.NotFound("category %s not found", id)
	}

	fields := map[string]interface{}{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Slug != nil && *input.Slug != category.Slug {
		existing, err := s.categoryRepo.GetBySlug(ctx, *input.Slug)
		if err != nil {
			return nil, apperrors.Store(err)
		}
		if existing != nil {
			return nil, apperrors.Conflict("a category with slug %q already exists", *input.Slug)
		}
		fields["slug"] = *input.Slug
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.Image != nil {
		fields["image"] = *input.Image
	}

	if len(fields) > 0 {
		if err := s.categoryRepo.Update(ctx, id, fields); err != nil {
			return nil, apperrors.Store(err)
		}
	}

	updated, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.Store(err)
	}
	return updated, nil
}

// DeleteCategory refuses to remove a category that still has products;
// the caller must move or delete those products first.
func (s *CatalogMutationService) DeleteCategory(ctx context.Context, id string) error {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return apperrors.Store(err)
	}
	if category == nil {
		return apperrors.NotFound("category %s not found", id)
	}

	count, err := s.categoryRepo.CountProducts(ctx, id)
	if err != nil {
		return apperrors.Store(err)
	}
	if count > 0 {
		return apperrors.Conflict("cannot delete category with %d products. Remove products first.", count)
	}

	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return apperrors.Store(err)
	}
	return nil
}

func (s *CatalogMutationService) CreateProduct(ctx context.Context, input CreateProductInput) (*models.Product, error) {
	if err := s.validator.Struct(&input); err != nil {
		return nil, validationError(err)
	}

	category, err := s.categoryRepo.GetByID(ctx, input.CategoryID)
	if err != nil {
		return nil, apperrors.Store(err)
	}
	if category == nil {
		return nil, apperrors.Validation("category %s does not exist", input.CategoryID)
	}

	existing, err := s.productRepo.GetBySlug(ctx, input.Slug)
	if err != nil {
		return nil, apperrors.Store(err)
	}
	if existing != nil {
		return nil, apperrors.Conflict("a product with slug %q already exists", input.Slug)
	}

	inStock := true
	if input.InStock != nil {
		inStock = *input.InStock
	}

	product := &models.Product{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Slug:        input.Slug,
		Description: input.Description,
		Price:       input.Price,
		CategoryID:  input.CategoryID,
		Featured:    input.Featured,
		InStock:     inStock,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	for _, img := range input.Images {
		product.Images = append(product.Images, models.ProductImage{
			ID:        uuid.New().String(),
			URL:       img.URL,
			Key:       img.Key,
			Alt:       img.Alt,
			Order:     img.Order,
			ProductID: product.ID,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		})
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, apperrors.Store(err)
	}

	created, err := s.productRepo.GetByID(ctx, product.ID)
	if err != nil {
		return nil, apperrors.Store(err)
	}
	return created, nil
}

// UpdateProduct applies a partial update; it never touches images.
func (s *CatalogMutationService) UpdateProduct(ctx context.Context, id string, input UpdateProductInput) (*models.Product, error) {
	if err := s.validator.Struct(&input); err != nil {
		return nil, validationError(err)
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.Store(err)
	}
	if product == nil {
		return nil, apperrors.NotFound("product %s not found", id)
	}

	fields := map[string]interface{}{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Slug != nil && *input.Slug != product.Slug {
		existing, err := s.productRepo.GetBySlug(ctx, *input.Slug)
		if err != nil {
			return nil, apperrors.Store(err)
		}
		if existing != nil {
			return nil, apperrors.Conflict("a product with slug %q already exists", *input.Slug)
		}
		fields["slug"] = *input.Slug
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.Price != nil {
		fields["price"] = *input.Price
	}
	if input.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, apperrors.Store(err)
		}
		if category == nil {
			return nil, apperrors.Validation("category %s does not exist", *input.CategoryID)
		}
		fields["category_id"] = *input.CategoryID
	}
	if input.Featured != nil {
		fields["featured"] = *input.Featured
	}
	if input.InStock != nil {
		fields["in_stock"] = *input.InStock
	}

	if len(fields) > 0 {
		if err := s.productRepo.Update(ctx, id, fields); err != nil {
			return nil, apperrors.Store(err)
		}
	}

	updated, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.Store(err)
	}
	return updated, nil
}

func (s *CatalogMutationService) DeleteProduct(ctx context.Context, id string) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return apperrors.Store(err)
	}
	if product == nil {
		return apperrors.NotFound("product %s not found", id)
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		return apperrors.Store(err)
	}
	return nil
}

// ToggleFeatured flips the featured flag. This is a read-modify-write
// with no compare-and-swap: two concurrent toggles can land on the
// same final value instead of cancelling out, which the single-admin
// usage pattern tolerates.
func (s *CatalogMutationService) ToggleFeatured(ctx context.Context, id string) (*models.Product, error) {
	return s.toggle(ctx, id, "featured", func(p *models.Product) bool { return p.Featured })
}

func (s *CatalogMutationService) ToggleStock(ctx context.Context, id string) (*models.Product, error) {
	return s.toggle(ctx, id, "in_stock", func(p *models.Product) bool { return p.InStock })
}

func (s *CatalogMutationService) toggle(ctx context.Context, id, column string, current func(*models.Product) bool) (*models.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.Store(err)
	}
	if product == nil {
		return nil, apperrors.NotFound("product %s not found", id)
	}

	fields := map[string]interface{}{column: !current(product)}
	if err := s.productRepo.Update(ctx, id, fields); err != nil {
		return nil, apperrors.Store(err)
	}

	updated, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.Store(err)
	}
	return updated, nil
}

func (s *CatalogMutationService) AddImage(ctx context.Context, input AddImageInput) (*models.ProductImage, error) {
	if err := s.validator.Struct(&input); err != nil {
		return nil, validationError(err)
	}

	product, err := s.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, apperrors.Store(err)
	}
	if product == nil {
		return nil, apperrors.NotFound("product %s not found", input.ProductID)
	}

	image := &models.ProductImage{
		ID:        uuid.New().String(),
		URL:       input.URL,
		Key:       input.Key,
		Alt:       input.Alt,
		Order:     input.Order,
		ProductID: input.ProductID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.imageRepo.Create(ctx, image); err != nil {
		return nil, apperrors.Store(err)
	}
	return image, nil
}

func (s *CatalogMutationService) DeleteImage(ctx context.Context, id string) error {
	image, err := s.imageRepo.GetByID(ctx, id)
	if err != nil {
		return apperrors.Store(err)
	}
	if image == nil {
		return apperrors.NotFound("image %s not found", id)
	}

	if err := s.imageRepo.Delete(ctx, id); err != nil {
		return apperrors.Store(err)
	}
	return nil
}
