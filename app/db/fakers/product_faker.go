package fakers

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/AliAbdullahpgr/ahmad-raffay-ecommerce/app/models"
	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// Slugify is re-exported so seeders share one slug convention with the
// fakers.
func Slugify(s string) string {
	return slug.Make(s)
}

// ProductFaker builds one unsaved fake product attached to category,
// with one to three placeholder images.
func ProductFaker(category *models.Category) *models.Product {
	name := faker.Word() + " " + faker.Word() + " Embroidery"
	productID := uuid.New().String()

	numImages := rand.Intn(3) + 1
	images := make([]models.ProductImage, numImages)
	for i := 0; i < numImages; i++ {
		images[i] = models.ProductImage{
			ID:        uuid.New().String(),
			URL:       fmt.Sprintf("https://placehold.co/800x600/1B4D3E/FDF8F3?text=Sample+%d", i+1),
			Alt:       name,
			Order:     i,
			ProductID: productID,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
	}

	return &models.Product{
		ID:          productID,
		Name:        name,
		Slug:        slug.Make(name + "-" + uuid.NewString()[:6]),
		Description: faker.Sentence(),
		Price:       int64(rand.Intn(4000) + 1000),
		CategoryID:  category.ID,
		Featured:    rand.Intn(4) == 0,
		InStock:     rand.Intn(5) != 0,
		Images:      images,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}
