package seeders

import (
	"log"
	"time"

	"github.com/AliAbdullahpgr/ahmad-raffay-ecommerce/app/db/fakers"
	"github.com/AliAbdullahpgr/ahmad-raffay-ecommerce/app/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type sampleProduct struct {
	name        string
	description string
	price       int64
	category    string
	featured    bool
	inStock     bool
}

var sampleProducts = []sampleProduct{
	{
		name:        "Floral Embroidered Shirt",
		description: "Beautiful floral patterns hand-embroidered on premium cotton fabric. Perfect for casual and semi-formal occasions.",
		price:       2500,
		category:    "shirts",
		featured:    true,
		inStock:     true,
	},
	{
		name:        "Classic White Kurta",
		description: "Timeless white kurta with delicate thread work along the neckline and sleeves. A wardrobe essential.",
		price:       1800,
		category:    "shirts",
		featured:    true,
		inStock:     true,
	},
	{
		name:        "Traditional Motif Shirt",
		description: "Authentic Rajanpuri motifs showcasing our heritage. Each piece is a work of art passed down through generations.",
		price:       3200,
		category:    "shirts",
		featured:    false,
		inStock:     true,
	},
	{
		name:        "Summer Breeze Shirt",
		description: "Light and airy fabric with subtle embroidery. Ideal for summer wear.",
		price:       2200,
		category:    "shirts",
		featured:    false,
		inStock:     true,
	},
	{
		name:        "Embroidered Palazzo Trouser",
		description: "Flowing palazzo trousers with intricate border embroidery. Pairs beautifully with any shirt.",
		price:       2000,
		category:    "trousers",
		featured:    true,
		inStock:     true,
	},
	{
		name:        "Classic Straight Trouser",
		description: "Elegant straight-cut trousers with subtle ankle embroidery.",
		price:       1500,
		category:    "trousers",
		featured:    false,
		inStock:     true,
	},
}

// DBSeed installs the sample catalog: the shirts and trousers
// categories, a handful of products and the default site settings.
// Re-running it is safe; existing rows are left untouched.
func DBSeed(db *gorm.DB) error {
	categories := []models.Category{
		{
			ID:          uuid.New().String(),
			Name:        "Shirts",
			Slug:        "shirts",
			Description: "Hand-embroidered traditional shirts for women",
			Image:       "https://placehold.co/600x400/1B4D3E/FDF8F3?text=Shirts",
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		},
		{
			ID:          uuid.New().String(),
			Name:        "Trousers",
			Slug:        "trousers",
			Description: "Elegantly embroidered trousers",
			Image:       "https://placehold.co/600x400/1B4D3E/FDF8F3?text=Trousers",
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		},
	}

	categoryBySlug := map[string]string{}
	for i := range categories {
		if err := db.FirstOrCreate(&categories[i], "slug = ?", categories[i].Slug).Error; err != nil {
			return err
		}
		categoryBySlug[categories[i].Slug] = categories[i].ID
	}

	for _, sample := range sampleProducts {
		product := models.Product{
			ID:          uuid.New().String(),
			Name:        sample.name,
			Slug:        fakers.Slugify(sample.name),
			Description: sample.description,
			Price:       sample.price,
			CategoryID:  categoryBySlug[sample.category],
			Featured:    sample.featured,
			InStock:     sample.inStock,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}
		if err := db.FirstOrCreate(&product, "slug = ?", product.Slug).Error; err != nil {
			return err
		}
	}

	defaults := models.DefaultSiteSettings()
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&defaults).Error; err != nil {
		return err
	}

	log.Println("✅ Sample catalog seeded")
	return nil
}

// SeedFakeProducts generates n additional faker-backed products spread
// over the existing categories.
func SeedFakeProducts(db *gorm.DB, n int) error {
	var categories []models.Category
	if err := db.Find(&categories).Error; err != nil {
		return err
	}
	if len(categories) == 0 {
		log.Println("SeedFakeProducts: no categories to attach products to")
		return nil
	}

	for i := 0; i < n; i++ {
		product := fakers.ProductFaker(&categories[i%len(categories)])
		if err := db.Create(product).Error; err != nil {
			return err
		}
	}

	log.Printf("✅ %d fake products created", n)
	return nil
}
