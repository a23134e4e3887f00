package migrations

import (
	"github.com/AliAbdullahpgr/ahmad-raffay-ecommerce/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Admin{}, &models.Category{}, &models.Product{}, &models.ProductImage{}, &models.SiteSettings{})
}
