package repositories

import (
	"context"

	"shop_backend/internal/models"

	"gorm.io/gorm"
)

// ProductRepository extends the generic store with the category filter used by
// the public catalog listing.
type ProductRepository struct {
	*GormRepository[models.Product]
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{
		GormRepository: NewGormRepository[models.Product](db, "Category"),
	}
}

// FindByCategory lists products referencing the given category id.
func (r *ProductRepository) FindByCategory(ctx context.Context, categoryID string) ([]models.Product, error) {
	if err := CheckID(categoryID); err != nil {
		return nil, err
	}
	products := make([]models.Product, 0)
	err := r.DB().WithContext(ctx).Preload("Category").
		Where("category_id = ?", categoryID).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// CountByCategory reports how many products reference the category.
func (r *ProductRepository) CountByCategory(ctx context.Context, categoryID string) (int64, error) {
	var n int64
	err := r.DB().WithContext(ctx).Model(&models.Product{}).
		Where("category_id = ?", categoryID).
		Count(&n).Error
	return n, err
}
