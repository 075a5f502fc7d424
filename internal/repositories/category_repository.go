package repositories

import (
	"context"

	"shop_backend/internal/models"

	"gorm.io/gorm"
)

// CategoryRepository adds the cascading delete to the generic store: removing
// a category also removes every product referencing it, in one transaction so
// a failure cannot leave orphaned products behind.
type CategoryRepository struct {
	*GormRepository[models.Category]
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{
		GormRepository: NewGormRepository[models.Category](db),
	}
}

// Exists reports whether a category with the given id is present. Product
// writes use it as the application-level reference check.
func (r *CategoryRepository) Exists(ctx context.Context, id string) (bool, error) {
	if err := CheckID(id); err != nil {
		return false, err
	}
	var n int64
	err := r.DB().WithContext(ctx).Model(&models.Category{}).
		Where("id = ?", id).
		Count(&n).Error
	return n > 0, err
}

// DeleteCascading removes the category and all dependent products. Zero
// dependents is a valid no-op; a missing category is ErrNotFound.
func (r *CategoryRepository) DeleteCascading(ctx context.Context, id string) error {
	if err := CheckID(id); err != nil {
		return err
	}
	return r.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ?", id).Delete(&models.Category{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		if err := tx.Where("category_id = ?", id).Delete(&models.Product{}).Error; err != nil {
			return err
		}
		return nil
	})
}
