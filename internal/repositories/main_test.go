package repositories

import (
	"context"
	"testing"

	"shop_backend/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Review{},
	))
	return db
}

func makeCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()
	category := &models.Category{Name: name, Image: "/uploads/categories/" + name + ".jpg"}
	require.NoError(t, NewCategoryRepository(db).Create(context.Background(), category))
	return category
}

func makeProduct(t *testing.T, db *gorm.DB, name, categoryID string) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:       name,
		Quantity:   3,
		Price:      19.99,
		Image:      "/uploads/products/" + name + ".jpg",
		CategoryID: categoryID,
	}
	require.NoError(t, NewProductRepository(db).Create(context.Background(), product))
	return product
}
