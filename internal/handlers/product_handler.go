package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"shop_backend/internal/apperrors"
	"shop_backend/internal/models"
	"shop_backend/internal/repositories"
	"shop_backend/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

// ProductHandler adapts the multipart catalog endpoints: the form carries
// scalar fields, JSON-encoded colors/sizes fields and an optional image file.
// Reads, deletes and the response shapes come from the CRUD factory.
type ProductHandler struct {
	*CRUD[models.Product]
	products   *repositories.ProductRepository
	categories *repositories.CategoryRepository
	uploads    *services.UploadService
}

func NewProductHandler(base *BaseHandler, products *repositories.ProductRepository, categories *repositories.CategoryRepository, uploads *services.UploadService) *ProductHandler {
	return &ProductHandler{
		CRUD:       NewCRUD[models.Product](base, products),
		products:   products,
		categories: categories,
		uploads:    uploads,
	}
}

// List returns the catalog, optionally filtered by ?category=<id>, with the
// category expanded on every row.
func (h *ProductHandler) List(c *gin.Context) {
	categoryID := c.Query("category")
	if categoryID == "" {
		h.GetAll(c)
		return
	}

	products, err := h.products.FindByCategory(c.Request.Context(), categoryID)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"results": len(products),
		"data":    products,
	})
}

// Create handles the multipart product form. The image is required and is
// stored as a square thumbnail before the document is persisted.
func (h *ProductHandler) Create(c *gin.Context) {
	product := &models.Product{
		Name:       c.PostForm("name"),
		CategoryID: c.PostForm("category"),
	}
	if !h.applyFormFields(c, product) {
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		apperrors.HandleError(c, apperrors.ErrImageRequired)
		return
	}

	if !h.Validate(c, product) {
		return
	}
	if !h.checkCategory(c, product.CategoryID) {
		return
	}

	path, err := h.uploads.SaveImage(c.Request.Context(), file, "products")
	if err != nil {
		h.Error(c, err)
		return
	}
	product.Image = path

	if err := h.products.Create(c.Request.Context(), product); err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   product,
	})
}

// Update applies the multipart form onto the stored product. When no new file
// is uploaded the previously stored image path is kept as is.
func (h *ProductHandler) Update(c *gin.Context) {
	product, err := h.products.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Error(c, err)
		return
	}

	if name, ok := c.GetPostForm("name"); ok {
		product.Name = name
	}
	if categoryID, ok := c.GetPostForm("category"); ok {
		product.CategoryID = categoryID
	}
	if !h.applyFormFields(c, product) {
		return
	}

	if file, err := c.FormFile("image"); err == nil {
		path, err := h.uploads.SaveImage(c.Request.Context(), file, "products")
		if err != nil {
			h.Error(c, err)
			return
		}
		product.Image = path
	}

	if !h.Validate(c, product) {
		return
	}
	if !h.checkCategory(c, product.CategoryID) {
		return
	}

	// Save the full document so the stored category expansion does not go
	// stale.
	product.Category = nil
	if err := h.products.Save(c.Request.Context(), product); err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   product,
	})
}

// applyFormFields parses quantity, price and the JSON-encoded colors/sizes
// form fields onto the product. Returns false after writing an error response.
func (h *ProductHandler) applyFormFields(c *gin.Context, product *models.Product) bool {
	if raw, ok := c.GetPostForm("quantity"); ok {
		quantity, err := strconv.Atoi(raw)
		if err != nil {
			apperrors.HandleError(c, apperrors.BadRequest("Invalid quantity"))
			return false
		}
		product.Quantity = quantity
	}
	if raw, ok := c.GetPostForm("price"); ok {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			apperrors.HandleError(c, apperrors.BadRequest("Invalid price"))
			return false
		}
		product.Price = price
	}
	if raw, ok := c.GetPostForm("colors"); ok {
		var colors []models.Color
		if err := json.Unmarshal([]byte(raw), &colors); err != nil {
			apperrors.HandleError(c, apperrors.BadRequest("Invalid colors payload"))
			return false
		}
		product.Colors = datatypes.NewJSONSlice(colors)
	}
	if raw, ok := c.GetPostForm("sizes"); ok {
		var sizes []models.Size
		if err := json.Unmarshal([]byte(raw), &sizes); err != nil {
			apperrors.HandleError(c, apperrors.BadRequest("Invalid sizes payload"))
			return false
		}
		product.Sizes = datatypes.NewJSONSlice(sizes)
	}
	return true
}

// checkCategory enforces the application-level category reference: the id
// must point at an existing category at write time.
func (h *ProductHandler) checkCategory(c *gin.Context, categoryID string) bool {
	exists, err := h.categories.Exists(c.Request.Context(), categoryID)
	if err != nil {
		h.Error(c, err)
		return false
	}
	if !exists {
		apperrors.HandleError(c, apperrors.ErrUnknownCategory)
		return false
	}
	return true
}
