package handlers

import (
	"net/http"

	"shop_backend/internal/apperrors"
	"shop_backend/internal/models"
	"shop_backend/internal/repositories"
	"shop_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// CategoryHandler adapts the multipart category endpoints; deletion cascades
// to the category's products.
type CategoryHandler struct {
	*CRUD[models.Category]
	categories *repositories.CategoryRepository
	uploads    *services.UploadService
}

func NewCategoryHandler(base *BaseHandler, categories *repositories.CategoryRepository, uploads *services.UploadService) *CategoryHandler {
	return &CategoryHandler{
		CRUD:       NewCRUD[models.Category](base, categories),
		categories: categories,
		uploads:    uploads,
	}
}

// Create requires both a name and an image file.
func (h *CategoryHandler) Create(c *gin.Context) {
	name := c.PostForm("name")
	file, err := c.FormFile("image")
	if name == "" || err != nil {
		apperrors.HandleError(c, apperrors.BadRequest("Please provide name and image"))
		return
	}

	path, err := h.uploads.SaveImage(c.Request.Context(), file, "categories")
	if err != nil {
		h.Error(c, err)
		return
	}

	category := &models.Category{
		Name:  name,
		Image: path,
	}
	if err := h.categories.Create(c.Request.Context(), category); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicate) {
			h.Error(c, apperrors.ErrCategoryNameTaken)
			return
		}
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   category,
	})
}

// Update changes the name and/or image. Without a new file the stored image
// path stays untouched.
func (h *CategoryHandler) Update(c *gin.Context) {
	category, err := h.categories.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Error(c, err)
		return
	}

	if name, ok := c.GetPostForm("name"); ok {
		category.Name = name
	}
	if file, err := c.FormFile("image"); err == nil {
		path, err := h.uploads.SaveImage(c.Request.Context(), file, "categories")
		if err != nil {
			h.Error(c, err)
			return
		}
		category.Image = path
	}

	if !h.Validate(c, category) {
		return
	}
	if err := h.categories.Save(c.Request.Context(), category); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicate) {
			h.Error(c, apperrors.ErrCategoryNameTaken)
			return
		}
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   category,
	})
}

// Delete removes the category together with every product referencing it.
func (h *CategoryHandler) Delete(c *gin.Context) {
	h.DeleteOneWith(h.categories.DeleteCascading)(c)
}
