package handlers

import (
	"context"
	"net/http"

	"shop_backend/internal/apperrors"
	"shop_backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

// CRUD is the generic resource handler factory: the five handler shapes every
// resource shares, implemented once against the generic repository and
// specialized per entity type through the type parameter. Per-resource
// variance (schema validation, association expansion) lives in the injected
// repository and the entity's validate tags.
type CRUD[T any] struct {
	*BaseHandler
	repo repositories.Repository[T]
}

func NewCRUD[T any](base *BaseHandler, repo repositories.Repository[T]) *CRUD[T] {
	return &CRUD[T]{
		BaseHandler: base,
		repo:        repo,
	}
}

// GetOne responds 200 with the entity, 404 when the id has no document.
func (h *CRUD[T]) GetOne(c *gin.Context) {
	entity, err := h.repo.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   entity,
	})
}

// GetAll responds 200 with all entities and their count. An empty collection
// is success, not an error.
func (h *CRUD[T]) GetAll(c *gin.Context) {
	entities, err := h.repo.FindAll(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"results": len(entities),
		"data":    entities,
	})
}

// CreateOne binds and validates the body and responds 201 with the created
// entity.
func (h *CRUD[T]) CreateOne(c *gin.Context) {
	var entity T
	if !h.BindAndValidateJSON(c, &entity) {
		return
	}
	if err := h.repo.Create(c.Request.Context(), &entity); err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   entity,
	})
}

// UpdateOne applies a partial body onto the stored entity, revalidates the
// whole document and responds 200 with the updated entity.
func (h *CRUD[T]) UpdateOne(c *gin.Context) {
	entity, err := h.repo.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Error(c, err)
		return
	}

	if err := c.ShouldBindJSON(entity); err != nil {
		apperrors.HandleError(c, apperrors.BadRequest("Invalid request body: "+err.Error()))
		return
	}
	// The body must not reassign the primary key.
	if e, ok := any(entity).(interface{ SetID(string) }); ok {
		e.SetID(c.Param("id"))
	}
	if !h.Validate(c, entity) {
		return
	}
	if err := h.repo.Save(c.Request.Context(), entity); err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   entity,
	})
}

// DeleteOne responds 200 on success and 404 when the id has no document,
// including a second delete of the same id.
func (h *CRUD[T]) DeleteOne(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Deleted Successfully",
	})
}

// DeleteOneWith builds a delete handler around a custom delete operation,
// used for cascading deletes where dependents go down with the parent.
func (h *CRUD[T]) DeleteOneWith(del func(ctx context.Context, id string) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := del(c.Request.Context(), c.Param("id")); err != nil {
			h.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "Deleted Successfully",
		})
	}
}
