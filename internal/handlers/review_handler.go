package handlers

import (
	"shop_backend/internal/models"
	"shop_backend/internal/repositories"
)

// ReviewHandler is the CRUD factory applied unchanged: reviews have no file
// uploads, no associations and no custom operations.
type ReviewHandler struct {
	*CRUD[models.Review]
}

func NewReviewHandler(base *BaseHandler, reviews repositories.Repository[models.Review]) *ReviewHandler {
	return &ReviewHandler{
		CRUD: NewCRUD[models.Review](base, reviews),
	}
}
