package routes

import (
	"net/http"

	"shop_backend/internal/handlers"
	"shop_backend/internal/middleware"
	"shop_backend/internal/models"

	"github.com/gin-gonic/gin"
)

// Handlers collects every controller the router mounts.
type Handlers struct {
	Auth       *handlers.AuthHandler
	Users      *handlers.UserHandler
	Products   *handlers.ProductHandler
	Categories *handlers.CategoryHandler
	Reviews    *handlers.ReviewHandler
}

// Register mounts the full API under /api. Catalog reads are public, catalog
// writes require an authenticated admin or owner, and user management beyond
// the self-service routes is owner only.
func Register(r *gin.Engine, h Handlers, protect gin.HandlerFunc) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "success"})
	})

	api := r.Group("/api")

	staff := middleware.RequireRoles(models.UserRoleAdmin, models.UserRoleOwner)
	ownerOnly := middleware.RequireRoles(models.UserRoleOwner)

	products := api.Group("/products")
	{
		products.GET("", h.Products.List)
		products.GET("/:id", h.Products.GetOne)
		products.POST("", protect, staff, h.Products.Create)
		products.PATCH("/:id", protect, staff, h.Products.Update)
		products.DELETE("/:id", protect, staff, h.Products.DeleteOne)
	}

	categories := api.Group("/categories")
	{
		categories.GET("", h.Categories.GetAll)
		categories.GET("/:id", h.Categories.GetOne)
		categories.POST("", protect, staff, h.Categories.Create)
		categories.PATCH("/:id", protect, staff, h.Categories.Update)
		categories.DELETE("/:id", protect, staff, h.Categories.Delete)
	}

	reviews := api.Group("/reviews")
	{
		reviews.GET("", h.Reviews.GetAll)
		reviews.GET("/:id", h.Reviews.GetOne)
		reviews.POST("", protect, staff, h.Reviews.CreateOne)
		reviews.PATCH("/:id", protect, staff, h.Reviews.UpdateOne)
		reviews.DELETE("/:id", protect, staff, h.Reviews.DeleteOne)
	}

	users := api.Group("/users")
	{
		users.POST("/login", h.Auth.Login)
		users.POST("/signup", h.Auth.Signup)
		users.POST("/forgotPassword", h.Auth.ForgotPassword)
		users.PATCH("/resetPassword/:token", h.Auth.ResetPassword)

		users.GET("/me", protect, h.Users.Me)
		users.PATCH("/updateMe", protect, h.Users.UpdateMe)
		users.PATCH("/updateMyPassword", protect, h.Auth.UpdatePassword)

		users.GET("", protect, ownerOnly, h.Users.ListAdmins)
		users.POST("/addAdmin", protect, ownerOnly, h.Auth.AddAdmin)
		users.GET("/:id", protect, ownerOnly, h.Users.GetUser)
		users.PATCH("/:id", protect, ownerOnly, h.Users.UpdateUser)
		users.DELETE("/:id", protect, ownerOnly, h.Users.DeleteUser)
	}
}
