package models

// Category groups products. Deleting a category cascades to every product
// referencing it.
type Category struct {
	BaseModel
	Name  string `gorm:"uniqueIndex;not null" json:"name" validate:"required"`
	Image string `gorm:"not null" json:"image"`
}
