package models

import "gorm.io/datatypes"

// Color is an embedded product variant. HexValue must be a full #RRGGBB code.
type Color struct {
	ColorName string `json:"colorName" validate:"required"`
	HexValue  string `json:"hexValue" validate:"required,hexrgb"`
}

// Size is an embedded product variant.
type Size struct {
	SizeName string `json:"sizeName" validate:"required"`
}

// Product is a catalog entry. Colors and sizes are stored as JSON columns;
// the category reference is checked at write time by the application, there is
// no database-level foreign key on it.
type Product struct {
	BaseModel
	Name       string                      `gorm:"not null" json:"name" validate:"required"`
	Quantity   int                         `gorm:"not null;default:0" json:"quantity" validate:"gte=0"`
	Price      float64                     `gorm:"not null;default:0" json:"price" validate:"gte=0"`
	Image      string                      `gorm:"not null" json:"image"`
	Colors     datatypes.JSONSlice[Color]  `json:"colors" validate:"required,min=1,dive"`
	Sizes      datatypes.JSONSlice[Size]   `json:"sizes" validate:"dive"`
	CategoryID string                      `gorm:"type:uuid;not null;index" json:"category" validate:"required,uuid"`
	Category   *Category                   `gorm:"foreignKey:CategoryID;constraint:-" json:"categoryData,omitempty"`
}
