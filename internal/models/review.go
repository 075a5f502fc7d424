package models

// Review is customer feedback. It carries no link to a product or user.
type Review struct {
	BaseModel
	ClientName string `gorm:"not null" json:"clientName" validate:"required"`
	Rating     int    `gorm:"not null" json:"rating" validate:"required,gte=1,lte=5"`
	ReviewBody string `gorm:"not null" json:"reviewBody" validate:"required"`
}
