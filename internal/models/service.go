package models

import "time"

type ServiceCategory struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string  `gorm:"size:255;not null" json:"name"`
	Segment     Segment `gorm:"size:10;not null;index" json:"segment"`
	Description string  `gorm:"type:text" json:"description"`

	Services []Service `gorm:"foreignKey:ServiceCategoryID" json:"services,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ServiceCategoryID uint             `gorm:"not null;index" json:"service_category_id"`
	Category          *ServiceCategory `gorm:"foreignKey:ServiceCategoryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"category,omitempty"`

	Name        string  `gorm:"size:255;not null" json:"name"`
	Description string  `gorm:"type:text" json:"description"`
	Price       float64 `gorm:"type:numeric(10,2);not null" json:"price"`
	IsActive    bool    `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
