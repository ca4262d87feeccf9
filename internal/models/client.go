package models

import "time"

type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name    string `gorm:"size:255;not null" json:"name"`
	Email   string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Phone   string `gorm:"size:20;not null" json:"phone"`
	Address string `gorm:"type:text;not null" json:"address"`

	IdentificationType   string `gorm:"size:5;not null;default:'CC'" json:"identification_type"`
	IdentificationNumber string `gorm:"size:50;uniqueIndex;not null" json:"identification_number"`

	Pets []Pet `json:"pets,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
