package models

import "time"

type Pet struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint    `gorm:"not null;index" json:"client_id"`
	Client   *Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"client,omitempty"`

	Name      string     `gorm:"size:255;not null" json:"name"`
	Species   string     `gorm:"size:100;not null;index" json:"species"`
	Breed     string     `gorm:"size:100;not null" json:"breed"`
	BirthDate *time.Time `gorm:"type:date" json:"birth_date"`
	Gender    string     `gorm:"size:10;not null" json:"gender"`
	Weight    *float64   `gorm:"type:numeric(8,2)" json:"weight"`

	MedicalObservations string `gorm:"type:text" json:"medical_observations"`
	Photo               string `gorm:"size:255" json:"photo"`
	PhotoURL            string `gorm:"-" json:"photo_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
