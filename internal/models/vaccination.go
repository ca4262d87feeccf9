package models

import "time"

type Vaccination struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PetID uint `gorm:"not null;index" json:"pet_id"`
	Pet   *Pet `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"pet,omitempty"`

	VaccineName     string     `gorm:"size:255;not null" json:"vaccine_name"`
	ApplicationDate time.Time  `gorm:"type:date;not null" json:"application_date"`
	NextDoseDate    *time.Time `gorm:"type:date;index" json:"next_dose_date"`
	Observations    string     `gorm:"type:text" json:"observations"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
