package models

import "time"

type MedicalRecord struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PetID uint `gorm:"not null;index" json:"pet_id"`
	Pet   *Pet `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"pet,omitempty"`

	AppointmentID *uint        `gorm:"index" json:"appointment_id"`
	Appointment   *Appointment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"appointment,omitempty"`

	VeterinarianID uint  `gorm:"not null;index" json:"veterinarian_id"`
	Veterinarian   *User `gorm:"foreignKey:VeterinarianID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"veterinarian,omitempty"`

	Diagnosis    string     `gorm:"type:text;not null" json:"diagnosis"`
	Treatment    string     `gorm:"type:text;not null" json:"treatment"`
	Medications  string     `gorm:"type:text" json:"medications"`
	Observations string     `gorm:"type:text" json:"observations"`
	NextVisit    *time.Time `gorm:"type:date" json:"next_visit"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
