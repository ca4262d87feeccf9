package models

import "time"

type Pqr struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientName  string `gorm:"size:255;not null" json:"client_name"`
	ClientEmail string `gorm:"size:255;not null" json:"client_email"`
	ClientPhone string `gorm:"size:20" json:"client_phone"`

	Type        string `gorm:"size:20;not null;index" json:"type"`
	Subject     string `gorm:"size:255;not null" json:"subject"`
	Description string `gorm:"type:text;not null" json:"description"`

	Status   string `gorm:"size:20;not null;default:'pending';index" json:"status"`
	Response string `gorm:"type:text" json:"response"`

	AssignedTo *uint `gorm:"index" json:"assigned_to"`
	Assignee   *User `gorm:"foreignKey:AssignedTo;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"assignee,omitempty"`

	ResolvedAt *time.Time `json:"resolved_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
