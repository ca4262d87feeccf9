package models

import "time"

type HotelStay struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PetID uint `gorm:"not null;index" json:"pet_id"`
	Pet   *Pet `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"pet,omitempty"`

	ClientID uint    `gorm:"not null;index" json:"client_id"`
	Client   *Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"client,omitempty"`

	CheckInDate  time.Time `gorm:"type:date;not null;index" json:"check_in_date"`
	CheckOutDate time.Time `gorm:"type:date;not null;index" json:"check_out_date"`

	RoomType            string  `gorm:"size:20;not null" json:"room_type"`
	SpecialRequirements string  `gorm:"type:text" json:"special_requirements"`
	DailyRate           float64 `gorm:"type:numeric(8,2);not null" json:"daily_rate"`
	TotalCost           float64 `gorm:"type:numeric(10,2);not null" json:"total_cost"`

	Status string `gorm:"size:20;not null;default:'reserved';index" json:"status"`

	CheckedInAt  *time.Time `json:"checked_in_at"`
	CheckedOutAt *time.Time `json:"checked_out_at"`
	CancelledAt  *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
