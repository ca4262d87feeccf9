package dto

import "time"

// CalendarEventDTO é uma entrada do calendário mensal de citas ou hospedagens.
type CalendarEventDTO struct {
	ID         uint      `json:"id"`
	Title      string    `json:"title"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	Status     string    `json:"status"`
	ClientName string    `json:"client_name"`
	PetName    string    `json:"pet_name"`
	Segment    string    `json:"segment,omitempty"`
}
