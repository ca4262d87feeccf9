package pqr

import "strings"

// ======================================================
// PUBLIC FORM
// ======================================================

type SubmitInput struct {
	ClientName  string `json:"client_name" validate:"required,max=255"`
	ClientEmail string `json:"client_email" validate:"required,email,max=255"`
	ClientPhone string `json:"client_phone" validate:"max=20"`
	Type        string `json:"type" validate:"required,oneof=peticion queja reclamo sugerencia"`
	Subject     string `json:"subject" validate:"required,max=255"`
	Description string `json:"description" validate:"required"`
}

func (in SubmitInput) normalized() SubmitInput {
	in.ClientName = strings.TrimSpace(in.ClientName)
	in.ClientEmail = strings.ToLower(strings.TrimSpace(in.ClientEmail))
	in.ClientPhone = strings.TrimSpace(in.ClientPhone)
	in.Type = strings.ToLower(strings.TrimSpace(in.Type))
	in.Subject = strings.TrimSpace(in.Subject)
	in.Description = strings.TrimSpace(in.Description)
	return in
}

// ======================================================
// BACKOFFICE
// ======================================================

// UpdateInput é parcial: só os campos presentes mudam.
type UpdateInput struct {
	Status     *string `json:"status" validate:"omitempty,oneof=pending in_process resolved closed"`
	Response   *string `json:"response"`
	AssignedTo *uint   `json:"assigned_to"`
}

type AssignInput struct {
	UserID uint `json:"user_id" validate:"required"`
}

type RespondInput struct {
	Response string `json:"response" validate:"required"`
}

type ListFilter struct {
	Search     string
	Status     string
	Type       string
	AssignedTo uint
	From       string
	To         string
	Page       int
	PerPage    int
}
