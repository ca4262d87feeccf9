package client

import (
	"strings"

	"github.com/BruksfildServices01/petcare-manager/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type Input struct {
	Name                 string `json:"name" validate:"required,max=255"`
	Email                string `json:"email" validate:"required,email,max=255"`
	Phone                string `json:"phone" validate:"required,max=20"`
	Address              string `json:"address" validate:"required"`
	IdentificationType   string `json:"identification_type" validate:"required,oneof=CC CE NIT PP"`
	IdentificationNumber string `json:"identification_number" validate:"required,max=50"`
}

// InputOf parte do registro atual; o PATCH sobrepõe só o que vier no corpo.
func InputOf(c *models.Client) Input {
	return Input{
		Name:                 c.Name,
		Email:                c.Email,
		Phone:                c.Phone,
		Address:              c.Address,
		IdentificationType:   c.IdentificationType,
		IdentificationNumber: c.IdentificationNumber,
	}
}

func (in Input) normalized() Input {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Phone = strings.TrimSpace(in.Phone)
	in.Address = strings.TrimSpace(in.Address)
	in.IdentificationType = strings.ToUpper(strings.TrimSpace(in.IdentificationType))
	in.IdentificationNumber = strings.TrimSpace(in.IdentificationNumber)
	return in
}

func (in Input) apply(c *models.Client) {
	c.Name = in.Name
	c.Email = in.Email
	c.Phone = in.Phone
	c.Address = in.Address
	c.IdentificationType = in.IdentificationType
	c.IdentificationNumber = in.IdentificationNumber
}

type ListFilter struct {
	Search             string
	IdentificationType string
	Page               int
	PerPage            int
}
