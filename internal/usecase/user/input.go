package user

import (
	"strings"

	"github.com/BruksfildServices01/petcare-manager/internal/models"
)

// Input serve para criar e para o PATCH. Password vazio no PATCH mantém a
// senha atual.
type Input struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"omitempty,min=8,max=72"`
	Phone    string `json:"phone" validate:"max=20"`
	Role     string `json:"role" validate:"required"`
	Active   *bool  `json:"active"`
}

func InputOf(u *models.User) Input {
	active := u.Active
	return Input{
		Name:   u.Name,
		Email:  u.Email,
		Phone:  u.Phone,
		Role:   u.Role,
		Active: &active,
	}
}

func (in Input) normalized() Input {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Phone = strings.TrimSpace(in.Phone)
	in.Role = strings.TrimSpace(in.Role)
	return in
}

func (in Input) apply(u *models.User) {
	u.Name = in.Name
	u.Email = in.Email
	u.Phone = in.Phone
	u.Role = in.Role
	u.Active = in.Active == nil || *in.Active
}

type ListFilter struct {
	Search  string
	Role    string
	Active  *bool
	Page    int
	PerPage int
}
