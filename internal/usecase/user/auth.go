package user

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/petcare-manager/internal/domain/access"
	"github.com/BruksfildServices01/petcare-manager/internal/httperr"
	"github.com/BruksfildServices01/petcare-manager/internal/models"
)

// ErrInvalidCredentials não diz se o erro foi no e-mail ou na senha.
var ErrInvalidCredentials = errors.New("invalid_credentials")

func (s *Service) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	u, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if httperr.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !u.Active {
		return nil, httperr.ErrForbidden("inactive_user")
	}

	return u, nil
}

// Principal recarrega o usuário do token a cada requisição, então papel e
// desativação valem sem esperar o token expirar.
func (s *Service) Principal(ctx context.Context, id uint) (*access.Principal, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if httperr.IsNotFound(err) {
			return nil, httperr.ErrUnauthenticated
		}
		return nil, err
	}
	return PrincipalOf(u), nil
}

func PrincipalOf(u *models.User) *access.Principal {
	return &access.Principal{
		UserID: u.ID,
		Name:   u.Name,
		Role:   access.Role(u.Role),
		Active: u.Active,
	}
}
