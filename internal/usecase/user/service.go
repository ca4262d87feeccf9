package user

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/petcare-manager/internal/audit"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/access"
	domain "github.com/BruksfildServices01/petcare-manager/internal/domain/user"
)

type Service struct {
	repo     domain.Repository
	guard    *access.Guard
	audit    audit.Recorder
	hashCost int
}

func NewService(repo domain.Repository, guard *access.Guard, rec audit.Recorder) *Service {
	return &Service{
		repo:     repo,
		guard:    guard,
		audit:    rec,
		hashCost: bcrypt.DefaultCost,
	}
}

// WithHashCost existe para os testes não pagarem o custo padrão do bcrypt.
func (s *Service) WithHashCost(cost int) *Service {
	s.hashCost = cost
	return s
}

func (s *Service) hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
