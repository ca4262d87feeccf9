package client

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/petcare-manager/internal/domain/access"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/query"
	"github.com/BruksfildServices01/petcare-manager/internal/models"
)

const (
	quickSearchMin   = 2
	quickSearchLimit = 10
)

func (s *Service) List(
	ctx context.Context,
	p *access.Principal,
	f ListFilter,
) (query.Page[models.Client], error) {

	if err := s.guard.Authorize(p, access.ViewClients); err != nil {
		return query.Page[models.Client]{}, err
	}

	spec := query.New(query.Search{Term: f.Search})
	if f.IdentificationType != "" {
		spec = spec.And(query.Eq{Field: "identification_type", Value: strings.ToUpper(f.IdentificationType)})
	}

	return s.repo.List(ctx, spec.Paginate(f.Page, f.PerPage))
}

// QuickSearch alimenta autocompletes: termos curtos devolvem lista vazia.
func (s *Service) QuickSearch(
	ctx context.Context,
	p *access.Principal,
	term string,
) ([]models.Client, error) {

	if err := s.guard.Authorize(p, access.ViewClients); err != nil {
		return nil, err
	}

	term = strings.TrimSpace(term)
	if len([]rune(term)) < quickSearchMin {
		return []models.Client{}, nil
	}

	page, err := s.repo.List(ctx,
		query.New(query.Search{Term: term}).
			OrderBy("name", false).
			Paginate(1, quickSearchLimit),
	)
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

func (s *Service) Get(ctx context.Context, p *access.Principal, id uint) (*models.Client, error) {
	if err := s.guard.Authorize(p, access.ViewClients); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}
