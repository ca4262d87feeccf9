package catalog

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/petcare-manager/internal/domain/access"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/query"
	"github.com/BruksfildServices01/petcare-manager/internal/httperr"
	"github.com/BruksfildServices01/petcare-manager/internal/models"
)

// ListServices devolve só serviços dos segmentos do usuário, mesmo que o
// filtro pedido aponte para uma categoria de outro segmento.
func (s *Service) ListServices(
	ctx context.Context,
	p *access.Principal,
	f ListFilter,
) (query.Page[models.Service], error) {

	if err := s.guard.Authorize(p, access.ViewServices); err != nil {
		return query.Page[models.Service]{}, err
	}

	spec := query.New(query.Search{Term: f.Search})
	if f.CategoryID != 0 {
		spec = spec.And(query.Eq{Field: "service_category_id", Value: f.CategoryID})
	}
	if f.Segment != "" {
		spec = spec.And(query.Eq{Field: "segment", Value: strings.ToLower(f.Segment)})
	}
	if f.Active != nil {
		spec = spec.And(query.Eq{Field: "is_active", Value: *f.Active})
	}

	spec, err := s.segments.Scope(spec, p)
	if err != nil {
		return query.Page[models.Service]{}, err
	}

	return s.repo.ListServices(ctx, spec.Paginate(f.Page, f.PerPage))
}

func (s *Service) GetService(ctx context.Context, p *access.Principal, id uint) (*models.Service, error) {
	svc, err := s.repo.GetService(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.guard.AuthorizeSegment(p, access.ViewServices, segmentOf(svc)); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *Service) ListCategories(
	ctx context.Context,
	p *access.Principal,
	segment string,
) ([]models.ServiceCategory, error) {

	if err := s.guard.Authorize(p, access.ViewServices); err != nil {
		return nil, err
	}

	spec := query.New()
	if segment != "" {
		spec = spec.And(query.Eq{Field: "segment", Value: strings.ToLower(segment)})
	}

	spec, err := s.segments.Scope(spec.OrderBy("name", false), p)
	if err != nil {
		return nil, err
	}
	return s.repo.ListCategories(ctx, spec)
}

// PublicCatalog é aberto: categorias com serviços ativos, opcionalmente de
// um segmento.
func (s *Service) PublicCatalog(ctx context.Context, segment string) ([]models.ServiceCategory, error) {
	segment = strings.ToLower(strings.TrimSpace(segment))
	if segment == "" {
		return s.repo.ActiveCatalog(ctx, nil)
	}

	seg := models.Segment(segment)
	if !seg.Valid() {
		return nil, httperr.FieldError("segment", "Debe ser uno de: clinic, hotel, spa.")
	}
	return s.repo.ActiveCatalog(ctx, &seg)
}

func segmentOf(svc *models.Service) models.Segment {
	if svc.Category == nil {
		return ""
	}
	return svc.Category.Segment
}
