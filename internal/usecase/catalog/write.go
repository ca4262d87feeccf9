package catalog

import (
	"context"

	"github.com/BruksfildServices01/petcare-manager/internal/audit"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/access"
	"github.com/BruksfildServices01/petcare-manager/internal/httperr"
	"github.com/BruksfildServices01/petcare-manager/internal/models"
	"github.com/BruksfildServices01/petcare-manager/internal/validators"
)

// ======================================================
// SERVICES
// ======================================================

func (s *Service) CreateService(
	ctx context.Context,
	p *access.Principal,
	in ServiceInput,
) (*models.Service, error) {

	if err := s.guard.Authorize(p, access.ManageServices); err != nil {
		return nil, err
	}

	in = in.normalized()
	if err := validators.Struct(in); err != nil {
		return nil, err
	}

	cat, err := s.category(ctx, in.ServiceCategoryID)
	if err != nil {
		return nil, err
	}
	if err := s.guard.AuthorizeSegment(p, access.ManageServices, cat.Segment); err != nil {
		return nil, err
	}

	svc := &models.Service{}
	in.apply(svc)

	if err := s.repo.CreateService(ctx, svc); err != nil {
		return nil, err
	}
	svc.Category = cat

	s.audit.Record(ctx, audit.By(p, "service_created", "service", svc.ID))
	return svc, nil
}

// UpdateService exige acesso ao segmento atual e ao da nova categoria.
func (s *Service) UpdateService(
	ctx context.Context,
	p *access.Principal,
	id uint,
	in ServiceInput,
) (*models.Service, error) {

	svc, err := s.writable(ctx, p, access.ManageServices, id)
	if err != nil {
		return nil, err
	}

	in = in.normalized()
	if err := validators.Struct(in); err != nil {
		return nil, err
	}

	cat, err := s.category(ctx, in.ServiceCategoryID)
	if err != nil {
		return nil, err
	}
	if err := s.guard.AuthorizeSegment(p, access.ManageServices, cat.Segment); err != nil {
		return nil, err
	}

	in.apply(svc)
	svc.Category = nil

	if err := s.repo.UpdateService(ctx, svc); err != nil {
		return nil, err
	}
	svc.Category = cat

	s.audit.Record(ctx, audit.By(p, "service_updated", "service", svc.ID))
	return svc, nil
}

func (s *Service) UpdatePrice(
	ctx context.Context,
	p *access.Principal,
	id uint,
	in PriceInput,
) (*models.Service, error) {

	svc, err := s.writable(ctx, p, access.ManagePrices, id)
	if err != nil {
		return nil, err
	}
	if err := validators.Struct(in); err != nil {
		return nil, err
	}

	old := svc.Price
	svc.Price = *in.Price
	cat := svc.Category
	svc.Category = nil

	if err := s.repo.UpdateService(ctx, svc); err != nil {
		return nil, err
	}
	svc.Category = cat

	s.audit.Record(ctx, audit.By(p, "service_price_updated", "service", svc.ID).With(map[string]float64{
		"old_price": old,
		"new_price": svc.Price,
	}))
	return svc, nil
}

func (s *Service) DeleteService(ctx context.Context, p *access.Principal, id uint) error {
	svc, err := s.writable(ctx, p, access.ManageServices, id)
	if err != nil {
		return err
	}

	n, err := s.repo.CountServiceAppointments(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return httperr.ErrConflict(
			"service_has_appointments",
			"No se puede eliminar el servicio porque tiene citas asociadas.",
		)
	}

	if err := s.repo.DeleteService(ctx, id); err != nil {
		return err
	}

	s.audit.Record(ctx, audit.By(p, "service_deleted", "service", id).With(map[string]string{"name": svc.Name}))
	return nil
}

// writable carrega o serviço e confere permissão no segmento dele.
func (s *Service) writable(
	ctx context.Context,
	p *access.Principal,
	perm access.Permission,
	id uint,
) (*models.Service, error) {

	if err := s.guard.Authorize(p, perm); err != nil {
		return nil, err
	}
	svc, err := s.repo.GetService(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.guard.AuthorizeSegment(p, perm, segmentOf(svc)); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *Service) category(ctx context.Context, id uint) (*models.ServiceCategory, error) {
	cat, err := s.repo.GetCategory(ctx, id)
	if err != nil {
		if httperr.IsNotFound(err) {
			return nil, httperr.FieldError("service_category_id", "La categoría no existe.")
		}
		return nil, err
	}
	return cat, nil
}

// ======================================================
// CATEGORIES
// ======================================================

func (s *Service) CreateCategory(
	ctx context.Context,
	p *access.Principal,
	in CategoryInput,
) (*models.ServiceCategory, error) {

	in = in.normalized()
	if err := s.guard.Authorize(p, access.ManageServices); err != nil {
		return nil, err
	}
	if err := validators.Struct(in); err != nil {
		return nil, err
	}

	seg := models.Segment(in.Segment)
	if err := s.guard.AuthorizeSegment(p, access.ManageServices, seg); err != nil {
		return nil, err
	}

	cat := &models.ServiceCategory{
		Name:        in.Name,
		Segment:     seg,
		Description: in.Description,
	}
	if err := s.repo.CreateCategory(ctx, cat); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, audit.By(p, "service_category_created", "service_category", cat.ID))
	return cat, nil
}
