package fakes

import (
	"context"
	"sort"

	"github.com/BruksfildServices01/petcare-manager/internal/domain/catalog"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/query"
	"github.com/BruksfildServices01/petcare-manager/internal/models"
)

type Catalog struct {
	db       *DB
	LastSpec query.Spec
}

func (db *DB) Catalog() *Catalog { return &Catalog{db: db} }

func serviceRow(s models.Service) row {
	rw := row{
		fields: map[string]any{
			"service_category_id": s.ServiceCategoryID,
			"is_active":           s.IsActive,
		},
		text: s.Name + " " + s.Description,
	}
	if s.Category != nil {
		rw.segment = s.Category.Segment
		rw.fields["segment"] = s.Category.Segment
	}
	return rw
}

func (r *Catalog) ListServices(_ context.Context, spec query.Spec) (query.Page[models.Service], error) {
	r.LastSpec = spec
	var out []models.Service
	for _, s := range r.db.services.all() {
		full := r.db.serviceWithCategory(s.ID)
		if serviceRow(*full).matches(spec) {
			out = append(out, *full)
		}
	}
	return paginate(out, spec), nil
}

func (r *Catalog) GetService(_ context.Context, id uint) (*models.Service, error) {
	if _, err := r.db.services.get(id); err != nil {
		return nil, err
	}
	return r.db.serviceWithCategory(id), nil
}

func (r *Catalog) CreateService(_ context.Context, s *models.Service) error {
	r.db.services.insert(func(id uint) { s.ID = id }, func() models.Service {
		v := *s
		v.Category = nil
		return v
	})
	return nil
}

func (r *Catalog) UpdateService(_ context.Context, s *models.Service) error {
	v := *s
	v.Category = nil
	return r.db.services.put(s.ID, v)
}

func (r *Catalog) DeleteService(_ context.Context, id uint) error {
	return r.db.services.remove(id)
}

func (r *Catalog) CountServiceAppointments(_ context.Context, id uint) (int64, error) {
	var n int64
	for _, ap := range r.db.appointments.all() {
		if ap.ServiceID == id {
			n++
		}
	}
	return n, nil
}

func (r *Catalog) CountServices(ctx context.Context, spec query.Spec) (int64, error) {
	page, err := r.ListServices(ctx, spec)
	return page.Total, err
}

func (r *Catalog) ListCategories(_ context.Context, spec query.Spec) ([]models.ServiceCategory, error) {
	r.LastSpec = spec
	out := []models.ServiceCategory{}
	for _, c := range r.db.categories.all() {
		rw := row{fields: map[string]any{"segment": c.Segment}, text: c.Name, segment: c.Segment}
		if rw.matches(spec) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *Catalog) GetCategory(_ context.Context, id uint) (*models.ServiceCategory, error) {
	c, err := r.db.categories.get(id)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Catalog) CreateCategory(_ context.Context, c *models.ServiceCategory) error {
	r.db.categories.insert(func(id uint) { c.ID = id }, func() models.ServiceCategory { return *c })
	return nil
}

func (r *Catalog) ActiveCatalog(_ context.Context, segment *models.Segment) ([]models.ServiceCategory, error) {
	out := []models.ServiceCategory{}
	for _, c := range r.db.categories.all() {
		if segment != nil && c.Segment != *segment {
			continue
		}
		c.Services = nil
		for _, s := range r.db.services.all() {
			if s.ServiceCategoryID == c.ID && s.IsActive {
				c.Services = append(c.Services, s)
			}
		}
		if len(c.Services) == 0 {
			continue
		}
		sort.Slice(c.Services, func(i, j int) bool { return c.Services[i].Name < c.Services[j].Name })
		out = append(out, c)
	}
	return out, nil
}

var _ catalog.Repository = (*Catalog)(nil)
