package access

import (
	"github.com/BruksfildServices01/petcare-manager/internal/domain/query"
	"github.com/BruksfildServices01/petcare-manager/internal/httperr"
	"github.com/BruksfildServices01/petcare-manager/internal/models"
)

type Guard struct {
	registry *Registry
}

func NewGuard(registry *Registry) *Guard {
	return &Guard{registry: registry}
}

func (g *Guard) Registry() *Registry {
	return g.registry
}

// Authorize nega anônimos, inativos, papéis desconhecidos e quem não tem perm.
func (g *Guard) Authorize(p *Principal, perm Permission) error {
	if p == nil {
		return httperr.ErrUnauthenticated
	}
	if !p.Active {
		return httperr.ErrForbidden("inactive_user")
	}
	if !g.registry.Known(p.Role) {
		return httperr.ErrForbidden("unknown_role")
	}
	if !g.registry.Has(p.Role, perm) {
		return httperr.ErrForbidden("missing_permission")
	}
	return nil
}

func (g *Guard) AuthorizeAny(p *Principal, perms ...Permission) error {
	var last error = httperr.ErrForbidden("missing_permission")
	for _, perm := range perms {
		err := g.Authorize(p, perm)
		if err == nil {
			return nil
		}
		last = err
	}
	return last
}

func (g *Guard) AuthorizeSegment(p *Principal, perm Permission, seg models.Segment) error {
	if err := g.Authorize(p, perm); err != nil {
		return err
	}
	if !g.registry.AllowsSegment(p.Role, seg) {
		return httperr.ErrForbidden("segment_not_allowed")
	}
	return nil
}

// Can é a versão booleana de Authorize.
func (g *Guard) Can(p *Principal, perm Permission) bool {
	return g.Authorize(p, perm) == nil
}

// SegmentFilter estreita consultas sobre dados derivados de Service.
type SegmentFilter struct {
	registry *Registry
}

func NewSegmentFilter(registry *Registry) *SegmentFilter {
	return &SegmentFilter{registry: registry}
}

// Scope acrescenta um SegmentIn para papéis restritos. Os predicados do
// chamador são preservados.
func (f *SegmentFilter) Scope(spec query.Spec, p *Principal) (query.Spec, error) {
	if p == nil {
		return spec, httperr.ErrUnauthenticated
	}

	segs, restricted := f.registry.Segments(p.Role)
	if !restricted {
		return spec, nil
	}

	return spec.And(query.SegmentIn{Segments: segs}), nil
}
