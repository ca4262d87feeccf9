package user

import (
	"context"

	"github.com/BruksfildServices01/petcare-manager/internal/audit"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/access"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/query"
	"github.com/BruksfildServices01/petcare-manager/internal/httperr"
	"github.com/BruksfildServices01/petcare-manager/internal/models"
	"github.com/BruksfildServices01/petcare-manager/internal/validators"
)

func (s *Service) List(
	ctx context.Context,
	p *access.Principal,
	f ListFilter,
) (query.Page[models.User], error) {

	if err := s.guard.Authorize(p, access.ViewUsers); err != nil {
		return query.Page[models.User]{}, err
	}

	spec := query.New(query.Search{Term: f.Search})
	if f.Role != "" {
		spec = spec.And(query.Eq{Field: "role", Value: f.Role})
	}
	if f.Active != nil {
		spec = spec.And(query.Eq{Field: "active", Value: *f.Active})
	}

	spec = spec.OrderBy("name", false).Paginate(f.Page, f.PerPage)
	return s.repo.List(ctx, spec)
}

func (s *Service) Get(ctx context.Context, p *access.Principal, id uint) (*models.User, error) {
	if err := s.guard.Authorize(p, access.ViewUsers); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, p *access.Principal, in Input) (*models.User, error) {
	if err := s.guard.Authorize(p, access.ManageUsers); err != nil {
		return nil, err
	}

	in = in.normalized()
	if err := s.check(ctx, in, 0); err != nil {
		return nil, err
	}
	if in.Password == "" {
		return nil, httperr.FieldError("password", "La contraseña es obligatoria.")
	}

	hashed, err := s.hash(in.Password)
	if err != nil {
		return nil, err
	}

	u := &models.User{PasswordHash: hashed}
	in.apply(u)

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, audit.By(p, "user_created", "user", u.ID).With(map[string]string{
		"role": u.Role,
	}))
	return u, nil
}

// Update não deixa o usuário se desativar nem trocar o próprio papel.
func (s *Service) Update(
	ctx context.Context,
	p *access.Principal,
	id uint,
	in Input,
) (*models.User, error) {

	if err := s.guard.Authorize(p, access.ManageUsers); err != nil {
		return nil, err
	}

	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	in = in.normalized()
	if err := s.check(ctx, in, u.ID); err != nil {
		return nil, err
	}

	if u.ID == p.UserID {
		if in.Active != nil && !*in.Active {
			return nil, httperr.FieldError("active", "No puede desactivar su propio usuario.")
		}
		if in.Role != u.Role {
			return nil, httperr.FieldError("role", "No puede cambiar su propio rol.")
		}
	}

	if in.Password != "" {
		hashed, err := s.hash(in.Password)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = hashed
	}
	in.apply(u)

	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, audit.By(p, "user_updated", "user", u.ID))
	return u, nil
}

func (s *Service) check(ctx context.Context, in Input, excludeID uint) error {
	if err := validators.Struct(in); err != nil {
		return err
	}

	role := access.Role(in.Role)
	if !s.guard.Registry().Known(role) || role == access.RolePublic {
		return httperr.FieldError("role", "El rol no es válido.")
	}

	taken, err := s.repo.EmailTaken(ctx, in.Email, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return httperr.FieldError("email", "El correo ya está registrado.")
	}
	return nil
}
