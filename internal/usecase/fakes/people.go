package fakes

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/petcare-manager/internal/domain/pqr"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/query"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/user"
	"github.com/BruksfildServices01/petcare-manager/internal/httperr"
	"github.com/BruksfildServices01/petcare-manager/internal/models"
)

// --------------------------------------------------
// Pqrs
// --------------------------------------------------

type Pqrs struct {
	db       *DB
	LastSpec query.Spec
}

func (db *DB) Pqrs() *Pqrs { return &Pqrs{db: db} }

func (r *Pqrs) matching(spec query.Spec) []models.Pqr {
	var out []models.Pqr
	for _, p := range r.db.pqrs.all() {
		rw := row{
			fields: map[string]any{
				"status":      p.Status,
				"type":        p.Type,
				"assigned_to": p.AssignedTo,
				"created_at":  p.CreatedAt,
			},
			text: strings.Join([]string{p.Subject, p.Description, p.ClientName, p.ClientEmail}, " "),
		}
		if rw.matches(spec) {
			if p.AssignedTo != nil {
				p.Assignee = r.db.userRef(*p.AssignedTo)
			}
			out = append(out, p)
		}
	}
	return out
}

func (r *Pqrs) List(_ context.Context, spec query.Spec) (query.Page[models.Pqr], error) {
	r.LastSpec = spec
	return paginate(r.matching(spec), spec), nil
}

func (r *Pqrs) GetByID(_ context.Context, id uint) (*models.Pqr, error) {
	p, err := r.db.pqrs.get(id)
	if err != nil {
		return nil, err
	}
	if p.AssignedTo != nil {
		p.Assignee = r.db.userRef(*p.AssignedTo)
	}
	return &p, nil
}

func (r *Pqrs) Create(_ context.Context, p *models.Pqr) error {
	r.db.pqrs.insert(func(id uint) { p.ID = id }, func() models.Pqr {
		c := *p
		c.Assignee = nil
		return c
	})
	return nil
}

func (r *Pqrs) Mutate(ctx context.Context, id uint, fn func(p *models.Pqr) error) (*models.Pqr, error) {
	p, err := r.db.pqrs.get(id)
	if err != nil {
		return nil, err
	}
	if err := fn(&p); err != nil {
		return nil, err
	}
	p.Assignee = nil
	if err := r.db.pqrs.put(id, p); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *Pqrs) Delete(_ context.Context, id uint) error {
	return r.db.pqrs.remove(id)
}

func (r *Pqrs) Count(_ context.Context, spec query.Spec) (int64, error) {
	r.LastSpec = spec
	return int64(len(r.matching(spec))), nil
}

var _ pqr.Repository = (*Pqrs)(nil)

// --------------------------------------------------
// Users
// --------------------------------------------------

type Users struct {
	db       *DB
	LastSpec query.Spec
}

func (db *DB) Users() *Users { return &Users{db: db} }

func (r *Users) List(_ context.Context, spec query.Spec) (query.Page[models.User], error) {
	r.LastSpec = spec
	var out []models.User
	for _, u := range r.db.users.all() {
		rw := row{
			fields: map[string]any{"role": u.Role, "active": u.Active},
			text:   u.Name + " " + u.Email,
		}
		if rw.matches(spec) {
			out = append(out, u)
		}
	}
	return paginate(out, spec), nil
}

func (r *Users) GetByID(_ context.Context, id uint) (*models.User, error) {
	u, err := r.db.users.get(id)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Users) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.db.users.all() {
		if strings.EqualFold(u.Email, strings.TrimSpace(email)) {
			return &u, nil
		}
	}
	return nil, httperr.ErrNotFound("user")
}

func (r *Users) Create(_ context.Context, u *models.User) error {
	r.db.users.insert(func(id uint) { u.ID = id }, func() models.User { return *u })
	return nil
}

func (r *Users) Update(_ context.Context, u *models.User) error {
	return r.db.users.put(u.ID, *u)
}

func (r *Users) EmailTaken(_ context.Context, email string, excludeID uint) (bool, error) {
	for _, u := range r.db.users.all() {
		if u.ID != excludeID && strings.EqualFold(u.Email, strings.TrimSpace(email)) {
			return true, nil
		}
	}
	return false, nil
}

var _ user.Repository = (*Users)(nil)
