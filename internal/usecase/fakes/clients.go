package fakes

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/BruksfildServices01/petcare-manager/internal/domain/client"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/pet"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/query"
	"github.com/BruksfildServices01/petcare-manager/internal/models"
)

// --------------------------------------------------
// Clients
// --------------------------------------------------

type Clients struct {
	db       *DB
	LastSpec query.Spec
}

func (db *DB) Clients() *Clients { return &Clients{db: db} }

func clientRow(c models.Client) row {
	return row{
		fields: map[string]any{"identification_type": c.IdentificationType},
		text:   strings.Join([]string{c.Name, c.Email, c.Phone, c.IdentificationNumber}, " "),
	}
}

func (r *Clients) List(_ context.Context, spec query.Spec) (query.Page[models.Client], error) {
	r.LastSpec = spec
	var out []models.Client
	for _, c := range r.db.clients.all() {
		if clientRow(c).matches(spec) {
			out = append(out, c)
		}
	}
	return paginate(out, spec), nil
}

func (r *Clients) GetByID(_ context.Context, id uint) (*models.Client, error) {
	c, err := r.db.clients.get(id)
	if err != nil {
		return nil, err
	}
	c.Pets = nil
	for _, p := range r.db.pets.all() {
		if p.ClientID == id {
			c.Pets = append(c.Pets, p)
		}
	}
	return &c, nil
}

func (r *Clients) Create(_ context.Context, c *models.Client) error {
	r.db.clients.insert(func(id uint) { c.ID = id }, func() models.Client { return *c })
	return nil
}

func (r *Clients) Update(_ context.Context, c *models.Client) error {
	return r.db.clients.put(c.ID, *c)
}

func (r *Clients) Delete(_ context.Context, id uint) error {
	return r.db.clients.remove(id)
}

func (r *Clients) Taken(_ context.Context, field, value string, excludeID uint) (bool, error) {
	for _, c := range r.db.clients.all() {
		if c.ID == excludeID {
			continue
		}
		switch field {
		case "email":
			if strings.EqualFold(c.Email, value) {
				return true, nil
			}
		case "identification_number":
			if c.IdentificationNumber == value {
				return true, nil
			}
		default:
			return false, fmt.Errorf("unknown field %s", field)
		}
	}
	return false, nil
}

func (r *Clients) CountDependents(_ context.Context, id uint) (client.Dependents, error) {
	var d client.Dependents
	for _, p := range r.db.pets.all() {
		if p.ClientID == id {
			d.Pets++
		}
	}
	for _, ap := range r.db.appointments.all() {
		if ap.ClientID == id {
			d.Appointments++
		}
	}
	for _, hs := range r.db.stays.all() {
		if hs.ClientID == id {
			d.HotelStays++
		}
	}
	return d, nil
}

func (r *Clients) Count(ctx context.Context, spec query.Spec) (int64, error) {
	page, err := r.List(ctx, spec)
	return page.Total, err
}

var _ client.Repository = (*Clients)(nil)

// --------------------------------------------------
// Pets
// --------------------------------------------------

type Pets struct {
	db       *DB
	LastSpec query.Spec
}

func (db *DB) Pets() *Pets { return &Pets{db: db} }

func (r *Pets) List(_ context.Context, spec query.Spec) (query.Page[models.Pet], error) {
	r.LastSpec = spec
	var out []models.Pet
	for _, p := range r.db.pets.all() {
		rw := row{
			fields: map[string]any{"client_id": p.ClientID, "species": p.Species},
			text:   strings.Join([]string{p.Name, p.Species, p.Breed}, " "),
		}
		if rw.matches(spec) {
			p.Client = r.db.clientRef(p.ClientID)
			out = append(out, p)
		}
	}
	return paginate(out, spec), nil
}

func (r *Pets) GetByID(_ context.Context, id uint) (*models.Pet, error) {
	p, err := r.db.pets.get(id)
	if err != nil {
		return nil, err
	}
	p.Client = r.db.clientRef(p.ClientID)
	return &p, nil
}

func (r *Pets) Create(_ context.Context, p *models.Pet) error {
	r.db.pets.insert(func(id uint) { p.ID = id }, func() models.Pet {
		v := *p
		v.Client = nil
		return v
	})
	return nil
}

func (r *Pets) Update(_ context.Context, p *models.Pet) error {
	v := *p
	v.Client = nil
	return r.db.pets.put(p.ID, v)
}

// Delete leva junto as vacinas, como o ON DELETE CASCADE.
func (r *Pets) Delete(_ context.Context, id uint) error {
	for _, v := range r.db.vaccinations.all() {
		if v.PetID == id {
			_ = r.db.vaccinations.remove(v.ID)
		}
	}
	return r.db.pets.remove(id)
}

func (r *Pets) CountDependents(_ context.Context, id uint) (pet.Dependents, error) {
	var d pet.Dependents
	for _, ap := range r.db.appointments.all() {
		if ap.PetID == id {
			d.Appointments++
		}
	}
	for _, hs := range r.db.stays.all() {
		if hs.PetID == id {
			d.HotelStays++
		}
	}
	for _, m := range r.db.records.all() {
		if m.PetID == id {
			d.MedicalRecords++
		}
	}
	return d, nil
}

func (r *Pets) Count(ctx context.Context, spec query.Spec) (int64, error) {
	page, err := r.List(ctx, spec)
	return page.Total, err
}

func (r *Pets) BreedStats(context.Context) ([]pet.BreedCount, error) {
	counts := map[[2]string]int64{}
	for _, p := range r.db.pets.all() {
		counts[[2]string{strings.ToLower(p.Species), p.Breed}]++
	}
	out := make([]pet.BreedCount, 0, len(counts))
	for k, n := range counts {
		out = append(out, pet.BreedCount{Species: k[0], Breed: k[1], Total: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Breed < out[j].Breed
	})
	return out, nil
}

var _ pet.Repository = (*Pets)(nil)
