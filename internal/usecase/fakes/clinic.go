package fakes

import (
	"context"

	"github.com/BruksfildServices01/petcare-manager/internal/domain/medical"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/query"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/vaccination"
	"github.com/BruksfildServices01/petcare-manager/internal/models"
)

// --------------------------------------------------
// Medical records
// --------------------------------------------------

type MedicalRecords struct {
	db       *DB
	LastSpec query.Spec
}

func (db *DB) MedicalRecords() *MedicalRecords { return &MedicalRecords{db: db} }

func (r *MedicalRecords) hydrate(m models.MedicalRecord) models.MedicalRecord {
	m.Pet = r.db.petRef(m.PetID)
	m.Veterinarian = r.db.userRef(m.VeterinarianID)
	if m.AppointmentID != nil {
		if ap, err := r.db.appointments.get(*m.AppointmentID); err == nil {
			m.Appointment = &ap
		}
	}
	return m
}

func (r *MedicalRecords) List(_ context.Context, spec query.Spec) (query.Page[models.MedicalRecord], error) {
	r.LastSpec = spec
	var out []models.MedicalRecord
	for _, m := range r.db.records.all() {
		m = r.hydrate(m)
		rw := row{
			fields: map[string]any{
				"pet_id":          m.PetID,
				"veterinarian_id": m.VeterinarianID,
				"appointment_id":  m.AppointmentID,
				"created_at":      m.CreatedAt,
			},
			text:    m.Diagnosis + " " + m.Treatment,
			segment: models.SegmentClinic,
		}
		if m.Pet != nil {
			rw.text += " " + m.Pet.Name
		}
		if rw.matches(spec) {
			out = append(out, m)
		}
	}
	return paginate(out, spec), nil
}

func (r *MedicalRecords) GetByID(_ context.Context, id uint) (*models.MedicalRecord, error) {
	m, err := r.db.records.get(id)
	if err != nil {
		return nil, err
	}
	m = r.hydrate(m)
	return &m, nil
}

func stripRecord(m models.MedicalRecord) models.MedicalRecord {
	m.Pet, m.Veterinarian, m.Appointment = nil, nil, nil
	return m
}

func (r *MedicalRecords) Create(_ context.Context, m *models.MedicalRecord) error {
	r.db.records.insert(func(id uint) { m.ID = id }, func() models.MedicalRecord { return stripRecord(*m) })
	return nil
}

func (r *MedicalRecords) Update(_ context.Context, m *models.MedicalRecord) error {
	return r.db.records.put(m.ID, stripRecord(*m))
}

func (r *MedicalRecords) Delete(_ context.Context, id uint) error {
	return r.db.records.remove(id)
}

var _ medical.Repository = (*MedicalRecords)(nil)

// --------------------------------------------------
// Vaccinations
// --------------------------------------------------

type Vaccinations struct {
	db       *DB
	LastSpec query.Spec
}

func (db *DB) Vaccinations() *Vaccinations { return &Vaccinations{db: db} }

func (r *Vaccinations) List(_ context.Context, spec query.Spec) (query.Page[models.Vaccination], error) {
	r.LastSpec = spec
	var out []models.Vaccination
	for _, v := range r.db.vaccinations.all() {
		rw := row{
			fields: map[string]any{
				"pet_id":           v.PetID,
				"application_date": v.ApplicationDate,
				"next_dose_date":   v.NextDoseDate,
			},
			text:    v.VaccineName,
			segment: models.SegmentClinic,
		}
		if rw.matches(spec) {
			v.Pet = r.db.petRef(v.PetID)
			out = append(out, v)
		}
	}
	return paginate(out, spec), nil
}

func (r *Vaccinations) GetByID(_ context.Context, id uint) (*models.Vaccination, error) {
	v, err := r.db.vaccinations.get(id)
	if err != nil {
		return nil, err
	}
	v.Pet = r.db.petRef(v.PetID)
	return &v, nil
}

func (r *Vaccinations) Create(_ context.Context, v *models.Vaccination) error {
	r.db.vaccinations.insert(func(id uint) { v.ID = id }, func() models.Vaccination {
		c := *v
		c.Pet = nil
		return c
	})
	return nil
}

func (r *Vaccinations) Update(_ context.Context, v *models.Vaccination) error {
	c := *v
	c.Pet = nil
	return r.db.vaccinations.put(v.ID, c)
}

func (r *Vaccinations) Delete(_ context.Context, id uint) error {
	return r.db.vaccinations.remove(id)
}

var _ vaccination.Repository = (*Vaccinations)(nil)
