package fakes

import (
	"context"
	"sort"

	"github.com/BruksfildServices01/petcare-manager/internal/domain/appointment"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/hotelstay"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/query"
	"github.com/BruksfildServices01/petcare-manager/internal/models"
)

// --------------------------------------------------
// Appointments
// --------------------------------------------------

type Appointments struct {
	db       *DB
	LastSpec query.Spec
}

func (db *DB) Appointments() *Appointments { return &Appointments{db: db} }

func (r *Appointments) hydrate(ap models.Appointment) models.Appointment {
	ap.Client = r.db.clientRef(ap.ClientID)
	ap.Pet = r.db.petRef(ap.PetID)
	ap.Service = r.db.serviceWithCategory(ap.ServiceID)
	ap.User = r.db.userRef(ap.UserID)
	return ap
}

func (r *Appointments) row(ap models.Appointment) row {
	rw := row{
		fields: map[string]any{
			"status":           ap.Status,
			"service_id":       ap.ServiceID,
			"user_id":          ap.UserID,
			"client_id":        ap.ClientID,
			"pet_id":           ap.PetID,
			"appointment_date": ap.AppointmentDate,
			"completed_at":     ap.CompletedAt,
		},
		segment: r.db.serviceSegment(ap.ServiceID),
	}
	rw.fields["segment"] = rw.segment
	if ap.Client != nil {
		rw.text += ap.Client.Name + " "
	}
	if ap.Pet != nil {
		rw.text += ap.Pet.Name
	}
	return rw
}

func (r *Appointments) matching(spec query.Spec) []models.Appointment {
	var out []models.Appointment
	for _, ap := range r.db.appointments.all() {
		ap = r.hydrate(ap)
		if r.row(ap).matches(spec) {
			out = append(out, ap)
		}
	}
	return out
}

func (r *Appointments) List(_ context.Context, spec query.Spec) (query.Page[models.Appointment], error) {
	r.LastSpec = spec
	out := r.matching(spec)
	if spec.Sort.Field == "appointment_date" {
		sort.SliceStable(out, func(i, j int) bool {
			if spec.Sort.Desc {
				return out[i].AppointmentDate.After(out[j].AppointmentDate)
			}
			return out[i].AppointmentDate.Before(out[j].AppointmentDate)
		})
	}
	return paginate(out, spec), nil
}

func (r *Appointments) GetByID(_ context.Context, id uint) (*models.Appointment, error) {
	ap, err := r.db.appointments.get(id)
	if err != nil {
		return nil, err
	}
	ap = r.hydrate(ap)
	return &ap, nil
}

func strip(ap models.Appointment) models.Appointment {
	ap.Client, ap.Pet, ap.Service, ap.User = nil, nil, nil, nil
	return ap
}

func (r *Appointments) Create(_ context.Context, ap *models.Appointment) error {
	r.db.appointments.insert(func(id uint) { ap.ID = id }, func() models.Appointment { return strip(*ap) })
	return nil
}

func (r *Appointments) Update(_ context.Context, ap *models.Appointment) error {
	return r.db.appointments.put(ap.ID, strip(*ap))
}

func (r *Appointments) Mutate(
	ctx context.Context,
	id uint,
	fn func(ap *models.Appointment) error,
) (*models.Appointment, error) {
	ap, err := r.db.appointments.get(id)
	if err != nil {
		return nil, err
	}
	if err := fn(&ap); err != nil {
		return nil, err
	}
	if err := r.db.appointments.put(id, strip(ap)); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *Appointments) Delete(_ context.Context, id uint) error {
	return r.db.appointments.remove(id)
}

func (r *Appointments) CountMedicalRecords(_ context.Context, id uint) (int64, error) {
	var n int64
	for _, m := range r.db.records.all() {
		if m.AppointmentID != nil && *m.AppointmentID == id {
			n++
		}
	}
	return n, nil
}

func (r *Appointments) Count(_ context.Context, spec query.Spec) (int64, error) {
	r.LastSpec = spec
	return int64(len(r.matching(spec))), nil
}

func (r *Appointments) SumFinalPrice(_ context.Context, spec query.Spec) (float64, error) {
	var total float64
	for _, ap := range r.matching(spec) {
		if ap.FinalPrice != nil {
			total += *ap.FinalPrice
		}
	}
	return total, nil
}

func (r *Appointments) CountWithoutMedicalRecord(ctx context.Context, spec query.Spec) (int64, error) {
	var n int64
	for _, ap := range r.matching(spec) {
		recs, _ := r.CountMedicalRecords(ctx, ap.ID)
		if recs == 0 {
			n++
		}
	}
	return n, nil
}

func (r *Appointments) ServiceUsage(_ context.Context, spec query.Spec, limit int) ([]appointment.ServiceUsage, error) {
	byService := map[uint]*appointment.ServiceUsage{}
	for _, ap := range r.matching(spec) {
		u, ok := byService[ap.ServiceID]
		if !ok {
			u = &appointment.ServiceUsage{ServiceID: ap.ServiceID}
			if ap.Service != nil {
				u.ServiceName = ap.Service.Name
				if ap.Service.Category != nil {
					u.Segment = ap.Service.Category.Segment
				}
			}
			byService[ap.ServiceID] = u
		}
		u.Count++
		if ap.Status == string(appointment.StatusCompleted) && ap.FinalPrice != nil {
			u.Revenue += *ap.FinalPrice
		}
	}

	out := make([]appointment.ServiceUsage, 0, len(byService))
	for _, u := range byService {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].ServiceName < out[j].ServiceName
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

var _ appointment.Repository = (*Appointments)(nil)

// --------------------------------------------------
// Hotel stays
// --------------------------------------------------

type HotelStays struct {
	db       *DB
	LastSpec query.Spec
}

func (db *DB) HotelStays() *HotelStays { return &HotelStays{db: db} }

func (r *HotelStays) matching(spec query.Spec) []models.HotelStay {
	var out []models.HotelStay
	for _, hs := range r.db.stays.all() {
		hs.Client = r.db.clientRef(hs.ClientID)
		hs.Pet = r.db.petRef(hs.PetID)
		rw := row{
			fields: map[string]any{
				"status":         hs.Status,
				"room_type":      hs.RoomType,
				"client_id":      hs.ClientID,
				"pet_id":         hs.PetID,
				"check_in_date":  hs.CheckInDate,
				"check_out_date": hs.CheckOutDate,
				"checked_out_at": hs.CheckedOutAt,
			},
			segment: models.SegmentHotel,
		}
		if hs.Client != nil {
			rw.text += hs.Client.Name + " "
		}
		if hs.Pet != nil {
			rw.text += hs.Pet.Name
		}
		if rw.matches(spec) {
			out = append(out, hs)
		}
	}
	return out
}

func (r *HotelStays) List(_ context.Context, spec query.Spec) (query.Page[models.HotelStay], error) {
	r.LastSpec = spec
	return paginate(r.matching(spec), spec), nil
}

func (r *HotelStays) GetByID(_ context.Context, id uint) (*models.HotelStay, error) {
	hs, err := r.db.stays.get(id)
	if err != nil {
		return nil, err
	}
	hs.Client = r.db.clientRef(hs.ClientID)
	hs.Pet = r.db.petRef(hs.PetID)
	return &hs, nil
}

func stripStay(hs models.HotelStay) models.HotelStay {
	hs.Client, hs.Pet = nil, nil
	return hs
}

func (r *HotelStays) Create(_ context.Context, hs *models.HotelStay) error {
	r.db.stays.insert(func(id uint) { hs.ID = id }, func() models.HotelStay { return stripStay(*hs) })
	return nil
}

func (r *HotelStays) Update(_ context.Context, hs *models.HotelStay) error {
	return r.db.stays.put(hs.ID, stripStay(*hs))
}

func (r *HotelStays) Mutate(
	ctx context.Context,
	id uint,
	fn func(hs *models.HotelStay) error,
) (*models.HotelStay, error) {
	hs, err := r.db.stays.get(id)
	if err != nil {
		return nil, err
	}
	if err := fn(&hs); err != nil {
		return nil, err
	}
	if err := r.db.stays.put(id, stripStay(hs)); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *HotelStays) Delete(_ context.Context, id uint) error {
	return r.db.stays.remove(id)
}

func (r *HotelStays) Count(_ context.Context, spec query.Spec) (int64, error) {
	r.LastSpec = spec
	return int64(len(r.matching(spec))), nil
}

func (r *HotelStays) SumTotalCost(_ context.Context, spec query.Spec) (float64, error) {
	var total float64
	for _, hs := range r.matching(spec) {
		total += hs.TotalCost
	}
	return total, nil
}

var _ hotelstay.Repository = (*HotelStays)(nil)
