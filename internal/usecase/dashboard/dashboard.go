package dashboard

import (
	"context"
	"time"

	"github.com/BruksfildServices01/petcare-manager/internal/domain/access"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/appointment"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/hotelstay"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/pqr"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/query"
	"github.com/BruksfildServices01/petcare-manager/internal/models"
	"github.com/BruksfildServices01/petcare-manager/internal/timezone"
)

// window guarda os limites de tempo de uma chamada.
type window struct {
	now        time.Time
	today      time.Time
	tomorrow   time.Time
	monthStart time.Time
	monthEnd   time.Time
	trailing   time.Time
}

func windowAt(now time.Time) window {
	today := timezone.StartOfDay(now)
	month := timezone.StartOfMonth(now)
	return window{
		now:        now,
		today:      today,
		tomorrow:   today.AddDate(0, 0, 1),
		monthStart: month,
		monthEnd:   month.AddDate(0, 1, 0),
		trailing:   now.AddDate(0, 0, -PopularDays),
	}
}

func (s *Service) Get(ctx context.Context, p *access.Principal) (*Dashboard, error) {
	if err := s.Guard.Authorize(p, access.ViewDashboard); err != nil {
		return nil, err
	}

	w := windowAt(s.now())
	out := &Dashboard{}

	// ======================================================
	// 1️⃣ Números gerais
	// ======================================================
	base, err := s.base(ctx, p, w)
	if err != nil {
		return nil, err
	}
	out.Stats = base

	// ======================================================
	// 2️⃣ Bloco do papel
	// ======================================================
	switch p.Role {
	case access.RoleGeneralManager:
		out.Manager, err = s.manager(ctx, p, w)
	case access.RoleHotelEmployee:
		out.Hotel, err = s.hotel(ctx, p, w)
	case access.RoleClinicAdmin:
		out.Clinic, err = s.clinic(ctx, p, w)
	case access.RoleSpaAssistant:
		out.Spa, err = s.spa(ctx, p, w)
	}
	if err != nil {
		return nil, err
	}

	// ======================================================
	// 3️⃣ Próximas citas e serviços mais pedidos
	// ======================================================
	upcoming, err := s.scoped(p, query.New(
		query.DateRange{Field: "appointment_date", From: &w.now},
	).OrderBy("appointment_date", false).Paginate(1, UpcomingLimit))
	if err != nil {
		return nil, err
	}
	page, err := s.Appointments.List(ctx, upcoming)
	if err != nil {
		return nil, err
	}
	out.UpcomingAppointments = page.Items
	if out.UpcomingAppointments == nil {
		out.UpcomingAppointments = []models.Appointment{}
	}

	popular, err := s.scoped(p, query.New(
		query.DateRange{Field: "appointment_date", From: &w.trailing, To: &w.now},
	))
	if err != nil {
		return nil, err
	}
	out.PopularServices, err = s.Appointments.ServiceUsage(ctx, popular, PopularLimit)
	if err != nil {
		return nil, err
	}
	if out.PopularServices == nil {
		out.PopularServices = []appointment.ServiceUsage{}
	}

	return out, nil
}

func (s *Service) scoped(p *access.Principal, spec query.Spec) (query.Spec, error) {
	return s.Segments.Scope(spec, p)
}

func (s *Service) base(ctx context.Context, p *access.Principal, w window) (BaseStats, error) {
	var (
		b   BaseStats
		err error
	)

	if b.TotalClients, err = s.Clients.Count(ctx, query.New()); err != nil {
		return b, err
	}
	if b.TotalPets, err = s.Pets.Count(ctx, query.New()); err != nil {
		return b, err
	}

	today, err := s.scoped(p, query.New(
		query.DateRange{Field: "appointment_date", From: &w.today, To: &w.tomorrow},
	))
	if err != nil {
		return b, err
	}
	if b.AppointmentsToday, err = s.Appointments.Count(ctx, today); err != nil {
		return b, err
	}

	b.PendingPqrs, err = s.Pqrs.Count(ctx, query.New(
		query.Eq{Field: "status", Value: string(pqr.StatusPending)},
	))
	return b, err
}

func (s *Service) manager(ctx context.Context, p *access.Principal, w window) (*ManagerStats, error) {
	var (
		m   ManagerStats
		err error
	)

	if m.MonthlyRevenue, err = s.Appointments.SumFinalPrice(ctx, completedInMonth(w)); err != nil {
		return nil, err
	}
	if m.HotelRevenueMonth, err = s.HotelStays.SumTotalCost(ctx, query.New(
		query.Eq{Field: "status", Value: string(hotelstay.StatusCompleted)},
		query.DateRange{Field: "checked_out_at", From: &w.monthStart, To: &w.monthEnd},
	)); err != nil {
		return nil, err
	}
	if m.ActiveHotelStays, err = s.HotelStays.Count(ctx, activeStays()); err != nil {
		return nil, err
	}

	services, err := s.scoped(p, query.New(query.Eq{Field: "is_active", Value: true}))
	if err != nil {
		return nil, err
	}
	if m.TotalActiveServices, err = s.Catalog.CountServices(ctx, services); err != nil {
		return nil, err
	}

	return &m, nil
}

func (s *Service) hotel(ctx context.Context, p *access.Principal, w window) (*HotelStats, error) {
	var h HotelStats

	specs := []struct {
		dst  *int64
		spec query.Spec
	}{
		{&h.ActiveStays, activeStays()},
		{&h.CheckinsToday, query.New(query.DateRange{Field: "check_in_date", From: &w.today, To: &w.tomorrow})},
		{&h.CheckoutsToday, query.New(query.DateRange{Field: "check_out_date", From: &w.today, To: &w.tomorrow})},
	}

	for _, c := range specs {
		spec, err := s.scoped(p, c.spec)
		if err != nil {
			return nil, err
		}
		if *c.dst, err = s.HotelStays.Count(ctx, spec); err != nil {
			return nil, err
		}
	}

	return &h, nil
}

func (s *Service) clinic(ctx context.Context, p *access.Principal, w window) (*ClinicStats, error) {
	var c ClinicStats

	today, err := s.scoped(p, query.New(
		query.Eq{Field: "segment", Value: models.SegmentClinic},
		query.DateRange{Field: "appointment_date", From: &w.today, To: &w.tomorrow},
	))
	if err != nil {
		return nil, err
	}
	if c.ClinicAppointmentsToday, err = s.Appointments.Count(ctx, today); err != nil {
		return nil, err
	}

	pending, err := s.scoped(p, query.New(
		query.Eq{Field: "segment", Value: models.SegmentClinic},
		query.Eq{Field: "status", Value: string(appointment.StatusCompleted)},
	))
	if err != nil {
		return nil, err
	}
	if c.PendingMedicalRecords, err = s.Appointments.CountWithoutMedicalRecord(ctx, pending); err != nil {
		return nil, err
	}

	return &c, nil
}

func (s *Service) spa(ctx context.Context, p *access.Principal, w window) (*SpaStats, error) {
	var sp SpaStats

	today, err := s.scoped(p, query.New(
		query.Eq{Field: "segment", Value: models.SegmentSpa},
		query.DateRange{Field: "appointment_date", From: &w.today, To: &w.tomorrow},
	))
	if err != nil {
		return nil, err
	}
	if sp.SpaAppointmentsToday, err = s.Appointments.Count(ctx, today); err != nil {
		return nil, err
	}

	revenue, err := s.scoped(p, completedInMonth(w).And(
		query.Eq{Field: "segment", Value: models.SegmentSpa},
	))
	if err != nil {
		return nil, err
	}
	if sp.SpaRevenueMonth, err = s.Appointments.SumFinalPrice(ctx, revenue); err != nil {
		return nil, err
	}

	return &sp, nil
}

// Receita conta citas concluídas no mês, pela data de conclusão.
func completedInMonth(w window) query.Spec {
	return query.New(
		query.Eq{Field: "status", Value: string(appointment.StatusCompleted)},
		query.DateRange{Field: "completed_at", From: &w.monthStart, To: &w.monthEnd},
	)
}

func activeStays() query.Spec {
	return query.New(query.Eq{Field: "status", Value: string(hotelstay.StatusActive)})
}
