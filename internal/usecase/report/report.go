package report

import (
	"context"
	"io"

	"github.com/BruksfildServices01/petcare-manager/internal/audit"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/access"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/appointment"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/hotelstay"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/pet"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/query"
	"github.com/BruksfildServices01/petcare-manager/internal/export"
	"github.com/BruksfildServices01/petcare-manager/internal/models"
)

// ======================================================
// SERVIÇOS
// ======================================================

func (s *Service) Services(
	ctx context.Context,
	p *access.Principal,
	period Period,
) ([]appointment.ServiceUsage, error) {

	if err := s.Guard.Authorize(p, access.ViewServiceReports); err != nil {
		return nil, err
	}

	from, to, err := period.bounds(s.now())
	if err != nil {
		return nil, err
	}

	spec, err := s.Segments.Scope(query.New(
		query.DateRange{Field: "appointment_date", From: &from, To: &to},
	), p)
	if err != nil {
		return nil, err
	}

	return s.Appointments.ServiceUsage(ctx, spec, 0)
}

func (s *Service) WriteServices(ctx context.Context, p *access.Principal, period Period, w io.Writer) error {
	usage, err := s.Services(ctx, p, period)
	if err != nil {
		return err
	}

	rows := make([][]any, 0, len(usage))
	for _, u := range usage {
		rows = append(rows, []any{u.ServiceName, string(u.Segment), u.Count, u.Revenue})
	}

	s.Audit.Record(ctx, audit.By(p, "report_exported", "report", 0).With(map[string]string{"report": "services"}))
	return export.XLSX(w, export.Sheet{
		Name:    "Servicios",
		Headers: []string{"Servicio", "Segmento", "Citas", "Ingresos"},
		Rows:    rows,
	})
}

// ======================================================
// FINANCEIRO
// ======================================================

type FinancialLine struct {
	Segment      models.Segment `json:"segment"`
	Appointments int64          `json:"appointments"`
	Revenue      float64        `json:"revenue"`
}

type Financial struct {
	Lines        []FinancialLine `json:"lines"`
	HotelStays   int64           `json:"hotel_stays"`
	HotelRevenue float64         `json:"hotel_revenue"`
	Total        float64         `json:"total"`
}

// Financial soma citas concluídas (por data de conclusão) e hospedagens
// encerradas (por data de check-out) no período.
func (s *Service) Financial(ctx context.Context, p *access.Principal, period Period) (*Financial, error) {
	if err := s.Guard.Authorize(p, access.ViewFinancialReports); err != nil {
		return nil, err
	}

	from, to, err := period.bounds(s.now())
	if err != nil {
		return nil, err
	}

	out := &Financial{Lines: []FinancialLine{}}
	segs, _ := s.Guard.Registry().Segments(p.Role)

	for _, seg := range segs {
		spec, err := s.Segments.Scope(query.New(
			query.Eq{Field: "status", Value: string(appointment.StatusCompleted)},
			query.Eq{Field: "segment", Value: seg},
			query.DateRange{Field: "completed_at", From: &from, To: &to},
		), p)
		if err != nil {
			return nil, err
		}

		line := FinancialLine{Segment: seg}
		if line.Appointments, err = s.Appointments.Count(ctx, spec); err != nil {
			return nil, err
		}
		if line.Revenue, err = s.Appointments.SumFinalPrice(ctx, spec); err != nil {
			return nil, err
		}

		out.Lines = append(out.Lines, line)
		out.Total += line.Revenue
	}

	stays, err := s.Segments.Scope(query.New(
		query.Eq{Field: "status", Value: string(hotelstay.StatusCompleted)},
		query.DateRange{Field: "checked_out_at", From: &from, To: &to},
	), p)
	if err != nil {
		return nil, err
	}
	if out.HotelStays, err = s.HotelStays.Count(ctx, stays); err != nil {
		return nil, err
	}
	if out.HotelRevenue, err = s.HotelStays.SumTotalCost(ctx, stays); err != nil {
		return nil, err
	}
	out.Total += out.HotelRevenue

	return out, nil
}

func (s *Service) WriteFinancial(ctx context.Context, p *access.Principal, period Period, w io.Writer) error {
	fin, err := s.Financial(ctx, p, period)
	if err != nil {
		return err
	}

	rows := make([][]any, 0, len(fin.Lines)+2)
	for _, l := range fin.Lines {
		rows = append(rows, []any{"Citas " + string(l.Segment), l.Appointments, l.Revenue})
	}
	rows = append(rows,
		[]any{"Hospedaje", fin.HotelStays, fin.HotelRevenue},
		[]any{"Total", "", fin.Total},
	)

	s.Audit.Record(ctx, audit.By(p, "report_exported", "report", 0).With(map[string]string{"report": "financial"}))
	return export.XLSX(w, export.Sheet{
		Name:    "Financiero",
		Headers: []string{"Concepto", "Cantidad", "Ingresos"},
		Rows:    rows,
	})
}

// ======================================================
// PQRS
// ======================================================

type PqrLine struct {
	ID         uint   `csv:"id"`
	CreatedAt  string `csv:"fecha"`
	Type       string `csv:"tipo"`
	Status     string `csv:"estado"`
	Subject    string `csv:"asunto"`
	ClientName string `csv:"cliente"`
	Email      string `csv:"correo"`
	Assignee   string `csv:"responsable"`
	ResolvedAt string `csv:"resuelta"`
}

func (s *Service) Pqrs(ctx context.Context, p *access.Principal, period Period) ([]PqrLine, error) {
	if err := s.Guard.Authorize(p, access.ViewPqrReports); err != nil {
		return nil, err
	}

	from, to, err := period.bounds(s.now())
	if err != nil {
		return nil, err
	}

	page, err := s.Deps.Pqrs.List(ctx, query.New(
		query.DateRange{Field: "created_at", From: &from, To: &to},
	).OrderBy("created_at", false))
	if err != nil {
		return nil, err
	}

	lines := make([]PqrLine, 0, len(page.Items))
	for _, q := range page.Items {
		l := PqrLine{
			ID:         q.ID,
			CreatedAt:  q.CreatedAt.In(from.Location()).Format("2006-01-02 15:04"),
			Type:       q.Type,
			Status:     q.Status,
			Subject:    q.Subject,
			ClientName: q.ClientName,
			Email:      q.ClientEmail,
		}
		if q.Assignee != nil {
			l.Assignee = q.Assignee.Name
		}
		if q.ResolvedAt != nil {
			l.ResolvedAt = q.ResolvedAt.In(from.Location()).Format("2006-01-02 15:04")
		}
		lines = append(lines, l)
	}
	return lines, nil
}

func (s *Service) WritePqrs(ctx context.Context, p *access.Principal, period Period, w io.Writer) error {
	lines, err := s.Pqrs(ctx, p, period)
	if err != nil {
		return err
	}
	s.Audit.Record(ctx, audit.By(p, "report_exported", "report", 0).With(map[string]string{"report": "pqrs"}))
	return export.CSV(w, lines)
}

// ======================================================
// RAÇAS
// ======================================================

func (s *Service) Breeds(ctx context.Context, p *access.Principal) ([]pet.BreedCount, error) {
	if err := s.Guard.Authorize(p, access.ViewBreedReports); err != nil {
		return nil, err
	}
	return s.Pets.BreedStats(ctx)
}

func (s *Service) WriteBreeds(ctx context.Context, p *access.Principal, w io.Writer) error {
	stats, err := s.Breeds(ctx, p)
	if err != nil {
		return err
	}
	s.Audit.Record(ctx, audit.By(p, "report_exported", "report", 0).With(map[string]string{"report": "breeds"}))
	return export.CSV(w, stats)
}
