package pet

import (
	"time"

	"github.com/BruksfildServices01/petcare-manager/internal/audit"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/access"
	appointmentdomain "github.com/BruksfildServices01/petcare-manager/internal/domain/appointment"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/medical"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/ownership"
	domain "github.com/BruksfildServices01/petcare-manager/internal/domain/pet"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/vaccination"
	"github.com/BruksfildServices01/petcare-manager/internal/infra/storage"
	"github.com/BruksfildServices01/petcare-manager/internal/timezone"
)

type Service struct {
	repo         domain.Repository
	lookup       ownership.Lookup
	appointments appointmentdomain.Repository
	records      medical.Repository
	vaccinations vaccination.Repository
	store        storage.Store
	guard        *access.Guard
	segments     *access.SegmentFilter
	audit        audit.Recorder
	now          func() time.Time
}

type Deps struct {
	Repo         domain.Repository
	Lookup       ownership.Lookup
	Appointments appointmentdomain.Repository
	Records      medical.Repository
	Vaccinations vaccination.Repository
	Store        storage.Store
	Guard        *access.Guard
	Segments     *access.SegmentFilter
	Audit        audit.Recorder
}

func NewService(d Deps) *Service {
	return &Service{
		repo:         d.Repo,
		lookup:       d.Lookup,
		appointments: d.Appointments,
		records:      d.Records,
		vaccinations: d.Vaccinations,
		store:        d.Store,
		guard:        d.Guard,
		segments:     d.Segments,
		audit:        d.Audit,
		now:          timezone.Now,
	}
}

// WithClock troca o relógio nos testes.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}
