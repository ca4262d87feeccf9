// Package report gera os relatórios para download. Tudo que deriva de
// serviço passa pelo filtro de segmento de quem pede.
package report

import (
	"time"

	"github.com/BruksfildServices01/petcare-manager/internal/audit"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/access"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/appointment"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/hotelstay"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/pet"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/pqr"
	"github.com/BruksfildServices01/petcare-manager/internal/timezone"
)

type Deps struct {
	Appointments appointment.Repository
	HotelStays   hotelstay.Repository
	Pqrs         pqr.Repository
	Pets         pet.Repository
	Guard        *access.Guard
	Segments     *access.SegmentFilter
	Audit        audit.Recorder
}

type Service struct {
	Deps
	now func() time.Time
}

func NewService(d Deps) *Service {
	return &Service{Deps: d, now: timezone.Now}
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}
