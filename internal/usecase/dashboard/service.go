// Package dashboard monta os números do painel inicial. Só leitura; toda
// consulta sobre dados derivados de serviço passa pelo filtro de segmento.
package dashboard

import (
	"time"

	"github.com/BruksfildServices01/petcare-manager/internal/domain/access"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/appointment"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/catalog"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/client"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/hotelstay"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/pet"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/pqr"
	"github.com/BruksfildServices01/petcare-manager/internal/timezone"
)

const (
	UpcomingLimit = 5
	PopularLimit  = 5
	PopularDays   = 30
)

type Deps struct {
	Clients      client.Repository
	Pets         pet.Repository
	Appointments appointment.Repository
	HotelStays   hotelstay.Repository
	Pqrs         pqr.Repository
	Catalog      catalog.Repository
	Guard        *access.Guard
	Segments     *access.SegmentFilter
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
