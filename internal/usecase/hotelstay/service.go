package hotelstay

import (
	"time"

	"github.com/BruksfildServices01/petcare-manager/internal/audit"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/access"
	domain "github.com/BruksfildServices01/petcare-manager/internal/domain/hotelstay"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/ownership"
	"github.com/BruksfildServices01/petcare-manager/internal/timezone"
)

type Service struct {
	repo     domain.Repository
	lookup   ownership.Lookup
	guard    *access.Guard
	segments *access.SegmentFilter
	audit    audit.Recorder
	now      func() time.Time
}

func NewService(
	repo domain.Repository,
	lookup ownership.Lookup,
	guard *access.Guard,
	segments *access.SegmentFilter,
	rec audit.Recorder,
) *Service {
	return &Service{
		repo:     repo,
		lookup:   lookup,
		guard:    guard,
		segments: segments,
		audit:    rec,
		now:      timezone.Now,
	}
}

// WithClock troca o relógio nos testes.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}
