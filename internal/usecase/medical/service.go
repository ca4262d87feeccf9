package medical

import (
	"time"

	"github.com/BruksfildServices01/petcare-manager/internal/audit"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/access"
	domain "github.com/BruksfildServices01/petcare-manager/internal/domain/medical"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/ownership"
	"github.com/BruksfildServices01/petcare-manager/internal/models"
	"github.com/BruksfildServices01/petcare-manager/internal/timezone"
)

// Prontuários pertencem à clínica.
const segment = models.SegmentClinic

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

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}
