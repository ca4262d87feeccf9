package catalog

import (
	"github.com/BruksfildServices01/petcare-manager/internal/audit"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/access"
	domain "github.com/BruksfildServices01/petcare-manager/internal/domain/catalog"
)

type Service struct {
	repo     domain.Repository
	guard    *access.Guard
	segments *access.SegmentFilter
	audit    audit.Recorder
}

func NewService(
	repo domain.Repository,
	guard *access.Guard,
	segments *access.SegmentFilter,
	rec audit.Recorder,
) *Service {
	return &Service{
		repo:     repo,
		guard:    guard,
		segments: segments,
		audit:    rec,
	}
}
