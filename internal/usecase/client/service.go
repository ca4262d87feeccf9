package client

import (
	"github.com/BruksfildServices01/petcare-manager/internal/audit"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/access"
	appointmentdomain "github.com/BruksfildServices01/petcare-manager/internal/domain/appointment"
	domain "github.com/BruksfildServices01/petcare-manager/internal/domain/client"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/hotelstay"
)

type Service struct {
	repo         domain.Repository
	appointments appointmentdomain.Repository
	stays        hotelstay.Repository
	guard        *access.Guard
	segments     *access.SegmentFilter
	audit        audit.Recorder
}

func NewService(
	repo domain.Repository,
	appointments appointmentdomain.Repository,
	stays hotelstay.Repository,
	guard *access.Guard,
	segments *access.SegmentFilter,
	rec audit.Recorder,
) *Service {
	return &Service{
		repo:         repo,
		appointments: appointments,
		stays:        stays,
		guard:        guard,
		segments:     segments,
		audit:        rec,
	}
}
