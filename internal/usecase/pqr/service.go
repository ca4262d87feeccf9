package pqr

import (
	"time"

	"github.com/BruksfildServices01/petcare-manager/internal/audit"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/access"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/ownership"
	domain "github.com/BruksfildServices01/petcare-manager/internal/domain/pqr"
	"github.com/BruksfildServices01/petcare-manager/internal/observability"
	"github.com/BruksfildServices01/petcare-manager/internal/timezone"
)

type Service struct {
	repo    domain.Repository
	lookup  ownership.Lookup
	guard   *access.Guard
	audit   audit.Recorder
	metrics *observability.Metrics
	now     func() time.Time

	// checkDomain é opcional (CHECK_EMAIL_DOMAIN); faz consulta DNS.
	checkDomain func(email string) bool
}

type Deps struct {
	Repo        domain.Repository
	Lookup      ownership.Lookup
	Guard       *access.Guard
	Audit       audit.Recorder
	Metrics     *observability.Metrics
	CheckDomain func(email string) bool
}

func NewService(d Deps) *Service {
	return &Service{
		repo:        d.Repo,
		lookup:      d.Lookup,
		guard:       d.Guard,
		audit:       d.Audit,
		metrics:     d.Metrics,
		checkDomain: d.CheckDomain,
		now:         timezone.Now,
	}
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) observe(outcome string) {
	if s.metrics != nil {
		s.metrics.PqrSubmissionsTotal.WithLabelValues(outcome).Inc()
	}
}
