package appointment

import (
	"time"

	"github.com/BruksfildServices01/petcare-manager/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Transition aplica a mudança de status e carimba os horários de conclusão
// e cancelamento.
func Transition(ap *models.Appointment, to Status, now time.Time) error {
	from := Status(ap.Status)
	if err := CanTransition(from, to); err != nil {
		return err
	}
	if from == to {
		return nil
	}

	ap.Status = string(to)

	switch to {
	case StatusCompleted:
		ap.CompletedAt = &now
	case StatusCancelled:
		ap.CancelledAt = &now
	}
	return nil
}
