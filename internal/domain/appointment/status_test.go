package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/petcare-manager/internal/httperr"
	"github.com/BruksfildServices01/petcare-manager/internal/models"
)

func TestCanTransition_AllowedEdges(t *testing.T) {
	allowed := [][2]Status{
		{StatusScheduled, StatusInProgress},
		{StatusInProgress, StatusCompleted},
		{StatusScheduled, StatusCancelled},
		{StatusInProgress, StatusCancelled},
	}
	for _, e := range allowed {
		assert.NoError(t, CanTransition(e[0], e[1]), "%s -> %s", e[0], e[1])
	}
}

func TestCanTransition_TerminalStatesAreFinal(t *testing.T) {
	all := []Status{StatusScheduled, StatusInProgress, StatusCompleted, StatusCancelled}

	for _, from := range []Status{StatusCompleted, StatusCancelled} {
		for _, to := range all {
			if to == from {
				continue
			}
			err := CanTransition(from, to)
			assert.True(t, httperr.IsBusiness(err, "invalid_state"), "%s -> %s", from, to)
		}
	}
}

func TestCanTransition_SkippingInProgressIsRejected(t *testing.T) {
	assert.Error(t, CanTransition(StatusScheduled, StatusCompleted))
	assert.Error(t, CanTransition(StatusInProgress, StatusScheduled))
}

func TestTransition_StampsTimestamps(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	ap := &models.Appointment{Status: string(StatusScheduled)}

	require.NoError(t, Transition(ap, StatusInProgress, now))
	require.NoError(t, Transition(ap, StatusCompleted, now))

	assert.Equal(t, string(StatusCompleted), ap.Status)
	require.NotNil(t, ap.CompletedAt)
	assert.Equal(t, now, *ap.CompletedAt)
	assert.Nil(t, ap.CancelledAt)

	assert.Error(t, Transition(ap, StatusCancelled, now))
	assert.Equal(t, string(StatusCompleted), ap.Status)
}

func TestParseStatus(t *testing.T) {
	st, ok := ParseStatus("in_progress")
	assert.True(t, ok)
	assert.Equal(t, StatusInProgress, st)

	_, ok = ParseStatus("done")
	assert.False(t, ok)
}
