package hotelstay

import (
	"time"

	"github.com/BruksfildServices01/petcare-manager/internal/httperr"
	"github.com/BruksfildServices01/petcare-manager/internal/models"
)

type Status string

const (
	StatusReserved  Status = "reserved"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

type RoomType string

const (
	RoomStandard RoomType = "standard"
	RoomPremium  RoomType = "premium"
	RoomDeluxe   RoomType = "deluxe"
)

func (r RoomType) Valid() bool {
	switch r {
	case RoomStandard, RoomPremium, RoomDeluxe:
		return true
	}
	return false
}

var transitions = map[Status][]Status{
	StatusReserved: {StatusActive, StatusCancelled},
	StatusActive:   {StatusCompleted, StatusCancelled},
}

func ParseStatus(s string) (Status, bool) {
	switch st := Status(s); st {
	case StatusReserved, StatusActive, StatusCompleted, StatusCancelled:
		return st, true
	}
	return "", false
}

func CanTransition(from, to Status) error {
	if from == to {
		return nil
	}
	for _, next := range transitions[from] {
		if next == to {
			return nil
		}
	}
	return httperr.ErrBusinessMsg(
		"invalid_state",
		"El hospedaje no puede pasar de "+string(from)+" a "+string(to)+".",
	)
}

// ===============================
// Domain Actions
// ===============================

func Transition(hs *models.HotelStay, to Status, now time.Time) error {
	from := Status(hs.Status)
	if err := CanTransition(from, to); err != nil {
		return err
	}
	if from == to {
		return nil
	}

	hs.Status = string(to)

	switch to {
	case StatusActive:
		hs.CheckedInAt = &now
	case StatusCompleted:
		hs.CheckedOutAt = &now
	case StatusCancelled:
		hs.CancelledAt = &now
	}
	return nil
}

// CheckIn só a partir de reserved.
func CheckIn(hs *models.HotelStay, now time.Time) error {
	if Status(hs.Status) != StatusReserved {
		return httperr.ErrBusinessMsg("invalid_state", "Solo se puede hacer check-in de una reserva.")
	}
	return Transition(hs, StatusActive, now)
}

// CheckOut só a partir de active.
func CheckOut(hs *models.HotelStay, now time.Time) error {
	if Status(hs.Status) != StatusActive {
		return httperr.ErrBusinessMsg("invalid_state", "Solo se puede hacer check-out de un hospedaje activo.")
	}
	return Transition(hs, StatusCompleted, now)
}

func Cancel(hs *models.HotelStay, now time.Time) error {
	return Transition(hs, StatusCancelled, now)
}
