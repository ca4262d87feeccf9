package pqr

import (
	"time"

	"github.com/BruksfildServices01/petcare-manager/internal/httperr"
	"github.com/BruksfildServices01/petcare-manager/internal/models"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusInProcess Status = "in_process"
	StatusResolved  Status = "resolved"
	StatusClosed    Status = "closed"
)

type Type string

const (
	TypePeticion   Type = "peticion"
	TypeQueja      Type = "queja"
	TypeReclamo    Type = "reclamo"
	TypeSugerencia Type = "sugerencia"
)

func (t Type) Valid() bool {
	switch t {
	case TypePeticion, TypeQueja, TypeReclamo, TypeSugerencia:
		return true
	}
	return false
}

// resolved -> in_process é a reabertura por reatribuição.
var transitions = map[Status][]Status{
	StatusPending:   {StatusInProcess, StatusResolved},
	StatusInProcess: {StatusResolved},
	StatusResolved:  {StatusClosed, StatusInProcess},
}

func ParseStatus(s string) (Status, bool) {
	switch st := Status(s); st {
	case StatusPending, StatusInProcess, StatusResolved, StatusClosed:
		return st, true
	}
	return "", false
}

func (s Status) Terminal() bool {
	return s == StatusClosed
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
		"La PQR no puede pasar de "+string(from)+" a "+string(to)+".",
	)
}

// ===============================
// Domain Actions
// ===============================

// Transition carimba resolved_at ao entrar em resolved vindo de outro status.
// Repetir resolved mantém o carimbo original.
func Transition(p *models.Pqr, to Status, now time.Time) error {
	from := Status(p.Status)
	if err := CanTransition(from, to); err != nil {
		return err
	}
	if from == to {
		return nil
	}

	p.Status = string(to)
	if to == StatusResolved {
		p.ResolvedAt = &now
	}
	return nil
}

// Assign vale em qualquer status não terminal e leva a in_process.
func Assign(p *models.Pqr, userID uint, now time.Time) error {
	if Status(p.Status).Terminal() {
		return httperr.ErrBusinessMsg("invalid_state", "La PQR está cerrada.")
	}
	if err := Transition(p, StatusInProcess, now); err != nil {
		return err
	}
	p.AssignedTo = &userID
	return nil
}

func Respond(p *models.Pqr, response string, now time.Time) error {
	if Status(p.Status).Terminal() {
		return httperr.ErrBusinessMsg("invalid_state", "La PQR está cerrada.")
	}
	if err := Transition(p, StatusResolved, now); err != nil {
		return err
	}
	p.Response = response
	return nil
}

func Close(p *models.Pqr, now time.Time) error {
	if Status(p.Status) != StatusResolved {
		return httperr.ErrBusinessMsg("invalid_state", "Solo se puede cerrar una PQR resuelta.")
	}
	return Transition(p, StatusClosed, now)
}
