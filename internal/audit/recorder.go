package audit

import (
	"context"

	"github.com/BruksfildServices01/petcare-manager/internal/domain/access"
)

type Entry struct {
	UserID   *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

// Recorder grava trilhas de auditoria. Falhas nunca quebram a API.
type Recorder interface {
	Record(ctx context.Context, e Entry)
}

// Nop descarta tudo.
type Nop struct{}

func (Nop) Record(context.Context, Entry) {}

// By monta uma entrada para o usuário da requisição.
func By(p *access.Principal, action, entity string, entityID uint) Entry {
	e := Entry{Action: action, Entity: entity}
	if p != nil {
		uid := p.UserID
		e.UserID = &uid
	}
	if entityID != 0 {
		id := entityID
		e.EntityID = &id
	}
	return e
}

func (e Entry) With(meta any) Entry {
	e.Metadata = meta
	return e
}
