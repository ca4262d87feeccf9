package report

import (
	"time"

	"github.com/BruksfildServices01/petcare-manager/internal/httperr"
	"github.com/BruksfildServices01/petcare-manager/internal/timezone"
)

// Period vem da query string (YYYY-MM-DD, ambos inclusivos). Vazio é o
// mês corrente.
type Period struct {
	From string `form:"from"`
	To   string `form:"to"`
}

// bounds devolve o intervalo semiaberto [from, to).
func (p Period) bounds(now time.Time) (time.Time, time.Time, error) {
	from := timezone.StartOfMonth(now)
	to := from.AddDate(0, 1, 0)

	if p.From != "" {
		t, err := timezone.ParseDate(p.From)
		if err != nil {
			return from, to, httperr.FieldError("from", "Fecha inválida, use AAAA-MM-DD.")
		}
		from = t
	}
	if p.To != "" {
		t, err := timezone.ParseDate(p.To)
		if err != nil {
			return from, to, httperr.FieldError("to", "Fecha inválida, use AAAA-MM-DD.")
		}
		to = t.AddDate(0, 0, 1)
	}
	if !to.After(from) {
		return from, to, httperr.FieldError("to", "La fecha final debe ser posterior a la inicial.")
	}

	return from, to, nil
}
