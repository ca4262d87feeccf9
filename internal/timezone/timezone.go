package timezone

import "time"

const DefaultTimezone = "America/Bogota"

var current = DefaultTimezone

// Configure define o fuso do negócio, usado para "hoje" e "mês atual".
// Chamado uma vez na inicialização.
func Configure(tz string) {
	if IsValid(tz) {
		current = tz
	}
}

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func Local() *time.Location {
	return Location(current)
}

func Now() time.Time {
	return time.Now().In(Local())
}

// StartOfDay devolve a meia-noite local de t.
func StartOfDay(t time.Time) time.Time {
	t = t.In(Local())
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func StartOfMonth(t time.Time) time.Time {
	t = t.In(Local())
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// ParseDate interpreta YYYY-MM-DD no fuso do negócio.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, Local())
}

// ParseDateTime aceita RFC3339 ou "YYYY-MM-DD HH:MM" local.
func ParseDateTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02 15:04", s, Local())
}
