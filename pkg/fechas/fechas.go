package fechas

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Zona is the farm's timezone. Ecuador has no DST, so the fixed offset
// fallback is exact when the tzdata lookup fails.
var Zona = cargarZona()

func cargarZona() *time.Location {
	loc, err := time.LoadLocation("America/Guayaquil")
	if err != nil {
		return time.FixedZone("-05", -5*60*60)
	}
	return loc
}

var diasEspanol = map[time.Weekday]string{
	time.Monday:    "Lunes",
	time.Tuesday:   "Martes",
	time.Wednesday: "Miércoles",
	time.Thursday:  "Jueves",
	time.Friday:    "Viernes",
	time.Saturday:  "Sábado",
	time.Sunday:    "Domingo",
}

var mesesEspanol = map[time.Month]string{
	time.January:   "Enero",
	time.February:  "Febrero",
	time.March:     "Marzo",
	time.April:     "Abril",
	time.May:       "Mayo",
	time.June:      "Junio",
	time.July:      "Julio",
	time.August:    "Agosto",
	time.September: "Septiembre",
	time.October:   "Octubre",
	time.November:  "Noviembre",
	time.December:  "Diciembre",
}

// Hoy returns today's date in Ecuador, YYYY-MM-DD.
func Hoy() string {
	return time.Now().In(Zona).Format("2006-01-02")
}

// Ahora returns the current instant in Ecuador as an ISO-8601 timestamp
// carrying the local offset.
func Ahora() string {
	return time.Now().In(Zona).Format("2006-01-02T15:04:05-07:00")
}

// HoraLocal converts a stored timestamp to Ecuador wall-clock time HH:MM:SS.
// Timestamps may be offset-qualified, Z-suffixed, or naive; naive ones are
// taken as UTC. Anything unparseable passes through unchanged.
func HoraLocal(ts string) string {
	if t, ok := parseTimestamp(ts); ok {
		return t.In(Zona).Format("15:04:05")
	}
	return ts
}

// Hora extracts the wall-clock HH:MM:SS of a timestamp as stored, without
// any zone shift. Unparseable input passes through unchanged.
func Hora(ts string) string {
	if t, ok := parseTimestamp(ts); ok {
		return t.Format("15:04:05")
	}
	return ts
}

func parseTimestamp(ts string) (time.Time, bool) {
	if strings.Contains(ts, "+") || strings.HasSuffix(ts, "Z") || strings.Count(ts, "-") > 2 {
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			return t, true
		}
		return time.Time{}, false
	}
	// naive: assume UTC; accept both the T and the space-separated form
	// (the desktop form's SQLite default wrote "2006-01-02 15:04:05")
	for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02 15:04:05"} {
		if t, err := time.ParseInLocation(layout, ts, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// RangoSemana resolves a (year, week) pair to its Monday-start 7-day window.
// Week 1 starts on the Monday on or before January 1. This deliberately is
// not the ISO-8601 first-Thursday rule; stored week tags were produced with
// this arithmetic and the windows must keep matching them.
func RangoSemana(year, week int) (time.Time, time.Time) {
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	offset := (int(jan1.Weekday()) + 6) % 7 // Monday=0
	firstMonday := jan1.AddDate(0, 0, -offset)
	start := firstMonday.AddDate(0, 0, (week-1)*7)
	return start, start.AddDate(0, 0, 6)
}

// NombreDia returns the Spanish weekday name.
func NombreDia(t time.Time) string {
	if d, ok := diasEspanol[t.Weekday()]; ok {
		return d
	}
	return t.Weekday().String()
}

// FechaLarga formats a date as "Lunes, 2 de Enero de 2025".
func FechaLarga(t time.Time) string {
	mes, ok := mesesEspanol[t.Month()]
	if !ok {
		mes = t.Month().String()
	}
	return fmt.Sprintf("%s, %d de %s de %d", NombreDia(t), t.Day(), mes, t.Year())
}

// SemanaActual returns the current week tag YYYY-WW (ISO week of today).
func SemanaActual() string {
	year, week := time.Now().In(Zona).ISOWeek()
	return fmt.Sprintf("%d-%02d", year, week)
}

// ParseSemana splits a "YYYY-WW" week tag.
func ParseSemana(s string) (year, week int, err error) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("semana inválida: %q", s)
	}
	year, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("semana inválida: %q", s)
	}
	week, err = strconv.Atoi(parts[1])
	if err != nil || week < 1 || week > 53 {
		return 0, 0, fmt.Errorf("semana inválida: %q", s)
	}
	return year, week, nil
}
