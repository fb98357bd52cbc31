// Package analytics contiene la lógica pura de agregación de ventas: resolución de
// períodos de reporte y agrupación de líneas de pedido por producto, variante y mes.
//
// Nada en este paquete hace I/O ni lee el reloj del sistema; el llamador entrega
// los hechos ya filtrados por rango y el instante "ahora".
package analytics

import (
	"strings"
	"time"
)

// Tokens de período reconocidos.
const (
	PeriodMonth     = "month"
	PeriodYear      = "year"
	customSeparator = "_to_"
)

// customLayouts formatos aceptados para cada extremo de un rango "<inicio>_to_<fin>".
var customLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	time.RFC3339,
	time.RFC3339Nano,
	"2006/01/02",
	"01/02/2006",
}

// PeriodRange rango [Start, End] en UTC.
type PeriodRange struct {
	Start time.Time
	End   time.Time
}

// Valid reporta si Start <= End. ResolvePeriod no lo exige para rangos personalizados.
func (r PeriodRange) Valid() bool {
	return !r.Start.After(r.End)
}

// ResolvePeriod traduce un token de período al rango concreto.
//
//   - "" o solo espacios      → último año
//   - "month" (sin importar mayúsculas) → último mes
//   - "year"                  → último año
//   - "<fecha>_to_<fecha>"    → rango explícito, fechas reinterpretadas como UTC
//   - cualquier otro valor    → último año
//
// Nunca falla: las entradas malformadas caen al rango anual.
func ResolvePeriod(period string, now time.Time) PeriodRange {
	now = now.UTC()
	lastYear := PeriodRange{Start: addMonthsClamped(now, -12), End: now}

	if strings.TrimSpace(period) == "" {
		return lastYear
	}

	switch strings.ToLower(period) {
	case PeriodMonth:
		return PeriodRange{Start: addMonthsClamped(now, -1), End: now}
	case PeriodYear:
		return lastYear
	}

	if !strings.Contains(period, customSeparator) {
		return lastYear
	}
	parts := strings.Split(period, customSeparator)
	if len(parts) != 2 {
		return lastYear
	}
	start, ok := parseAsUTC(parts[0])
	if !ok {
		return lastYear
	}
	end, ok := parseAsUTC(parts[1])
	if !ok {
		return lastYear
	}
	return PeriodRange{Start: start, End: end}
}

// parseAsUTC intenta cada layout y conserva la hora de pared tal cual, marcándola como UTC
// (el desfase horario, si lo hay, se descarta sin convertir).
func parseAsUTC(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range customLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC), true
	}
	return time.Time{}, false
}

// addMonthsClamped suma meses ajustando el día al último día válido del mes destino
// (31-mar menos un mes = 29-feb en año bisiesto). time.AddDate normalizaría a marzo.
func addMonthsClamped(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	total := int(m) - 1 + months
	y += total / 12
	total %= 12
	if total < 0 {
		total += 12
		y--
	}
	target := time.Month(total + 1)
	if last := daysIn(y, target); d > last {
		d = last
	}
	return time.Date(y, target, d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
