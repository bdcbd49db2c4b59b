// Package analytics contiene las reglas de presentación de la analítica: el enum de
// rangos de fecha y las clasificaciones que se pintan como badges sobre números ya
// agregados por el backend. Ninguna función aquí recalcula transacciones.
package analytics

import (
	"fmt"
	"time"

	"github.com/jhoicas/bizdash/internal/domain"
)

// DateRange rango de fechas que se reenvía tal cual al backend.
type DateRange string

const (
	Today       DateRange = "today"
	Yesterday   DateRange = "yesterday"
	ThisWeek    DateRange = "this_week"
	LastWeek    DateRange = "last_week"
	ThisMonth   DateRange = "this_month"
	LastMonth   DateRange = "last_month"
	ThisQuarter DateRange = "this_quarter"
	LastQuarter DateRange = "last_quarter"
	ThisYear    DateRange = "this_year"
	LastYear    DateRange = "last_year"
	Last7Days   DateRange = "last_7_days"
	Last30Days  DateRange = "last_30_days"
	Last90Days  DateRange = "last_90_days"
)

// DefaultDateRange rango usado cuando la UI no envía ninguno.
const DefaultDateRange = ThisMonth

var dateRangeLabels = map[DateRange]string{
	Today:       "Today",
	Yesterday:   "Yesterday",
	ThisWeek:    "This Week",
	LastWeek:    "Last Week",
	ThisMonth:   "This Month",
	LastMonth:   "Last Month",
	ThisQuarter: "This Quarter",
	LastQuarter: "Last Quarter",
	ThisYear:    "This Year",
	LastYear:    "Last Year",
	Last7Days:   "Last 7 Days",
	Last30Days:  "Last 30 Days",
	Last90Days:  "Last 90 Days",
}

// ParseDateRange valida el valor; vacío equivale a DefaultDateRange.
func ParseDateRange(s string) (DateRange, error) {
	if s == "" {
		return DefaultDateRange, nil
	}
	r := DateRange(s)
	if _, ok := dateRangeLabels[r]; !ok {
		return "", fmt.Errorf("%w: date range %q", domain.ErrInvalidInput, s)
	}
	return r, nil
}

// Label etiqueta legible del rango.
func (r DateRange) Label() string {
	if l, ok := dateRangeLabels[r]; ok {
		return l
	}
	return string(r)
}

// Bounds ventana de calendario [start, end) del rango respecto a now. Sólo para mostrar.
// Las semanas empiezan en lunes.
func (r DateRange) Bounds(now time.Time) (start, end time.Time) {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekStart := day.AddDate(0, 0, -((int(day.Weekday()) + 6) % 7))
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	quarterStart := time.Date(now.Year(), now.Month()-(now.Month()-1)%3, 1, 0, 0, 0, 0, now.Location())
	yearStart := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
	tomorrow := day.AddDate(0, 0, 1)

	switch r {
	case Today:
		return day, tomorrow
	case Yesterday:
		return day.AddDate(0, 0, -1), day
	case ThisWeek:
		return weekStart, tomorrow
	case LastWeek:
		return weekStart.AddDate(0, 0, -7), weekStart
	case LastMonth:
		return monthStart.AddDate(0, -1, 0), monthStart
	case ThisQuarter:
		return quarterStart, tomorrow
	case LastQuarter:
		return quarterStart.AddDate(0, -3, 0), quarterStart
	case ThisYear:
		return yearStart, tomorrow
	case LastYear:
		return yearStart.AddDate(-1, 0, 0), yearStart
	case Last7Days:
		return tomorrow.AddDate(0, 0, -7), tomorrow
	case Last30Days:
		return tomorrow.AddDate(0, 0, -30), tomorrow
	case Last90Days:
		return tomorrow.AddDate(0, 0, -90), tomorrow
	default: // ThisMonth
		return monthStart, tomorrow
	}
}
