package domain

import (
	"github.com/grupo-solmar/staff-scheduler/backend/internal/timegrid"
)

// Topes semanales en minutos por modalidad y descuento de comida diario
// para tiempo completo.
const (
	WeeklyCapFullTime = 2880 // 48 h
	WeeklyCapPartTime = 1440 // 24 h

	fullTimeMealDeduction = 45
)

func WeeklyCap(m Modality) int {
	if m == ModalityPartTime {
		return WeeklyCapPartTime
	}
	return WeeklyCapFullTime
}

// WorkedMinutes devuelve la duración trabajada del día, con envoltura
// nocturna y horas extra incluidas. ok es false cuando falta inicio o fin
// (la UI muestra "--" en ese caso).
func (d DayAssignment) WorkedMinutes() (minutes int, ok bool) {
	if d.Start == "" || d.End == "" {
		return 0, false
	}

	dur, err := timegrid.DurationMinutes(d.Start, d.End)
	if err != nil {
		return 0, false
	}

	return dur + int(d.ExtraHours*60), true
}

// WeeklyMinutes suma la duración trabajada de los siete días, salteando
// francos y feriados. A los tiempo completo se les descuentan 45 minutos
// de comida por día computado; el descuento aplica solo al total semanal,
// el valor diario que se muestra no lo lleva.
func (w WeekSchedule) WeeklyMinutes(m Modality) int {
	total := 0
	for _, day := range Weekdays {
		d, exists := w[day]
		if !exists || d.Off || d.Feriado {
			continue
		}

		minutes, ok := d.WorkedMinutes()
		if !ok {
			continue
		}

		total += minutes
		if m == ModalityFullTime {
			total -= fullTimeMealDeduction
		}
	}
	return total
}

// ClosingCounts cuenta los precierres (fin entre 22:00 y 23:59) y cierres
// (fin entre 00:00 y 05:59) de la semana. Es un indicador de cumplimiento
// (la meta es no pasar de 4 de cada uno), no una restricción dura.
func (w WeekSchedule) ClosingCounts() (preClosings, closings int) {
	for _, day := range Weekdays {
		d, exists := w[day]
		if !exists || d.Off || d.Feriado || d.End == "" {
			continue
		}

		endMin, err := timegrid.ParseClock(d.End)
		if err != nil {
			continue
		}

		hour := endMin / 60
		switch {
		case hour >= 22 && hour <= 23:
			preClosings++
		case hour >= 0 && hour <= 5:
			closings++
		}
	}
	return preClosings, closings
}
