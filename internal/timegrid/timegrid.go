// Package timegrid discretiza el día laboral en franjas de 15 minutos.
// La grilla comienza a las 06:00 y envuelve hasta la madrugada del día
// siguiente; toda la aritmética de horarios nocturnos vive acá para no
// repetirla en cada componente.
package timegrid

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// SlotMinutes es la duración de cada franja.
	SlotMinutes = 15
	// WindowStartMinutes es el inicio de la grilla (06:00) en minutos desde medianoche.
	WindowStartMinutes = 6 * 60
	// SlotsPerDay es la cantidad de franjas de la grilla (06:00 hasta 01:00 del día siguiente).
	SlotsPerDay = 77
	// DayMinutes son los minutos de un día completo, usado para la envoltura nocturna.
	DayMinutes = 24 * 60
)

// ParseClock convierte "HH:MM" en minutos desde medianoche.
func ParseClock(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("horario inválido: %q", s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("horario inválido: %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("horario inválido: %q", s)
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("horario fuera de rango: %q", s)
	}

	return hour*60 + minute, nil
}

// TimeToSlot convierte "HH:MM" en un índice de franja. Los horarios anteriores
// a las 06:00 dan índices negativos; eso está permitido para la aritmética
// interna, pero para mostrar en pantalla hay que pasar por ClampSlot.
func TimeToSlot(s string) (int, error) {
	minutes, err := ParseClock(s)
	if err != nil {
		return 0, err
	}
	return (minutes - WindowStartMinutes) / SlotMinutes, nil
}

// ClampSlot limita un índice al rango representable de la grilla.
func ClampSlot(slot int) int {
	if slot < 0 {
		return 0
	}
	if slot >= SlotsPerDay {
		return SlotsPerDay - 1
	}
	return slot
}

// SlotToTime es la inversa de TimeToSlot. Los índices que caen después de
// medianoche envuelven al día siguiente (el slot 76 es "01:00").
func SlotToTime(slot int) string {
	hour := (slot/4 + 6) % 24
	minute := (slot % 4) * SlotMinutes
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// Linearize proyecta minutos desde medianoche sobre la recta de la grilla:
// los horarios de madrugada (antes de las 06:00) pertenecen al final del
// día laboral anterior, así dos horarios de un mismo turno siempre quedan
// en orden creciente.
func Linearize(minutes int) int {
	if minutes < WindowStartMinutes {
		return minutes + DayMinutes
	}
	return minutes
}

// DurationMinutes devuelve end-start en minutos. Si el fin es menor o igual
// al inicio se trata de un turno nocturno y se suma un día completo.
func DurationMinutes(start, end string) (int, error) {
	startMin, err := ParseClock(start)
	if err != nil {
		return 0, err
	}
	endMin, err := ParseClock(end)
	if err != nil {
		return 0, err
	}

	d := endMin - startMin
	if d <= 0 {
		d += DayMinutes
	}
	return d, nil
}

// MondayOf normaliza cualquier fecha al lunes de su semana.
func MondayOf(t time.Time) time.Time {
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(t.Weekday()) + 6) % 7 // lunes = 0
	return t.AddDate(0, 0, -offset)
}

// WeekKey deriva la clave de partición de una semana a partir de cualquier
// fecha contenida en ella: lunes y domingo en formato ISO, separados por "_".
// Dos fechas de la misma semana siempre producen la misma clave.
func WeekKey(t time.Time) string {
	monday := MondayOf(t)
	sunday := monday.AddDate(0, 0, 6)
	return monday.Format("2006-01-02") + "_" + sunday.Format("2006-01-02")
}
