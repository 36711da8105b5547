package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetOffClearsShift(t *testing.T) {
	d := DayAssignment{Start: "09:00", End: "17:00", Position: "Caja"}
	d.SetOff()

	assert.True(t, d.Off)
	assert.False(t, d.Feriado)
	assert.Empty(t, d.Start)
	assert.Empty(t, d.End)
	assert.Empty(t, d.Position)
}

func TestSetHolidayFixedHours(t *testing.T) {
	var ft DayAssignment
	ft.SetHoliday(ModalityFullTime)
	assert.True(t, ft.Feriado)
	assert.Equal(t, "08:00", ft.Start)
	assert.Equal(t, "16:45", ft.End)
	assert.Empty(t, ft.Position)

	var pt DayAssignment
	pt.SetHoliday(ModalityPartTime)
	assert.Equal(t, "08:00", pt.Start)
	assert.Equal(t, "12:00", pt.End)
}

func TestDayAssignmentEmpty(t *testing.T) {
	assert.True(t, DayAssignment{}.Empty())
	assert.False(t, DayAssignment{Off: true}.Empty())
	assert.False(t, DayAssignment{Start: "09:00"}.Empty())
}

func TestWorkedMinutes(t *testing.T) {
	minutes, ok := DayAssignment{Start: "09:00", End: "17:45"}.WorkedMinutes()
	require.True(t, ok)
	assert.Equal(t, 525, minutes)

	// Turno nocturno
	minutes, ok = DayAssignment{Start: "18:00", End: "01:00"}.WorkedMinutes()
	require.True(t, ok)
	assert.Equal(t, 420, minutes)

	// Horas extra suman a la duración efectiva
	minutes, ok = DayAssignment{Start: "09:00", End: "17:00", ExtraHours: 1.5}.WorkedMinutes()
	require.True(t, ok)
	assert.Equal(t, 480+90, minutes)

	_, ok = DayAssignment{Start: "09:00"}.WorkedMinutes()
	assert.False(t, ok)
}

func TestWeeklyMinutesFullTimeDeduction(t *testing.T) {
	// Seis días de 8 h 45 m con el descuento de comida dan exactamente el
	// tope de tiempo completo
	week := make(WeekSchedule)
	for _, day := range Weekdays[:6] {
		week[day] = DayAssignment{Start: "09:00", End: "17:45", Position: "Caja"}
	}
	week["domingo"] = DayAssignment{Off: true}

	assert.Equal(t, WeeklyCapFullTime, week.WeeklyMinutes(ModalityFullTime))
}

func TestWeeklyMinutesSkipsOffAndHoliday(t *testing.T) {
	week := WeekSchedule{
		"lunes":  {Start: "09:00", End: "13:00"},
		"martes": {Off: true},
	}
	var feriado DayAssignment
	feriado.SetHoliday(ModalityPartTime)
	week["miercoles"] = feriado

	// Medio tiempo no lleva descuento de comida
	assert.Equal(t, 240, week.WeeklyMinutes(ModalityPartTime))
}

func TestWeeklyCap(t *testing.T) {
	assert.Equal(t, WeeklyCapFullTime, WeeklyCap(ModalityFullTime))
	assert.Equal(t, WeeklyCapPartTime, WeeklyCap(ModalityPartTime))
}

func TestClosingCounts(t *testing.T) {
	week := WeekSchedule{
		"lunes":     {Start: "14:00", End: "22:30"}, // precierre
		"martes":    {Start: "14:00", End: "23:00"}, // precierre
		"miercoles": {Start: "18:00", End: "01:00"}, // cierre
		"jueves":    {Start: "09:00", End: "17:00"}, // ninguno
		"viernes":   {Off: true},
	}

	pre, closings := week.ClosingCounts()
	assert.Equal(t, 2, pre)
	assert.Equal(t, 1, closings)
}

func TestCloneIsIndependent(t *testing.T) {
	week := WeekSchedule{"lunes": {Start: "09:00", End: "17:00"}}
	clone := week.Clone()
	clone["lunes"] = DayAssignment{Off: true}

	assert.Equal(t, "09:00", week["lunes"].Start)
}
