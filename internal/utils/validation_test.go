package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grupo-solmar/staff-scheduler/backend/internal/domain"
	"github.com/grupo-solmar/staff-scheduler/backend/internal/timegrid"
)

func TestValidateDayAssignment(t *testing.T) {
	// Turno normal bien cargado
	assert.NoError(t, ValidateDayAssignment("lunes", domain.DayAssignment{
		Start: "09:00", End: "17:45", Position: "Caja",
	}))

	// Día sin nada cargado
	assert.NoError(t, ValidateDayAssignment("lunes", domain.DayAssignment{}))

	// Franco y feriado son excluyentes
	assert.Error(t, ValidateDayAssignment("lunes", domain.DayAssignment{Off: true, Feriado: true}))

	// El franco limpia horarios y puesto
	assert.Error(t, ValidateDayAssignment("lunes", domain.DayAssignment{Off: true, Start: "09:00"}))

	// El feriado no lleva puesto
	assert.Error(t, ValidateDayAssignment("lunes", domain.DayAssignment{Feriado: true, Position: "Caja"}))

	// Turno incompleto
	assert.Error(t, ValidateDayAssignment("lunes", domain.DayAssignment{Start: "09:00", Position: "Caja"}))

	// Horario fuera de la grilla de 15 minutos
	assert.Error(t, ValidateDayAssignment("lunes", domain.DayAssignment{
		Start: "09:07", End: "17:00", Position: "Caja",
	}))

	// Horario que no parsea
	assert.Error(t, ValidateDayAssignment("lunes", domain.DayAssignment{
		Start: "mal", End: "17:00", Position: "Caja",
	}))
}

func TestValidateWeekScheduleCap(t *testing.T) {
	// Seis días de 8 h 45 m dan exactamente el tope de tiempo completo
	week := make(domain.WeekSchedule)
	for _, day := range domain.Weekdays[:6] {
		week[day] = domain.DayAssignment{Start: "09:00", End: "17:45", Position: "Caja"}
	}
	assert.NoError(t, ValidateWeekSchedule(week, domain.ModalityFullTime))

	// El séptimo día pasa el tope
	week["domingo"] = domain.DayAssignment{Start: "09:00", End: "17:45", Position: "Caja"}
	assert.Error(t, ValidateWeekSchedule(week, domain.ModalityFullTime))

	// La misma semana para medio tiempo está lejísimos del tope
	assert.Error(t, ValidateWeekSchedule(week, domain.ModalityPartTime))
}

func TestValidateWeekWithEmployee(t *testing.T) {
	emp := &domain.Employee{
		Name:     "Rocío",
		LastName: "Torres",
		Modality: domain.ModalityPartTime,
		Skills:   []string{"Caja"},
		StudySchedule: domain.StudySchedule{
			"miercoles": {Free: true},
		},
	}

	// Semana válida: turno en puesto calificado, franco el día de estudio
	week := domain.WeekSchedule{
		"lunes":     {Start: "09:00", End: "13:00", Position: "Caja"},
		"miercoles": {Off: true},
	}
	assert.NoError(t, ValidateWeekWithEmployee(week, emp))

	// Puesto sin calificación
	bad := domain.WeekSchedule{
		"lunes": {Start: "09:00", End: "13:00", Position: "Cocina"},
	}
	assert.Error(t, ValidateWeekWithEmployee(bad, emp))

	// Turno en el día pedido libre por estudio
	bad = domain.WeekSchedule{
		"miercoles": {Start: "09:00", End: "13:00", Position: "Caja"},
	}
	assert.Error(t, ValidateWeekWithEmployee(bad, emp))
}

func TestAuditOccupancy(t *testing.T) {
	row := make([]int, timegrid.SlotsPerDay)
	for i := range row {
		row[i] = 1
	}
	req := &domain.PositionRequirement{
		Day:       "lunes",
		Positions: []string{"Caja"},
		Matrix:    [][]int{row},
	}

	// Un empleado por franja: pasa
	ok := map[string]domain.DayAssignment{
		"a": {Start: "09:00", End: "13:00", Position: "Caja"},
		"b": {Start: "13:00", End: "17:00", Position: "Caja"},
		"c": {Off: true},
	}
	assert.NoError(t, AuditOccupancy(req, ok))

	// Dos en la misma franja con dotación 1: sobreasignación
	over := map[string]domain.DayAssignment{
		"a": {Start: "09:00", End: "13:00", Position: "Caja"},
		"b": {Start: "12:00", End: "16:00", Position: "Caja"},
	}
	assert.Error(t, AuditOccupancy(req, over))

	// Puesto que no figura en el requerimiento
	unknown := map[string]domain.DayAssignment{
		"a": {Start: "09:00", End: "13:00", Position: "Delivery"},
	}
	assert.Error(t, AuditOccupancy(req, unknown))
}

func TestGenerateUsernameFromName(t *testing.T) {
	username := GenerateUsernameFromName("Agustín", "Gómez")
	assert.Regexp(t, `^agustin\.gomez\d{1,3}$`, username)
}

func TestGenerateRandomOTP(t *testing.T) {
	otp := GenerateRandomOTP()
	require.Len(t, otp, 6)
	assert.Regexp(t, `^\d{6}$`, otp)
}

func TestGenerateRandomPassword(t *testing.T) {
	assert.Len(t, GenerateRandomPassword(12), 12)
}

func TestGenerateRandomEmployee(t *testing.T) {
	storeID := int64(3)
	emp := GenerateRandomEmployee(&storeID)

	require.NotEmpty(t, emp.ID)
	assert.NotEmpty(t, emp.Skills)
	assert.Equal(t, &storeID, emp.StoreID)
	for _, skill := range emp.Skills {
		assert.Contains(t, StandardPositions, skill)
	}
}
