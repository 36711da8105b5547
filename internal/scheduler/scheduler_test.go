package scheduler

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grupo-solmar/staff-scheduler/backend/internal/domain"
	"github.com/grupo-solmar/staff-scheduler/backend/internal/timegrid"
	"github.com/grupo-solmar/staff-scheduler/backend/internal/utils"
)

// flatRequirement arma un requerimiento de un solo puesto con la misma
// dotación en toda la grilla.
func flatRequirement(position string, capacity int) *domain.PositionRequirement {
	row := make([]int, timegrid.SlotsPerDay)
	for i := range row {
		row[i] = capacity
	}
	return &domain.PositionRequirement{
		Day:       "martes",
		Positions: []string{position},
		Matrix:    [][]int{row},
	}
}

func fullTimeEmployee(id string) *domain.Employee {
	return &domain.Employee{
		ID:       id,
		Name:     "Mateo",
		LastName: "Pérez",
		Modality: domain.ModalityFullTime,
		Skills:   []string{"Caja"},
	}
}

func partTimeEmployee(id string) *domain.Employee {
	return &domain.Employee{
		ID:       id,
		Name:     "Camila",
		LastName: "Sosa",
		Modality: domain.ModalityPartTime,
		Skills:   []string{"Caja"},
	}
}

func TestNewRejectsBadRequirement(t *testing.T) {
	session := &Session{
		Day: "martes",
		Requirement: &domain.PositionRequirement{
			Positions: []string{"Caja", "Cocina"},
			Matrix:    [][]int{{1, 1}},
		},
	}

	_, err := New(DefaultParameters(1), session)
	assert.ErrorIs(t, err, domain.ErrBadRequirement)
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	run := func() *Result {
		roster := []*domain.Employee{
			fullTimeEmployee("a"),
			partTimeEmployee("b"),
			partTimeEmployee("c"),
		}
		g, err := New(DefaultParameters(42), &Session{
			Day:         "martes",
			Requirement: flatRequirement("Caja", 2),
			Roster:      roster,
			Weeks:       map[string]domain.WeekSchedule{},
		})
		require.NoError(t, err)
		return g.Generate()
	}

	first := run()
	second := run()

	assert.Equal(t, first.Assignments, second.Assignments)
	assert.Equal(t, first.Assigned, second.Assigned)
	assert.Equal(t, first.Warnings, second.Warnings)
}

func TestGenerateFullTimeShiftLength(t *testing.T) {
	g, err := New(DefaultParameters(1), &Session{
		Day:         "martes",
		Requirement: flatRequirement("Caja", 1),
		Roster:      []*domain.Employee{fullTimeEmployee("a")},
		Weeks:       map[string]domain.WeekSchedule{},
	})
	require.NoError(t, err)

	result := g.Generate()
	d := result.Assignments["a"]

	require.False(t, d.Off)
	assert.Equal(t, "Caja", d.Position)

	minutes, ok := d.WorkedMinutes()
	require.True(t, ok)
	assert.Equal(t, 525, minutes) // 8 h 45 m
}

func TestGenerateFreeStudyDayForcesOff(t *testing.T) {
	emp := partTimeEmployee("a")
	emp.StudySchedule = domain.StudySchedule{"martes": {Free: true}}

	g, err := New(DefaultParameters(1), &Session{
		Day:         "martes",
		Requirement: flatRequirement("Caja", 1),
		Roster:      []*domain.Employee{emp},
		Weeks:       map[string]domain.WeekSchedule{},
	})
	require.NoError(t, err)

	result := g.Generate()
	assert.True(t, result.Assignments["a"].Off)

	// El franco planificado no es una advertencia
	for _, warning := range result.Warnings {
		assert.NotEqual(t, WarnUnplaced, warning.Code)
	}
}

func TestGenerateRespectsQualifications(t *testing.T) {
	emp := partTimeEmployee("a")
	emp.Skills = []string{"Cocina"}

	g, err := New(DefaultParameters(1), &Session{
		Day:         "martes",
		Requirement: flatRequirement("Caja", 1),
		Roster:      []*domain.Employee{emp},
		Weeks:       map[string]domain.WeekSchedule{},
	})
	require.NoError(t, err)

	result := g.Generate()
	assert.True(t, result.Assignments["a"].Off)

	require.NotEmpty(t, result.Warnings)
	assert.Equal(t, WarnUnplaced, result.Warnings[0].Code)
	assert.Equal(t, "a", result.Warnings[0].EmployeeID)
}

func TestGenerateRespectsWeeklyCap(t *testing.T) {
	emp := fullTimeEmployee("a")

	// La semana ya comprometida llega justo al tope de tiempo completo
	week := make(domain.WeekSchedule)
	for _, day := range []string{"lunes", "miercoles", "jueves", "viernes", "sabado", "domingo"} {
		week[day] = domain.DayAssignment{Start: "09:00", End: "17:45", Position: "Caja"}
	}

	g, err := New(DefaultParameters(1), &Session{
		Day:         "martes",
		Requirement: flatRequirement("Caja", 3),
		Roster:      []*domain.Employee{emp},
		Weeks:       map[string]domain.WeekSchedule{"a": week},
	})
	require.NoError(t, err)

	result := g.Generate()
	assert.True(t, result.Assignments["a"].Off)
}

func TestGenerateNeverOverAssigns(t *testing.T) {
	req := flatRequirement("Caja", 1)

	roster := make([]*domain.Employee, 0, 5)
	for i := 0; i < 5; i++ {
		roster = append(roster, partTimeEmployee(fmt.Sprintf("emp-%d", i)))
	}

	g, err := New(DefaultParameters(7), &Session{
		Day:         "martes",
		Requirement: req,
		Roster:      roster,
		Weeks:       map[string]domain.WeekSchedule{},
	})
	require.NoError(t, err)

	result := g.Generate()

	// La auditoría reconstruye la ocupación desde cero y falla ante
	// cualquier franja por encima del requerimiento
	assert.NoError(t, utils.AuditOccupancy(req, result.Assignments))

	for s, assigned := range result.Assigned[0] {
		assert.LessOrEqual(t, assigned, req.CapacityAt(0, s), "franja %d", s)
	}
}

func TestGenerateReportsShortfalls(t *testing.T) {
	g, err := New(DefaultParameters(1), &Session{
		Day:         "martes",
		Requirement: flatRequirement("Caja", 2),
		Roster:      []*domain.Employee{fullTimeEmployee("a")},
		Weeks:       map[string]domain.WeekSchedule{},
	})
	require.NoError(t, err)

	result := g.Generate()

	var shortfall *Warning
	for i := range result.Warnings {
		if result.Warnings[i].Code == WarnShortfall {
			shortfall = &result.Warnings[i]
		}
	}

	require.NotNil(t, shortfall, "con un solo empleado la dotación de 2 no se puede cubrir")
	assert.Equal(t, "Caja", shortfall.Position)
	assert.Positive(t, shortfall.Slots)
}

func TestGeneratePartTimeLongShiftWithFreeDays(t *testing.T) {
	// Con más de un día de estudio libre en la semana, el medio tiempo
	// intenta primero el turno de 6 h
	emp := partTimeEmployee("a")
	emp.StudySchedule = domain.StudySchedule{
		"jueves":  {Free: true},
		"domingo": {Free: true},
	}

	g, err := New(DefaultParameters(1), &Session{
		Day:         "martes",
		Requirement: flatRequirement("Caja", 1),
		Roster:      []*domain.Employee{emp},
		Weeks:       map[string]domain.WeekSchedule{},
	})
	require.NoError(t, err)

	result := g.Generate()
	d := result.Assignments["a"]

	require.False(t, d.Off)
	minutes, ok := d.WorkedMinutes()
	require.True(t, ok)
	assert.Equal(t, 360, minutes)
}

func TestGeneratePartTimeFallsBackToShortShift(t *testing.T) {
	// Mismo empleado con derecho al turno de 6 h, pero la semana ya
	// comprometida deja menos de 6 h de margen hasta el tope: cae al de 4 h
	emp := partTimeEmployee("a")
	emp.StudySchedule = domain.StudySchedule{
		"jueves":  {Free: true},
		"domingo": {Free: true},
	}

	// 19 h comprometidas; el tope de medio tiempo es 24 h
	week := domain.WeekSchedule{
		"lunes":     {Start: "09:00", End: "15:00", Position: "Caja"},
		"miercoles": {Start: "09:00", End: "15:00", Position: "Caja"},
		"viernes":   {Start: "09:00", End: "16:00", Position: "Caja"},
	}

	g, err := New(DefaultParameters(1), &Session{
		Day:         "martes",
		Requirement: flatRequirement("Caja", 1),
		Roster:      []*domain.Employee{emp},
		Weeks:       map[string]domain.WeekSchedule{"a": week},
	})
	require.NoError(t, err)

	result := g.Generate()
	d := result.Assignments["a"]

	require.False(t, d.Off)
	minutes, ok := d.WorkedMinutes()
	require.True(t, ok)
	assert.Equal(t, 240, minutes)
}

func TestGeneratePartTimeSingleFreeDayOnlyShort(t *testing.T) {
	// Con un solo día libre no hay turno de 6 h: directo al de 4 h aunque
	// el tope semanal tenga lugar de sobra
	emp := partTimeEmployee("a")
	emp.StudySchedule = domain.StudySchedule{"domingo": {Free: true}}

	g, err := New(DefaultParameters(1), &Session{
		Day:         "martes",
		Requirement: flatRequirement("Caja", 1),
		Roster:      []*domain.Employee{emp},
		Weeks:       map[string]domain.WeekSchedule{},
	})
	require.NoError(t, err)

	result := g.Generate()
	minutes, ok := result.Assignments["a"].WorkedMinutes()
	require.True(t, ok)
	assert.Equal(t, 240, minutes)
}

func TestGenerateStudyBufferMargin(t *testing.T) {
	emp := partTimeEmployee("a")
	emp.StudySchedule = domain.StudySchedule{
		"martes": {Blocks: []domain.TimeBlock{{Start: "10:00", End: "12:00"}}},
	}

	g, err := New(DefaultParameters(1), &Session{
		Day:         "martes",
		Requirement: flatRequirement("Caja", 1),
		Roster:      []*domain.Employee{emp},
		Weeks:       map[string]domain.WeekSchedule{},
	})
	require.NoError(t, err)

	result := g.Generate()
	d := result.Assignments["a"]

	// Con el margen de una hora, el primer inicio aceptable para un turno
	// de 4 h es a las 13:00 (una hora después del fin del bloque)
	require.False(t, d.Off)
	assert.Equal(t, "13:00", d.Start)
	assert.Equal(t, "17:00", d.End)
}

func TestGenerateEmptyRoster(t *testing.T) {
	g, err := New(DefaultParameters(1), &Session{
		Day:         "martes",
		Requirement: flatRequirement("Caja", 1),
		Roster:      nil,
		Weeks:       map[string]domain.WeekSchedule{},
	})
	require.NoError(t, err)

	result := g.Generate()
	assert.Empty(t, result.Assignments)

	// Todo el requerimiento queda corto
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, WarnShortfall, result.Warnings[0].Code)
	assert.Equal(t, timegrid.SlotsPerDay, result.Warnings[0].Slots)
}
