package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/grupo-solmar/staff-scheduler/backend/internal/domain"
)

func conflictEmployee() *domain.Employee {
	return &domain.Employee{
		ID:       "emp-1",
		Name:     "Lucía",
		LastName: "Gómez",
		Modality: domain.ModalityPartTime,
		Skills:   []string{"Caja", "Salón"},
		StudySchedule: domain.StudySchedule{
			"lunes":  {Free: true},
			"martes": {Blocks: []domain.TimeBlock{{Start: "10:00", End: "12:00"}}},
		},
	}
}

func TestDetectConflictNoShift(t *testing.T) {
	emp := conflictEmployee()

	assert.Equal(t, ConflictNone, DetectConflict(emp, "martes", domain.DayAssignment{}))
	assert.Equal(t, ConflictNone, DetectConflict(emp, "martes", domain.DayAssignment{Off: true}))

	// Un turno a medio cargar tampoco se marca
	assert.Equal(t, ConflictNone, DetectConflict(emp, "martes", domain.DayAssignment{Start: "09:00"}))
}

func TestDetectConflictHoliday(t *testing.T) {
	emp := conflictEmployee()

	var d domain.DayAssignment
	d.SetHoliday(emp.Modality)
	// Incluso en día pedido libre, el feriado trabajado no se marca
	assert.Equal(t, ConflictNone, DetectConflict(emp, "lunes", d))
}

func TestDetectConflictEstudia(t *testing.T) {
	emp := conflictEmployee()

	d := domain.DayAssignment{Start: "09:00", End: "13:00", Position: "Caja"}
	assert.Equal(t, ConflictEstudia, DetectConflict(emp, "lunes", d))
}

func TestDetectConflictIncompatible(t *testing.T) {
	emp := conflictEmployee()

	d := domain.DayAssignment{Start: "13:00", End: "17:00", Position: "Cocina"}
	assert.Equal(t, ConflictIncompatible, DetectConflict(emp, "miercoles", d))
}

func TestDetectConflictStudyBlock(t *testing.T) {
	emp := conflictEmployee()

	// Pisa el bloque de 10:00-12:00
	d := domain.DayAssignment{Start: "11:00", End: "15:00", Position: "Caja"}
	assert.Equal(t, ConflictConflicto, DetectConflict(emp, "martes", d))

	// Lejos del bloque
	d = domain.DayAssignment{Start: "14:00", End: "18:00", Position: "Caja"}
	assert.Equal(t, ConflictNone, DetectConflict(emp, "martes", d))
}

// El detector es exacto: un turno pegado al bloque de estudio no se marca,
// aunque el generador jamás lo habría producido por el margen de una hora.
// La generación es conservadora, el marcado de ediciones manuales no.
func TestDetectConflictExactBoundary(t *testing.T) {
	emp := conflictEmployee()

	d := domain.DayAssignment{Start: "12:00", End: "16:00", Position: "Caja"}
	assert.Equal(t, ConflictNone, DetectConflict(emp, "martes", d))

	d = domain.DayAssignment{Start: "06:00", End: "10:00", Position: "Caja"}
	assert.Equal(t, ConflictNone, DetectConflict(emp, "martes", d))
}

func TestDetectConflictOvernightShift(t *testing.T) {
	emp := conflictEmployee()
	emp.StudySchedule["viernes"] = domain.StudyDay{
		Blocks: []domain.TimeBlock{{Start: "23:00", End: "23:45"}},
	}

	// 20:00-01:00 envuelve la medianoche y pisa el bloque de 23:00
	d := domain.DayAssignment{Start: "20:00", End: "01:00", Position: "Caja"}
	assert.Equal(t, ConflictConflicto, DetectConflict(emp, "viernes", d))
}
