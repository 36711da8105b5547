package scheduler

import (
	"github.com/grupo-solmar/staff-scheduler/backend/internal/domain"
	"github.com/grupo-solmar/staff-scheduler/backend/internal/timegrid"
)

// Conflict clasifica un turno ya asignado (a mano o por el generador)
// para revisión del operador. Es puramente consultivo: se muestra junto
// al turno y el operador decide; nunca deshace una asignación.
type Conflict string

const (
	ConflictNone         Conflict = ""
	ConflictEstudia      Conflict = "estudia"      // el empleado pidió el día libre para estudiar
	ConflictIncompatible Conflict = "incompatible" // no está calificado para el puesto
	ConflictConflicto    Conflict = "conflicto"    // el turno pisa un bloque de estudio
)

// DetectConflict evalúa el turno de un empleado para un día de la semana.
// A diferencia del generador, acá la superposición con bloques de estudio
// es exacta, sin margen de una hora: la generación es conservadora, el
// marcado de ediciones manuales no.
func DetectConflict(emp *domain.Employee, day string, shift domain.DayAssignment) Conflict {
	// Sin turno armado, o feriado trabajado: nada que marcar.
	if shift.Start == "" || shift.End == "" || shift.Position == "" || shift.Feriado {
		return ConflictNone
	}

	studyDay := emp.StudySchedule.Day(day)

	if studyDay.Free {
		return ConflictEstudia
	}

	if !emp.Qualified(shift.Position) {
		return ConflictIncompatible
	}

	startMin, err := timegrid.ParseClock(shift.Start)
	if err != nil {
		return ConflictNone
	}
	endMin, err := timegrid.ParseClock(shift.End)
	if err != nil {
		return ConflictNone
	}

	startMin = timegrid.Linearize(startMin)
	endMin = timegrid.Linearize(endMin)
	if endMin <= startMin {
		endMin += timegrid.DayMinutes
	}

	for _, block := range studyDay.Blocks {
		if block.Overlaps(startMin, endMin, 0) {
			return ConflictConflicto
		}
	}

	return ConflictNone
}
