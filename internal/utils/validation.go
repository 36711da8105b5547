package utils

import (
	"fmt"

	"github.com/grupo-solmar/staff-scheduler/backend/internal/domain"
	"github.com/grupo-solmar/staff-scheduler/backend/internal/timegrid"
)

// ValidateDayAssignment chequea las invariantes de un día: franco y
// feriado son excluyentes, cada uno limpia los horarios, y los horarios de
// un turno normal tienen que parsear y caer en límites de 15 minutos.
func ValidateDayAssignment(day string, d domain.DayAssignment) error {
	if d.Off && d.Feriado {
		return fmt.Errorf("el día %s no puede ser franco y feriado a la vez", day)
	}

	if d.Off {
		if d.Start != "" || d.End != "" || d.Position != "" {
			return fmt.Errorf("el día %s es franco pero tiene horarios o puesto cargados", day)
		}
		return nil
	}

	if d.Feriado {
		if d.Position != "" {
			return fmt.Errorf("el día %s es feriado pero tiene puesto cargado", day)
		}
		return nil
	}

	if d.Empty() {
		return nil
	}

	if d.Start == "" || d.End == "" {
		return fmt.Errorf("el día %s tiene el turno incompleto", day)
	}

	for _, t := range []string{d.Start, d.End} {
		minutes, err := timegrid.ParseClock(t)
		if err != nil {
			return fmt.Errorf("el día %s tiene un horario inválido: %w", day, err)
		}
		if minutes%timegrid.SlotMinutes != 0 {
			return fmt.Errorf("el día %s tiene un horario fuera de la grilla de 15 minutos: %q", day, t)
		}
	}

	return nil
}

// ValidateWeekSchedule chequea una semana completa: invariantes por día y
// tope semanal de la modalidad.
func ValidateWeekSchedule(week domain.WeekSchedule, modality domain.Modality) error {
	for _, day := range domain.Weekdays {
		d, exists := week[day]
		if !exists {
			continue
		}
		if err := ValidateDayAssignment(day, d); err != nil {
			return err
		}
	}

	if total := week.WeeklyMinutes(modality); total > domain.WeeklyCap(modality) {
		return fmt.Errorf("la semana suma %d minutos y supera el tope de %d de la modalidad", total, domain.WeeklyCap(modality))
	}

	return nil
}

// ValidateWeekWithEmployee agrega los chequeos que dependen del perfil:
// calificación para el puesto de cada turno y franco forzado en los días
// pedidos libres por estudio.
func ValidateWeekWithEmployee(week domain.WeekSchedule, emp *domain.Employee) error {
	if err := ValidateWeekSchedule(week, emp.Modality); err != nil {
		return err
	}

	for _, day := range domain.Weekdays {
		d, exists := week[day]
		if !exists {
			continue
		}

		if d.Position != "" && !emp.Qualified(d.Position) {
			return fmt.Errorf("%s no está calificado para %s el día %s", emp.FullName(), d.Position, day)
		}

		if emp.StudySchedule.Day(day).Free && !d.Off && !d.Empty() {
			return fmt.Errorf("%s pidió el día %s libre por estudio pero tiene turno asignado", emp.FullName(), day)
		}
	}

	return nil
}

// AuditOccupancy reconstruye la ocupación por puesto y franja a partir de
// las asignaciones de un día y la compara contra el requerimiento.
// Devuelve error ante cualquier sobreasignación; los faltantes de
// cobertura no son error, los muestra el mapa de calor.
func AuditOccupancy(req *domain.PositionRequirement, assignments map[string]domain.DayAssignment) error {
	if err := req.Validate(); err != nil {
		return err
	}

	slots := 0
	if len(req.Matrix) > 0 {
		slots = len(req.Matrix[0])
	}

	assigned := make([][]int, len(req.Positions))
	for i := range assigned {
		assigned[i] = make([]int, slots)
	}

	posIndex := make(map[string]int, len(req.Positions))
	for i, p := range req.Positions {
		posIndex[p] = i
	}

	for employeeID, d := range assignments {
		if d.Off || d.Feriado || d.Start == "" || d.End == "" || d.Position == "" {
			continue
		}

		p, known := posIndex[d.Position]
		if !known {
			return fmt.Errorf("el empleado %s tiene el puesto %q que no figura en el requerimiento", employeeID, d.Position)
		}

		startSlot, err := timegrid.TimeToSlot(d.Start)
		if err != nil {
			return err
		}
		endSlot, err := timegrid.TimeToSlot(d.End)
		if err != nil {
			return err
		}
		if endSlot <= startSlot {
			endSlot += timegrid.DayMinutes / timegrid.SlotMinutes
		}

		for s := startSlot; s < endSlot && s < slots; s++ {
			if s < 0 {
				continue
			}
			assigned[p][s]++
			if assigned[p][s] > req.CapacityAt(p, s) {
				return fmt.Errorf("sobreasignación en %s franja %d: %d asignados sobre %d requeridos",
					d.Position, s, assigned[p][s], req.CapacityAt(p, s))
			}
		}
	}

	return nil
}
