package scheduler

import (
	"github.com/grupo-solmar/staff-scheduler/backend/internal/domain"
	"github.com/grupo-solmar/staff-scheduler/backend/internal/timegrid"
)

// candidateLengths devuelve los largos de turno a intentar según la
// modalidad, del más largo al más corto. Tiempo completo solo tiene un
// largo fijo; medio tiempo intenta 6 h cuando tiene más de un día de
// estudio libre en la semana y si no cae a 4 h. No hay un tercer
// escalón: si ninguno entra, el día queda franco.
func candidateLengths(emp *domain.Employee) []int {
	if emp.Modality == domain.ModalityPartTime {
		if emp.StudySchedule.FreeDays() > 1 {
			return []int{partTimeLongSlots, partTimeShortSlots}
		}
		return []int{partTimeShortSlots}
	}
	return []int{fullTimeSlots}
}

// committedWeeklyMinutes suma los minutos ya comprometidos del empleado en
// los otros días de la semana, con la misma semántica del total semanal
// (descuento de comida incluido para tiempo completo).
func (g *Generator) committedWeeklyMinutes(emp *domain.Employee) int {
	week := g.session.Weeks[emp.ID]
	if week == nil {
		return 0
	}

	other := week.Clone()
	delete(other, g.session.Day)
	return other.WeeklyMinutes(emp.Modality)
}

// placeEmployee busca la primera colocación factible para el empleado en
// el día objetivo: por cada largo candidato recorre todos los inicios en
// orden creciente (primer encaje, no mejor encaje) y por cada inicio los
// puestos calificados en el orden del requerimiento. Al encontrar lugar
// compromete la ocupación y corta.
func (g *Generator) placeEmployee(emp *domain.Employee) (domain.DayAssignment, bool) {
	committed := g.committedWeeklyMinutes(emp)
	weeklyCap := domain.WeeklyCap(emp.Modality)
	studyDay := emp.StudySchedule.Day(g.session.Day)

	for _, length := range candidateLengths(emp) {
		// Tope semanal: el candidato suma lo mismo que sumará la métrica
		// semanal una vez guardado.
		addition := length * timegrid.SlotMinutes
		if emp.Modality == domain.ModalityFullTime {
			addition -= 45
		}
		if committed+addition > weeklyCap {
			continue
		}

		for start := 0; start+length <= g.slots; start++ {
			startMin := timegrid.WindowStartMinutes + start*timegrid.SlotMinutes
			endMin := startMin + length*timegrid.SlotMinutes

			if blockedByStudy(studyDay, startMin, endMin) {
				continue
			}

			for p := range g.session.Requirement.Positions {
				if !emp.Qualified(g.session.Requirement.Positions[p]) {
					continue
				}
				if !g.fits(p, start, length) {
					continue
				}

				g.commit(p, start, length)

				var d domain.DayAssignment
				d.SetShift(
					timegrid.SlotToTime(start),
					timegrid.SlotToTime(start+length),
					g.session.Requirement.Positions[p],
				)
				return d, true
			}
		}
	}

	return domain.DayAssignment{}, false
}

// blockedByStudy aplica la regla del margen: el candidato se acepta solo
// si termina una hora antes del bloque o empieza una hora después.
func blockedByStudy(studyDay domain.StudyDay, startMin, endMin int) bool {
	for _, block := range studyDay.Blocks {
		if block.Overlaps(startMin, endMin, studyBufferMinutes) {
			return true
		}
	}
	return false
}

// fits chequea que todas las franjas del rango tengan lugar en el puesto.
func (g *Generator) fits(position, start, length int) bool {
	for s := start; s < start+length; s++ {
		if g.assigned[position][s] >= g.session.Requirement.CapacityAt(position, s) {
			return false
		}
	}
	return true
}

func (g *Generator) commit(position, start, length int) {
	for s := start; s < start+length; s++ {
		g.assigned[position][s]++
	}
}
