// Package scheduler implementa el motor de generación de horarios: una
// heurística voraz de primer encaje que recorre el plantel en orden
// aleatorio e intenta ubicar un bloque contiguo de turno por empleado,
// respetando topes semanales, bloques de estudio, calificaciones y la
// matriz de dotación. No es un solver: no hay backtracking entre
// empleados y una colocación temprana nunca se revisa.
package scheduler

import (
	"github.com/grupo-solmar/staff-scheduler/backend/internal/domain"
)

type Generator struct {
	parameters *Parameters
	session    *Session

	// ocupación por puesto y franja, local a una corrida; arranca en cero
	// y nunca supera la matriz de requerimientos.
	assigned [][]int
	slots    int
}

// New arma un generador para un día. El único error posible es el
// estructural: matriz y lista de puestos inconsistentes entre sí.
func New(parameters *Parameters, session *Session) (*Generator, error) {
	if err := session.Requirement.Validate(); err != nil {
		return nil, err
	}

	slots := 0
	if len(session.Requirement.Matrix) > 0 {
		slots = len(session.Requirement.Matrix[0])
	}

	assigned := make([][]int, len(session.Requirement.Positions))
	for i := range assigned {
		assigned[i] = make([]int, slots)
	}

	return &Generator{
		parameters: parameters,
		session:    session,
		assigned:   assigned,
		slots:      slots,
	}, nil
}

// Generate corre la heurística para el día de la sesión y devuelve el
// borrador. Los demás días de cada semana no se tocan. Ningún resultado
// degradado es un error: empleados sin lugar quedan con franco y puestos
// sin cubrir se informan como advertencias.
func (g *Generator) Generate() *Result {
	result := &Result{
		Day:         g.session.Day,
		Assignments: make(map[string]domain.DayAssignment, len(g.session.Roster)),
	}

	// Se baraja una copia del plantel para no sesgar hacia el orden de
	// alta. Con la misma semilla la corrida es reproducible.
	roster := make([]*domain.Employee, len(g.session.Roster))
	copy(roster, g.session.Roster)
	g.parameters.Rand.Shuffle(len(roster), func(i, j int) {
		roster[i], roster[j] = roster[j], roster[i]
	})

	for _, emp := range roster {
		var d domain.DayAssignment

		// Día pedido libre por estudio: franco forzado, sin buscar lugar.
		if emp.StudySchedule.Day(g.session.Day).Free {
			d.SetOff()
			result.Assignments[emp.ID] = d
			continue
		}

		if shift, ok := g.placeEmployee(emp); ok {
			result.Assignments[emp.ID] = shift
			continue
		}

		// Franco no planificado: puede dejar puestos sin dotar, se informa
		// pero no bloquea.
		d.SetOff()
		result.Assignments[emp.ID] = d
		result.Warnings = append(result.Warnings, Warning{
			Code:       WarnUnplaced,
			EmployeeID: emp.ID,
		})
	}

	result.Assigned = g.assigned
	result.Warnings = append(result.Warnings, g.shortfalls()...)

	return result
}

// shortfalls compara ocupación final contra requerimiento y devuelve una
// advertencia por puesto con la cantidad de franjas cortas de dotación.
func (g *Generator) shortfalls() []Warning {
	var warnings []Warning
	for p, position := range g.session.Requirement.Positions {
		short := 0
		for s := 0; s < g.slots; s++ {
			if g.assigned[p][s] < g.session.Requirement.CapacityAt(p, s) {
				short++
			}
		}
		if short > 0 {
			warnings = append(warnings, Warning{
				Code:     WarnShortfall,
				Position: position,
				Slots:    short,
			})
		}
	}
	return warnings
}
