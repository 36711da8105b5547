package scheduler

import (
	"math/rand"

	"github.com/grupo-solmar/staff-scheduler/backend/internal/domain"
)

// Largos de turno candidatos, en franjas de 15 minutos.
const (
	fullTimeSlots      = 35 // 8 h 45 m
	partTimeLongSlots  = 24 // 6 h
	partTimeShortSlots = 16 // 4 h

	// studyBufferMinutes es el margen que el generador deja a cada lado de
	// un bloque de estudio al descartar candidatos. El detector de
	// conflictos NO usa este margen: la generación es conservadora, el
	// marcado de ediciones manuales es exacto.
	studyBufferMinutes = 60
)

// Parameters controla una corrida de generación. Rand se inyecta para que
// los tests sean reproducibles; producción pasa una semilla real.
type Parameters struct {
	Rand *rand.Rand
}

func DefaultParameters(seed int64) *Parameters {
	return &Parameters{
		Rand: rand.New(rand.NewSource(seed)),
	}
}

// Session es la foto en memoria sobre la que corre el generador: el día
// objetivo, su requerimiento de dotación, el plantel activo y las semanas
// ya cargadas de cada empleado. El generador no tiene estado oculto ni
// persiste nada; el guardado es una acción posterior y explícita.
type Session struct {
	Day         string
	Requirement *domain.PositionRequirement
	Roster      []*domain.Employee
	Weeks       map[string]domain.WeekSchedule // employeeID -> semana existente
}

// Códigos de advertencia del resultado.
const (
	WarnUnplaced  = "sin_asignar"
	WarnShortfall = "cobertura_incompleta"
)

// Warning es un resultado degradado de la corrida: un empleado que quedó
// con franco no planificado, o un puesto con franjas sin cubrir. No son
// errores; se devuelven para que el operador los revise.
type Warning struct {
	Code       string `json:"code"`
	EmployeeID string `json:"employeeID,omitempty"`
	Position   string `json:"position,omitempty"`
	Slots      int    `json:"slots,omitempty"`
}

// Result es el borrador de un día generado: la asignación por empleado,
// la ocupación final por puesto y franja (para el mapa de calor) y las
// advertencias acumuladas.
type Result struct {
	Day         string                          `json:"day"`
	Assignments map[string]domain.DayAssignment `json:"assignments"`
	Assigned    [][]int                         `json:"assigned"`
	Warnings    []Warning                       `json:"warnings"`
}
