package domain

import (
	"slices"
	"time"

	"github.com/grupo-solmar/staff-scheduler/backend/internal/timegrid"
)

type Modality string

const (
	ModalityFullTime Modality = "tiempo completo"
	ModalityPartTime Modality = "medio tiempo"
)

// Weekdays enumera los días en el orden en que se recorre la semana.
// Son también las claves con las que se persisten horarios de estudio
// y asignaciones de turnos.
var Weekdays = []string{"lunes", "martes", "miercoles", "jueves", "viernes", "sabado", "domingo"}

// TimeBlock es un rango horario ocupado dentro de un día ("HH:MM").
type TimeBlock struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Overlaps indica si el bloque se superpone con [start,end), ambos en
// minutos linealizados sobre la grilla. margin agranda el bloque hacia
// los dos lados; el generador usa 60 minutos, el detector de conflictos
// usa 0.
func (b TimeBlock) Overlaps(startMin, endMin, margin int) bool {
	blockStart, err := timegrid.ParseClock(b.Start)
	if err != nil {
		return false
	}
	blockEnd, err := timegrid.ParseClock(b.End)
	if err != nil {
		return false
	}

	blockStart = timegrid.Linearize(blockStart)
	blockEnd = timegrid.Linearize(blockEnd)

	// Un bloque que cruza el inicio de la grilla (p. ej. 05:00-07:00)
	// linealiza invertido: la cola pertenece al final del día laboral
	// anterior y la cabeza al comienzo del siguiente, y basta con pisar
	// cualquiera de las dos.
	if blockEnd < blockStart {
		return endMin > blockStart-margin || startMin < blockEnd+margin
	}

	return endMin > blockStart-margin && startMin < blockEnd+margin
}

// StudyDay es la disponibilidad de un empleado para un día de la semana.
// Free en true significa que pidió el día completo libre para estudiar;
// si no, Blocks lista los rangos ocupados (pueden venir desordenados o
// superpuestos, se tratan de forma conservadora como la unión).
type StudyDay struct {
	Free   bool        `json:"free"`
	Blocks []TimeBlock `json:"blocks,omitempty"`
}

// StudySchedule mapea día de la semana -> disponibilidad. Un día ausente
// equivale a disponibilidad completa.
type StudySchedule map[string]StudyDay

func (s StudySchedule) Day(day string) StudyDay {
	if s == nil {
		return StudyDay{}
	}
	return s[day]
}

// FreeDays cuenta cuántos días de la semana están marcados como libres
// por estudio. Determina el largo de turno que intenta un medio tiempo.
func (s StudySchedule) FreeDays() int {
	n := 0
	for _, day := range Weekdays {
		if s.Day(day).Free {
			n++
		}
	}
	return n
}

type Employee struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	LastName      string        `json:"lastName"`
	StoreID       *int64        `json:"storeID"`
	Modality      Modality      `json:"modality"`
	Skills        []string      `json:"skills"`
	CessationDate *time.Time    `json:"cessationDate,omitempty"`
	IsTrainee     bool          `json:"isTrainee"`
	TraineeUntil  *time.Time    `json:"traineeUntil,omitempty"`
	StudySchedule StudySchedule `json:"studySchedule"`
	CreatedAt     time.Time     `json:"createdAt"`
	Version       int32         `json:"-"`
}

func (e *Employee) FullName() string {
	return e.Name + " " + e.LastName
}

// Qualified indica si el empleado puede cubrir el puesto.
func (e *Employee) Qualified(position string) bool {
	return slices.Contains(e.Skills, position)
}

// ActiveAt indica si el empleado integra el plantel activo en la fecha
// dada: queda excluido con fecha de cese pasada o con período de prueba
// vencido.
func (e *Employee) ActiveAt(t time.Time) bool {
	if e.CessationDate != nil && e.CessationDate.Before(t) {
		return false
	}
	if e.IsTrainee && e.TraineeUntil != nil && e.TraineeUntil.Before(t) {
		return false
	}
	return true
}

// ActiveRoster filtra el plantel activo antes de cualquier corrida de
// generación.
func ActiveRoster(employees []*Employee, at time.Time) []*Employee {
	active := make([]*Employee, 0, len(employees))
	for _, e := range employees {
		if e.ActiveAt(at) {
			active = append(active, e)
		}
	}
	return active
}
