package domain

import "time"

// Horarios fijos de un día feriado trabajado, según modalidad.
const (
	HolidayStart       = "08:00"
	HolidayEndFullTime = "16:45"
	HolidayEndPartTime = "12:00"
)

// DayAssignment es el turno de un empleado para un día de la semana.
// Off y Feriado son mutuamente excluyentes y cada uno, al activarse,
// limpia inicio/fin/puesto (usar SetOff / SetHoliday para mantener esa
// invariante). ExtraHours solo extiende la duración efectiva para las
// métricas y la grilla, no el End guardado.
type DayAssignment struct {
	Start      string  `json:"start,omitempty"`
	End        string  `json:"end,omitempty"`
	Position   string  `json:"position,omitempty"`
	Off        bool    `json:"off"`
	Feriado    bool    `json:"feriado"`
	ExtraHours float64 `json:"extraHours,omitempty"`
}

// SetOff marca el día como franco.
func (d *DayAssignment) SetOff() {
	*d = DayAssignment{Off: true}
}

// SetHoliday marca el día como feriado trabajado, con los horarios fijos
// que correspondan a la modalidad y sin puesto.
func (d *DayAssignment) SetHoliday(m Modality) {
	end := HolidayEndFullTime
	if m == ModalityPartTime {
		end = HolidayEndPartTime
	}
	*d = DayAssignment{
		Start:   HolidayStart,
		End:     end,
		Feriado: true,
	}
}

// SetShift asigna un turno normal.
func (d *DayAssignment) SetShift(start, end, position string) {
	*d = DayAssignment{
		Start:    start,
		End:      end,
		Position: position,
	}
}

// Empty indica si el día no tiene nada cargado todavía.
func (d DayAssignment) Empty() bool {
	return !d.Off && !d.Feriado && d.Start == "" && d.End == "" && d.Position == ""
}

// WeekSchedule mapea día de la semana -> turno asignado.
type WeekSchedule map[string]DayAssignment

// Clone copia la semana; el generador trabaja sobre copias en memoria y
// nunca toca la semana original hasta el guardado explícito.
func (w WeekSchedule) Clone() WeekSchedule {
	out := make(WeekSchedule, len(w))
	for day, d := range w {
		out[day] = d
	}
	return out
}

// EmployeeWeek es el documento persistido: la semana de turnos de un
// empleado, particionada por WeekKey.
type EmployeeWeek struct {
	EmployeeID string       `json:"employeeID"`
	WeekKey    string       `json:"weekKey"`
	Days       WeekSchedule `json:"days"`
	CreatedAt  time.Time    `json:"createdAt"`
	Version    int32        `json:"-"`
}
