package domain

import "time"

// Holiday es una entrada del calendario de feriados de un año. Solo se usa
// como referencia contable al marcar un día como feriado trabajado; el
// generador no la consume.
type Holiday struct {
	ID        int64     `json:"id"`
	Date      time.Time `json:"date"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}
