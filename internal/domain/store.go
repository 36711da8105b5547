package domain

import "time"

// Store es un local de la cadena. Los requerimientos de dotación pueden
// tener alcance de local o caer al requerimiento global por defecto.
type Store struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
	Version   int32     `json:"-"`
}
