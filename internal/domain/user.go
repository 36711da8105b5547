package domain

import (
	"time"
)

type Role string

const (
	RoleGerente   Role = "gerente"
	RoleEncargado Role = "encargado"
)

// User es una cuenta de operador del sistema (quien arma y guarda los
// horarios), no un empleado del plantel.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	Role         Role      `json:"role"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	Version      int32     `json:"-"`
}
