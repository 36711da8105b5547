package domain

import (
	"errors"
	"strconv"
	"time"
)

// PositionRequirement es la matriz de dotación de un día: para cada puesto,
// cuántas personas se necesitan en cada franja de la grilla. La edita la
// configuración del local y el generador la consume de solo lectura.
type PositionRequirement struct {
	ID        int64     `json:"id"`
	StoreID   *int64    `json:"storeID"` // nil = requerimiento global por defecto
	Day       string    `json:"day"`
	Positions []string  `json:"positions"`
	Matrix    [][]int   `json:"matrix"`
	CreatedAt time.Time `json:"createdAt"`
	Version   int32     `json:"-"`
}

var ErrBadRequirement = errors.New("el requerimiento de puestos es inconsistente")

// Validate chequea la consistencia estructural: una fila por puesto y todas
// las filas del mismo largo, con valores no negativos.
func (pr *PositionRequirement) Validate() error {
	if len(pr.Matrix) != len(pr.Positions) {
		return ErrBadRequirement
	}

	cols := -1
	for _, row := range pr.Matrix {
		if cols == -1 {
			cols = len(row)
		}
		if len(row) != cols {
			return ErrBadRequirement
		}
		for _, v := range row {
			if v < 0 {
				return ErrBadRequirement
			}
		}
	}
	return nil
}

// CapacityAt devuelve la dotación requerida para un puesto y franja.
func (pr *PositionRequirement) CapacityAt(position, slot int) int {
	if position < 0 || position >= len(pr.Matrix) {
		return 0
	}
	row := pr.Matrix[position]
	if slot < 0 || slot >= len(row) {
		return 0
	}
	return row[slot]
}

// CompressMatrix convierte la matriz densa al formato de objeto indexado con
// el que se persiste ({fila: {columna: valor}}). No es una esparsificación:
// se conservan todas las celdas, incluidos los ceros.
func CompressMatrix(m [][]int) map[string]map[string]int {
	out := make(map[string]map[string]int, len(m))
	for i, row := range m {
		cells := make(map[string]int, len(row))
		for j, v := range row {
			cells[strconv.Itoa(j)] = v
		}
		out[strconv.Itoa(i)] = cells
	}
	return out
}

// ExpandMatrix es la inversa de CompressMatrix. Las celdas ausentes valen 0,
// así un documento recortado o viejo expande igual a una matriz rectangular.
func ExpandMatrix(c map[string]map[string]int, rows, cols int) [][]int {
	m := make([][]int, rows)
	for i := range m {
		m[i] = make([]int, cols)
	}

	for rowKey, cells := range c {
		i, err := strconv.Atoi(rowKey)
		if err != nil || i < 0 || i >= rows {
			continue
		}
		for colKey, v := range cells {
			j, err := strconv.Atoi(colKey)
			if err != nil || j < 0 || j >= cols {
				continue
			}
			m[i][j] = v
		}
	}
	return m
}
