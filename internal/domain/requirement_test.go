package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequirementValidate(t *testing.T) {
	valid := &PositionRequirement{
		Positions: []string{"Caja", "Cocina"},
		Matrix:    [][]int{{1, 2, 0}, {0, 1, 1}},
	}
	assert.NoError(t, valid.Validate())

	// Menos filas que puestos
	mismatched := &PositionRequirement{
		Positions: []string{"Caja", "Cocina"},
		Matrix:    [][]int{{1, 2, 0}},
	}
	assert.ErrorIs(t, mismatched.Validate(), ErrBadRequirement)

	// Filas de distinto largo
	ragged := &PositionRequirement{
		Positions: []string{"Caja", "Cocina"},
		Matrix:    [][]int{{1, 2, 0}, {0, 1}},
	}
	assert.ErrorIs(t, ragged.Validate(), ErrBadRequirement)

	// Valores negativos
	negative := &PositionRequirement{
		Positions: []string{"Caja"},
		Matrix:    [][]int{{1, -1, 0}},
	}
	assert.ErrorIs(t, negative.Validate(), ErrBadRequirement)
}

func TestCapacityAt(t *testing.T) {
	req := &PositionRequirement{
		Positions: []string{"Caja"},
		Matrix:    [][]int{{1, 2, 3}},
	}

	assert.Equal(t, 2, req.CapacityAt(0, 1))
	// Fuera de rango siempre vale 0, nunca entra en pánico
	assert.Equal(t, 0, req.CapacityAt(0, 99))
	assert.Equal(t, 0, req.CapacityAt(0, -1))
	assert.Equal(t, 0, req.CapacityAt(5, 0))
}

func TestCompressExpandMatrix(t *testing.T) {
	matrix := [][]int{
		{0, 1, 2},
		{3, 0, 0},
	}

	compressed := CompressMatrix(matrix)

	// No es esparsificación: los ceros se conservan como celdas
	require.Contains(t, compressed, "0")
	assert.Equal(t, 0, compressed["0"]["0"])
	assert.Equal(t, 2, compressed["0"]["2"])
	assert.Equal(t, 3, compressed["1"]["0"])

	expanded := ExpandMatrix(compressed, 2, 3)
	assert.Equal(t, matrix, expanded)
}

func TestExpandMatrixMissingCells(t *testing.T) {
	// Un documento recortado expande igual: las celdas ausentes valen 0
	compressed := map[string]map[string]int{
		"1": {"2": 7},
	}

	expanded := ExpandMatrix(compressed, 2, 3)
	assert.Equal(t, [][]int{{0, 0, 0}, {0, 0, 7}}, expanded)
}

func TestExpandMatrixIgnoresOutOfRange(t *testing.T) {
	compressed := map[string]map[string]int{
		"0":    {"0": 1, "9": 5, "x": 2},
		"7":    {"0": 9},
		"rara": {"0": 9},
	}

	expanded := ExpandMatrix(compressed, 1, 2)
	assert.Equal(t, [][]int{{1, 0}}, expanded)
}
