// Package seed carga datos de demostración: matrices de dotación para
// toda la semana y el calendario de feriados. Los datos aleatorios
// (usuarios, empleados) los genera el paquete utils; acá va lo fijo.
package seed

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/grupo-solmar/staff-scheduler/backend/internal/domain"
	"github.com/grupo-solmar/staff-scheduler/backend/internal/repository"
	"github.com/grupo-solmar/staff-scheduler/backend/internal/timegrid"
	"github.com/grupo-solmar/staff-scheduler/backend/internal/utils"
)

// demandProfile define, por puesto, los picos de demanda de un día en
// horas de reloj. Entre picos la dotación baja a la base.
type demandProfile struct {
	base  int
	peaks []peak
}

type peak struct {
	start string // "HH:MM"
	end   string
	extra int
}

// weekdayProfiles arma los perfiles por puesto de un día hábil o de fin
// de semana. El fin de semana tiene más salón y menos mostrador.
func weekdayProfiles(weekend bool) map[string]demandProfile {
	mediodia := peak{start: "12:00", end: "15:00", extra: 2}
	noche := peak{start: "20:00", end: "23:30", extra: 2}

	profiles := map[string]demandProfile{
		"Caja":      {base: 1, peaks: []peak{mediodia, noche}},
		"Salón":     {base: 1, peaks: []peak{mediodia, noche}},
		"Cocina":    {base: 2, peaks: []peak{mediodia, noche}},
		"Mostrador": {base: 1},
		"Delivery":  {base: 0, peaks: []peak{noche}},
	}

	if weekend {
		profiles["Salón"] = demandProfile{base: 2, peaks: []peak{mediodia, {start: "20:00", end: "00:30", extra: 3}}}
		profiles["Mostrador"] = demandProfile{base: 0}
	}

	return profiles
}

func buildMatrix(profiles map[string]demandProfile) ([]string, [][]int, error) {
	positions := utils.StandardPositions
	matrix := make([][]int, len(positions))

	for i, position := range positions {
		row := make([]int, timegrid.SlotsPerDay)
		profile := profiles[position]
		for s := range row {
			row[s] = profile.base
		}

		for _, p := range profile.peaks {
			startSlot, err := timegrid.TimeToSlot(p.start)
			if err != nil {
				return nil, nil, err
			}
			endSlot, err := timegrid.TimeToSlot(p.end)
			if err != nil {
				return nil, nil, err
			}

			// Los picos que terminan de madrugada envuelven al final de
			// la grilla
			if endSlot <= startSlot {
				endSlot += timegrid.DayMinutes / timegrid.SlotMinutes
			}

			for s := startSlot; s < endSlot && s < timegrid.SlotsPerDay; s++ {
				row[s] += p.extra
			}
		}

		matrix[i] = row
	}

	return positions, matrix, nil
}

// SeedRequirements inserta el requerimiento global por defecto de cada
// día de la semana.
func SeedRequirements(repo *repository.Repository) {
	cnt := 0
	for _, day := range domain.Weekdays {
		weekend := day == "sabado" || day == "domingo"
		positions, matrix, err := buildMatrix(weekdayProfiles(weekend))
		if err != nil {
			slog.Error("no se pudo armar la matriz de demanda", slog.String("day", day), slog.String("error", err.Error()))
			continue
		}

		req := &domain.PositionRequirement{
			StoreID:   nil,
			Day:       day,
			Positions: positions,
			Matrix:    matrix,
		}
		if err := repo.UpsertRequirement(req); err != nil {
			slog.Error("no se pudo insertar el requerimiento", slog.String("day", day), slog.String("error", err.Error()))
			continue
		}
		cnt++
	}

	slog.Info("requerimientos insertados", slog.Int("count", cnt))
}

// feriados2025 es el calendario argentino de feriados inamovibles y
// trasladables del año 2025.
var feriados2025 = map[string]string{
	"2025-01-01": "Año Nuevo",
	"2025-03-03": "Carnaval",
	"2025-03-04": "Carnaval",
	"2025-03-24": "Día Nacional de la Memoria por la Verdad y la Justicia",
	"2025-04-02": "Día del Veterano y de los Caídos en la Guerra de Malvinas",
	"2025-04-18": "Viernes Santo",
	"2025-05-01": "Día del Trabajador",
	"2025-05-25": "Día de la Revolución de Mayo",
	"2025-06-16": "Paso a la Inmortalidad del General Martín Miguel de Güemes",
	"2025-06-20": "Paso a la Inmortalidad del General Manuel Belgrano",
	"2025-07-09": "Día de la Independencia",
	"2025-08-17": "Paso a la Inmortalidad del General José de San Martín",
	"2025-10-12": "Día del Respeto a la Diversidad Cultural",
	"2025-11-24": "Día de la Soberanía Nacional",
	"2025-12-08": "Inmaculada Concepción de María",
	"2025-12-25": "Navidad",
}

// SeedHolidays inserta el calendario de feriados del año pedido. Por
// ahora solo hay datos para 2025.
func SeedHolidays(repo *repository.Repository, year int) error {
	if year != 2025 {
		return fmt.Errorf("no hay calendario de feriados cargado para %d", year)
	}

	cnt := 0
	for dateStr, name := range feriados2025 {
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return err
		}

		holiday := &domain.Holiday{
			Date: date,
			Name: name,
		}
		if err := repo.CreateHoliday(holiday); err != nil {
			slog.Error("no se pudo insertar el feriado", slog.String("date", dateStr), slog.String("error", err.Error()))
			continue
		}
		cnt++
	}

	slog.Info("feriados insertados", slog.Int("count", cnt), slog.Int("year", year))
	return nil
}
