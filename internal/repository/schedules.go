package repository

import (
	"context"
	"time"

	"github.com/grupo-solmar/staff-scheduler/backend/internal/domain"
)

// Cada semana se persiste como una fila por (empleado, semana, día). El
// guardado es el batch explícito de toda la semana; el borrador del
// generador nunca pasa por acá hasta que el operador guarda.

func (r *Repository) GetWeek(employeeID string, weekKey string) (domain.WeekSchedule, error) {
	query := `
		SELECT day, start_time, end_time, position, off, feriado, extra_hours
		FROM schedules
		WHERE employee_id = $1 AND week_key = $2
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, employeeID, weekKey)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	week := make(domain.WeekSchedule)
	for rows.Next() {
		var day string
		var d domain.DayAssignment
		dst := []any{&day, &d.Start, &d.End, &d.Position, &d.Off, &d.Feriado, &d.ExtraHours}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		week[day] = d
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return week, nil
}

// GetWeeksForEmployees trae de una sola consulta las semanas de todo el
// plantel para una clave de semana, indexadas por empleado. Los empleados
// sin filas quedan con la semana vacía.
func (r *Repository) GetWeeksForEmployees(employeeIDs []string, weekKey string) (map[string]domain.WeekSchedule, error) {
	query := `
		SELECT employee_id, day, start_time, end_time, position, off, feriado, extra_hours
		FROM schedules
		WHERE week_key = $1 AND employee_id = ANY($2)
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	weeks := make(map[string]domain.WeekSchedule, len(employeeIDs))
	for _, id := range employeeIDs {
		weeks[id] = make(domain.WeekSchedule)
	}

	rows, err := r.dbpool.QueryContext(ctx, query, weekKey, employeeIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var employeeID, day string
		var d domain.DayAssignment
		dst := []any{&employeeID, &day, &d.Start, &d.End, &d.Position, &d.Off, &d.Feriado, &d.ExtraHours}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		if _, exists := weeks[employeeID]; !exists {
			weeks[employeeID] = make(domain.WeekSchedule)
		}
		weeks[employeeID][day] = d
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return weeks, nil
}

// SaveWeeks guarda en una sola transacción el lote completo de semanas de
// empleados: primero borra las filas existentes de cada (empleado, semana)
// y después inserta el estado nuevo, así los días vaciados desaparecen.
func (r *Repository) SaveWeeks(weeks []*domain.EmployeeWeek) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	deleteQuery := `
		DELETE FROM schedules WHERE employee_id = $1 AND week_key = $2
	`
	insertQuery := `
		INSERT INTO schedules (employee_id, week_key, day, start_time, end_time, position, off, feriado, extra_hours)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	for _, week := range weeks {
		if _, err := tx.ExecContext(ctx, deleteQuery, week.EmployeeID, week.WeekKey); err != nil {
			return err
		}

		for _, day := range domain.Weekdays {
			d, exists := week.Days[day]
			if !exists || d.Empty() {
				continue
			}

			args := []any{week.EmployeeID, week.WeekKey, day, d.Start, d.End, d.Position, d.Off, d.Feriado, d.ExtraHours}
			if _, err := tx.ExecContext(ctx, insertQuery, args...); err != nil {
				return err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}
