package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/grupo-solmar/staff-scheduler/backend/internal/domain"
)

// Las calificaciones y el horario de estudio se guardan como JSONB: son
// documentos anidados que el dominio consume enteros, no hay consultas
// por celda.

func (r *Repository) CreateEmployee(emp *domain.Employee) error {
	skills, err := json.Marshal(emp.Skills)
	if err != nil {
		return err
	}
	studySchedule, err := json.Marshal(emp.StudySchedule)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO employees (id, name, last_name, store_id, modality, skills, cessation_date, is_trainee, trainee_until, study_schedule)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{emp.ID, emp.Name, emp.LastName, emp.StoreID, emp.Modality, skills, emp.CessationDate, emp.IsTrainee, emp.TraineeUntil, studySchedule}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&emp.CreatedAt, &emp.Version); err != nil {
		return err
	}

	return nil
}

func scanEmployee(scan func(dst ...any) error) (*domain.Employee, error) {
	emp := &domain.Employee{}
	var skills, studySchedule []byte

	dst := []any{&emp.ID, &emp.Name, &emp.LastName, &emp.StoreID, &emp.Modality, &skills, &emp.CessationDate, &emp.IsTrainee, &emp.TraineeUntil, &studySchedule, &emp.CreatedAt, &emp.Version}
	if err := scan(dst...); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(skills, &emp.Skills); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(studySchedule, &emp.StudySchedule); err != nil {
		return nil, err
	}

	return emp, nil
}

func (r *Repository) GetEmployeeByID(id string) (*domain.Employee, error) {
	query := `
		SELECT id, name, last_name, store_id, modality, skills, cessation_date, is_trainee, trainee_until, study_schedule, created_at, version
		FROM employees WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	return scanEmployee(r.dbpool.QueryRowContext(ctx, query, id).Scan)
}

// GetEmployeesByStore devuelve todos los empleados del local, incluidos
// los que ya no integran el plantel activo; el filtrado por fecha de cese
// o período de prueba vencido es del dominio (domain.ActiveRoster).
func (r *Repository) GetEmployeesByStore(storeID *int64) ([]*domain.Employee, error) {
	query := `
		SELECT id, name, last_name, store_id, modality, skills, cessation_date, is_trainee, trainee_until, study_schedule, created_at, version
		FROM employees
		WHERE store_id = $1 OR ($1::bigint IS NULL AND store_id IS NULL)
		ORDER BY last_name, name
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]*domain.Employee, 0)
	for rows.Next() {
		emp, err := scanEmployee(rows.Scan)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

func (r *Repository) GetAllEmployees() ([]*domain.Employee, error) {
	query := `
		SELECT id, name, last_name, store_id, modality, skills, cessation_date, is_trainee, trainee_until, study_schedule, created_at, version
		FROM employees
		ORDER BY last_name, name
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]*domain.Employee, 0)
	for rows.Next() {
		emp, err := scanEmployee(rows.Scan)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

func (r *Repository) UpdateEmployee(emp *domain.Employee) error {
	skills, err := json.Marshal(emp.Skills)
	if err != nil {
		return err
	}
	studySchedule, err := json.Marshal(emp.StudySchedule)
	if err != nil {
		return err
	}

	query := `
		UPDATE employees
		SET
			name = $1,
			last_name = $2,
			store_id = $3,
			modality = $4,
			skills = $5,
			cessation_date = $6,
			is_trainee = $7,
			trainee_until = $8,
			study_schedule = $9,
			version = version + 1
		WHERE id = $10 AND version = $11
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{emp.Name, emp.LastName, emp.StoreID, emp.Modality, skills, emp.CessationDate, emp.IsTrainee, emp.TraineeUntil, studySchedule, emp.ID, emp.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&emp.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteEmployee(id string) error {
	query := `
		DELETE FROM employees WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
