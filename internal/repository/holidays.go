package repository

import (
	"context"
	"time"

	"github.com/grupo-solmar/staff-scheduler/backend/internal/domain"
)

func (r *Repository) CreateHoliday(holiday *domain.Holiday) error {
	query := `
		INSERT INTO holidays (date, name)
		VALUES ($1, $2)
		ON CONFLICT (date) DO UPDATE SET name = EXCLUDED.name
		RETURNING id, created_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if err := r.dbpool.QueryRowContext(ctx, query, holiday.Date, holiday.Name).Scan(&holiday.ID, &holiday.CreatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetHolidaysByYear(year int) ([]*domain.Holiday, error) {
	query := `
		SELECT id, date, name, created_at
		FROM holidays
		WHERE EXTRACT(YEAR FROM date) = $1
		ORDER BY date
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	holidays := make([]*domain.Holiday, 0)
	for rows.Next() {
		holiday := &domain.Holiday{}
		if err := rows.Scan(&holiday.ID, &holiday.Date, &holiday.Name, &holiday.CreatedAt); err != nil {
			return nil, err
		}
		holidays = append(holidays, holiday)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return holidays, nil
}
