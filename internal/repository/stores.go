package repository

import (
	"context"
	"time"

	"github.com/grupo-solmar/staff-scheduler/backend/internal/domain"
)

func (r *Repository) CreateStore(store *domain.Store) error {
	query := `
		INSERT INTO stores (name, address)
		VALUES ($1, $2)
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if err := r.dbpool.QueryRowContext(ctx, query, store.Name, store.Address).Scan(&store.ID, &store.CreatedAt, &store.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetStoreByID(id int64) (*domain.Store, error) {
	query := `
		SELECT name, address, created_at, version
		FROM stores WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	store := &domain.Store{
		ID: id,
	}

	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(&store.Name, &store.Address, &store.CreatedAt, &store.Version); err != nil {
		return nil, err
	}

	return store, nil
}

func (r *Repository) GetAllStores() ([]*domain.Store, error) {
	query := `
		SELECT id, name, address, created_at, version FROM stores ORDER BY id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stores := make([]*domain.Store, 0)
	for rows.Next() {
		store := &domain.Store{}
		if err := rows.Scan(&store.ID, &store.Name, &store.Address, &store.CreatedAt, &store.Version); err != nil {
			return nil, err
		}
		stores = append(stores, store)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return stores, nil
}

func (r *Repository) UpdateStore(store *domain.Store) error {
	query := `
		UPDATE stores
		SET
			name = $1,
			address = $2,
			version = version + 1
		WHERE id = $3 AND version = $4
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{store.Name, store.Address, store.ID, store.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&store.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteStore(id int64) error {
	query := `
		DELETE FROM stores WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
