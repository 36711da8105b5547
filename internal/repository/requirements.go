package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/grupo-solmar/staff-scheduler/backend/internal/domain"
)

// La matriz se persiste en el formato comprimido (objeto indexado) junto
// con la cantidad de franjas, y se expande al leer. El requerimiento
// global por defecto es la fila con store_id NULL.

func (r *Repository) UpsertRequirement(req *domain.PositionRequirement) error {
	positions, err := json.Marshal(req.Positions)
	if err != nil {
		return err
	}

	slots := 0
	if len(req.Matrix) > 0 {
		slots = len(req.Matrix[0])
	}
	matrix, err := json.Marshal(domain.CompressMatrix(req.Matrix))
	if err != nil {
		return err
	}

	query := `
		INSERT INTO requirements (store_id, day, positions, matrix, slots)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (COALESCE(store_id, 0), day) DO UPDATE
		SET
			positions = EXCLUDED.positions,
			matrix = EXCLUDED.matrix,
			slots = EXCLUDED.slots,
			version = requirements.version + 1
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{req.StoreID, req.Day, positions, matrix, slots}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&req.ID, &req.CreatedAt, &req.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) getRequirement(ctx context.Context, storeID *int64, day string) (*domain.PositionRequirement, error) {
	query := `
		SELECT id, store_id, positions, matrix, slots, created_at, version
		FROM requirements
		WHERE day = $1 AND (store_id = $2 OR ($2::bigint IS NULL AND store_id IS NULL))
	`

	req := &domain.PositionRequirement{
		Day: day,
	}
	var positions, matrix []byte
	var slots int

	dst := []any{&req.ID, &req.StoreID, &positions, &matrix, &slots, &req.CreatedAt, &req.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, day, storeID).Scan(dst...); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(positions, &req.Positions); err != nil {
		return nil, err
	}

	compressed := make(map[string]map[string]int)
	if err := json.Unmarshal(matrix, &compressed); err != nil {
		return nil, err
	}
	req.Matrix = domain.ExpandMatrix(compressed, len(req.Positions), slots)

	return req, nil
}

// GetRequirement busca el requerimiento del local para un día y, si no
// existe, cae al requerimiento global por defecto.
func (r *Repository) GetRequirement(storeID *int64, day string) (*domain.PositionRequirement, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if storeID != nil {
		req, err := r.getRequirement(ctx, storeID, day)
		if err == nil {
			return req, nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
	}

	return r.getRequirement(ctx, nil, day)
}
