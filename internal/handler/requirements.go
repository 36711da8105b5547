package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/grupo-solmar/staff-scheduler/backend/internal/domain"
)

// parseStoreQuery interpreta el parámetro opcional ?store=. Ausente o
// "null" significa el requerimiento global por defecto.
func parseStoreQuery(r *http.Request) (*int64, error) {
	raw := r.URL.Query().Get("store")
	if raw == "" || raw == "null" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, errors.New("el parámetro store debe ser un id de local o \"null\"")
	}
	return &id, nil
}

func (h *Handler) GetRequirement(w http.ResponseWriter, r *http.Request) {
	day := r.Context().Value(WeekdayCtx).(string)

	storeID, err := parseStoreQuery(r)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	req, err := h.repository.GetRequirement(storeID, day)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "no hay requerimiento de puestos para ese día")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "requerimiento obtenido", req)
}

func (h *Handler) UpsertRequirement(w http.ResponseWriter, r *http.Request) {
	day := r.Context().Value(WeekdayCtx).(string)

	var req struct {
		StoreID   *int64   `json:"storeID"`
		Positions []string `json:"positions" validate:"required,min=1"`
		Matrix    [][]int  `json:"matrix" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	requirement := &domain.PositionRequirement{
		StoreID:   req.StoreID,
		Day:       day,
		Positions: req.Positions,
		Matrix:    req.Matrix,
	}

	if err := requirement.Validate(); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.repository.UpsertRequirement(requirement); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "requerimiento guardado", requirement)
}
