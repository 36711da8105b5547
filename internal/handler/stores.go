package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/grupo-solmar/staff-scheduler/backend/internal/domain"
)

func (h *Handler) CreateStore(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name    string `json:"name" validate:"required"`
		Address string `json:"address" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	store := &domain.Store{
		Name:    req.Name,
		Address: req.Address,
	}

	if err := h.repository.CreateStore(store); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "local creado", store)
}

func (h *Handler) GetAllStores(w http.ResponseWriter, r *http.Request) {
	stores, err := h.repository.GetAllStores()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "locales obtenidos", stores)
}

func (h *Handler) GetStore(w http.ResponseWriter, r *http.Request) {
	store := r.Context().Value(StoreCtx).(*domain.Store)
	h.successResponse(w, r, "local obtenido", store)
}

func (h *Handler) UpdateStore(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name    *string `json:"name"`
		Address *string `json:"address"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	store := r.Context().Value(StoreCtx).(*domain.Store)

	if req.Name != nil {
		store.Name = *req.Name
	}
	if req.Address != nil {
		store.Address = *req.Address
	}

	if err := h.repository.UpdateStore(store); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "no se pudo actualizar el local, intentá de nuevo")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "local actualizado", store)
}

func (h *Handler) DeleteStore(w http.ResponseWriter, r *http.Request) {
	store := r.Context().Value(StoreCtx).(*domain.Store)

	if err := h.repository.DeleteStore(store.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "local eliminado", nil)
}
