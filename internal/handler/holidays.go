package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"
)

// GetHolidays lista el calendario de feriados de un año. Sin ?year= usa
// el año en curso.
func (h *Handler) GetHolidays(w http.ResponseWriter, r *http.Request) {
	year := time.Now().Year()
	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.badRequest(w, r, errors.New("el parámetro year debe ser un año"))
			return
		}
		year = parsed
	}

	holidays, err := h.repository.GetHolidaysByYear(year)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "feriados obtenidos", holidays)
}
