package handler

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/grupo-solmar/staff-scheduler/backend/internal/domain"
	"github.com/grupo-solmar/staff-scheduler/backend/internal/scheduler"
	"github.com/grupo-solmar/staff-scheduler/backend/internal/timegrid"
	"github.com/grupo-solmar/staff-scheduler/backend/internal/utils"
)

// normalizeWeekKey acepta cualquier clave "fecha_fecha" cuya primera fecha
// parsee, y la reescribe como la clave canónica de la semana que contiene.
// Así /schedules/2025-03-12_... y /schedules/2025-03-10_2025-03-16 terminan
// en la misma partición.
func normalizeWeekKey(key string) (string, error) {
	parts := strings.Split(key, "_")
	if len(parts) != 2 {
		return "", fmt.Errorf("clave de semana inválida: %q", key)
	}

	first, err := time.Parse("2006-01-02", parts[0])
	if err != nil {
		return "", fmt.Errorf("clave de semana inválida: %q", key)
	}
	if _, err := time.Parse("2006-01-02", parts[1]); err != nil {
		return "", fmt.Errorf("clave de semana inválida: %q", key)
	}

	return timegrid.WeekKey(first), nil
}

// employeeWeekView es lo que ve el operador por empleado en la vista
// semanal: la semana cargada y, por día con turno, el conflicto detectado.
type employeeWeekView struct {
	Employee  *domain.Employee              `json:"employee"`
	Days      domain.WeekSchedule           `json:"days"`
	Conflicts map[string]scheduler.Conflict `json:"conflicts"`
	Minutes   int                           `json:"minutes"`
}

func newEmployeeWeekView(emp *domain.Employee, week domain.WeekSchedule) employeeWeekView {
	conflicts := make(map[string]scheduler.Conflict)
	for _, day := range domain.Weekdays {
		d, exists := week[day]
		if !exists {
			continue
		}
		if conflict := scheduler.DetectConflict(emp, day, d); conflict != scheduler.ConflictNone {
			conflicts[day] = conflict
		}
	}

	return employeeWeekView{
		Employee:  emp,
		Days:      week,
		Conflicts: conflicts,
		Minutes:   week.WeeklyMinutes(emp.Modality),
	}
}

// GetWeekSchedules devuelve la semana de todo el plantel (con ?store=
// restringe al local) junto con los conflictos consultivos de cada turno
// y los minutos semanales computados.
func (h *Handler) GetWeekSchedules(w http.ResponseWriter, r *http.Request) {
	weekKey := r.Context().Value(WeekKeyCtx).(string)

	var (
		employees []*domain.Employee
		err       error
	)
	if r.URL.Query().Has("store") {
		storeID, parseErr := parseStoreQuery(r)
		if parseErr != nil {
			h.badRequest(w, r, parseErr)
			return
		}
		employees, err = h.repository.GetEmployeesByStore(storeID)
	} else {
		employees, err = h.repository.GetAllEmployees()
	}
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	ids := make([]string, 0, len(employees))
	for _, emp := range employees {
		ids = append(ids, emp.ID)
	}

	weeks, err := h.repository.GetWeeksForEmployees(ids, weekKey)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	views := make([]employeeWeekView, 0, len(employees))
	for _, emp := range employees {
		views = append(views, newEmployeeWeekView(emp, weeks[emp.ID]))
	}

	h.successResponse(w, r, "horarios obtenidos", views)
}

// GetEmployeeWeek devuelve la semana de un solo empleado, para la vista
// individual. Un empleado sin filas guardadas devuelve la semana vacía.
func (h *Handler) GetEmployeeWeek(w http.ResponseWriter, r *http.Request) {
	weekKey := r.Context().Value(WeekKeyCtx).(string)
	emp := r.Context().Value(EmployeeCtx).(*domain.Employee)

	week, err := h.repository.GetWeek(emp.ID, weekKey)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "horario obtenido", newEmployeeWeekView(emp, week))
}

// SaveWeekSchedules guarda el lote completo de semanas editadas. Cada
// semana se valida contra el perfil del empleado antes de tocar nada; si
// una sola falla, no se guarda ninguna.
func (h *Handler) SaveWeekSchedules(w http.ResponseWriter, r *http.Request) {
	weekKey := r.Context().Value(WeekKeyCtx).(string)

	var req struct {
		Weeks []struct {
			EmployeeID string              `json:"employeeID" validate:"required"`
			Days       domain.WeekSchedule `json:"days" validate:"required"`
		} `json:"weeks" validate:"required,min=1,dive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	weeks := make([]*domain.EmployeeWeek, 0, len(req.Weeks))
	for _, weekReq := range req.Weeks {
		emp, err := h.repository.GetEmployeeByID(weekReq.EmployeeID)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.errorResponse(w, r, "el empleado "+weekReq.EmployeeID+" no existe")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		for day := range weekReq.Days {
			if !slices.Contains(domain.Weekdays, day) {
				h.badRequest(w, r, errors.New("día de la semana inválido: "+day))
				return
			}
		}

		if err := utils.ValidateWeekWithEmployee(weekReq.Days, emp); err != nil {
			h.errorResponse(w, r, emp.FullName()+": "+err.Error())
			return
		}

		weeks = append(weeks, &domain.EmployeeWeek{
			EmployeeID: weekReq.EmployeeID,
			WeekKey:    weekKey,
			Days:       weekReq.Days,
		})
	}

	if err := h.repository.SaveWeeks(weeks); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "horarios guardados", nil)
}

// GenerateDay corre el generador para un día de la semana y devuelve el
// borrador con sus advertencias. NO persiste nada: el operador revisa el
// borrador y lo guarda (o no) con el PUT de la semana.
func (h *Handler) GenerateDay(w http.ResponseWriter, r *http.Request) {
	weekKey := r.Context().Value(WeekKeyCtx).(string)

	var req struct {
		Day     string `json:"day" validate:"required"`
		StoreID *int64 `json:"storeID"`
		Seed    *int64 `json:"seed"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	day := strings.ToLower(req.Day)
	dayIndex := slices.Index(domain.Weekdays, day)
	if dayIndex < 0 {
		h.badRequest(w, r, errors.New("día de la semana inválido"))
		return
	}

	// La fecha concreta del día dentro de la semana decide quién integra
	// el plantel activo (cese y período de prueba se cortan por fecha).
	monday, err := time.Parse("2006-01-02", strings.SplitN(weekKey, "_", 2)[0])
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	date := monday.AddDate(0, 0, dayIndex)

	employees, err := h.repository.GetEmployeesByStore(req.StoreID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	roster := domain.ActiveRoster(employees, date)

	requirement, err := h.repository.GetRequirement(req.StoreID, day)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "no hay requerimiento de puestos para ese día")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	ids := make([]string, 0, len(roster))
	for _, emp := range roster {
		ids = append(ids, emp.ID)
	}
	weeks, err := h.repository.GetWeeksForEmployees(ids, weekKey)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	seed := time.Now().UnixNano()
	if req.Seed != nil {
		seed = *req.Seed
	}

	generator, err := scheduler.New(scheduler.DefaultParameters(seed), &scheduler.Session{
		Day:         day,
		Requirement: requirement,
		Roster:      roster,
		Weeks:       weeks,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrBadRequirement):
			h.errorResponse(w, r, "no se puede generar: revisá los requerimientos de puestos")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	result := generator.Generate()

	h.successResponse(w, r, "borrador generado", result)
}
