package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/grupo-solmar/staff-scheduler/backend/internal/domain"
	"github.com/grupo-solmar/staff-scheduler/backend/internal/timegrid"
)

func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name          string               `json:"name" validate:"required"`
		LastName      string               `json:"lastName" validate:"required"`
		StoreID       *int64               `json:"storeID"`
		Modality      string               `json:"modality" validate:"required,oneof='tiempo completo' 'medio tiempo'"`
		Skills        []string             `json:"skills" validate:"required,min=1"`
		CessationDate *time.Time           `json:"cessationDate"`
		IsTrainee     bool                 `json:"isTrainee"`
		TraineeUntil  *time.Time           `json:"traineeUntil"`
		StudySchedule domain.StudySchedule `json:"studySchedule"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := validateStudySchedule(req.StudySchedule); err != nil {
		h.badRequest(w, r, err)
		return
	}

	emp := &domain.Employee{
		ID:            uuid.NewString(),
		Name:          req.Name,
		LastName:      req.LastName,
		StoreID:       req.StoreID,
		Modality:      domain.Modality(req.Modality),
		Skills:        req.Skills,
		CessationDate: req.CessationDate,
		IsTrainee:     req.IsTrainee,
		TraineeUntil:  req.TraineeUntil,
		StudySchedule: req.StudySchedule,
	}
	if emp.StudySchedule == nil {
		emp.StudySchedule = domain.StudySchedule{}
	}

	if err := h.repository.CreateEmployee(emp); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "empleado creado", emp)
}

// GetEmployees lista el plantel. Con ?store= filtra por local (el valor
// "null" pide los empleados sin local asignado); sin el parámetro lista
// todos. Con ?active=true devuelve solo el plantel activo a hoy (excluye
// cesados y períodos de prueba vencidos).
func (h *Handler) GetEmployees(w http.ResponseWriter, r *http.Request) {
	var (
		employees []*domain.Employee
		err       error
	)

	if raw := r.URL.Query().Get("store"); raw != "" {
		var storeID *int64
		if raw != "null" {
			id, parseErr := strconv.ParseInt(raw, 10, 64)
			if parseErr != nil {
				h.badRequest(w, r, errors.New("el parámetro store debe ser un id de local o \"null\""))
				return
			}
			storeID = &id
		}
		employees, err = h.repository.GetEmployeesByStore(storeID)
	} else {
		employees, err = h.repository.GetAllEmployees()
	}

	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if r.URL.Query().Get("active") == "true" {
		employees = domain.ActiveRoster(employees, time.Now())
	}

	h.successResponse(w, r, "empleados obtenidos", employees)
}

func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	emp := r.Context().Value(EmployeeCtx).(*domain.Employee)
	h.successResponse(w, r, "empleado obtenido", emp)
}

func (h *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name          *string    `json:"name"`
		LastName      *string    `json:"lastName"`
		StoreID       *int64     `json:"storeID"`
		ClearStore    bool       `json:"clearStore"`
		Modality      *string    `json:"modality" validate:"omitempty,oneof='tiempo completo' 'medio tiempo'"`
		Skills        []string   `json:"skills"`
		CessationDate *time.Time `json:"cessationDate"`
		IsTrainee     *bool      `json:"isTrainee"`
		TraineeUntil  *time.Time `json:"traineeUntil"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	emp := r.Context().Value(EmployeeCtx).(*domain.Employee)

	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.LastName != nil {
		emp.LastName = *req.LastName
	}
	if req.ClearStore {
		emp.StoreID = nil
	} else if req.StoreID != nil {
		emp.StoreID = req.StoreID
	}
	if req.Modality != nil {
		emp.Modality = domain.Modality(*req.Modality)
	}
	if req.Skills != nil {
		emp.Skills = req.Skills
	}
	if req.CessationDate != nil {
		emp.CessationDate = req.CessationDate
	}
	if req.IsTrainee != nil {
		emp.IsTrainee = *req.IsTrainee
	}
	if req.TraineeUntil != nil {
		emp.TraineeUntil = req.TraineeUntil
	}

	if err := h.repository.UpdateEmployee(emp); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "no se pudo actualizar el empleado, intentá de nuevo")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "empleado actualizado", emp)
}

func (h *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	emp := r.Context().Value(EmployeeCtx).(*domain.Employee)

	if err := h.repository.DeleteEmployee(emp.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "empleado eliminado", nil)
}

// UpdateEmployeeStudySchedule reemplaza el horario de estudio completo.
// El PUT es de documento entero: mandar un mapa vacío borra todos los
// bloques.
func (h *Handler) UpdateEmployeeStudySchedule(w http.ResponseWriter, r *http.Request) {
	var req struct {
		StudySchedule domain.StudySchedule `json:"studySchedule" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := validateStudySchedule(req.StudySchedule); err != nil {
		h.badRequest(w, r, err)
		return
	}

	emp := r.Context().Value(EmployeeCtx).(*domain.Employee)
	emp.StudySchedule = req.StudySchedule

	if err := h.repository.UpdateEmployee(emp); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "no se pudo actualizar el horario de estudio, intentá de nuevo")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "horario de estudio actualizado", emp)
}

func validateStudySchedule(s domain.StudySchedule) error {
	for day, studyDay := range s {
		if !slices.Contains(domain.Weekdays, day) {
			return errors.New("día de la semana inválido en el horario de estudio: " + day)
		}
		for _, block := range studyDay.Blocks {
			if _, err := timegrid.ParseClock(block.Start); err != nil {
				return errors.New("hora inválida en el horario de estudio: " + block.Start)
			}
			if _, err := timegrid.ParseClock(block.End); err != nil {
				return errors.New("hora inválida en el horario de estudio: " + block.End)
			}
		}
	}
	return nil
}
