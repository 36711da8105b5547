package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grupo-solmar/staff-scheduler/backend/internal/config"
	"github.com/grupo-solmar/staff-scheduler/backend/internal/domain"
	"github.com/grupo-solmar/staff-scheduler/backend/internal/scheduler"
)

func TestNormalizeWeekKey(t *testing.T) {
	// Clave canónica: queda igual
	key, err := normalizeWeekKey("2025-03-10_2025-03-16")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-10_2025-03-16", key)

	// Cualquier fecha de la semana normaliza a la misma clave
	key, err = normalizeWeekKey("2025-03-12_2025-03-18")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-10_2025-03-16", key)

	for _, invalid := range []string{"", "2025-03-10", "2025-03-10_mal", "mal_2025-03-16", "2025-03-10_2025-03-16_extra"} {
		_, err := normalizeWeekKey(invalid)
		assert.Error(t, err, "debería rechazar %q", invalid)
	}
}

func TestParseStoreQuery(t *testing.T) {
	r := httptest.NewRequest("GET", "/requirements/lunes?store=7", nil)
	storeID, err := parseStoreQuery(r)
	require.NoError(t, err)
	require.NotNil(t, storeID)
	assert.Equal(t, int64(7), *storeID)

	r = httptest.NewRequest("GET", "/requirements/lunes?store=null", nil)
	storeID, err = parseStoreQuery(r)
	require.NoError(t, err)
	assert.Nil(t, storeID)

	r = httptest.NewRequest("GET", "/requirements/lunes", nil)
	storeID, err = parseStoreQuery(r)
	require.NoError(t, err)
	assert.Nil(t, storeID)

	r = httptest.NewRequest("GET", "/requirements/lunes?store=abc", nil)
	_, err = parseStoreQuery(r)
	assert.Error(t, err)
}

func TestNewEmployeeWeekView(t *testing.T) {
	emp := &domain.Employee{
		ID:       "emp-1",
		Name:     "Franco",
		LastName: "Medina",
		Modality: domain.ModalityPartTime,
		Skills:   []string{"Caja"},
		StudySchedule: domain.StudySchedule{
			"lunes": {Free: true},
		},
	}
	week := domain.WeekSchedule{
		"lunes":  {Start: "09:00", End: "13:00", Position: "Caja"},
		"martes": {Start: "09:00", End: "13:00", Position: "Caja"},
	}

	view := newEmployeeWeekView(emp, week)

	assert.Equal(t, emp, view.Employee)
	assert.Equal(t, week, view.Days)
	assert.Equal(t, 480, view.Minutes)

	// Solo los días con conflicto aparecen en el mapa
	require.Len(t, view.Conflicts, 1)
	assert.Equal(t, scheduler.ConflictEstudia, view.Conflicts["lunes"])
}

// Toda ruta registrada pasa por la cadena de middlewares (la sesión
// ausente responde el sobre JSON con estado 200); un camino inexistente
// cae al 404 de chi. Eso alcanza para fijar qué rutas existen sin tocar
// la base de datos.
func TestRegisterRoutesEmployeeWeek(t *testing.T) {
	h, err := NewHandler(&config.Config{}, nil, nil, nil)
	require.NoError(t, err)
	h.RegisterRoutes()

	r := httptest.NewRequest("GET", "/schedules/2025-03-10_2025-03-16/employees/emp-1", nil)
	w := httptest.NewRecorder()
	h.Mux.ServeHTTP(w, r)
	assert.Equal(t, http.StatusOK, w.Code)

	r = httptest.NewRequest("GET", "/schedules/2025-03-10_2025-03-16/no-existe", nil)
	w = httptest.NewRecorder()
	h.Mux.ServeHTTP(w, r)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
