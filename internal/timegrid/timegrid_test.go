package timegrid

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	minutes, err := ParseClock("09:30")
	require.NoError(t, err)
	assert.Equal(t, 570, minutes)

	minutes, err = ParseClock("00:00")
	require.NoError(t, err)
	assert.Equal(t, 0, minutes)

	for _, invalid := range []string{"9h30", "24:00", "12:60", "12", "", "ab:cd"} {
		_, err := ParseClock(invalid)
		assert.Error(t, err, "debería rechazar %q", invalid)
	}
}

func TestTimeToSlot(t *testing.T) {
	slot, err := TimeToSlot("06:00")
	require.NoError(t, err)
	assert.Equal(t, 0, slot)

	slot, err = TimeToSlot("06:15")
	require.NoError(t, err)
	assert.Equal(t, 1, slot)

	slot, err = TimeToSlot("23:45")
	require.NoError(t, err)
	assert.Equal(t, 71, slot)

	// Antes del inicio de la grilla el índice es negativo; quien muestre
	// en pantalla pasa por ClampSlot
	slot, err = TimeToSlot("05:00")
	require.NoError(t, err)
	assert.Negative(t, slot)
	assert.Equal(t, 0, ClampSlot(slot))
}

func TestSlotToTimeRoundTrip(t *testing.T) {
	// Todo slot dentro del mismo día calendario vuelve a sí mismo
	for slot := 0; slot < 72; slot++ {
		back, err := TimeToSlot(SlotToTime(slot))
		require.NoError(t, err)
		assert.Equal(t, slot, back, "slot %d", slot)
	}

	// Los últimos slots envuelven a la madrugada del día siguiente
	assert.Equal(t, "00:00", SlotToTime(72))
	assert.Equal(t, "01:00", SlotToTime(76))
}

func TestClampSlot(t *testing.T) {
	assert.Equal(t, 0, ClampSlot(-5))
	assert.Equal(t, 40, ClampSlot(40))
	assert.Equal(t, SlotsPerDay-1, ClampSlot(SlotsPerDay+10))
}

func TestLinearize(t *testing.T) {
	// 02:00 pertenece al final del día laboral anterior
	assert.Equal(t, 120+DayMinutes, Linearize(120))
	// 06:00 en adelante queda igual
	assert.Equal(t, 360, Linearize(360))
	assert.Equal(t, 1320, Linearize(1320))
}

func TestDurationMinutes(t *testing.T) {
	d, err := DurationMinutes("09:00", "17:00")
	require.NoError(t, err)
	assert.Equal(t, 480, d)

	// Turno nocturno: el fin cae en el día siguiente
	d, err = DurationMinutes("22:00", "02:00")
	require.NoError(t, err)
	assert.Equal(t, 240, d)

	_, err = DurationMinutes("mal", "17:00")
	assert.Error(t, err)
}

func TestWeekKey(t *testing.T) {
	// 2025-03-12 es miércoles; la semana va del lunes 10 al domingo 16
	wednesday := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-03-10_2025-03-16", WeekKey(wednesday))

	// Cualquier fecha de la misma semana produce la misma clave
	for offset := -2; offset <= 4; offset++ {
		assert.Equal(t, WeekKey(wednesday), WeekKey(wednesday.AddDate(0, 0, offset)))
	}

	// El domingo pertenece a la semana que arranca el lunes anterior
	sunday := time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-03-10_2025-03-16", WeekKey(sunday))
}

func TestMondayOf(t *testing.T) {
	monday := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, monday, MondayOf(monday))
	assert.Equal(t, monday, MondayOf(monday.AddDate(0, 0, 6)))
}
