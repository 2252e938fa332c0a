package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/larosee/salon-booking-service/internal/config"
)

func testCalendar(t *testing.T) *Calendar {
	t.Helper()

	cal, err := NewCalendar(config.SalonConfig{
		Timezone:            "Europe/Madrid",
		OpenHour:            9,
		CloseHour:           19,
		SlotIntervalMinutes: 30,
		ClosedWeekdays:      []int{0, 6}, // воскресенье и суббота
		Holidays:            []string{"01-01", "12-25"},
	})
	require.NoError(t, err)
	return cal
}

func TestNewCalendarUnknownTimezone(t *testing.T) {
	_, err := NewCalendar(config.SalonConfig{Timezone: "Mars/Olympus"})
	assert.ErrorIs(t, err, ErrUnknownTimezone)
}

func TestDateKeyUsesSalonTimezone(t *testing.T) {
	cal := testCalendar(t)

	// Поздний вечер UTC уже следующий день в Мадриде (CEST, +02:00)
	utcEvening := time.Date(2026, 4, 21, 22, 30, 0, 0, time.UTC)
	assert.Equal(t, "2026-04-22", cal.DateKey(utcEvening))

	noon := time.Date(2026, 4, 21, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-04-21", cal.DateKey(noon))
}

func TestParseDateAnchorsToSalonTimezone(t *testing.T) {
	cal := testCalendar(t)

	parsed, err := cal.ParseDate("2026-04-20")
	require.NoError(t, err)
	assert.Equal(t, "2026-04-20", cal.DateKey(parsed))

	_, err = cal.ParseDate("20/04/2026")
	assert.Error(t, err)
}

func TestParseDateWestOfUTC(t *testing.T) {
	// Для пояса западнее UTC полночь UTC приходится на предыдущий
	// местный день: разбор клиентской даты обязан этого избегать
	cal, err := NewCalendar(config.SalonConfig{
		Timezone:            "America/Argentina/Buenos_Aires",
		OpenHour:            9,
		CloseHour:           19,
		SlotIntervalMinutes: 30,
		ClosedWeekdays:      []int{0, 6},
	})
	require.NoError(t, err)

	// Понедельник 2026-04-20
	parsed, err := cal.ParseDate("2026-04-20")
	require.NoError(t, err)
	assert.Equal(t, "2026-04-20", cal.DateKey(parsed))
	assert.False(t, cal.IsWeekend(parsed))

	// Разбор той же даты в UTC даёт воскресенье 2026-04-19 местного времени
	utcMidnight := time.Date(2026, 4, 20, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-04-19", cal.DateKey(utcMidnight))
	assert.True(t, cal.IsWeekend(utcMidnight))
}

func TestIsPastComparesDateKeysOnly(t *testing.T) {
	cal := testCalendar(t)
	now := time.Date(2026, 4, 21, 10, 0, 0, 0, time.UTC)

	yesterday := time.Date(2026, 4, 20, 23, 0, 0, 0, cal.Location())
	assert.True(t, cal.IsPast(yesterday, now))

	// Сегодняшний день не прошедший, даже если момент времени раньше now
	earlierToday := time.Date(2026, 4, 21, 0, 30, 0, 0, cal.Location())
	assert.False(t, cal.IsPast(earlierToday, now))

	tomorrow := time.Date(2026, 4, 22, 0, 0, 0, 0, cal.Location())
	assert.False(t, cal.IsPast(tomorrow, now))
}

func TestIsClosedDay(t *testing.T) {
	cal := testCalendar(t)

	sunday := time.Date(2026, 4, 19, 12, 0, 0, 0, cal.Location())
	assert.True(t, cal.IsWeekend(sunday))
	assert.True(t, cal.IsClosedDay(sunday))

	// Праздник в будний день
	christmas := time.Date(2026, 12, 25, 12, 0, 0, 0, cal.Location())
	assert.False(t, cal.IsWeekend(christmas))
	assert.True(t, cal.IsHoliday(christmas))
	assert.True(t, cal.IsClosedDay(christmas))

	tuesday := time.Date(2026, 4, 21, 12, 0, 0, 0, cal.Location())
	assert.False(t, cal.IsClosedDay(tuesday))
}

func TestSlotsForDay(t *testing.T) {
	cal := testCalendar(t)

	tuesday := time.Date(2026, 4, 21, 0, 0, 0, 0, cal.Location())
	slots := cal.SlotsForDay(tuesday)

	// 9:00-19:00 с шагом 30 минут: 20 слотов, закрытие не включается
	require.Len(t, slots, 20)
	assert.Equal(t, "09:00", slots[0].String())
	assert.Equal(t, "09:30", slots[1].String())
	assert.Equal(t, "18:30", slots[len(slots)-1].String())

	// Сетка строго возрастает
	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].IsBefore(slots[i]))
	}
}

func TestSlotsForDayClosedDaysEmpty(t *testing.T) {
	cal := testCalendar(t)

	sunday := time.Date(2026, 4, 19, 0, 0, 0, 0, cal.Location())
	assert.Empty(t, cal.SlotsForDay(sunday))

	christmas := time.Date(2026, 12, 25, 0, 0, 0, 0, cal.Location())
	assert.Empty(t, cal.SlotsForDay(christmas))
}

func TestSlotsForDayDeterministic(t *testing.T) {
	cal := testCalendar(t)
	tuesday := time.Date(2026, 4, 21, 0, 0, 0, 0, cal.Location())

	first := cal.SlotsForDay(tuesday)
	second := cal.SlotsForDay(tuesday)
	assert.Equal(t, first, second)
}

func TestComposeDateTime(t *testing.T) {
	cal := testCalendar(t)

	// Апрель в Мадриде - летнее время, смещение +02:00
	composed, err := cal.ComposeDateTime("2026-04-21", "10:00")
	require.NoError(t, err)
	assert.Equal(t, "2026-04-21T10:00:00+02:00", composed)

	// Январь - зимнее время, смещение +01:00
	composed, err = cal.ComposeDateTime("2026-01-20", "09:30")
	require.NoError(t, err)
	assert.Equal(t, "2026-01-20T09:30:00+01:00", composed)

	_, err = cal.ComposeDateTime("not-a-date", "10:00")
	assert.Error(t, err)

	_, err = cal.ComposeDateTime("2026-04-21", "25:99")
	assert.Error(t, err)
}

func TestMinutesFromMidnight(t *testing.T) {
	minutes, err := MinutesFromMidnight("10:30")
	require.NoError(t, err)
	assert.Equal(t, 630, minutes)

	_, err = MinutesFromMidnight("garbage")
	assert.Error(t, err)
}
