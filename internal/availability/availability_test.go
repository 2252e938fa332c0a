package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/larosee/salon-booking-service/internal/domain"
	"github.com/larosee/salon-booking-service/pkg/ptr"
	"github.com/larosee/salon-booking-service/pkg/types"
)

const testDate = "2026-04-21"

func member(id string) *domain.TeamMember {
	return &domain.TeamMember{ID: id, Name: "Master " + id, Role: "stylist"}
}

func booking(start string, serviceID string, professionalID *string, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:             "b-" + start,
		DateKey:        testDate,
		StartTime:      types.TimeString(start),
		ServiceID:      serviceID,
		ProfessionalID: professionalID,
		Status:         status,
	}
}

func testResolver() DurationResolver {
	index := domain.BuildServiceIndex([]*domain.Service{
		{ID: "cut", Duration: "30 min"},
		{ID: "color", Duration: "1h"},
		{ID: "quick", Duration: "45"},
		{ID: "broken", Duration: "???"},
	})
	return NewDurationResolver(index, 30)
}

func TestDurationResolverFallsBackToDefault(t *testing.T) {
	durationOf := testResolver()

	assert.Equal(t, 30, durationOf(booking("10:00", "cut", nil, domain.StatusPending)))
	assert.Equal(t, 60, durationOf(booking("10:00", "color", nil, domain.StatusPending)))
	assert.Equal(t, 45, durationOf(booking("10:00", "quick", nil, domain.StatusPending)))

	// Нечитаемая длительность и отсутствующая услуга дают дефолт, не ноль
	assert.Equal(t, 30, durationOf(booking("10:00", "broken", nil, domain.StatusPending)))
	assert.Equal(t, 30, durationOf(booking("10:00", "deleted-service", nil, domain.StatusPending)))
}

func TestDayPoolExcludesBlocked(t *testing.T) {
	team := []*domain.TeamMember{member("a"), member("b"), member("c")}
	blocks := []*domain.ProfessionalBlock{
		{ID: "blk1", ProfessionalID: "b", DateKey: testDate},
		{ID: "blk2", ProfessionalID: "c", DateKey: "2026-04-22"}, // другой день
	}

	pool := DayPool(testDate, team, blocks)
	require.Len(t, pool, 2)
	assert.Equal(t, "a", pool[0].ID)
	assert.Equal(t, "c", pool[1].ID)
}

func TestHasCapacityEmptyPool(t *testing.T) {
	team := []*domain.TeamMember{member("a")}
	blocks := []*domain.ProfessionalBlock{
		{ID: "blk1", ProfessionalID: "a", DateKey: testDate},
	}

	req := Request{DateKey: testDate, StartMinutes: 600, DurationMinutes: 30}

	// Ноль вместимости даже без единого бронирования
	assert.False(t, HasCapacity(req, 19*60, 15, team, blocks, nil, testResolver()))
}

func TestHasCapacityRejectsPastClosing(t *testing.T) {
	team := []*domain.TeamMember{member("a")}

	// 18:30 + 60 минут заканчивается в 19:30, после закрытия в 19:00
	late := Request{DateKey: testDate, StartMinutes: 18*60 + 30, DurationMinutes: 60}
	assert.False(t, HasCapacity(late, 19*60, 15, team, nil, nil, testResolver()))

	// Окончание ровно в закрытие допустимо
	boundary := Request{DateKey: testDate, StartMinutes: 18 * 60, DurationMinutes: 60}
	assert.True(t, HasCapacity(boundary, 19*60, 15, team, nil, nil, testResolver()))
}

func TestHasCapacityDetectsInteriorOverlap(t *testing.T) {
	team := []*domain.TeamMember{member("a")}
	bookings := []*domain.Booking{
		// Занимает [10:00, 10:45)
		booking("10:00", "quick", ptr.Ptr("a"), domain.StatusConfirmed),
	}

	// Запрос [10:30, 11:00) пересекается внутри занятого интервала
	req := Request{DateKey: testDate, StartMinutes: 630, DurationMinutes: 30}
	assert.False(t, HasCapacity(req, 19*60, 15, team, nil, bookings, testResolver()))
}

func TestHasCapacityAdjacentIntervalsDoNotCollide(t *testing.T) {
	team := []*domain.TeamMember{member("a")}
	bookings := []*domain.Booking{
		// Занимает [10:00, 10:30)
		booking("10:00", "cut", nil, domain.StatusPending),
	}

	// Запрос начинается ровно в момент окончания существующего
	req := Request{DateKey: testDate, StartMinutes: 630, DurationMinutes: 30}
	assert.True(t, HasCapacity(req, 19*60, 15, team, nil, bookings, testResolver()))
}

func TestHasCapacityAbsentDoesNotOccupy(t *testing.T) {
	team := []*domain.TeamMember{member("a")}
	bookings := []*domain.Booking{
		booking("10:00", "color", ptr.Ptr("a"), domain.StatusAbsent),
	}

	req := Request{DateKey: testDate, StartMinutes: 600, DurationMinutes: 60}
	assert.True(t, HasCapacity(req, 19*60, 15, team, nil, bookings, testResolver()))
}

func TestHasCapacityUnassignedStillOccupies(t *testing.T) {
	team := []*domain.TeamMember{member("a")}
	bookings := []*domain.Booking{
		// Неназначенное бронирование тоже потребляет вместимость
		booking("10:00", "color", nil, domain.StatusPending),
	}

	req := Request{DateKey: testDate, StartMinutes: 600, DurationMinutes: 30}
	assert.False(t, HasCapacity(req, 19*60, 15, team, nil, bookings, testResolver()))
}

func TestHasCapacityCountsPoolSize(t *testing.T) {
	team := []*domain.TeamMember{member("a"), member("b")}
	one := []*domain.Booking{
		booking("10:00", "color", ptr.Ptr("a"), domain.StatusConfirmed),
	}
	req := Request{DateKey: testDate, StartMinutes: 600, DurationMinutes: 60}

	// Один из двух мастеров занят - вместимость еще есть
	assert.True(t, HasCapacity(req, 19*60, 15, team, nil, one, testResolver()))

	two := append(one, booking("10:30", "color", ptr.Ptr("b"), domain.StatusPending))

	// Оба заняты в точке 10:30 - вместимости нет
	assert.False(t, HasCapacity(req, 19*60, 15, team, nil, two, testResolver()))
}

func TestHasCapacityIgnoresOtherDays(t *testing.T) {
	team := []*domain.TeamMember{member("a")}
	bookings := []*domain.Booking{
		{
			ID:        "other-day",
			DateKey:   "2026-04-22",
			StartTime: "10:00",
			ServiceID: "color",
			Status:    domain.StatusConfirmed,
		},
	}

	req := Request{DateKey: testDate, StartMinutes: 600, DurationMinutes: 60}
	assert.True(t, HasCapacity(req, 19*60, 15, team, nil, bookings, testResolver()))
}

func TestHasCapacityDeterministic(t *testing.T) {
	team := []*domain.TeamMember{member("a"), member("b")}
	bookings := []*domain.Booking{
		booking("10:00", "color", ptr.Ptr("a"), domain.StatusConfirmed),
		booking("11:00", "cut", ptr.Ptr("b"), domain.StatusPending),
	}
	req := Request{DateKey: testDate, StartMinutes: 615, DurationMinutes: 45}

	first := HasCapacity(req, 19*60, 15, team, nil, bookings, testResolver())
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, HasCapacity(req, 19*60, 15, team, nil, bookings, testResolver()))
	}
}

func TestResolveProfessionalEmptyTeam(t *testing.T) {
	req := Request{DateKey: testDate, StartMinutes: 600, DurationMinutes: 30}
	assert.Nil(t, ResolveProfessional(req, nil, nil, nil, testResolver(), true, nil))
}

func TestResolveProfessionalPicksFreeMaster(t *testing.T) {
	team := []*domain.TeamMember{member("a"), member("b")}
	bookings := []*domain.Booking{
		booking("10:00", "color", ptr.Ptr("a"), domain.StatusConfirmed),
	}

	req := Request{DateKey: testDate, StartMinutes: 630, DurationMinutes: 30}
	got := ResolveProfessional(req, team, nil, bookings, testResolver(), true, func(n int) int { return 0 })

	require.NotNil(t, got)
	assert.Equal(t, "b", *got)
}

func TestResolveProfessionalStrictOverlap(t *testing.T) {
	team := []*domain.TeamMember{member("a")}
	bookings := []*domain.Booking{
		// Занимает [10:00, 10:30)
		booking("10:00", "cut", ptr.Ptr("a"), domain.StatusConfirmed),
	}

	// Граничащий интервал [10:30, 11:00) не делает мастера занятым
	req := Request{DateKey: testDate, StartMinutes: 630, DurationMinutes: 30}
	got := ResolveProfessional(req, team, nil, bookings, testResolver(), false, func(n int) int { return 0 })

	require.NotNil(t, got)
	assert.Equal(t, "a", *got)
}

func TestResolveProfessionalFallbackPolicy(t *testing.T) {
	team := []*domain.TeamMember{member("a")}
	bookings := []*domain.Booking{
		booking("10:00", "color", ptr.Ptr("a"), domain.StatusConfirmed),
	}
	req := Request{DateKey: testDate, StartMinutes: 615, DurationMinutes: 30}

	// Политика включена: валидный пул пуст, выбор из дневного пула
	withFallback := ResolveProfessional(req, team, nil, bookings, testResolver(), true, func(n int) int { return 0 })
	require.NotNil(t, withFallback)
	assert.Equal(t, "a", *withFallback)

	// Политика выключена: бронирование остается неназначенным
	withoutFallback := ResolveProfessional(req, team, nil, bookings, testResolver(), false, func(n int) int { return 0 })
	assert.Nil(t, withoutFallback)
}

func TestResolveProfessionalBlockedExcludedEvenWithFallback(t *testing.T) {
	team := []*domain.TeamMember{member("a")}
	blocks := []*domain.ProfessionalBlock{
		{ID: "blk1", ProfessionalID: "a", DateKey: testDate},
	}

	req := Request{DateKey: testDate, StartMinutes: 600, DurationMinutes: 30}

	// Дневной пул пуст: fallback не воскрешает заблокированных мастеров
	assert.Nil(t, ResolveProfessional(req, team, blocks, nil, testResolver(), true, nil))
}

func TestResolveProfessionalUniformChoice(t *testing.T) {
	team := []*domain.TeamMember{member("a"), member("b"), member("c")}
	req := Request{DateKey: testDate, StartMinutes: 600, DurationMinutes: 30}

	for i, want := range []string{"a", "b", "c"} {
		idx := i
		got := ResolveProfessional(req, team, nil, nil, testResolver(), true, func(n int) int {
			require.Equal(t, 3, n)
			return idx
		})
		require.NotNil(t, got)
		assert.Equal(t, want, *got)
	}
}
