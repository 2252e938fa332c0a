// Package availability реализует движок проверки вместимости и назначения
// мастеров. Все функции чистые: принимают явные срезы данных и не зависят
// от глобального состояния, поэтому тестируются изолированно.
//
// Важно: все чтения набора бронирований в рамках одного прохода должны
// видеть один согласованный срез данных. При вызове из usecase создания
// бронирования срез берется внутри сериализуемой транзакции.
package availability

import (
	"math/rand"

	"github.com/larosee/salon-booking-service/internal/domain"
	"github.com/larosee/salon-booking-service/internal/schedule"
)

// Request запрашиваемый интервал занятости:
// [StartMinutes, StartMinutes+DurationMinutes) в минутах от полуночи
// на календарный день DateKey
type Request struct {
	DateKey         string
	StartMinutes    int
	DurationMinutes int
}

// EndMinutes возвращает конец запрашиваемого интервала
func (r Request) EndMinutes() int {
	return r.StartMinutes + r.DurationMinutes
}

// DurationResolver возвращает длительность бронирования в минутах.
// Абстрагирует разрешение снимка услуги и подстановку дефолта.
type DurationResolver func(b *domain.Booking) int

// NewDurationResolver строит резолвер длительности по индексу услуг.
// Если услуга бронирования не находится или её длительность не парсится,
// подставляется defaultMinutes - бронирование никогда не роняет проверку
// вместимости из-за битой ссылки на услугу и никогда не считается нулевым.
func NewDurationResolver(services domain.ServiceIndex, defaultMinutes int) DurationResolver {
	return func(b *domain.Booking) int {
		if svc, ok := services[b.ServiceID]; ok {
			return schedule.DurationOrDefault(svc.Duration, defaultMinutes)
		}
		return defaultMinutes
	}
}

// DayPool возвращает дневной пул: мастера без блокировки на целый день
// (отпуск/выходной) на указанную дату
func DayPool(dateKey string, team []*domain.TeamMember, blocks []*domain.ProfessionalBlock) []*domain.TeamMember {
	blocked := domain.BlockedProfessionalIDs(blocks, dateKey)

	pool := make([]*domain.TeamMember, 0, len(team))
	for _, member := range team {
		if _, isBlocked := blocked[member.ID]; !isBlocked {
			pool = append(pool, member)
		}
	}
	return pool
}

// HasCapacity проверяет, есть ли у салона вместимость на запрошенный интервал.
//
// Интервал обходится с фиксированным шагом stepMinutes, и в каждой точке
// считается число занимающих бронирований, чей интервал её накрывает.
// Проверки только в концах интервала недостаточно: пересекающиеся
// бронирования разной, невыровненной длительности могут исчерпать
// вместимость строго внутри запрошенного интервала. Выборка с шагом мельче
// минимальной значимой единицы длительности - корректная и простая замена
// полного подсчета пересечений интервалов при малом объеме записей.
func HasCapacity(
	req Request,
	closingMinutes int,
	stepMinutes int,
	team []*domain.TeamMember,
	blocks []*domain.ProfessionalBlock,
	bookings []*domain.Booking,
	durationOf DurationResolver,
) bool {
	pool := DayPool(req.DateKey, team, blocks)
	if len(pool) == 0 {
		// Ноль вместимости независимо от бронирований
		return false
	}

	// Услуга не должна заканчиваться после закрытия
	if req.EndMinutes() > closingMinutes {
		return false
	}

	if stepMinutes <= 0 {
		stepMinutes = domain.DefaultCapacityStepMinutes
	}

	// Нулевая длительность никогда не исчерпывает вместимость: тело цикла
	// не выполняется ни разу
	for t := req.StartMinutes; t < req.EndMinutes(); t += stepMinutes {
		occupied := countOccupiedAt(t, req.DateKey, bookings, durationOf)
		if occupied >= len(pool) {
			return false
		}
	}

	return true
}

// countOccupiedAt считает занимающие бронирования на dateKey,
// чей интервал [start, start+duration) содержит момент t
func countOccupiedAt(t int, dateKey string, bookings []*domain.Booking, durationOf DurationResolver) int {
	count := 0
	for _, b := range bookings {
		if b.DateKey != dateKey || !b.IsOccupying() {
			continue
		}

		start, err := b.StartTime.Minutes()
		if err != nil {
			continue
		}
		end := start + durationOf(b)

		if start <= t && t < end {
			count++
		}
	}
	return count
}

// ResolveProfessional выбирает мастера для запрошенного интервала.
//
// Валидный пул = дневной пул минус мастера, занятые пересекающимся
// бронированием. Если валидный пул пуст, а дневной нет, при включенной
// политике fallbackToDayPool выбор идет из дневного пула: лучше допустить
// теоретический double-booking, чем жестко отказать клиенту после того,
// как календарь уже показал слот свободным. Политика осознанно
// переключаемая (см. DESIGN.md).
//
// Выбор равновероятный через randIndex(n) - инъецируется для
// детерминированных тестов. Возвращает nil, когда никого нет:
// бронирование создается неназначенным.
func ResolveProfessional(
	req Request,
	team []*domain.TeamMember,
	blocks []*domain.ProfessionalBlock,
	bookings []*domain.Booking,
	durationOf DurationResolver,
	fallbackToDayPool bool,
	randIndex func(n int) int,
) *string {
	dayPool := DayPool(req.DateKey, team, blocks)
	if len(dayPool) == 0 {
		return nil
	}

	busy := busyProfessionalIDs(req, bookings, durationOf)

	validPool := make([]*domain.TeamMember, 0, len(dayPool))
	for _, member := range dayPool {
		if _, isBusy := busy[member.ID]; !isBusy {
			validPool = append(validPool, member)
		}
	}

	pool := validPool
	if len(pool) == 0 {
		if !fallbackToDayPool {
			return nil
		}
		pool = dayPool
	}

	if randIndex == nil {
		randIndex = rand.Intn
	}

	chosen := pool[randIndex(len(pool))]
	id := chosen.ID
	return &id
}

// busyProfessionalIDs возвращает множество ID мастеров, у которых есть
// занимающее бронирование, пересекающееся с запрошенным интервалом.
// Пересечение строгое: reqStart < bookingEnd && reqEnd > bookingStart,
// граничащие интервалы пересечением не считаются.
func busyProfessionalIDs(req Request, bookings []*domain.Booking, durationOf DurationResolver) map[string]struct{} {
	busy := make(map[string]struct{})

	for _, b := range bookings {
		if b.DateKey != req.DateKey || !b.IsOccupying() || b.ProfessionalID == nil {
			continue
		}

		start, err := b.StartTime.Minutes()
		if err != nil {
			continue
		}
		end := start + durationOf(b)

		if req.StartMinutes < end && req.EndMinutes() > start {
			busy[*b.ProfessionalID] = struct{}{}
		}
	}

	return busy
}
