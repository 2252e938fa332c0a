package schedule

import (
	"errors"
	"fmt"
	"time"

	"github.com/larosee/salon-booking-service/internal/config"
	"github.com/larosee/salon-booking-service/internal/domain"
	"github.com/larosee/salon-booking-service/pkg/types"
)

// ErrUnknownTimezone возвращается, когда часовой пояс из конфигурации не найден
var ErrUnknownTimezone = errors.New("schedule: unknown timezone")

// Calendar календарные правила салона: часовой пояс, часы работы,
// выходные дни и праздники. Все методы чистые - время передается явно,
// скрытого состояния нет.
type Calendar struct {
	location       *time.Location
	openHour       int
	closeHour      int
	slotInterval   int
	closedWeekdays map[time.Weekday]struct{}
	holidays       map[string]struct{} // ключи MM-DD
}

// NewCalendar создает календарь из бизнес-конфигурации салона
func NewCalendar(cfg config.SalonConfig) (*Calendar, error) {
	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrUnknownTimezone, cfg.Timezone, err)
	}

	closedWeekdays := make(map[time.Weekday]struct{}, len(cfg.ClosedWeekdays))
	for _, wd := range cfg.ClosedWeekdays {
		closedWeekdays[time.Weekday(wd)] = struct{}{}
	}

	holidays := make(map[string]struct{}, len(cfg.Holidays))
	for _, h := range cfg.Holidays {
		holidays[h] = struct{}{}
	}

	return &Calendar{
		location:       location,
		openHour:       cfg.OpenHour,
		closeHour:      cfg.CloseHour,
		slotInterval:   cfg.SlotIntervalMinutes,
		closedWeekdays: closedWeekdays,
		holidays:       holidays,
	}, nil
}

// Location возвращает фиксированный часовой пояс салона
func (c *Calendar) Location() *time.Location {
	return c.location
}

// ParseDate разбирает клиентскую дату YYYY-MM-DD, привязывая её к часовому
// поясу салона. Клиентские даты проходят только через этот метод: разбор в UTC
// сдвигает полночь на предыдущий локальный день для поясов западнее UTC.
func (c *Calendar) ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(domain.DateFormat, s, c.location)
}

// DateKey возвращает канонический ключ даты YYYY-MM-DD в часовом поясе салона.
// Все сравнения дат в системе выполняются только по этим строкам:
// сравнение сырых time.Time небезопасно из-за DST и локальных часов клиента.
func (c *Calendar) DateKey(t time.Time) string {
	return t.In(c.location).Format(domain.DateFormat)
}

// TodayKey возвращает ключ сегодняшней даты в часовом поясе салона
func (c *Calendar) TodayKey(now time.Time) string {
	return c.DateKey(now)
}

// IsPast возвращает true, если дата раньше сегодняшней в часовом поясе салона
func (c *Calendar) IsPast(date, now time.Time) bool {
	return c.DateKey(date) < c.TodayKey(now)
}

// IsWeekend возвращает true, если день недели входит в настроенные нерабочие дни.
// Набор нерабочих дней - вход конфигурации, не бизнес-правило кода.
func (c *Calendar) IsWeekend(date time.Time) bool {
	_, closed := c.closedWeekdays[date.In(c.location).Weekday()]
	return closed
}

// IsHoliday возвращает true, если дата входит в список праздников (ключи MM-DD)
func (c *Calendar) IsHoliday(date time.Time) bool {
	_, holiday := c.holidays[date.In(c.location).Format("01-02")]
	return holiday
}

// IsClosedDay возвращает true, если салон не работает в эту дату
func (c *Calendar) IsClosedDay(date time.Time) bool {
	return c.IsWeekend(date) || c.IsHoliday(date)
}

// OpeningMinutes возвращает время открытия в минутах от полуночи
func (c *Calendar) OpeningMinutes() int {
	return c.openHour * 60
}

// ClosingMinutes возвращает время закрытия в минутах от полуночи
func (c *Calendar) ClosingMinutes() int {
	return c.closeHour * 60
}

// SlotInterval возвращает шаг сетки слотов в минутах
func (c *Calendar) SlotInterval() int {
	return c.slotInterval
}

// SlotsForDay генерирует сетку доступных времён начала на указанный день.
// Возвращает пустой список для выходных и праздников. Последовательность
// конечна, детерминирована и зависит только от входов - генерируется
// заново при каждом вызове, кэширование не нужно.
func (c *Calendar) SlotsForDay(date time.Time) []types.TimeString {
	if c.IsClosedDay(date) {
		return []types.TimeString{}
	}

	open := c.OpeningMinutes()
	close := c.ClosingMinutes()

	slots := make([]types.TimeString, 0, (close-open)/c.slotInterval)
	for minutes := open; minutes < close; minutes += c.slotInterval {
		slot, err := types.NewTimeStringFromMinutes(minutes)
		if err != nil {
			break
		}
		slots = append(slots, slot)
	}

	return slots
}

// ComposeDateTime собирает составную ISO строку даты-времени с фиксированным
// смещением часового пояса салона, например "2026-04-21T10:00:00+02:00".
// Используется в контракте обмена записями бронирований.
func (c *Calendar) ComposeDateTime(dateKey string, startTime types.TimeString) (string, error) {
	day, err := time.ParseInLocation(domain.DateFormat, dateKey, c.location)
	if err != nil {
		return "", fmt.Errorf("schedule: invalid date key %q: %w", dateKey, err)
	}

	minutes, err := startTime.Minutes()
	if err != nil {
		return "", fmt.Errorf("schedule: invalid start time %q: %w", startTime, err)
	}

	composed := time.Date(day.Year(), day.Month(), day.Day(), minutes/60, minutes%60, 0, 0, c.location)
	return composed.Format(time.RFC3339), nil
}

// MinutesFromMidnight конвертирует строку HH:MM в минуты от полуночи
func MinutesFromMidnight(hhmm string) (int, error) {
	ts, err := types.NewTimeStringFromString(hhmm)
	if err != nil {
		return 0, err
	}
	return ts.Minutes()
}
