package domain

import (
	"time"

	"github.com/larosee/salon-booking-service/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusAttended  BookingStatus = "attended"
	StatusAbsent    BookingStatus = "absent"
)

// PaymentMethod способ оплаты бронирования
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
)

// Booking represents a client booking in the salon
type Booking struct {
	ID          string
	ClientName  string
	ClientPhone string
	ServiceID   string

	// DateKey календарный день бронирования в часовом поясе салона (YYYY-MM-DD).
	// Все сравнения дат выполняются только по этой строке.
	DateKey   string
	StartTime types.TimeString

	Status BookingStatus

	// ProfessionalID слабая ссылка на мастера; nil, если никто не был доступен
	// при создании и бронирование ожидает ручного назначения
	ProfessionalID *string

	// Денормализованный снимок услуги на момент бронирования:
	// последующие правки каталога не меняют историю
	ServiceName string
	Price       float64

	PaymentMethod PaymentMethod

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOccupying returns true if the booking holds a professional's time
// for future-looking availability checks. Бронирование со статусом absent
// не занимает время мастера.
func (b *Booking) IsOccupying() bool {
	return b.Status != StatusAbsent
}

// IsTerminal returns true if the booking reached a final state
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusAttended || b.Status == StatusAbsent
}

// CanTransitionTo returns true if the status transition is allowed:
// pending -> confirmed | absent, confirmed -> attended | absent.
// Терминальные статусы не меняются.
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	switch b.Status {
	case StatusPending:
		return next == StatusConfirmed || next == StatusAbsent
	case StatusConfirmed:
		return next == StatusAttended || next == StatusAbsent
	default:
		return false
	}
}

// DayBookingsFilter фильтр для получения бронирований на день
type DayBookingsFilter struct {
	DateKey        string         // Обязательный параметр (YYYY-MM-DD)
	Status         *BookingStatus // Фильтр по статусу (опционально)
	IncludeAbsent  bool           // Включать ли бронирования со статусом absent
	ProfessionalID *string        // Фильтр по мастеру (опционально)
}
