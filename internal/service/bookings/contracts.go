package bookings

import (
	"context"

	"github.com/larosee/salon-booking-service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetByDate(ctx context.Context, filter domain.DayBookingsFilter) ([]*domain.Booking, error)
	GetByClientPhone(ctx context.Context, phone string) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error
	UpdateProfessional(ctx context.Context, id string, professionalID *string) error
	Delete(ctx context.Context, id string) error
}

// StaffRepository интерфейс репозитория команды
type StaffRepository interface {
	GetMemberByID(ctx context.Context, id string) (*domain.TeamMember, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
