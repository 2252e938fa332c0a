package create_booking

import (
	"context"
	"time"

	"github.com/larosee/salon-booking-service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	// GetByDate получает бронирования на день; внутри транзакции с блокировкой (FOR UPDATE)
	GetByDate(ctx context.Context, filter domain.DayBookingsFilter) ([]*domain.Booking, error)
}

// CatalogRepository интерфейс репозитория каталога услуг
type CatalogRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Service, error)
	List(ctx context.Context) ([]*domain.Service, error)
}

// StaffRepository интерфейс репозитория команды
type StaffRepository interface {
	ListTeam(ctx context.Context) ([]*domain.TeamMember, error)
	ListBlocksByDate(ctx context.Context, dateKey string) ([]*domain.ProfessionalBlock, error)
	IsDateBlocked(ctx context.Context, dateKey string) (bool, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Metrics интерфейс бизнес-метрик бронирований
type Metrics interface {
	IncBookingCreated(assignment string)
	IncBookingRejected(reason string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// NoopMetrics заглушка метрик, когда сбор метрик выключен
type NoopMetrics struct{}

func (NoopMetrics) IncBookingCreated(string)  {}
func (NoopMetrics) IncBookingRejected(string) {}
