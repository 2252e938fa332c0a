package catalog

import (
	"context"

	"github.com/larosee/salon-booking-service/internal/domain"
)

// CatalogRepository интерфейс репозитория каталога услуг
type CatalogRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Service, error)
	List(ctx context.Context) ([]*domain.Service, error)
	Create(ctx context.Context, svc *domain.Service) (*domain.Service, error)
	Update(ctx context.Context, svc *domain.Service) (*domain.Service, error)
	Delete(ctx context.Context, id string) error
}

// StaffRepository интерфейс репозитория команды и блокировок мастеров
type StaffRepository interface {
	ListTeam(ctx context.Context) ([]*domain.TeamMember, error)
	GetMemberByID(ctx context.Context, id string) (*domain.TeamMember, error)
	ListBlocksByDate(ctx context.Context, dateKey string) ([]*domain.ProfessionalBlock, error)
	AddBlock(ctx context.Context, block *domain.ProfessionalBlock) (*domain.ProfessionalBlock, error)
	RemoveBlock(ctx context.Context, id string) error
	ListBlockedDates(ctx context.Context) ([]*domain.BlockedDate, error)
	AddBlockedDate(ctx context.Context, date *domain.BlockedDate) (*domain.BlockedDate, error)
	RemoveBlockedDate(ctx context.Context, id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
