package list_blocked_dates

import (
	"context"

	"github.com/larosee/salon-booking-service/internal/service/catalog/models"
)

type CatalogService interface {
	ListBlockedDates(ctx context.Context) (*models.BlockedDateListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
