package get_day_blocks

import (
	"context"

	"github.com/larosee/salon-booking-service/internal/service/catalog/models"
)

type CatalogService interface {
	GetDayBlocks(ctx context.Context, dateKey string) (*models.BlockListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
