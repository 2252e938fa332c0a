package add_professional_block

import (
	"context"

	"github.com/larosee/salon-booking-service/internal/service/catalog/models"
)

type CatalogService interface {
	AddProfessionalBlock(ctx context.Context, req *models.AddBlockRequest) (*models.BlockResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
