package assign_professional

import (
	"context"

	"github.com/larosee/salon-booking-service/internal/service/bookings/models"
)

type BookingService interface {
	AssignProfessional(ctx context.Context, req *models.AssignProfessionalRequest) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
