package get_day_bookings

import (
	"context"

	"github.com/larosee/salon-booking-service/internal/service/bookings/models"
)

type BookingService interface {
	GetDayBookings(ctx context.Context, req *models.GetDayBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
