package create_booking

import (
	"fmt"

	"github.com/larosee/salon-booking-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ClientName == "" {
		return fmt.Errorf("%w: clientName is required", ErrInvalidInput)
	}
	if len(req.ClientName) > domain.MaxClientNameLength {
		return fmt.Errorf("%w: clientName is too long", ErrInvalidInput)
	}

	if req.ClientPhone == "" {
		return fmt.Errorf("%w: clientPhone is required", ErrInvalidInput)
	}
	if len(req.ClientPhone) > domain.MaxClientPhoneLength {
		return fmt.Errorf("%w: clientPhone is too long", ErrInvalidInput)
	}

	if req.ServiceID == "" {
		return fmt.Errorf("%w: serviceId is required", ErrInvalidInput)
	}

	if req.Date == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время начала указано и корректно
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if !domain.ValidPaymentMethod(req.PaymentMethod) {
		return fmt.Errorf("%w: paymentMethod must be cash or card", ErrInvalidInput)
	}

	return nil
}
