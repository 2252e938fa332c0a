package models

import (
	"errors"
	"time"

	"github.com/larosee/salon-booking-service/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// UpdateStatusRequest запрос на обновление статуса бронирования
type UpdateStatusRequest struct {
	BookingID string `json:"bookingId"`
	Status    string `json:"status"`
}

// AssignProfessionalRequest запрос на ручное назначение мастера.
// ProfessionalID == nil снимает назначение.
type AssignProfessionalRequest struct {
	BookingID      string  `json:"bookingId"`
	ProfessionalID *string `json:"professionalId,omitempty"`
}

// GetDayBookingsRequest запрос на получение бронирований дня
type GetDayBookingsRequest struct {
	DateKey        string  `json:"date"`                     // YYYY-MM-DD
	Status         *string `json:"status,omitempty"`         // Фильтр по статусу (опционально)
	ProfessionalID *string `json:"professionalId,omitempty"` // Фильтр по мастеру (опционально)
	IncludeAbsent  bool    `json:"includeAbsent,omitempty"`  // Включить неявившихся клиентов
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetDayBookingsRequest) ToDomainFilter() (domain.DayBookingsFilter, error) {
	filter := domain.DayBookingsFilter{
		DateKey:        r.DateKey,
		ProfessionalID: r.ProfessionalID,
		IncludeAbsent:  r.IncludeAbsent,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID             string  `json:"id"`
	ClientName     string  `json:"clientName"`
	ClientPhone    string  `json:"clientPhone"`
	ServiceID      string  `json:"serviceId"`
	ServiceName    string  `json:"serviceName"`
	Price          float64 `json:"price"`
	PaymentMethod  string  `json:"paymentMethod"`
	Date           string  `json:"date"` // YYYY-MM-DD
	Time           string  `json:"time"` // HH:MM
	Status         string  `json:"status"`
	ProfessionalID *string `json:"professionalId,omitempty"`
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
	Total    int                `json:"total"`
}

// FromDomainBooking конвертирует domain.Booking в response
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:             b.ID,
		ClientName:     b.ClientName,
		ClientPhone:    b.ClientPhone,
		ServiceID:      b.ServiceID,
		ServiceName:    b.ServiceName,
		Price:          b.Price,
		PaymentMethod:  string(b.PaymentMethod),
		Date:           b.DateKey,
		Time:           b.StartTime.String(),
		Status:         string(b.Status),
		ProfessionalID: b.ProfessionalID,
		CreatedAt:      b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      b.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainBookingList конвертирует список domain.Booking в response
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]*BookingResponse, len(bookings))
	for i, b := range bookings {
		result[i] = FromDomainBooking(b)
	}
	return &BookingListResponse{
		Bookings: result,
		Total:    len(result),
	}
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	if !domain.ValidStatus(s) {
		return "", ErrInvalidStatus
	}
	return domain.BookingStatus(s), nil
}
