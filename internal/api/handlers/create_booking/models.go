package create_booking

import (
	"time"

	createBooking "github.com/larosee/salon-booking-service/internal/usecase/create_booking"
	"github.com/larosee/salon-booking-service/pkg/types"
	"github.com/larosee/salon-booking-service/pkg/whatsapp"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ClientName    string `json:"clientName"`
	ClientPhone   string `json:"clientPhone"`
	ServiceID     string `json:"serviceId"`
	Date          string `json:"date"`      // "2026-09-15"
	StartTime     string `json:"startTime"` // "10:00"
	PaymentMethod string `json:"paymentMethod"`
	Language      string `json:"language,omitempty"` // "es" (default) или "en"
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID             string  `json:"id"`
	ClientName     string  `json:"clientName"`
	ClientPhone    string  `json:"clientPhone"`
	ServiceID      string  `json:"serviceId"`
	Date           string  `json:"date"`
	DateTime       string  `json:"dateTime"`
	StartTime      string  `json:"startTime"`
	Status         string  `json:"status"`
	ProfessionalID *string `json:"professionalId,omitempty"`
	ServiceName    string  `json:"serviceName"`
	Price          float64 `json:"price"`
	PaymentMethod  string  `json:"paymentMethod"`
	WhatsAppLink   string  `json:"whatsappLink,omitempty"`
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Дата передается сырой строкой: её привязывает к часовому поясу
// салона сам use case.
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	lang := whatsapp.LangES
	if r.Language == string(whatsapp.LangEN) {
		lang = whatsapp.LangEN
	}

	return &createBooking.Request{
		ClientName:    r.ClientName,
		ClientPhone:   r.ClientPhone,
		ServiceID:     r.ServiceID,
		Date:          r.Date,
		StartTime:     startTime,
		PaymentMethod: r.PaymentMethod,
		Language:      lang,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:             resp.ID,
		ClientName:     resp.ClientName,
		ClientPhone:    resp.ClientPhone,
		ServiceID:      resp.ServiceID,
		Date:           resp.DateKey,
		DateTime:       resp.DateTime,
		StartTime:      resp.StartTime.String(),
		Status:         resp.Status,
		ProfessionalID: resp.ProfessionalID,
		ServiceName:    resp.ServiceName,
		Price:          resp.Price,
		PaymentMethod:  resp.PaymentMethod,
		WhatsAppLink:   resp.WhatsAppLink,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      resp.UpdatedAt.Format(time.RFC3339),
	}
}
