package create_booking

import (
	"time"

	"github.com/larosee/salon-booking-service/pkg/types"
	"github.com/larosee/salon-booking-service/pkg/whatsapp"
)

// Request модель запроса на создание бронирования
type Request struct {
	ClientName  string // Имя клиента
	ClientPhone string // Телефон клиента
	ServiceID   string // ID услуги

	// Date календарный день YYYY-MM-DD, как его прислал клиент.
	// Привязка к часовому поясу салона выполняется внутри usecase.
	Date string

	StartTime     types.TimeString  // Время начала слота (например, "10:00")
	PaymentMethod string            // Способ оплаты: cash или card
	Language      whatsapp.Language // Язык сообщения подтверждения (es/en)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          string           // ID созданного бронирования
	ClientName  string           // Имя клиента
	ClientPhone string           // Телефон клиента
	ServiceID   string           // ID услуги
	DateKey     string           // Календарный день (YYYY-MM-DD, пояс салона)
	DateTime    string           // Составная ISO дата-время с фиксированным смещением
	StartTime   types.TimeString // Время начала
	Status      string           // Статус бронирования (всегда pending при создании)

	// ProfessionalID назначенный мастер; nil при создании без назначения
	ProfessionalID *string

	// Денормализованные данные услуги
	ServiceName string
	Price       float64

	PaymentMethod string

	// WhatsAppLink ссылка подтверждения; генерируется после коммита,
	// её неуспех никогда не откатывает бронирование
	WhatsAppLink string

	CreatedAt time.Time
	UpdatedAt time.Time
}
