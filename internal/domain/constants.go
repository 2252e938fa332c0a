package domain

// Default configuration values
const (
	// DefaultServiceDurationMinutes подставляется, когда длительность услуги
	// не удалось распарсить или услуга не найдена. Ноль занизил бы занятость,
	// поэтому по умолчанию 30 минут.
	DefaultServiceDurationMinutes = 30

	// DefaultCapacityStepMinutes шаг выборки при проверке вместимости
	DefaultCapacityStepMinutes = 15
)

// Business validation constants
const (
	MaxClientNameLength  = 120
	MaxClientPhoneLength = 32
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// NonOccupyingStatuses статусы, не занимающие время мастера
// при проверках доступности
var NonOccupyingStatuses = []BookingStatus{
	StatusAbsent,
}

// AllStatuses допустимые статусы бронирования
var AllStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusAttended,
	StatusAbsent,
}

// ValidStatus возвращает true, если строка является допустимым статусом
func ValidStatus(s string) bool {
	for _, status := range AllStatuses {
		if string(status) == s {
			return true
		}
	}
	return false
}

// ValidPaymentMethod возвращает true, если строка является допустимым способом оплаты
func ValidPaymentMethod(s string) bool {
	return s == string(PaymentCash) || s == string(PaymentCard)
}
