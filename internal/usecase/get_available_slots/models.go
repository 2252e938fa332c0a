package get_available_slots

import (
	"github.com/larosee/salon-booking-service/pkg/types"
)

// Request модель запроса на получение слотов дня
type Request struct {
	ServiceID string // ID услуги (длительность влияет на доступность)

	// Date календарный день YYYY-MM-DD, как его прислал клиент.
	// Привязка к часовому поясу салона выполняется внутри usecase.
	Date string
}

// Response модель ответа со списком слотов дня
type Response struct {
	DateKey   string // Календарный день (YYYY-MM-DD, пояс салона)
	ServiceID string // ID услуги
	Closed    bool   // true, если салон не работает в эту дату
	Slots     []Slot // Сетка слотов; пустая для нерабочих дней
}

// Slot модель временного слота
type Slot struct {
	StartTime types.TimeString // Время начала слота (например, "10:00")
	Available bool             // Хватает ли вместимости на всю услугу с этого времени
}
