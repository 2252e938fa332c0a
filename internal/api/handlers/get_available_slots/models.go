package get_available_slots

import (
	getAvailableSlots "github.com/larosee/salon-booking-service/internal/usecase/get_available_slots"
)

// SlotResponse HTTP модель временного слота
type SlotResponse struct {
	StartTime string `json:"startTime"`
	Available bool   `json:"available"`
}

// SlotsResponse HTTP модель сетки слотов на день
type SlotsResponse struct {
	Date      string         `json:"date"`
	ServiceID string         `json:"serviceId"`
	Closed    bool           `json:"closed"`
	Slots     []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			StartTime: s.StartTime.String(),
			Available: s.Available,
		})
	}

	return &SlotsResponse{
		Date:      resp.DateKey,
		ServiceID: resp.ServiceID,
		Closed:    resp.Closed,
		Slots:     slots,
	}
}
