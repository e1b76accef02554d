package get_available_slots

import (
	getAvailableSlots "github.com/m04kA/SMC-MotoAgenda/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-MotoAgenda/pkg/types"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date   string   `json:"date"`   // "2024-01-03"
	Closed bool     `json:"closed"` // воскресенье
	Slots  []string `json:"slots"`  // ["08:30", "09:00", ...]
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = slot.String()
	}

	return &AvailableSlotsResponse{
		Date:   resp.Date.String(),
		Closed: resp.Closed,
		Slots:  slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(dateStr string) (*getAvailableSlots.Request, error) {
	date, err := types.ParseDate(dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{Date: date}, nil
}
