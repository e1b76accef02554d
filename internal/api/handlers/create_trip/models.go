package create_trip

import (
	"time"

	createTrip "github.com/m04kA/SMC-MotoAgenda/internal/usecase/create_trip"
)

// CreateTripRequest HTTP request model.
// originOther/destinationOther заполняются, когда выбран "Outro".
type CreateTripRequest struct {
	Origin           string `json:"origin"`
	OriginOther      string `json:"originOther,omitempty"`
	Destination      string `json:"destination"`
	DestinationOther string `json:"destinationOther,omitempty"`
	Model            string `json:"model"`
	Color            string `json:"color"`
	Chassis          string `json:"chassis"`
	OrderNumber      string `json:"orderNumber"`
}

// TripResponse HTTP response model
type TripResponse struct {
	ID          string    `json:"id"`
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	Model       string    `json:"model"`
	Color       string    `json:"color"`
	Chassis     string    `json:"chassis"`
	OrderNumber string    `json:"orderNumber"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateTripRequest) ToUseCaseRequest() *createTrip.Request {
	return &createTrip.Request{
		Origin:           r.Origin,
		OriginOther:      r.OriginOther,
		Destination:      r.Destination,
		DestinationOther: r.DestinationOther,
		Model:            r.Model,
		Color:            r.Color,
		Chassis:          r.Chassis,
		OrderNumber:      r.OrderNumber,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createTrip.Response) *TripResponse {
	return &TripResponse{
		ID:          resp.ID,
		Origin:      resp.Origin,
		Destination: resp.Destination,
		Model:       resp.Model,
		Color:       resp.Color,
		Chassis:     resp.Chassis,
		OrderNumber: resp.OrderNumber,
		Status:      resp.Status,
		CreatedAt:   resp.CreatedAt,
	}
}
