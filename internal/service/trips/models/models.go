package models

import (
	"time"

	"github.com/m04kA/SMC-MotoAgenda/internal/domain"
)

// Request модели

// ListTripsRequest запрос на получение списка поездок
type ListTripsRequest struct {
	Status *string `json:"status,omitempty"` // Фильтр по статусу (опционально)
}

// UpdateStatusRequest запрос на смену статуса поездки
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response модели

// TripResponse ответ с данными поездки
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

// Counts счетчики по статусам
type Counts struct {
	Pending   int `json:"pending"`
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

// TripGroupResponse поездки одного пункта назначения
type TripGroupResponse struct {
	Destination string         `json:"destination"`
	Trips       []TripResponse `json:"trips"`
	Counts      Counts         `json:"counts"`
}

// TripListResponse ответ со списком поездок, сгруппированных по пункту назначения
type TripListResponse struct {
	Groups []TripGroupResponse `json:"groups"`
	Counts Counts              `json:"counts"`
}

// Методы конвертации

// FromDomainTrip конвертирует domain модель в DTO
func FromDomainTrip(t *domain.Trip) *TripResponse {
	if t == nil {
		return nil
	}

	return &TripResponse{
		ID:          t.ID,
		Origin:      t.Origin,
		Destination: t.Destination,
		Model:       t.Model,
		Color:       t.Color,
		Chassis:     t.Chassis,
		OrderNumber: t.OrderNumber,
		Status:      string(t.Status),
		CreatedAt:   t.CreatedAt,
	}
}

// FromDomainTripList конвертирует список domain моделей в DTO, сохраняя порядок
func FromDomainTripList(items []*domain.Trip) []TripResponse {
	resp := make([]TripResponse, 0, len(items))
	for _, item := range items {
		if t := FromDomainTrip(item); t != nil {
			resp = append(resp, *t)
		}
	}
	return resp
}
