package models

import (
	"time"

	"github.com/m04kA/SMC-MotoAgenda/internal/domain"
)

// Request модели

// ListAppointmentsRequest запрос на получение списка записей
type ListAppointmentsRequest struct {
	Status *string `json:"status,omitempty"` // Фильтр по статусу (опционально)
	Date   *string `json:"date,omitempty"`   // Фильтр по дате выдачи YYYY-MM-DD (опционально)
}

// UpdateStatusRequest запрос на смену статуса записи
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customerName"`
	Phone        string    `json:"phone"`
	Model        string    `json:"model"`
	Color        string    `json:"color"`
	Chassis      string    `json:"chassis"`
	OrderNumber  string    `json:"orderNumber"`
	PickupDate   string    `json:"pickupDate"` // "2024-01-03"
	PickupTime   string    `json:"pickupTime"` // "09:00"
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`

	WhatsAppLink *string `json:"whatsappLink,omitempty"`
}

// Counts счетчики по статусам
type Counts struct {
	Pending   int `json:"pending"`
	Delivered int `json:"delivered"`
	Total     int `json:"total"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Counts       Counts                `json:"counts"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:           a.ID,
		CustomerName: a.CustomerName,
		Phone:        a.Phone,
		Model:        a.Model,
		Color:        a.Color,
		Chassis:      a.Chassis,
		OrderNumber:  a.OrderNumber,
		PickupDate:   a.PickupDate.String(),
		PickupTime:   a.PickupTime.String(),
		Status:       string(a.Status),
		CreatedAt:    a.CreatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO.
// Порядок элементов сохраняется.
func FromDomainAppointmentList(items []*domain.Appointment, counts Counts) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(items)),
		Counts:       counts,
	}

	for _, item := range items {
		if a := FromDomainAppointment(item); a != nil {
			resp.Appointments = append(resp.Appointments, *a)
		}
	}

	return resp
}
