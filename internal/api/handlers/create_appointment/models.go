package create_appointment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	createAppointment "github.com/m04kA/SMC-MotoAgenda/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-MotoAgenda/pkg/types"
)

var (
	errInvalidDate = errors.New("invalid pickup date")
	errInvalidTime = errors.New("invalid pickup time")
)

// CreateAppointmentRequest HTTP request model.
// Пустые pickupDate/pickupTime допустимы: их отсутствие сообщит валидация формы.
type CreateAppointmentRequest struct {
	Name        string `json:"name"`
	Surname     string `json:"surname"`
	Phone       string `json:"phone"`
	Model       string `json:"model"`
	Color       string `json:"color"`
	Chassis     string `json:"chassis"`
	OrderNumber string `json:"orderNumber"`
	PickupDate  string `json:"pickupDate"` // "2024-01-03"
	PickupTime  string `json:"pickupTime"` // "09:00"
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customerName"`
	Phone        string    `json:"phone"`
	Model        string    `json:"model"`
	Color        string    `json:"color"`
	Chassis      string    `json:"chassis"`
	OrderNumber  string    `json:"orderNumber"`
	PickupDate   string    `json:"pickupDate"`
	PickupTime   string    `json:"pickupTime"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	Notified     bool      `json:"notified"`
}

// SlotConflictResponse тело ответа 409 со свежим списком свободных слотов
type SlotConflictResponse struct {
	Error          string   `json:"error"`
	Date           string   `json:"date"`
	Time           string   `json:"time"`
	AvailableSlots []string `json:"availableSlots"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	req := &createAppointment.Request{
		Name:        r.Name,
		Surname:     r.Surname,
		Phone:       r.Phone,
		Model:       r.Model,
		Color:       r.Color,
		Chassis:     r.Chassis,
		OrderNumber: r.OrderNumber,
	}

	if dateStr := strings.TrimSpace(r.PickupDate); dateStr != "" {
		date, err := types.ParseDate(dateStr)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errInvalidDate, err)
		}
		req.PickupDate = date
	}

	if timeStr := strings.TrimSpace(r.PickupTime); timeStr != "" {
		t, err := types.NewTimeStringFromString(timeStr)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errInvalidTime, err)
		}
		req.PickupTime = t
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:           resp.ID,
		CustomerName: resp.CustomerName,
		Phone:        resp.Phone,
		Model:        resp.Model,
		Color:        resp.Color,
		Chassis:      resp.Chassis,
		OrderNumber:  resp.OrderNumber,
		PickupDate:   resp.PickupDate.String(),
		PickupTime:   resp.PickupTime.String(),
		Status:       resp.Status,
		CreatedAt:    resp.CreatedAt,
		Notified:     resp.Notified,
	}
}

// FromSlotConflict формирует тело ответа 409
func FromSlotConflict(message string, conflict *createAppointment.SlotConflictError) *SlotConflictResponse {
	slots := make([]string, len(conflict.AvailableSlots))
	for i, slot := range conflict.AvailableSlots {
		slots[i] = slot.String()
	}

	return &SlotConflictResponse{
		Error:          message,
		Date:           conflict.Date.String(),
		Time:           conflict.Time.String(),
		AvailableSlots: slots,
	}
}
