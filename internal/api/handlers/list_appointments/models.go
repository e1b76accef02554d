package list_appointments

import (
	"net/url"

	"github.com/m04kA/SMC-MotoAgenda/internal/service/appointments/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров (status, date - опционально)
func ToServiceRequest(query url.Values) *models.ListAppointmentsRequest {
	req := &models.ListAppointmentsRequest{}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}
	if date := query.Get("date"); date != "" {
		req.Date = &date
	}

	return req
}
