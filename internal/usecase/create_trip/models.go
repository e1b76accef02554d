package create_trip

import "time"

// Request модель формы поездки между филиалами
type Request struct {
	Origin           string // Филиал отправления или "Outro"
	OriginOther      string // Место отправления, если выбрано "Outro"
	Destination      string // Филиал назначения или "Outro"
	DestinationOther string // Место назначения, если выбрано "Outro"
	Model            string
	Color            string
	Chassis          string
	OrderNumber      string
}

// Response модель ответа с созданной поездкой
type Response struct {
	ID          string
	Origin      string
	Destination string
	Model       string
	Color       string
	Chassis     string
	OrderNumber string
	Status      string
	CreatedAt   time.Time
}
