package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-MotoAgenda/pkg/types"
)

// Request модель формы записи на выдачу мотоцикла
type Request struct {
	Name        string           // Имя клиента
	Surname     string           // Фамилия клиента
	Phone       string           // Телефон как ввел пользователь
	Model       string           // Модель мотоцикла
	Color       string           // Цвет
	Chassis     string           // Номер шасси
	OrderNumber string           // Номер заказа
	PickupDate  types.Date       // Дата выдачи (пустая, если не выбрана)
	PickupTime  types.TimeString // Время выдачи (пустое, если не выбрано)
}

// Response модель ответа с созданной записью
type Response struct {
	ID           string
	CustomerName string
	Phone        string
	Model        string
	Color        string
	Chassis      string
	OrderNumber  string
	PickupDate   types.Date
	PickupTime   types.TimeString
	Status       string
	CreatedAt    time.Time
	Notified     bool // Подтверждение отправлено в WhatsApp
}
