package get_available_slots

import (
	"github.com/m04kA/SMC-MotoAgenda/pkg/types"
)

// Request модель запроса на получение свободных слотов
type Request struct {
	Date types.Date // Дата выдачи
}

// Response модель ответа со списком свободных слотов
type Response struct {
	Date   types.Date         // Дата, на которую запрашивались слоты
	Closed bool               // Магазин закрыт в этот день (воскресенье)
	Slots  []types.TimeString // Свободные слоты в хронологическом порядке
}
