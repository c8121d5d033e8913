package calculate_quote

import "github.com/m04kA/DLX-TourBookingService/internal/domain"

// Request модель запроса на расчёт стоимости
type Request struct {
	Selections domain.Selections // Выбранные услуги
	Adults     int               // Количество взрослых
	Children   int               // Количество детей
}

// Response модель ответа с расчётом стоимости
type Response struct {
	Breakdown domain.PriceBreakdown // Округлённый расчёт; UnknownServiceIDs не вошли в сумму
	Travelers int                   // Всего путешественников
}
