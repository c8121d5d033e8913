package wizard

import "errors"

var (
	// ErrUnknownService возвращается при выборе услуги, которой нет в каталоге
	ErrUnknownService = errors.New("wizard: unknown service")

	// ErrNotSelected возвращается при изменении количества невыбранной услуги
	ErrNotSelected = errors.New("wizard: service is not selected")

	// ErrUnknownAction возвращается для неизвестного типа действия
	ErrUnknownAction = errors.New("wizard: unknown action")

	// ErrInvalidAction возвращается, когда у действия нет обязательных полей
	ErrInvalidAction = errors.New("wizard: invalid action payload")
)
