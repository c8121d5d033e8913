package create_booking

import "errors"

var (
	// ErrServiceNotFound возвращается, когда выбранной услуги нет в каталоге
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrServiceUnavailable возвращается, когда выбранная услуга снята с продажи
	ErrServiceUnavailable = errors.New("create_booking: service is not available")

	// ErrCapacityExceeded возвращается, когда группа больше вместимости услуги
	ErrCapacityExceeded = errors.New("create_booking: too many travelers for service")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
