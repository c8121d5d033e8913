package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")

	// ErrEncodeServices возвращается, когда не удалось сериализовать или разобрать список услуг
	ErrEncodeServices = errors.New("booking.repository: failed to encode services")

	// ErrNothingToUpdate возвращается, когда в UpdateStatus не передано ни одного поля
	ErrNothingToUpdate = errors.New("booking.repository: nothing to update")
)
