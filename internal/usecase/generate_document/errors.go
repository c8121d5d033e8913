package generate_document

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("generate_document: booking not found")

	// ErrInvalidKind возвращается для неизвестного типа документа
	ErrInvalidKind = errors.New("generate_document: unknown document kind")

	// ErrNotAllowed возвращается, когда статус бронирования не допускает выпуск документа
	ErrNotAllowed = errors.New("generate_document: document not available for booking status")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("generate_document: internal error")
)
