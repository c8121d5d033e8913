package booking_wizard

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("booking_wizard: session not found")

	// ErrInvalidAction возвращается при некорректном действии мастера
	ErrInvalidAction = errors.New("booking_wizard: invalid action")

	// ErrAlreadySubmitted возвращается при попытке изменить или повторно отправить сессию
	ErrAlreadySubmitted = errors.New("booking_wizard: session already submitted")

	// ErrNotCompleted возвращается при отправке незавершённого мастера
	ErrNotCompleted = errors.New("booking_wizard: wizard is not completed")

	// ErrSubmitFailed возвращается, когда бронирование не удалось создать; данные формы сохраняются
	ErrSubmitFailed = errors.New("booking_wizard: submission failed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("booking_wizard: internal error")
)
