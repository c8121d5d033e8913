package create_booking

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/m04kA/DLX-TourBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, now time.Time) error {
	if err := req.Customer.Validate(); err != nil {
		return fmt.Errorf("%w: customer: %v", ErrInvalidInput, err)
	}

	if err := req.Trip.Validate(now); err != nil {
		return fmt.Errorf("%w: trip: %v", ErrInvalidInput, err)
	}

	if err := validateSelections(req.Selections); err != nil {
		return err
	}

	if req.SpecialRequests != nil && utf8.RuneCountInString(*req.SpecialRequests) > domain.MaxSpecialRequestsLength {
		return fmt.Errorf("%w: special requests longer than %d characters", ErrInvalidInput, domain.MaxSpecialRequestsLength)
	}

	return nil
}

// validateSelections проверяет, что выбрана хотя бы одна услуга и количество в допустимых пределах
func validateSelections(selections domain.Selections) error {
	if len(selections) == 0 {
		return fmt.Errorf("%w: at least one service must be selected", ErrInvalidInput)
	}

	for _, id := range selections.IDs() {
		item := selections[id]
		if item.Quantity < domain.MinQuantity || item.Quantity > domain.MaxQuantity {
			return fmt.Errorf("%w: quantity of %s must be between %d and %d",
				ErrInvalidInput, id, domain.MinQuantity, domain.MaxQuantity)
		}
	}

	return nil
}

// validateServices проверяет, что все выбранные услуги есть в каталоге, активны и вмещают группу
func validateServices(catalog domain.Catalog, selections domain.Selections, travelers int) error {
	for _, id := range selections.IDs() {
		service, ok := catalog.Lookup(id)
		if !ok {
			return fmt.Errorf("%w: %s", ErrServiceNotFound, id)
		}

		if !service.IsActive {
			return fmt.Errorf("%w: %s", ErrServiceUnavailable, id)
		}

		if service.MaxParticipants > 0 && travelers > service.MaxParticipants {
			return fmt.Errorf("%w: %s accepts at most %d travelers, got %d",
				ErrCapacityExceeded, id, service.MaxParticipants, travelers)
		}
	}

	return nil
}
