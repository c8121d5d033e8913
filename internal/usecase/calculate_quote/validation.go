package calculate_quote

import (
	"fmt"

	"github.com/m04kA/DLX-TourBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Даты поездки для расчёта не нужны, проверяется только состав группы и количество
func validateRequest(req *Request) error {
	if req.Adults < domain.MinAdults || req.Adults > domain.MaxAdults {
		return fmt.Errorf("%w: adults must be between %d and %d", ErrInvalidInput, domain.MinAdults, domain.MaxAdults)
	}

	if req.Children < domain.MinChildren || req.Children > domain.MaxChildren {
		return fmt.Errorf("%w: children must be between %d and %d", ErrInvalidInput, domain.MinChildren, domain.MaxChildren)
	}

	for _, id := range req.Selections.IDs() {
		q := req.Selections[id].Quantity
		if q < domain.MinQuantity || q > domain.MaxQuantity {
			return fmt.Errorf("%w: quantity of %s must be between %d and %d",
				ErrInvalidInput, id, domain.MinQuantity, domain.MaxQuantity)
		}
	}

	return nil
}
