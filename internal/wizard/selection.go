package wizard

import (
	"fmt"

	"github.com/m04kA/DLX-TourBookingService/internal/domain"
)

// Select adds a service to the selection with quantity 1.
// Re-selecting an already selected service keeps the existing item
func Select(sel domain.Selections, catalog domain.Catalog, serviceID string, travelers int) (domain.Selections, error) {
	if _, ok := catalog.Lookup(serviceID); !ok {
		return sel, fmt.Errorf("%w: %s", ErrUnknownService, serviceID)
	}

	out := sel.Clone()
	if _, ok := out[serviceID]; ok {
		return out, nil
	}

	out[serviceID] = domain.SelectionItem{
		Quantity:     domain.MinQuantity,
		Participants: max(1, travelers),
	}
	return out, nil
}

// RefreshParticipants sets the participant count of every selected service to the current headcount
func RefreshParticipants(sel domain.Selections, travelers int) domain.Selections {
	out := sel.Clone()
	for id, item := range out {
		item.Participants = max(1, travelers)
		out[id] = item
	}
	return out
}

// Deselect removes a service from the selection. Removing an unselected service is a no-op
func Deselect(sel domain.Selections, serviceID string) domain.Selections {
	out := sel.Clone()
	delete(out, serviceID)
	return out
}

// SetQuantity changes the quantity of a selected service, clamped to [MinQuantity, MaxQuantity]
func SetQuantity(sel domain.Selections, serviceID string, quantity int) (domain.Selections, error) {
	item, ok := sel[serviceID]
	if !ok {
		return sel, fmt.Errorf("%w: %s", ErrNotSelected, serviceID)
	}

	out := sel.Clone()
	item.Quantity = ClampQuantity(quantity)
	out[serviceID] = item
	return out, nil
}

// ClampQuantity bounds a quantity to [MinQuantity, MaxQuantity]
func ClampQuantity(quantity int) int {
	return min(max(quantity, domain.MinQuantity), domain.MaxQuantity)
}

// SelectedServices resolves selected ids against the catalog, in id order.
// Ids missing from the catalog are returned separately
func SelectedServices(sel domain.Selections, catalog domain.Catalog) ([]domain.Service, []string) {
	services := make([]domain.Service, 0, len(sel))
	var unknown []string
	for _, id := range sel.IDs() {
		svc, ok := catalog.Lookup(id)
		if !ok {
			unknown = append(unknown, id)
			continue
		}
		services = append(services, svc)
	}
	return services, unknown
}
