// Package pricing derives price breakdowns from a selection of catalog services and trip details.
// All functions are pure; amounts are kept unrounded and rounded only for presentation (Round2).
package pricing

import (
	"math"

	"github.com/m04kA/DLX-TourBookingService/internal/domain"
)

// Engine price calculator. Package services are priced per traveler
type Engine struct {
	packageIDs map[string]struct{}
}

// NewEngine creates an engine treating the given service ids as packages.
// With no ids, domain.DefaultPackageServiceIDs is used
func NewEngine(packageServiceIDs []string) *Engine {
	if len(packageServiceIDs) == 0 {
		packageServiceIDs = domain.DefaultPackageServiceIDs
	}

	ids := make(map[string]struct{}, len(packageServiceIDs))
	for _, id := range packageServiceIDs {
		ids[id] = struct{}{}
	}

	return &Engine{packageIDs: ids}
}

// IsPackage reports whether the service is priced per traveler
func (e *Engine) IsPackage(serviceID string) bool {
	_, ok := e.packageIDs[serviceID]
	return ok
}

// ComputeLineTotal prices one selected service.
// Package: basePrice*adults + children*basePrice*0.7, quantity ignored.
// Otherwise: basePrice*quantity.
// Negative headcounts and quantities count as zero, so a line is never negative
func (e *Engine) ComputeLineTotal(service domain.Service, item domain.SelectionItem, trip domain.TripDetails) float64 {
	if e.IsPackage(service.ID) {
		adults := service.BasePrice * float64(max(0, trip.Adults))
		children := float64(max(0, trip.Children)) * service.BasePrice * domain.ChildPackageRate
		return adults + children
	}
	return service.BasePrice * float64(max(0, item.Quantity))
}

// ComputeBreakdown prices the whole selection.
// Lines are ordered by service id so the result does not depend on map iteration order.
// Ids missing from the catalog are skipped and reported in UnknownServiceIDs
func (e *Engine) ComputeBreakdown(catalog domain.Catalog, selections domain.Selections, trip domain.TripDetails) domain.PriceBreakdown {
	breakdown := domain.PriceBreakdown{
		Lines: make([]domain.PriceLine, 0, len(selections)),
	}

	var childrenDiscount float64
	children := max(0, trip.Children)
	travelers := max(0, trip.Adults) + children

	for _, id := range selections.IDs() {
		service, ok := catalog.Lookup(id)
		if !ok {
			breakdown.UnknownServiceIDs = append(breakdown.UnknownServiceIDs, id)
			continue
		}

		item := selections[id]
		isPackage := e.IsPackage(service.ID)
		lineTotal := e.ComputeLineTotal(service, item, trip)

		breakdown.Lines = append(breakdown.Lines, domain.PriceLine{
			ServiceID: service.ID,
			Name:      service.Name,
			Quantity:  item.Quantity,
			UnitPrice: service.BasePrice,
			LineTotal: lineTotal,
			IsPackage: isPackage,
		})
		breakdown.Subtotal += lineTotal

		if isPackage && children > 0 {
			childrenDiscount += float64(children) * service.BasePrice * domain.ChildrenDiscountRate
		}
	}

	// Обе скидки считаются от одного subtotal и не компаундируются
	if travelers > domain.GroupDiscountThreshold {
		breakdown.GroupDiscount = breakdown.Subtotal * domain.GroupDiscountRate
	}
	breakdown.ChildrenDiscount = childrenDiscount

	breakdown.FinalTotal = math.Max(0, breakdown.Subtotal-breakdown.GroupDiscount-breakdown.ChildrenDiscount)

	return breakdown
}

// Round2 rounds an amount to 2 decimal places for presentation
func Round2(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// RoundBreakdown returns a copy of the breakdown with every amount rounded to 2 decimals
func RoundBreakdown(b domain.PriceBreakdown) domain.PriceBreakdown {
	out := b
	out.Lines = make([]domain.PriceLine, len(b.Lines))
	for i, line := range b.Lines {
		line.UnitPrice = Round2(line.UnitPrice)
		line.LineTotal = Round2(line.LineTotal)
		out.Lines[i] = line
	}
	out.Subtotal = Round2(b.Subtotal)
	out.GroupDiscount = Round2(b.GroupDiscount)
	out.ChildrenDiscount = Round2(b.ChildrenDiscount)
	out.FinalTotal = Round2(b.FinalTotal)
	return out
}
