package domain

// PriceLine priced entry for one selected service
type PriceLine struct {
	ServiceID string  `json:"serviceId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	LineTotal float64 `json:"lineTotal"`
	IsPackage bool    `json:"isPackage"`
}

// PriceBreakdown derived totals for a selection. Never stored as the source of truth:
// amounts are unrounded, rounding happens at presentation time
type PriceBreakdown struct {
	Lines            []PriceLine
	Subtotal         float64
	GroupDiscount    float64
	ChildrenDiscount float64
	FinalTotal       float64

	// UnknownServiceIDs selected ids that were not found in the catalog and were left out of the totals
	UnknownServiceIDs []string
}

// HasUnknownServices returns true if some selected ids were skipped
func (b *PriceBreakdown) HasUnknownServices() bool {
	return len(b.UnknownServiceIDs) > 0
}

// TotalDiscount returns the sum of all discounts
func (b *PriceBreakdown) TotalDiscount() float64 {
	return b.GroupDiscount + b.ChildrenDiscount
}
