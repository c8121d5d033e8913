package handlers

import (
	"fmt"
	"time"

	"github.com/m04kA/DLX-TourBookingService/internal/domain"
)

// TripRequest даты и состав группы в HTTP запросе
type TripRequest struct {
	StartDate *string `json:"startDate,omitempty"` // "2025-09-05"
	EndDate   *string `json:"endDate,omitempty"`   // "2025-09-12"
	Adults    int     `json:"adults"`
	Children  int     `json:"children"`
}

// ToDomain парсит даты формата YYYY-MM-DD
func (r TripRequest) ToDomain() (domain.TripDetails, error) {
	trip := domain.TripDetails{Adults: r.Adults, Children: r.Children}

	var err error
	if trip.StartDate, err = parseOptionalDate(r.StartDate); err != nil {
		return trip, fmt.Errorf("startDate: %w", err)
	}
	if trip.EndDate, err = parseOptionalDate(r.EndDate); err != nil {
		return trip, fmt.Errorf("endDate: %w", err)
	}
	return trip, nil
}

// TripResponse даты и состав группы в HTTP ответе
type TripResponse struct {
	StartDate *string `json:"startDate,omitempty"`
	EndDate   *string `json:"endDate,omitempty"`
	Adults    int     `json:"adults"`
	Children  int     `json:"children"`
}

// FromDomainTrip конвертирует domain модель в DTO
func FromDomainTrip(t domain.TripDetails) TripResponse {
	return TripResponse{
		StartDate: formatOptionalDate(t.StartDate),
		EndDate:   formatOptionalDate(t.EndDate),
		Adults:    t.Adults,
		Children:  t.Children,
	}
}

// PriceLineResponse строка расчёта
type PriceLineResponse struct {
	ServiceID string  `json:"serviceId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	LineTotal float64 `json:"lineTotal"`
	IsPackage bool    `json:"isPackage"`
}

// BreakdownResponse расчёт стоимости (суммы уже округлены)
type BreakdownResponse struct {
	Lines             []PriceLineResponse `json:"lines"`
	Subtotal          float64             `json:"subtotal"`
	GroupDiscount     float64             `json:"groupDiscount"`
	ChildrenDiscount  float64             `json:"childrenDiscount"`
	TotalDiscount     float64             `json:"totalDiscount"`
	FinalTotal        float64             `json:"finalTotal"`
	UnknownServiceIDs []string            `json:"unknownServiceIds,omitempty"`
}

// FromDomainBreakdown конвертирует расчёт в DTO
func FromDomainBreakdown(b domain.PriceBreakdown) BreakdownResponse {
	lines := make([]PriceLineResponse, 0, len(b.Lines))
	for _, l := range b.Lines {
		lines = append(lines, PriceLineResponse{
			ServiceID: l.ServiceID,
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			LineTotal: l.LineTotal,
			IsPackage: l.IsPackage,
		})
	}

	return BreakdownResponse{
		Lines:             lines,
		Subtotal:          b.Subtotal,
		GroupDiscount:     b.GroupDiscount,
		ChildrenDiscount:  b.ChildrenDiscount,
		TotalDiscount:     b.TotalDiscount(),
		FinalTotal:        b.FinalTotal,
		UnknownServiceIDs: b.UnknownServiceIDs,
	}
}

func parseOptionalDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := time.Parse(domain.DateFormat, *value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func formatOptionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(domain.DateFormat)
	return &s
}
