package list_bookings

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/m04kA/DLX-TourBookingService/internal/service/bookings/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(query url.Values) (*models.ListBookingsRequest, error) {
	req := &models.ListBookingsRequest{
		IncludeInactive: false, // По умолчанию без отменённых
	}

	req.Status = optional(query.Get("status"))
	req.PaymentStatus = optional(query.Get("paymentStatus"))
	req.StartDateFrom = optional(query.Get("from"))
	req.StartDateTo = optional(query.Get("to"))
	req.Search = optional(query.Get("search"))

	// Парсим includeInactive если указан
	if s := query.Get("includeInactive"); s != "" {
		includeInactive, err := strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("invalid includeInactive value: %w", err)
		}
		req.IncludeInactive = includeInactive
	}

	// Парсим пагинацию если указана
	if s := query.Get("limit"); s != "" {
		limit, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid limit value: %w", err)
		}
		req.Limit = limit
	}
	if s := query.Get("offset"); s != "" {
		offset, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid offset value: %w", err)
		}
		req.Offset = offset
	}

	return req, nil
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
