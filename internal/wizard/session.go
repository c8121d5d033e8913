package wizard

import "time"

// Session a wizard state persisted between requests
type Session struct {
	ID               string    `json:"id"`
	State            State     `json:"state"`
	BookingID        string    `json:"bookingId,omitempty"`
	BookingReference string    `json:"bookingReference,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// IsSubmitted reports whether a booking has already been created from this session
func (s *Session) IsSubmitted() bool {
	return s.BookingID != ""
}
