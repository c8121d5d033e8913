// Package wizard implements the progressive booking form: the step list derived from
// form data and selected services, and a pure reducer over a serializable wizard state.
package wizard

import "github.com/m04kA/DLX-TourBookingService/internal/domain"

// FormData everything the traveler has typed into the wizard so far
type FormData struct {
	Trip            domain.TripDetails `json:"trip"`
	Customer        domain.Customer    `json:"customer"`
	Accommodation   AccommodationPrefs `json:"accommodation"`
	Transport       TransportPrefs     `json:"transport"`
	Guide           GuidePrefs         `json:"guide"`
	SpecialRequests string             `json:"specialRequests,omitempty"`
}

// AccommodationPrefs room preferences, only asked when an accommodation service is selected
type AccommodationPrefs struct {
	RoomType string `json:"roomType,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// TransportPrefs pickup details, required when a transport service is selected
type TransportPrefs struct {
	PickupLocation string `json:"pickupLocation,omitempty"`
	PickupTime     string `json:"pickupTime,omitempty"`
}

// GuidePrefs guide preferences
type GuidePrefs struct {
	Language string `json:"language,omitempty"`
}
