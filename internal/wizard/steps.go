package wizard

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/DLX-TourBookingService/internal/domain"
)

// StepID identifier of a wizard step
type StepID string

const (
	StepServices        StepID = "services"
	StepTripDetails     StepID = "trip-details"
	StepAccommodation   StepID = "accommodation"
	StepTransport       StepID = "transport"
	StepGuide           StepID = "guide"
	StepContact         StepID = "contact"
	StepSpecialRequests StepID = "special-requests"
)

// Step one wizard step evaluated against the current form data and selection
type Step struct {
	ID       StepID
	Title    string
	Required bool
	Visible  bool
	Valid    bool
}

type stepDef struct {
	id       StepID
	title    string
	required bool
	visible  func(form FormData, selected []domain.Service) bool
	valid    func(form FormData, selected []domain.Service, today time.Time) bool
}

var stepDefs = []stepDef{
	{
		id:       StepServices,
		title:    "Select services",
		required: true,
		visible:  always,
		valid: func(_ FormData, selected []domain.Service, _ time.Time) bool {
			return len(selected) > 0
		},
	},
	{
		id:       StepTripDetails,
		title:    "Trip details",
		required: true,
		visible:  always,
		valid: func(form FormData, _ []domain.Service, today time.Time) bool {
			return form.Trip.Validate(today) == nil
		},
	},
	{
		id:       StepAccommodation,
		title:    "Accommodation preferences",
		required: false,
		visible:  hasCategory(domain.CategoryAccommodation),
		valid:    alwaysValid,
	},
	{
		id:       StepTransport,
		title:    "Transport",
		required: true,
		visible:  hasCategory(domain.CategoryTransport),
		valid: func(form FormData, _ []domain.Service, _ time.Time) bool {
			return strings.TrimSpace(form.Transport.PickupLocation) != ""
		},
	},
	{
		id:       StepGuide,
		title:    "Guide preferences",
		required: false,
		visible:  hasCategory(domain.CategoryGuide),
		valid:    alwaysValid,
	},
	{
		id:       StepContact,
		title:    "Contact information",
		required: true,
		visible:  always,
		valid: func(form FormData, _ []domain.Service, _ time.Time) bool {
			return form.Customer.Validate() == nil
		},
	},
	{
		id:       StepSpecialRequests,
		title:    "Special requests",
		required: false,
		visible:  always,
		valid: func(form FormData, _ []domain.Service, _ time.Time) bool {
			return utf8.RuneCountInString(form.SpecialRequests) <= domain.MaxSpecialRequestsLength
		},
	},
}

func always(FormData, []domain.Service) bool { return true }

func alwaysValid(FormData, []domain.Service, time.Time) bool { return true }

func hasCategory(category domain.ServiceCategory) func(FormData, []domain.Service) bool {
	return func(_ FormData, selected []domain.Service) bool {
		for _, svc := range selected {
			if svc.Category == category {
				return true
			}
		}
		return false
	}
}

// BuildSteps evaluates every step against the given data, in wizard order.
// Hidden steps are included with Visible=false
func BuildSteps(form FormData, selected []domain.Service, today time.Time) []Step {
	steps := make([]Step, 0, len(stepDefs))
	for _, def := range stepDefs {
		steps = append(steps, Step{
			ID:       def.id,
			Title:    def.title,
			Required: def.required,
			Visible:  def.visible(form, selected),
			Valid:    def.valid(form, selected, today),
		})
	}
	return steps
}

// VisibleSteps filters the steps taking part in navigation
func VisibleSteps(steps []Step) []Step {
	visible := make([]Step, 0, len(steps))
	for _, s := range steps {
		if s.Visible {
			visible = append(visible, s)
		}
	}
	return visible
}

// FirstInvalidRequired returns the first visible required step that does not validate
func FirstInvalidRequired(steps []Step) (Step, bool) {
	for _, s := range steps {
		if s.Visible && s.Required && !s.Valid {
			return s, true
		}
	}
	return Step{}, false
}
