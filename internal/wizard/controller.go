package wizard

import (
	"fmt"
	"slices"
	"time"

	"github.com/m04kA/DLX-TourBookingService/internal/domain"
)

// ActionType kind of a wizard event
type ActionType string

const (
	ActionNext        ActionType = "next"
	ActionBack        ActionType = "back"
	ActionJump        ActionType = "jump"
	ActionUpdateForm  ActionType = "update_form"
	ActionSelect      ActionType = "select"
	ActionDeselect    ActionType = "deselect"
	ActionSetQuantity ActionType = "set_quantity"
)

// Action event dispatched to the wizard
type Action struct {
	Type      ActionType `json:"type"`
	Index     *int       `json:"index,omitempty"`
	Form      *FormData  `json:"form,omitempty"`
	ServiceID string     `json:"serviceId,omitempty"`
	Quantity  int        `json:"quantity,omitempty"`
}

// Outcome result of reducing one action
type Outcome string

const (
	OutcomeUpdated   Outcome = "updated"
	OutcomeAdvanced  Outcome = "advanced"
	OutcomeMoved     Outcome = "moved"
	OutcomeBlocked   Outcome = "blocked"
	OutcomeCompleted Outcome = "completed"
	OutcomeRejected  Outcome = "rejected"
)

// State serializable wizard state. CurrentIndex points into the visible steps
type State struct {
	CurrentIndex   int               `json:"currentIndex"`
	Visited        []StepID          `json:"visited"`
	ShowValidation bool              `json:"showValidation"`
	Completed      bool              `json:"completed"`
	Form           FormData          `json:"form"`
	Selections     domain.Selections `json:"selections"`
}

// NewState returns the state of a fresh wizard positioned on the first step
func NewState() State {
	return State{
		CurrentIndex: 0,
		Visited:      []StepID{StepServices},
		Form: FormData{
			Trip: domain.TripDetails{Adults: domain.MinAdults},
		},
		Selections: domain.Selections{},
	}
}

func (s State) clone() State {
	out := s
	out.Visited = slices.Clone(s.Visited)
	out.Selections = s.Selections.Clone()
	return out
}

// HasVisited reports whether the step has ever been current
func (s State) HasVisited(id StepID) bool {
	return slices.Contains(s.Visited, id)
}

func (s *State) markVisited(id StepID) {
	if !s.HasVisited(id) {
		s.Visited = append(s.Visited, id)
	}
}

// Machine wizard reducer bound to a catalog snapshot and the current date
type Machine struct {
	catalog domain.Catalog
	today   time.Time
}

// NewMachine creates a reducer
func NewMachine(catalog domain.Catalog, today time.Time) *Machine {
	return &Machine{catalog: catalog, today: today}
}

// Steps evaluates all steps for the state, hidden ones included
func (m *Machine) Steps(state State) []Step {
	selected, _ := SelectedServices(state.Selections, m.catalog)
	return BuildSteps(state.Form, selected, m.today)
}

// Reduce applies an action and returns the next state.
// The input state is never modified. Validation failures of navigation are reported
// through the outcome; malformed actions and unknown services return an error with the state unchanged
func (m *Machine) Reduce(state State, action Action) (State, Outcome, error) {
	next := state.clone()
	if next.Selections == nil {
		next.Selections = domain.Selections{}
	}
	m.normalize(&next)

	var outcome Outcome

	switch action.Type {
	case ActionNext:
		outcome = m.next(&next)
	case ActionBack:
		next.CurrentIndex = max(0, next.CurrentIndex-1)
		next.ShowValidation = false
		next.Completed = false
		outcome = OutcomeMoved
	case ActionJump:
		if action.Index == nil {
			return state, "", fmt.Errorf("%w: jump requires index", ErrInvalidAction)
		}
		outcome = m.jump(&next, *action.Index)
	case ActionUpdateForm:
		if action.Form == nil {
			return state, "", fmt.Errorf("%w: update_form requires form", ErrInvalidAction)
		}
		if err := checkPartySize(action.Form.Trip); err != nil {
			return state, "", err
		}
		next.Form = *action.Form
		next.Selections = RefreshParticipants(next.Selections, next.Form.Trip.Travelers())
		next.Completed = false
		outcome = OutcomeUpdated
	case ActionSelect:
		sel, err := Select(next.Selections, m.catalog, action.ServiceID, next.Form.Trip.Travelers())
		if err != nil {
			return state, "", err
		}
		next.Selections = sel
		next.Completed = false
		outcome = OutcomeUpdated
	case ActionDeselect:
		if action.ServiceID == "" {
			return state, "", fmt.Errorf("%w: deselect requires serviceId", ErrInvalidAction)
		}
		next.Selections = Deselect(next.Selections, action.ServiceID)
		next.Completed = false
		outcome = OutcomeUpdated
	case ActionSetQuantity:
		sel, err := SetQuantity(next.Selections, action.ServiceID, action.Quantity)
		if err != nil {
			return state, "", err
		}
		next.Selections = sel
		next.Completed = false
		outcome = OutcomeUpdated
	default:
		return state, "", fmt.Errorf("%w: %q", ErrUnknownAction, action.Type)
	}

	m.normalize(&next)
	return next, outcome, nil
}

func (m *Machine) next(state *State) Outcome {
	visible := VisibleSteps(m.Steps(*state))
	current := visible[state.CurrentIndex]

	if current.Required && !current.Valid {
		state.ShowValidation = true
		return OutcomeBlocked
	}

	state.ShowValidation = false
	if state.CurrentIndex == len(visible)-1 {
		state.Completed = true
		return OutcomeCompleted
	}

	state.CurrentIndex++
	return OutcomeAdvanced
}

func (m *Machine) jump(state *State, index int) Outcome {
	visible := VisibleSteps(m.Steps(*state))
	if index < 0 || index >= len(visible) {
		return OutcomeRejected
	}

	if !state.HasVisited(visible[index].ID) && index > state.CurrentIndex+1 {
		return OutcomeRejected
	}

	state.CurrentIndex = index
	state.ShowValidation = false
	state.Completed = false
	return OutcomeMoved
}

// checkPartySize rejects headcounts outside the bookable range.
// Dates stay unchecked here: an incomplete trip is normal while the form is being filled
func checkPartySize(trip domain.TripDetails) error {
	if trip.Adults < domain.MinAdults || trip.Adults > domain.MaxAdults {
		return fmt.Errorf("%w: adults must be between %d and %d", ErrInvalidAction, domain.MinAdults, domain.MaxAdults)
	}
	if trip.Children < domain.MinChildren || trip.Children > domain.MaxChildren {
		return fmt.Errorf("%w: children must be between %d and %d", ErrInvalidAction, domain.MinChildren, domain.MaxChildren)
	}
	return nil
}

// normalize clamps the index into the visible steps and records the current step as visited
func (m *Machine) normalize(state *State) {
	visible := VisibleSteps(m.Steps(*state))
	state.CurrentIndex = min(max(state.CurrentIndex, 0), len(visible)-1)
	state.markVisited(visible[state.CurrentIndex].ID)
}
