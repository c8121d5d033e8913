package wizard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DLX-TourBookingService/internal/domain"
)

var today = time.Date(2025, 8, 30, 10, 0, 0, 0, time.UTC)

func testCatalog() domain.Catalog {
	return domain.NewCatalog([]*domain.Service{
		{ID: "classic-island-package", Name: "Classic Island", BasePrice: 100, Category: domain.CategoryActivity, MaxParticipants: 20, IsActive: true},
		{ID: "hotel", Name: "Hotel", BasePrice: 80, Category: domain.CategoryAccommodation, MaxParticipants: 4, IsActive: true},
		{ID: "bus", Name: "Bus", BasePrice: 20, Category: domain.CategoryTransport, MaxParticipants: 40, IsActive: true},
		{ID: "guide", Name: "Guide", BasePrice: 60, Category: domain.CategoryGuide, MaxParticipants: 15, IsActive: true},
	})
}

func newMachine() *Machine {
	return NewMachine(testCatalog(), today)
}

func validTrip() domain.TripDetails {
	start := time.Date(2025, 9, 5, 0, 0, 0, 0, time.UTC)
	return domain.TripDetails{StartDate: &start, Adults: 2}
}

func validForm() FormData {
	return FormData{
		Trip:     validTrip(),
		Customer: domain.Customer{Name: "Ana", Email: "ana@example.com", Phone: "+351912345678"},
	}
}

func mustReduce(t *testing.T, m *Machine, state State, action Action) (State, Outcome) {
	t.Helper()
	next, outcome, err := m.Reduce(state, action)
	require.NoError(t, err)
	return next, outcome
}

func stepIDs(v View) []StepID {
	ids := make([]StepID, 0, len(v.Steps))
	for _, s := range v.Steps {
		ids = append(ids, s.ID)
	}
	return ids
}

func jump(i int) Action {
	return Action{Type: ActionJump, Index: &i}
}

func TestNewState_View(t *testing.T) {
	m := newMachine()

	v := m.View(NewState())

	assert.Equal(t, []StepID{StepServices, StepTripDetails, StepContact, StepSpecialRequests}, stepIDs(v))
	assert.Equal(t, StepServices, v.CurrentStep)
	assert.InDelta(t, 25.0, v.Progress, 1e-9)
	assert.False(t, v.CanGoBack)
	assert.True(t, v.Steps[0].Visited)
	assert.False(t, v.Steps[0].Completed)
}

func TestNext_BlockedOnInvalidRequiredStep(t *testing.T) {
	m := newMachine()

	next, outcome := mustReduce(t, m, NewState(), Action{Type: ActionNext})

	assert.Equal(t, OutcomeBlocked, outcome)
	assert.Equal(t, 0, next.CurrentIndex)
	assert.True(t, next.ShowValidation)
}

func TestNext_AdvancesAndMarksVisited(t *testing.T) {
	m := newMachine()
	state, _ := mustReduce(t, m, NewState(), Action{Type: ActionNext})
	state, _ = mustReduce(t, m, state, Action{Type: ActionSelect, ServiceID: "classic-island-package"})

	state, outcome := mustReduce(t, m, state, Action{Type: ActionNext})

	assert.Equal(t, OutcomeAdvanced, outcome)
	assert.Equal(t, 1, state.CurrentIndex)
	assert.False(t, state.ShowValidation)
	assert.Equal(t, []StepID{StepServices, StepTripDetails}, state.Visited)
}

func TestNext_OptionalStepNeverBlocks(t *testing.T) {
	m := newMachine()
	state := NewState()
	state.Form = validForm()
	state.Selections = domain.Selections{"hotel": {Quantity: 1, Participants: 2}}
	state.CurrentIndex = 2

	next, outcome := mustReduce(t, m, state, Action{Type: ActionNext})

	assert.Equal(t, OutcomeAdvanced, outcome)
	assert.Equal(t, StepContact, m.View(next).CurrentStep)
}

func TestJump(t *testing.T) {
	m := newMachine()
	state := NewState()
	state.Selections = domain.Selections{"classic-island-package": {Quantity: 1}}
	state, _ = mustReduce(t, m, state, Action{Type: ActionNext})
	require.Equal(t, 1, state.CurrentIndex)

	t.Run("two ahead and unvisited is rejected", func(t *testing.T) {
		next, outcome := mustReduce(t, m, state, jump(3))
		assert.Equal(t, OutcomeRejected, outcome)
		assert.Equal(t, 1, next.CurrentIndex)
	})

	t.Run("one ahead is allowed even when current is invalid", func(t *testing.T) {
		next, outcome := mustReduce(t, m, state, jump(2))
		assert.Equal(t, OutcomeMoved, outcome)
		assert.Equal(t, 2, next.CurrentIndex)
		assert.True(t, next.HasVisited(StepContact))
	})

	t.Run("back to a visited step", func(t *testing.T) {
		next, outcome := mustReduce(t, m, state, jump(0))
		assert.Equal(t, OutcomeMoved, outcome)
		assert.Equal(t, 0, next.CurrentIndex)

		again, outcome := mustReduce(t, m, next, jump(1))
		assert.Equal(t, OutcomeMoved, outcome)
		assert.Equal(t, 1, again.CurrentIndex)
	})

	t.Run("visited step further ahead is allowed", func(t *testing.T) {
		ahead, _ := mustReduce(t, m, state, jump(2))
		ahead, _ = mustReduce(t, m, ahead, jump(3))
		start, _ := mustReduce(t, m, ahead, jump(0))

		next, outcome := mustReduce(t, m, start, jump(3))
		assert.Equal(t, OutcomeMoved, outcome)
		assert.Equal(t, 3, next.CurrentIndex)
	})

	t.Run("out of range is rejected", func(t *testing.T) {
		_, outcome := mustReduce(t, m, state, jump(-1))
		assert.Equal(t, OutcomeRejected, outcome)

		_, outcome = mustReduce(t, m, state, jump(42))
		assert.Equal(t, OutcomeRejected, outcome)
	})
}

func TestBack_FloorsAtZero(t *testing.T) {
	m := newMachine()

	next, outcome := mustReduce(t, m, NewState(), Action{Type: ActionBack})

	assert.Equal(t, OutcomeMoved, outcome)
	assert.Equal(t, 0, next.CurrentIndex)
}

func TestVisibility_FollowsSelectedCategories(t *testing.T) {
	m := newMachine()
	state := NewState()

	for _, id := range []string{"hotel", "bus", "guide"} {
		state, _ = mustReduce(t, m, state, Action{Type: ActionSelect, ServiceID: id})
	}

	assert.Equal(t, []StepID{
		StepServices, StepTripDetails, StepAccommodation, StepTransport, StepGuide, StepContact, StepSpecialRequests,
	}, stepIDs(m.View(state)))
}

func TestTransportStepRequiresPickup(t *testing.T) {
	m := newMachine()
	state := NewState()
	state.Form = validForm()
	state.Selections = domain.Selections{"bus": {Quantity: 1}}
	state.CurrentIndex = 2
	require.Equal(t, StepTransport, m.View(state).CurrentStep)

	blocked, outcome := mustReduce(t, m, state, Action{Type: ActionNext})
	assert.Equal(t, OutcomeBlocked, outcome)
	assert.Equal(t, 2, blocked.CurrentIndex)

	form := validForm()
	form.Transport.PickupLocation = "Hotel lobby"
	filled, _ := mustReduce(t, m, blocked, Action{Type: ActionUpdateForm, Form: &form})
	next, outcome := mustReduce(t, m, filled, Action{Type: ActionNext})
	assert.Equal(t, OutcomeAdvanced, outcome)
	assert.Equal(t, StepContact, m.View(next).CurrentStep)
}

func TestIndexClampedWhenStepsShrink(t *testing.T) {
	m := newMachine()
	state := NewState()
	state.Selections = domain.Selections{"bus": {Quantity: 1}, "classic-island-package": {Quantity: 1}}
	state.CurrentIndex = 4
	require.Equal(t, StepSpecialRequests, m.View(state).CurrentStep)

	next, _ := mustReduce(t, m, state, Action{Type: ActionDeselect, ServiceID: "bus"})

	v := m.View(next)
	assert.Equal(t, 3, next.CurrentIndex)
	assert.Equal(t, StepSpecialRequests, v.CurrentStep)
	assert.True(t, v.IsLastStep)
}

func TestCompletedIsNotSticky(t *testing.T) {
	m := newMachine()
	state := NewState()
	form := validForm()
	state, _ = mustReduce(t, m, state, Action{Type: ActionUpdateForm, Form: &form})
	require.True(t, m.View(state).Steps[1].Completed)

	form.Trip.StartDate = nil
	state, _ = mustReduce(t, m, state, Action{Type: ActionUpdateForm, Form: &form})

	assert.False(t, m.View(state).Steps[1].Completed)
}

func TestVisitedOnlyGrows(t *testing.T) {
	m := newMachine()
	state := NewState()
	state.Form = validForm()
	state.Selections = domain.Selections{"hotel": {Quantity: 1}}

	for i := 0; i < 2; i++ {
		state, _ = mustReduce(t, m, state, Action{Type: ActionNext})
	}
	require.Equal(t, StepAccommodation, m.View(state).CurrentStep)

	state, _ = mustReduce(t, m, state, Action{Type: ActionDeselect, ServiceID: "hotel"})
	state, _ = mustReduce(t, m, state, Action{Type: ActionBack})

	assert.True(t, state.HasVisited(StepAccommodation))
	assert.Len(t, state.Visited, 4)
}

func TestNext_CompletesOnLastStep(t *testing.T) {
	m := newMachine()
	state := NewState()
	state.Form = validForm()
	state, _ = mustReduce(t, m, state, Action{Type: ActionSelect, ServiceID: "classic-island-package"})

	var outcome Outcome
	for i := 0; i < 3; i++ {
		state, outcome = mustReduce(t, m, state, Action{Type: ActionNext})
		require.Equal(t, OutcomeAdvanced, outcome)
	}

	state, outcome = mustReduce(t, m, state, Action{Type: ActionNext})

	assert.Equal(t, OutcomeCompleted, outcome)
	assert.True(t, state.Completed)
	assert.Equal(t, 3, state.CurrentIndex)
	assert.InDelta(t, 100.0, m.View(state).Progress, 1e-9)

	state, _ = mustReduce(t, m, state, Action{Type: ActionBack})
	assert.False(t, state.Completed)
}

func TestSelectionActions(t *testing.T) {
	m := newMachine()
	state := NewState()
	form := validForm()
	form.Trip.Children = 1
	state, _ = mustReduce(t, m, state, Action{Type: ActionUpdateForm, Form: &form})

	state, _ = mustReduce(t, m, state, Action{Type: ActionSelect, ServiceID: "hotel"})
	assert.Equal(t, domain.SelectionItem{Quantity: 1, Participants: 3}, state.Selections["hotel"])

	high, _ := mustReduce(t, m, state, Action{Type: ActionSetQuantity, ServiceID: "hotel", Quantity: 15})
	assert.Equal(t, domain.MaxQuantity, high.Selections["hotel"].Quantity)

	low, _ := mustReduce(t, m, state, Action{Type: ActionSetQuantity, ServiceID: "hotel", Quantity: 0})
	assert.Equal(t, domain.MinQuantity, low.Selections["hotel"].Quantity)

	reselected, _ := mustReduce(t, m, high, Action{Type: ActionSelect, ServiceID: "hotel"})
	assert.Equal(t, domain.MaxQuantity, reselected.Selections["hotel"].Quantity)
}

func TestReduce_Errors(t *testing.T) {
	m := newMachine()
	state := NewState()

	tests := []struct {
		name    string
		action  Action
		wantErr error
	}{
		{name: "unknown service", action: Action{Type: ActionSelect, ServiceID: "ghost"}, wantErr: ErrUnknownService},
		{name: "quantity of unselected", action: Action{Type: ActionSetQuantity, ServiceID: "hotel", Quantity: 2}, wantErr: ErrNotSelected},
		{name: "jump without index", action: Action{Type: ActionJump}, wantErr: ErrInvalidAction},
		{name: "update without form", action: Action{Type: ActionUpdateForm}, wantErr: ErrInvalidAction},
		{name: "deselect without id", action: Action{Type: ActionDeselect}, wantErr: ErrInvalidAction},
		{name: "unknown type", action: Action{Type: "fly"}, wantErr: ErrUnknownAction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, _, err := m.Reduce(state, tt.action)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, state, next)
		})
	}
}

func TestUpdateForm_RejectsPartySizeOutOfRange(t *testing.T) {
	m := newMachine()
	state, _ := mustReduce(t, m, NewState(), Action{Type: ActionSelect, ServiceID: "classic-island-package"})

	tests := []struct {
		name     string
		adults   int
		children int
	}{
		{name: "negative children", adults: 1, children: -5},
		{name: "too many children", adults: 2, children: domain.MaxChildren + 1},
		{name: "no adults", adults: 0, children: 0},
		{name: "too many adults", adults: domain.MaxAdults + 1, children: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			form.Trip.Adults = tt.adults
			form.Trip.Children = tt.children

			next, _, err := m.Reduce(state, Action{Type: ActionUpdateForm, Form: &form})

			assert.ErrorIs(t, err, ErrInvalidAction)
			assert.Equal(t, state, next)
		})
	}
}

func TestUpdateForm_RefreshesParticipants(t *testing.T) {
	m := newMachine()
	state := NewState()
	form := validForm()
	state, _ = mustReduce(t, m, state, Action{Type: ActionUpdateForm, Form: &form})
	state, _ = mustReduce(t, m, state, Action{Type: ActionSelect, ServiceID: "hotel"})
	state, _ = mustReduce(t, m, state, Action{Type: ActionSetQuantity, ServiceID: "hotel", Quantity: 2})
	require.Equal(t, 2, state.Selections["hotel"].Participants)

	form.Trip.Adults = 4
	form.Trip.Children = 2
	state, _ = mustReduce(t, m, state, Action{Type: ActionUpdateForm, Form: &form})

	assert.Equal(t, domain.SelectionItem{Quantity: 2, Participants: 6}, state.Selections["hotel"])
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	m := newMachine()
	state := NewState()

	_, _ = mustReduce(t, m, state, Action{Type: ActionSelect, ServiceID: "hotel"})
	_, _ = mustReduce(t, m, state, Action{Type: ActionNext})

	assert.Empty(t, state.Selections)
	assert.Equal(t, []StepID{StepServices}, state.Visited)
	assert.False(t, state.ShowValidation)
}
