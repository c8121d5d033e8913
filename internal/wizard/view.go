package wizard

// StepView presentation of one visible step
type StepView struct {
	ID        StepID `json:"id"`
	Title     string `json:"title"`
	Required  bool   `json:"required"`
	Visited   bool   `json:"visited"`
	Completed bool   `json:"completed"`
	Current   bool   `json:"current"`
}

// View presentation of the wizard for the current state
type View struct {
	Steps          []StepView `json:"steps"`
	CurrentIndex   int        `json:"currentIndex"`
	CurrentStep    StepID     `json:"currentStep"`
	Progress       float64    `json:"progress"`
	ShowValidation bool       `json:"showValidation"`
	Completed      bool       `json:"completed"`
	CanGoBack      bool       `json:"canGoBack"`
	IsLastStep     bool       `json:"isLastStep"`
}

// View builds the presentation of the state.
// Completed flags are recomputed from step validity every time and are not sticky
func (m *Machine) View(state State) View {
	visible := VisibleSteps(m.Steps(state))
	index := min(max(state.CurrentIndex, 0), len(visible)-1)

	steps := make([]StepView, 0, len(visible))
	for i, s := range visible {
		steps = append(steps, StepView{
			ID:        s.ID,
			Title:     s.Title,
			Required:  s.Required,
			Visited:   state.HasVisited(s.ID),
			Completed: s.Valid,
			Current:   i == index,
		})
	}

	return View{
		Steps:          steps,
		CurrentIndex:   index,
		CurrentStep:    visible[index].ID,
		Progress:       float64(index+1) / float64(len(visible)) * 100,
		ShowValidation: state.ShowValidation,
		Completed:      state.Completed,
		CanGoBack:      index > 0,
		IsLastStep:     index == len(visible)-1,
	}
}
