package game

// TutorialState tracks which contextual walkthroughs have run. It is
// independent of game state and persisted as its own record.
type TutorialState struct {
	IsActive           bool     `json:"isActive"`
	CurrentStepIndex   int      `json:"currentStepIndex"`
	CompletedTutorials []string `json:"completedTutorials"`
}

func DefaultTutorialState() TutorialState {
	return TutorialState{CompletedTutorials: []string{}}
}

// IsCompleted reports whether the named tutorial already finished.
func (t *TutorialState) IsCompleted(id string) bool {
	for _, done := range t.CompletedTutorials {
		if done == id {
			return true
		}
	}
	return false
}

// Start activates a tutorial from its first step. Starting an
// already-completed tutorial is a no-op.
func (t *TutorialState) Start(id string) {
	if t.IsCompleted(id) {
		return
	}
	t.IsActive = true
	t.CurrentStepIndex = 0
}

// NextStep advances within a walkthrough of totalSteps steps, completing it
// (without recording an id) when the last step is passed.
func (t *TutorialState) NextStep(totalSteps int) {
	if !t.IsActive {
		return
	}
	if t.CurrentStepIndex < totalSteps-1 {
		t.CurrentStepIndex++
		return
	}
	t.IsActive = false
	t.CurrentStepIndex = 0
}

// Skip deactivates the current walkthrough without marking it completed.
func (t *TutorialState) Skip() {
	t.IsActive = false
	t.CurrentStepIndex = 0
}

// Complete deactivates and records the tutorial id so it never re-runs.
func (t *TutorialState) Complete(id string) {
	if id != "" && !t.IsCompleted(id) {
		t.CompletedTutorials = append(t.CompletedTutorials, id)
	}
	t.IsActive = false
	t.CurrentStepIndex = 0
}

// Reset wipes all walkthrough progress.
func (t *TutorialState) Reset() {
	*t = DefaultTutorialState()
}
