package prefs

import (
	"math"

	"voluntaura/internal/models"
	"voluntaura/internal/set"
)

// State is an immutable snapshot of everything the user has told us. Every
// transition returns a new State.
type State struct {
	Saved                  set.Ordered[string] `json:"savedOpportunities"`
	Matched                set.Ordered[string] `json:"matchedOpportunities"`
	Applied                set.Ordered[string] `json:"appliedOpportunities"`
	Completed              set.Ordered[string] `json:"completedOpportunities"`
	QuestionnaireCompleted bool                `json:"questionnaireCompleted"`
	Answers                Answers             `json:"questionnaireAnswers"`
	Filters                Filters             `json:"filters"`
	ScheduledHours         float64             `json:"scheduledHours"`
	GoalHours              float64             `json:"goalHours"`
}

// DefaultState is the first-load state.
func DefaultState() State {
	return State{
		Answers:        DefaultAnswers(),
		Filters:        DefaultFilters(),
		ScheduledHours: 8,
		GoalHours:      20,
	}
}

// Status returns the status set for kind. Unknown kinds yield an empty set.
func (s State) Status(kind models.StatusKind) set.Ordered[string] {
	switch kind {
	case models.StatusSaved:
		return s.Saved
	case models.StatusMatched:
		return s.Matched
	case models.StatusApplied:
		return s.Applied
	case models.StatusCompleted:
		return s.Completed
	}
	return set.Ordered[string]{}
}

func (s State) withStatus(kind models.StatusKind, ids set.Ordered[string]) State {
	switch kind {
	case models.StatusSaved:
		s.Saved = ids
	case models.StatusMatched:
		s.Matched = ids
	case models.StatusApplied:
		s.Applied = ids
	case models.StatusCompleted:
		s.Completed = ids
	}
	return s
}

// AddStatus inserts id into the kind set. Already present ids are a no-op.
func (s State) AddStatus(kind models.StatusKind, id string) State {
	return s.withStatus(kind, s.Status(kind).Add(id))
}

// RemoveStatus drops id from the kind set. Absent ids are a no-op.
func (s State) RemoveStatus(kind models.StatusKind, id string) State {
	return s.withStatus(kind, s.Status(kind).Remove(id))
}

// UpdateFilters returns s with p merged into the filters.
func (s State) UpdateFilters(p FiltersPatch) State {
	s.Filters = s.Filters.Apply(p)
	return s
}

// ClearFilters returns s with default filters.
func (s State) ClearFilters() State {
	s.Filters = DefaultFilters()
	return s
}

// UpdateAnswers returns s with p merged into the answers.
func (s State) UpdateAnswers(p AnswersPatch) State {
	s.Answers = s.Answers.Apply(p)
	return s
}

// WithQuestionnaireCompleted returns s with the completion flag set to done.
func (s State) WithQuestionnaireCompleted(done bool) State {
	s.QuestionnaireCompleted = done
	return s
}

// WithGoalHours returns s with a new monthly goal.
func (s State) WithGoalHours(hours float64) State {
	s.GoalHours = hours
	return s
}

// AddScheduledHours accumulates; repeated calls add up.
func (s State) AddScheduledHours(hours float64) State {
	s.ScheduledHours += hours
	return s
}

// Progress summarises scheduled hours against the goal.
type Progress struct {
	ScheduledHours float64 `json:"scheduledHours"`
	GoalHours      float64 `json:"goalHours"`
	Percentage     float64 `json:"percentage"`
	HoursToGo      float64 `json:"hoursToGo"`
}

// Progress caps the percentage at 100. A non-positive goal counts as reached.
func (s State) Progress() Progress {
	p := Progress{
		ScheduledHours: s.ScheduledHours,
		GoalHours:      s.GoalHours,
		HoursToGo:      s.GoalHours - s.ScheduledHours,
	}
	if s.GoalHours <= 0 {
		p.Percentage = 100
		return p
	}
	p.Percentage = math.Min(s.ScheduledHours/s.GoalHours*100, 100)
	return p
}
