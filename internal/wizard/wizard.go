// Package wizard drives the five-step matching questionnaire. It writes
// answers straight into the preference container, one field at a time.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ecodeclub/ekit/slice"

	"voluntaura/internal/models"
	"voluntaura/internal/prefs"
)

// TotalSteps is the number of questionnaire screens.
const TotalSteps = 5

var (
	// ErrStepIncomplete is returned by Next when the current step is gated.
	ErrStepIncomplete = errors.New("step is incomplete")
	// ErrInvalidAnswer is returned by the answer writers for values outside
	// the offered options.
	ErrInvalidAnswer = errors.New("invalid answer")
	// ErrClosed is returned by navigation while the questionnaire is not shown.
	ErrClosed = errors.New("questionnaire is not open")
)

// CanProceed reports whether "next" is enabled on step for the given answers.
func CanProceed(step int, a prefs.Answers) bool {
	switch step {
	case 1:
		return a.ExperienceLevel != ""
	case 2:
		return !a.PreferredCauses.Empty()
	case 3:
		return !a.AvailabilityDays.Empty()
	case 4:
		return a.LocationPreference != ""
	case 5:
		return true
	}
	return false
}

// Store is the slice of the preference container the wizard writes to.
type Store interface {
	Snapshot() prefs.State
	UpdateQuestionnaireAnswers(ctx context.Context, p prefs.AnswersPatch) prefs.State
	SetQuestionnaireCompleted(ctx context.Context, done bool) prefs.State
}

// View is what a client needs to render the wizard.
type View struct {
	Open       bool          `json:"open"`
	Step       int           `json:"step"`
	TotalSteps int           `json:"totalSteps"`
	Progress   float64       `json:"progress"`
	CanProceed bool          `json:"canProceed"`
	Answers    prefs.Answers `json:"answers"`
}

// Wizard is the step cursor. onComplete and onClose may be nil.
type Wizard struct {
	mu         sync.Mutex
	store      Store
	open       bool
	step       int
	onComplete func()
	onClose    func()
}

// New returns a closed wizard positioned on step 1.
func New(store Store, onComplete, onClose func()) *Wizard {
	return &Wizard{store: store, step: 1, onComplete: onComplete, onClose: onClose}
}

// Start opens the questionnaire on step 1. Stored answers are kept so a
// retake starts from the previous choices.
func (w *Wizard) Start() View {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.open = true
	w.step = 1
	return w.viewLocked()
}

// View snapshots the cursor together with the stored answers.
func (w *Wizard) View() View {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.viewLocked()
}

// Open reports whether the questionnaire is on screen. The swipe feed is
// suspended while it is.
func (w *Wizard) Open() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.open
}

// progress is the header bar fill, step over total as a percentage.
func progress(step int) float64 {
	return float64(step) / TotalSteps * 100
}

func (w *Wizard) viewLocked() View {
	answers := w.store.Snapshot().Answers
	return View{
		Open:       w.open,
		Step:       w.step,
		TotalSteps: TotalSteps,
		Progress:   progress(w.step),
		CanProceed: CanProceed(w.step, answers),
		Answers:    answers,
	}
}

// Next advances one step. Finishing the last step marks the questionnaire
// completed, closes the wizard and fires onComplete.
func (w *Wizard) Next(ctx context.Context) (View, error) {
	w.mu.Lock()
	if !w.open {
		w.mu.Unlock()
		return View{}, ErrClosed
	}
	if !CanProceed(w.step, w.store.Snapshot().Answers) {
		v := w.viewLocked()
		w.mu.Unlock()
		return v, fmt.Errorf("step %d: %w", v.Step, ErrStepIncomplete)
	}
	if w.step < TotalSteps {
		w.step++
		v := w.viewLocked()
		w.mu.Unlock()
		return v, nil
	}

	w.store.SetQuestionnaireCompleted(ctx, true)
	w.open = false
	w.step = 1
	v := w.viewLocked()
	w.mu.Unlock()

	if w.onComplete != nil {
		w.onComplete()
	}
	return v, nil
}

// Back goes to the previous step. On step 1 it closes the wizard instead.
func (w *Wizard) Back() (View, error) {
	w.mu.Lock()
	if !w.open {
		w.mu.Unlock()
		return View{}, ErrClosed
	}
	if w.step > 1 {
		w.step--
		v := w.viewLocked()
		w.mu.Unlock()
		return v, nil
	}
	w.open = false
	v := w.viewLocked()
	w.mu.Unlock()

	if w.onClose != nil {
		w.onClose()
	}
	return v, nil
}

// Update merges several answers at once after checking every enumerated field.
func (w *Wizard) Update(ctx context.Context, p prefs.AnswersPatch) (prefs.Answers, error) {
	if err := p.Validate(); err != nil {
		return prefs.Answers{}, fmt.Errorf("%w: %w", ErrInvalidAnswer, err)
	}
	return w.set(ctx, p), nil
}

// SetExperience answers step 1.
func (w *Wizard) SetExperience(ctx context.Context, level models.ExperienceLevel) (prefs.Answers, error) {
	if !slice.Contains(models.ExperienceLevels, level) {
		return prefs.Answers{}, fmt.Errorf("experience %q: %w", level, ErrInvalidAnswer)
	}
	return w.set(ctx, prefs.AnswersPatch{ExperienceLevel: &level}), nil
}

// ToggleCause flips one preferred cause on step 2.
func (w *Wizard) ToggleCause(ctx context.Context, cause models.Cause) (prefs.Answers, error) {
	if !slice.Contains(models.Causes, cause) {
		return prefs.Answers{}, fmt.Errorf("cause %q: %w", cause, ErrInvalidAnswer)
	}
	return w.patch(ctx, func(a prefs.Answers) prefs.AnswersPatch {
		causes := a.PreferredCauses.Toggle(cause)
		return prefs.AnswersPatch{PreferredCauses: &causes}
	}), nil
}

// ToggleDay flips one availability day on step 3.
func (w *Wizard) ToggleDay(ctx context.Context, day string) (prefs.Answers, error) {
	if !slice.Contains(models.AvailabilityDays, day) {
		return prefs.Answers{}, fmt.Errorf("day %q: %w", day, ErrInvalidAnswer)
	}
	return w.patch(ctx, func(a prefs.Answers) prefs.AnswersPatch {
		days := a.AvailabilityDays.Toggle(day)
		return prefs.AnswersPatch{AvailabilityDays: &days}
	}), nil
}

// SetHoursPerWeek clamps to the slider range.
func (w *Wizard) SetHoursPerWeek(ctx context.Context, hours int) prefs.Answers {
	return w.set(ctx, prefs.AnswersPatch{HoursPerWeek: &hours})
}

// SetLocation answers the location question on step 4.
func (w *Wizard) SetLocation(ctx context.Context, pref models.LocationPreference) (prefs.Answers, error) {
	if !slice.Contains(models.LocationPreferences, pref) {
		return prefs.Answers{}, fmt.Errorf("location %q: %w", pref, ErrInvalidAnswer)
	}
	return w.set(ctx, prefs.AnswersPatch{LocationPreference: &pref}), nil
}

// SetMaxDistance clamps to the slider range.
func (w *Wizard) SetMaxDistance(ctx context.Context, miles int) prefs.Answers {
	return w.set(ctx, prefs.AnswersPatch{MaxDistance: &miles})
}

// ToggleComfort flips one optional comfort label on step 5.
func (w *Wizard) ToggleComfort(ctx context.Context, label string) (prefs.Answers, error) {
	if !slice.Contains(models.ComfortPreferences, label) {
		return prefs.Answers{}, fmt.Errorf("comfort %q: %w", label, ErrInvalidAnswer)
	}
	return w.patch(ctx, func(a prefs.Answers) prefs.AnswersPatch {
		comfort := a.ComfortPreferences.Toggle(label)
		return prefs.AnswersPatch{ComfortPreferences: &comfort}
	}), nil
}

func (w *Wizard) set(ctx context.Context, p prefs.AnswersPatch) prefs.Answers {
	return w.patch(ctx, func(prefs.Answers) prefs.AnswersPatch { return p })
}

// patch builds a patch from the current answers and applies it while holding
// the wizard lock, so concurrent toggles do not lose updates.
func (w *Wizard) patch(ctx context.Context, build func(prefs.Answers) prefs.AnswersPatch) prefs.Answers {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.store.UpdateQuestionnaireAnswers(ctx, build(w.store.Snapshot().Answers)).Answers
}
