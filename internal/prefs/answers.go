package prefs

import (
	"voluntaura/internal/models"
	"voluntaura/internal/set"
)

// Answers holds the questionnaire responses that drive the swipe feed.
type Answers struct {
	ExperienceLevel    models.ExperienceLevel    `json:"experienceLevel"`
	PreferredCauses    set.Ordered[models.Cause] `json:"preferredCauses"`
	AvailabilityDays   set.Ordered[string]       `json:"availabilityDays"`
	HoursPerWeek       int                       `json:"hoursPerWeek"`
	LocationPreference models.LocationPreference `json:"locationPreference"`
	MaxDistance        int                       `json:"maxDistance"`
	ComfortPreferences set.Ordered[string]       `json:"comfortPreferences"`
}

// DefaultAnswers is the questionnaire state before any answer is given.
func DefaultAnswers() Answers {
	return Answers{
		HoursPerWeek: 4,
		MaxDistance:  10,
	}
}

// AnswersPatch is a partial questionnaire update. Nil fields are left unchanged.
type AnswersPatch struct {
	ExperienceLevel    *models.ExperienceLevel    `json:"experienceLevel,omitempty"`
	PreferredCauses    *set.Ordered[models.Cause] `json:"preferredCauses,omitempty"`
	AvailabilityDays   *set.Ordered[string]       `json:"availabilityDays,omitempty"`
	HoursPerWeek       *int                       `json:"hoursPerWeek,omitempty"`
	LocationPreference *models.LocationPreference `json:"locationPreference,omitempty"`
	MaxDistance        *int                       `json:"maxDistance,omitempty"`
	ComfortPreferences *set.Ordered[string]       `json:"comfortPreferences,omitempty"`
}

// Apply shallow-merges p into a, clamping the slider values.
func (a Answers) Apply(p AnswersPatch) Answers {
	if p.ExperienceLevel != nil {
		a.ExperienceLevel = *p.ExperienceLevel
	}
	if p.PreferredCauses != nil {
		a.PreferredCauses = *p.PreferredCauses
	}
	if p.AvailabilityDays != nil {
		a.AvailabilityDays = *p.AvailabilityDays
	}
	if p.HoursPerWeek != nil {
		a.HoursPerWeek = clamp(*p.HoursPerWeek, MinHoursPerWeek, MaxHoursPerWeek)
	}
	if p.LocationPreference != nil {
		a.LocationPreference = *p.LocationPreference
	}
	if p.MaxDistance != nil {
		a.MaxDistance = clamp(*p.MaxDistance, MinDistance, MaxDistance)
	}
	if p.ComfortPreferences != nil {
		a.ComfortPreferences = *p.ComfortPreferences
	}
	return a
}
