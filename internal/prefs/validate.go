package prefs

import (
	"errors"
	"fmt"

	"github.com/ecodeclub/ekit/slice"

	"voluntaura/internal/models"
	"voluntaura/internal/set"
)

// ErrUnknownValue is wrapped by Validate when a patch names a value outside
// its enumeration. Apply would silently ignore or store such values.
var ErrUnknownValue = errors.New("unknown value")

// LocationFilters are the accepted discover location selectors.
var LocationFilters = []models.LocationFilter{models.LocationFilterAll, models.LocationFilterInPerson, models.LocationFilterRemote}

// Validate checks every enumerated field set in p.
func (p FiltersPatch) Validate() error {
	if p.Causes != nil {
		if err := allKnown("cause", *p.Causes, models.Causes); err != nil {
			return err
		}
	}
	if p.TimeCommitment != nil {
		if err := allKnown("time commitment", *p.TimeCommitment, models.TimeCommitments); err != nil {
			return err
		}
	}
	if p.Availability != nil {
		if err := allKnown("availability", *p.Availability, models.Availabilities); err != nil {
			return err
		}
	}
	if p.LocationType != nil && !slice.Contains(LocationFilters, *p.LocationType) {
		return fmt.Errorf("location type %q: %w", *p.LocationType, ErrUnknownValue)
	}
	return nil
}

// Validate checks every enumerated field set in p. Numbers are clamped by
// Apply and never rejected.
func (p AnswersPatch) Validate() error {
	if p.ExperienceLevel != nil && !slice.Contains(models.ExperienceLevels, *p.ExperienceLevel) {
		return fmt.Errorf("experience level %q: %w", *p.ExperienceLevel, ErrUnknownValue)
	}
	if p.LocationPreference != nil && !slice.Contains(models.LocationPreferences, *p.LocationPreference) {
		return fmt.Errorf("location preference %q: %w", *p.LocationPreference, ErrUnknownValue)
	}
	if p.PreferredCauses != nil {
		if err := allKnown("cause", *p.PreferredCauses, models.Causes); err != nil {
			return err
		}
	}
	if p.AvailabilityDays != nil {
		if err := allKnown("availability day", *p.AvailabilityDays, models.AvailabilityDays); err != nil {
			return err
		}
	}
	if p.ComfortPreferences != nil {
		if err := allKnown("comfort preference", *p.ComfortPreferences, models.ComfortPreferences); err != nil {
			return err
		}
	}
	return nil
}

func allKnown[T comparable](what string, got set.Ordered[T], known []T) error {
	for _, v := range got.Items() {
		if !slice.Contains(known, v) {
			return fmt.Errorf("%s %q: %w", what, fmt.Sprint(v), ErrUnknownValue)
		}
	}
	return nil
}
