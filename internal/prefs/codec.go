package prefs

import (
	"encoding/json"
	"fmt"
)

const snapshotVersion = 0

// envelope matches the layout the web client keeps in local storage.
type envelope struct {
	State   State `json:"state"`
	Version int   `json:"version"`
}

// Encode serialises a snapshot for storage.
func Encode(s State) ([]byte, error) {
	data, err := json.Marshal(envelope{State: s, Version: snapshotVersion})
	if err != nil {
		return nil, fmt.Errorf("encode state: %w", err)
	}
	return data, nil
}

// Decode restores a snapshot. Fields missing from data keep their defaults
// and unknown fields are ignored.
func Decode(data []byte) (State, error) {
	env := envelope{State: DefaultState()}
	if err := json.Unmarshal(data, &env); err != nil {
		return DefaultState(), fmt.Errorf("decode state: %w", err)
	}
	return sanitize(env.State), nil
}

// sanitize pulls out-of-range numbers read from storage back into range.
func sanitize(s State) State {
	s.Filters.MaxDistance = clamp(s.Filters.MaxDistance, MinDistance, MaxDistance)
	s.Answers.MaxDistance = clamp(s.Answers.MaxDistance, MinDistance, MaxDistance)
	s.Answers.HoursPerWeek = clamp(s.Answers.HoursPerWeek, MinHoursPerWeek, MaxHoursPerWeek)
	if s.Filters.LocationType == "" {
		s.Filters.LocationType = DefaultFilters().LocationType
	}
	return s
}
