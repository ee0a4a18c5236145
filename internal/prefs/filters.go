package prefs

import (
	"voluntaura/internal/models"
	"voluntaura/internal/set"
)

const (
	MinDistance     = 1
	MaxDistance     = 25
	MinHoursPerWeek = 1
	MaxHoursPerWeek = 20
)

// Filters are the discover-mode criteria.
type Filters struct {
	SearchQuery    string                             `json:"searchQuery"`
	Causes         set.Ordered[models.Cause]          `json:"causes"`
	MaxDistance    int                                `json:"maxDistance"`
	TimeCommitment set.Ordered[models.TimeCommitment] `json:"timeCommitment"`
	Availability   set.Ordered[models.Availability]   `json:"availability"`
	LocationType   models.LocationFilter              `json:"locationType"`
}

// DefaultFilters is the state clearFilters resets to.
func DefaultFilters() Filters {
	return Filters{
		MaxDistance:  MaxDistance,
		LocationType: models.LocationFilterAll,
	}
}

// FiltersPatch is a partial update. Nil fields are left unchanged.
type FiltersPatch struct {
	SearchQuery    *string                             `json:"searchQuery,omitempty"`
	Causes         *set.Ordered[models.Cause]          `json:"causes,omitempty"`
	MaxDistance    *int                                `json:"maxDistance,omitempty"`
	TimeCommitment *set.Ordered[models.TimeCommitment] `json:"timeCommitment,omitempty"`
	Availability   *set.Ordered[models.Availability]   `json:"availability,omitempty"`
	LocationType   *models.LocationFilter              `json:"locationType,omitempty"`
}

// Apply shallow-merges p into f.
func (f Filters) Apply(p FiltersPatch) Filters {
	if p.SearchQuery != nil {
		f.SearchQuery = *p.SearchQuery
	}
	if p.Causes != nil {
		f.Causes = *p.Causes
	}
	if p.MaxDistance != nil {
		f.MaxDistance = clamp(*p.MaxDistance, MinDistance, MaxDistance)
	}
	if p.TimeCommitment != nil {
		f.TimeCommitment = *p.TimeCommitment
	}
	if p.Availability != nil {
		f.Availability = *p.Availability
	}
	if p.LocationType != nil {
		switch *p.LocationType {
		case models.LocationFilterAll, models.LocationFilterInPerson, models.LocationFilterRemote:
			f.LocationType = *p.LocationType
		}
	}
	return f
}

// ActiveCount is the number shown on the filter badge.
func (f Filters) ActiveCount() int {
	n := f.Causes.Len() + f.TimeCommitment.Len() + f.Availability.Len()
	if f.LocationType != models.LocationFilterAll {
		n++
	}
	return n
}

// HasActive reports whether any criterion narrows the catalog besides search text.
func (f Filters) HasActive() bool {
	return f.ActiveCount() > 0 || f.MaxDistance < MaxDistance
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
