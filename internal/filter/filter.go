// Package filter turns the catalog plus user criteria into ordered subsets.
// All functions are pure and preserve catalog order.
package filter

import (
	"strings"

	"github.com/ecodeclub/ekit/slice"

	"voluntaura/internal/models"
	"voluntaura/internal/prefs"
	"voluntaura/internal/set"
)

// SimilarLimit is how many related opportunities the detail view shows.
const SimilarLimit = 3

type predicate func(models.Opportunity) bool

// Discover applies the browse filters. Every predicate must pass.
func Discover(opps []models.Opportunity, f prefs.Filters) []models.Opportunity {
	return keep(opps,
		matchesSearch(f.SearchQuery),
		matchesCauses(f.Causes),
		withinDistance(f.MaxDistance),
		matchesTimeCommitment(f.TimeCommitment),
		matchesAvailability(f.Availability),
		matchesLocationFilter(f.LocationType),
	)
}

// Feed applies questionnaire answers for the swipe deck and drops ids already
// presented in the current session.
func Feed(opps []models.Opportunity, a prefs.Answers, presented set.Ordered[string]) []models.Opportunity {
	return keep(opps,
		notPresented(presented),
		matchesCauses(a.PreferredCauses),
		matchesLocationPreference(a.LocationPreference),
		withinDistance(a.MaxDistance),
	)
}

// ByIDs returns the opportunities whose id is in ids, in catalog order.
func ByIDs(opps []models.Opportunity, ids set.Ordered[string]) []models.Opportunity {
	return keep(opps, func(o models.Opportunity) bool { return ids.Has(o.ID) })
}

// Similar returns up to limit opportunities sharing a cause with target.
func Similar(opps []models.Opportunity, target models.Opportunity, limit int) []models.Opportunity {
	causes := set.Of(target.Causes...)
	out := keep(opps, func(o models.Opportunity) bool {
		return o.ID != target.ID && causes.IntersectsAny(o.Causes)
	})
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func keep(opps []models.Opportunity, preds ...predicate) []models.Opportunity {
	out := make([]models.Opportunity, 0, len(opps))
next:
	for _, o := range opps {
		for _, p := range preds {
			if !p(o) {
				continue next
			}
		}
		out = append(out, o)
	}
	return out
}

// matchesSearch is a case-insensitive substring test over title, organization
// and cause names. An empty query matches everything.
func matchesSearch(query string) predicate {
	if query == "" {
		return always
	}
	q := strings.ToLower(query)
	return func(o models.Opportunity) bool {
		if strings.Contains(strings.ToLower(o.Title), q) || strings.Contains(strings.ToLower(o.Organization), q) {
			return true
		}
		for _, c := range o.Causes {
			if strings.Contains(strings.ToLower(string(c)), q) {
				return true
			}
		}
		return false
	}
}

func matchesCauses(selected set.Ordered[models.Cause]) predicate {
	if selected.Empty() {
		return always
	}
	return func(o models.Opportunity) bool {
		return selected.IntersectsAny(o.Causes)
	}
}

// withinDistance lets remote opportunities through regardless of distance.
func withinDistance(max int) predicate {
	return func(o models.Opportunity) bool {
		return o.IsRemote() || o.Distance <= float64(max)
	}
}

func matchesTimeCommitment(selected set.Ordered[models.TimeCommitment]) predicate {
	if selected.Empty() {
		return always
	}
	allowed := selected.Items()
	return func(o models.Opportunity) bool {
		return slice.Contains(allowed, o.TimeCommitment)
	}
}

func matchesAvailability(selected set.Ordered[models.Availability]) predicate {
	if selected.Empty() {
		return always
	}
	return func(o models.Opportunity) bool {
		return selected.IntersectsAny(o.Availability)
	}
}

func matchesLocationFilter(loc models.LocationFilter) predicate {
	if loc == models.LocationFilterAll || loc == "" {
		return always
	}
	return func(o models.Opportunity) bool {
		return models.LocationFilter(o.LocationType) == loc
	}
}

// matchesLocationPreference filters only for an exact in-person or remote
// preference; "either" and unset accept everything.
func matchesLocationPreference(pref models.LocationPreference) predicate {
	switch pref {
	case models.PreferInPerson, models.PreferRemote:
		return func(o models.Opportunity) bool {
			return models.LocationPreference(o.LocationType) == pref
		}
	}
	return always
}

func notPresented(presented set.Ordered[string]) predicate {
	if presented.Empty() {
		return always
	}
	return func(o models.Opportunity) bool {
		return !presented.Has(o.ID)
	}
}

func always(models.Opportunity) bool { return true }
