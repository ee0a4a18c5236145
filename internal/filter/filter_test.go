package filter

import (
	"testing"

	"github.com/ecodeclub/ekit/slice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voluntaura/internal/catalog"
	"voluntaura/internal/models"
	"voluntaura/internal/prefs"
	"voluntaura/internal/set"
)

func ptr[T any](v T) *T { return &v }

func fixtures() []models.Opportunity {
	return []models.Opportunity{
		{
			ID: "park", Title: "Park Cleanup", Organization: "Green City",
			Causes:       []models.Cause{models.CauseEnvironment},
			LocationType: models.LocationInPerson, TimeCommitment: models.TimeOneTime,
			Availability: []models.Availability{models.AvailabilityWeekends}, Distance: 3,
		},
		{
			ID: "tutor", Title: "Online Tutor", Organization: "Study Hub",
			Causes:       []models.Cause{models.CauseEducation},
			LocationType: models.LocationRemote, TimeCommitment: models.TimeWeekly,
			Availability: []models.Availability{models.AvailabilityEvenings}, Distance: 30,
		},
		{
			ID: "clinic", Title: "Clinic Greeter", Organization: "Health Partners",
			Causes:       []models.Cause{models.CauseHealth, models.CauseCommunity},
			LocationType: models.LocationInPerson, TimeCommitment: models.TimeWeekly,
			Availability: []models.Availability{models.AvailabilityWeekdays, models.AvailabilityEvenings}, Distance: 12,
		},
		{
			ID: "shelter", Title: "Dog Walker", Organization: "Paws Rescue",
			Causes:       []models.Cause{models.CauseAnimals},
			LocationType: models.LocationInPerson, TimeCommitment: models.TimeFlexible,
			Availability: []models.Availability{models.AvailabilityWeekends}, Distance: 20,
		},
	}
}

func filters(p prefs.FiltersPatch) prefs.Filters {
	return prefs.DefaultFilters().Apply(p)
}

func TestDiscover_Predicates(t *testing.T) {
	tests := []struct {
		name  string
		patch prefs.FiltersPatch
		want  []string
	}{
		{name: "defaults keep everything", want: []string{"park", "tutor", "clinic", "shelter"}},
		{name: "search title", patch: prefs.FiltersPatch{SearchQuery: ptr("TUTOR")}, want: []string{"tutor"}},
		{name: "search organization", patch: prefs.FiltersPatch{SearchQuery: ptr("paws")}, want: []string{"shelter"}},
		{name: "search cause name", patch: prefs.FiltersPatch{SearchQuery: ptr("health")}, want: []string{"clinic"}},
		{name: "search no hit", patch: prefs.FiltersPatch{SearchQuery: ptr("zzz")}, want: []string{}},
		{
			name:  "causes intersect",
			patch: prefs.FiltersPatch{Causes: ptr(set.Of(models.CauseCommunity, models.CauseAnimals))},
			want:  []string{"clinic", "shelter"},
		},
		{
			name:  "distance keeps remote regardless",
			patch: prefs.FiltersPatch{MaxDistance: ptr(5)},
			want:  []string{"park", "tutor"},
		},
		{
			name:  "distance is inclusive",
			patch: prefs.FiltersPatch{MaxDistance: ptr(12)},
			want:  []string{"park", "tutor", "clinic"},
		},
		{
			name:  "time commitment membership",
			patch: prefs.FiltersPatch{TimeCommitment: ptr(set.Of(models.TimeWeekly))},
			want:  []string{"tutor", "clinic"},
		},
		{
			name:  "availability intersect",
			patch: prefs.FiltersPatch{Availability: ptr(set.Of(models.AvailabilityEvenings))},
			want:  []string{"tutor", "clinic"},
		},
		{
			name:  "location in-person",
			patch: prefs.FiltersPatch{LocationType: ptr(models.LocationFilterInPerson)},
			want:  []string{"park", "clinic", "shelter"},
		},
		{
			name:  "location remote",
			patch: prefs.FiltersPatch{LocationType: ptr(models.LocationFilterRemote)},
			want:  []string{"tutor"},
		},
		{
			name: "predicates combine with AND",
			patch: prefs.FiltersPatch{
				Causes:         ptr(set.Of(models.CauseHealth, models.CauseEnvironment)),
				TimeCommitment: ptr(set.Of(models.TimeWeekly)),
			},
			want: []string{"clinic"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Discover(fixtures(), filters(tt.patch))
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestDiscover_RemoteBypassesDistance(t *testing.T) {
	remote := models.Opportunity{
		ID: "far", Causes: []models.Cause{models.CauseAnimals},
		LocationType: models.LocationRemote, Distance: 30,
	}
	got := Discover([]models.Opportunity{remote}, filters(prefs.FiltersPatch{MaxDistance: ptr(5)}))
	assert.Equal(t, []string{"far"}, ids(got))
}

func TestDiscover_PreservesOrderAndIsSubset(t *testing.T) {
	all := catalog.Default().All()
	got := Discover(all, filters(prefs.FiltersPatch{MaxDistance: ptr(10)}))

	pos := -1
	for _, o := range got {
		idx := indexOf(all, o.ID)
		require.GreaterOrEqual(t, idx, 0)
		assert.Greater(t, idx, pos, "order must follow the catalog")
		pos = idx
	}
}

func TestDiscover_RemoteCauseScenario(t *testing.T) {
	opps := []models.Opportunity{{
		ID: "only", Causes: []models.Cause{models.CauseAnimals},
		LocationType: models.LocationRemote, Distance: 0,
	}}

	f := filters(prefs.FiltersPatch{
		MaxDistance: ptr(1),
		Causes:      ptr(set.Of(models.CauseEducation)),
	})
	assert.Empty(t, Discover(opps, f))

	f = f.Apply(prefs.FiltersPatch{Causes: ptr(set.Of[models.Cause]())})
	assert.Equal(t, []string{"only"}, ids(Discover(opps, f)))
}

func TestFeed(t *testing.T) {
	answers := func(p prefs.AnswersPatch) prefs.Answers {
		return prefs.DefaultAnswers().Apply(p)
	}

	tests := []struct {
		name      string
		answers   prefs.Answers
		presented set.Ordered[string]
		want      []string
	}{
		{
			name:    "defaults apply the 10 mile radius",
			answers: prefs.DefaultAnswers(),
			want:    []string{"park", "tutor"},
		},
		{
			name:    "either keeps both location types",
			answers: answers(prefs.AnswersPatch{LocationPreference: ptr(models.PreferEither), MaxDistance: ptr(25)}),
			want:    []string{"park", "tutor", "clinic", "shelter"},
		},
		{
			name:    "remote only",
			answers: answers(prefs.AnswersPatch{LocationPreference: ptr(models.PreferRemote), MaxDistance: ptr(25)}),
			want:    []string{"tutor"},
		},
		{
			name:    "in-person only",
			answers: answers(prefs.AnswersPatch{LocationPreference: ptr(models.PreferInPerson), MaxDistance: ptr(25)}),
			want:    []string{"park", "clinic", "shelter"},
		},
		{
			name:    "preferred causes",
			answers: answers(prefs.AnswersPatch{PreferredCauses: ptr(set.Of(models.CauseAnimals, models.CauseEducation)), MaxDistance: ptr(25)}),
			want:    []string{"tutor", "shelter"},
		},
		{
			name:      "presented ids are excluded",
			answers:   answers(prefs.AnswersPatch{MaxDistance: ptr(25)}),
			presented: set.Of("park", "clinic"),
			want:      []string{"tutor", "shelter"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Feed(fixtures(), tt.answers, tt.presented)))
		})
	}
}

func TestByIDs_UsesCatalogOrder(t *testing.T) {
	got := ByIDs(fixtures(), set.Of("shelter", "park", "missing"))
	assert.Equal(t, []string{"park", "shelter"}, ids(got))
}

func TestSimilar(t *testing.T) {
	opps := fixtures()
	opps = append(opps, models.Opportunity{ID: "pantry", Causes: []models.Cause{models.CauseCommunity}})

	got := Similar(opps, opps[2], SimilarLimit)
	assert.Equal(t, []string{"pantry"}, ids(got))

	envs := []models.Opportunity{
		{ID: "a", Causes: []models.Cause{models.CauseEnvironment}},
		{ID: "b", Causes: []models.Cause{models.CauseEnvironment}},
		{ID: "c", Causes: []models.Cause{models.CauseEnvironment}},
		{ID: "d", Causes: []models.Cause{models.CauseEnvironment}},
		{ID: "e", Causes: []models.Cause{models.CauseEnvironment}},
	}
	assert.Equal(t, []string{"b", "c", "d"}, ids(Similar(envs, envs[0], SimilarLimit)))
}

func indexOf(opps []models.Opportunity, id string) int {
	for i, o := range opps {
		if o.ID == id {
			return i
		}
	}
	return -1
}

func ids(opps []models.Opportunity) []string {
	return slice.Map(opps, func(_ int, o models.Opportunity) string { return o.ID })
}
