package prefs

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"voluntaura/internal/models"
	"voluntaura/internal/set"
)

func ptr[T any](v T) *T { return &v }

func TestState_AddStatusIsIdempotent(t *testing.T) {
	once := DefaultState().AddStatus(models.StatusSaved, "1")
	twice := once.AddStatus(models.StatusSaved, "1")

	assert.Equal(t, once, twice)
	assert.Equal(t, []string{"1"}, twice.Saved.Items())
}

func TestState_RemoveAbsentIsNoop(t *testing.T) {
	s := DefaultState().AddStatus(models.StatusMatched, "1")
	assert.Equal(t, s, s.RemoveStatus(models.StatusMatched, "2"))
	assert.True(t, s.RemoveStatus(models.StatusMatched, "1").Matched.Empty())
}

func TestState_StatusSetsAreIndependent(t *testing.T) {
	s := DefaultState().
		AddStatus(models.StatusSaved, "1").
		AddStatus(models.StatusApplied, "1").
		AddStatus(models.StatusCompleted, "2")

	assert.True(t, s.Saved.Has("1"))
	assert.True(t, s.Applied.Has("1"))
	assert.False(t, s.Matched.Has("1"))
	assert.Equal(t, []string{"2"}, s.Status(models.StatusCompleted).Items())
	assert.True(t, s.Status("bogus").Empty())
	assert.Equal(t, s, s.AddStatus("bogus", "3"))
}

func TestState_TransitionsDoNotMutateReceiver(t *testing.T) {
	base := DefaultState()
	_ = base.AddStatus(models.StatusSaved, "1").UpdateFilters(FiltersPatch{SearchQuery: ptr("dog")})

	assert.True(t, base.Saved.Empty())
	assert.Equal(t, "", base.Filters.SearchQuery)
}

func TestState_UpdateFiltersMergesShallowly(t *testing.T) {
	s := DefaultState().UpdateFilters(FiltersPatch{
		SearchQuery: ptr("beach"),
		Causes:      ptr(set.Of(models.CauseEnvironment)),
	})
	s = s.UpdateFilters(FiltersPatch{MaxDistance: ptr(5)})

	assert.Equal(t, "beach", s.Filters.SearchQuery)
	assert.Equal(t, []models.Cause{models.CauseEnvironment}, s.Filters.Causes.Items())
	assert.Equal(t, 5, s.Filters.MaxDistance)
	assert.Equal(t, models.LocationFilterAll, s.Filters.LocationType)
}

func TestFilters_ApplyClampsAndValidates(t *testing.T) {
	f := DefaultFilters().Apply(FiltersPatch{MaxDistance: ptr(100)})
	assert.Equal(t, MaxDistance, f.MaxDistance)

	f = f.Apply(FiltersPatch{MaxDistance: ptr(0)})
	assert.Equal(t, MinDistance, f.MaxDistance)

	f = f.Apply(FiltersPatch{LocationType: ptr(models.LocationFilter("Mars"))})
	assert.Equal(t, models.LocationFilterAll, f.LocationType)

	f = f.Apply(FiltersPatch{LocationType: ptr(models.LocationFilterRemote)})
	assert.Equal(t, models.LocationFilterRemote, f.LocationType)
}

func TestState_ClearFilters(t *testing.T) {
	s := DefaultState().UpdateFilters(FiltersPatch{
		SearchQuery:    ptr("x"),
		Causes:         ptr(set.Of(models.CauseFood)),
		MaxDistance:    ptr(3),
		TimeCommitment: ptr(set.Of(models.TimeWeekly)),
		Availability:   ptr(set.Of(models.AvailabilityEvenings)),
		LocationType:   ptr(models.LocationFilterInPerson),
	})
	assert.True(t, s.Filters.HasActive())

	cleared := s.ClearFilters()
	assert.Equal(t, DefaultFilters(), cleared.Filters)
	assert.Equal(t, "", cleared.Filters.SearchQuery)
	assert.Equal(t, 25, cleared.Filters.MaxDistance)
	assert.False(t, cleared.Filters.HasActive())
}

func TestFilters_ActiveCount(t *testing.T) {
	f := DefaultFilters()
	assert.Equal(t, 0, f.ActiveCount())
	assert.False(t, f.HasActive())

	f = f.Apply(FiltersPatch{MaxDistance: ptr(10)})
	assert.Equal(t, 0, f.ActiveCount())
	assert.True(t, f.HasActive())

	f = f.Apply(FiltersPatch{
		Causes:       ptr(set.Of(models.CauseFood, models.CauseHealth)),
		Availability: ptr(set.Of(models.AvailabilityWeekends)),
		LocationType: ptr(models.LocationFilterRemote),
	})
	assert.Equal(t, 4, f.ActiveCount())
}

func TestState_UpdateAnswers(t *testing.T) {
	s := DefaultState().UpdateAnswers(AnswersPatch{ExperienceLevel: ptr(models.ExperienceSome)})
	s = s.UpdateAnswers(AnswersPatch{HoursPerWeek: ptr(50), MaxDistance: ptr(-3)})

	assert.Equal(t, models.ExperienceSome, s.Answers.ExperienceLevel)
	assert.Equal(t, MaxHoursPerWeek, s.Answers.HoursPerWeek)
	assert.Equal(t, MinDistance, s.Answers.MaxDistance)
	assert.True(t, s.Answers.PreferredCauses.Empty())
}

func TestState_Hours(t *testing.T) {
	s := DefaultState()
	assert.Equal(t, 8.0, s.ScheduledHours)
	assert.Equal(t, 20.0, s.GoalHours)

	s = s.AddScheduledHours(2).AddScheduledHours(2)
	assert.Equal(t, 12.0, s.ScheduledHours)

	s = s.WithGoalHours(10)
	p := s.Progress()
	assert.Equal(t, 100.0, p.Percentage)
	assert.Equal(t, -2.0, p.HoursToGo)

	half := DefaultState().WithGoalHours(16).Progress()
	assert.Equal(t, 50.0, half.Percentage)
	assert.Equal(t, 8.0, half.HoursToGo)

	assert.Equal(t, 100.0, DefaultState().WithGoalHours(0).Progress().Percentage)
}
