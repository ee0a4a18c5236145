package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voluntaura/internal/models"
)

func TestDefault_BundledSeedIsValid(t *testing.T) {
	c := Default()
	require.Equal(t, 12, c.Len())

	all := c.All()
	assert.Equal(t, "1", all[0].ID)
	assert.Equal(t, "12", all[len(all)-1].ID)

	trail, err := c.Get("12")
	require.NoError(t, err)
	assert.Equal(t, models.FallbackImageURL, trail.Image())
}

func TestGet_Unknown(t *testing.T) {
	_, err := Default().Get("nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownOpportunity))
}

func TestAll_ReturnsCopies(t *testing.T) {
	c := Default()
	all := c.All()
	all[0].Title = "changed"
	all[0].Causes[0] = models.CauseFood

	fresh, err := c.Get(all[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Beach Cleanup Crew", fresh.Title)
	assert.Equal(t, models.CauseEnvironment, fresh.Causes[0])
}

func TestNew_RejectsInvalidEntries(t *testing.T) {
	valid := models.Opportunity{
		ID:             "a",
		Causes:         []models.Cause{models.CauseAnimals},
		LocationType:   models.LocationRemote,
		TimeCommitment: models.TimeWeekly,
	}

	tests := []struct {
		name   string
		mutate func(o *models.Opportunity)
		errMsg string
	}{
		{name: "empty id", mutate: func(o *models.Opportunity) { o.ID = " " }, errMsg: "empty id"},
		{name: "no causes", mutate: func(o *models.Opportunity) { o.Causes = nil }, errMsg: "causes must not be empty"},
		{name: "unknown cause", mutate: func(o *models.Opportunity) { o.Causes = []models.Cause{"Space"} }, errMsg: "unknown cause"},
		{name: "negative distance", mutate: func(o *models.Opportunity) { o.Distance = -1 }, errMsg: "negative distance"},
		{name: "bad location", mutate: func(o *models.Opportunity) { o.LocationType = "Moon" }, errMsg: "unknown location type"},
		{name: "bad time", mutate: func(o *models.Opportunity) { o.TimeCommitment = "Hourly" }, errMsg: "unknown time commitment"},
		{name: "bad availability", mutate: func(o *models.Opportunity) {
			o.Availability = []models.Availability{"Holidays"}
		}, errMsg: "unknown availability"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := valid
			tt.mutate(&o)
			_, err := New([]models.Opportunity{o})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}

	_, err := New([]models.Opportunity{valid, valid})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate id")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := `opportunities:
  - id: x1
    title: Remote thing
    causes: [Animals]
    location_type: Remote
    time_commitment: Flexible
    distance: 0
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, 1, c.Len())
	assert.True(t, c.All()[0].IsRemote())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
