package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/ecodeclub/ekit/slice"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"voluntaura/internal/filter"
	"voluntaura/internal/models"
	"voluntaura/internal/prefs"
	"voluntaura/internal/set"
)

var catalogFlags struct {
	search       string
	causes       []string
	maxDistance  int
	location     string
	times        []string
	availability []string
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List opportunities matching discover filters",
	Example: `  voluntaura catalog --cause Animals --max-distance 5
  voluntaura catalog --location Remote --time Weekly`,
	RunE: runCatalog,
}

func init() {
	f := catalogCmd.Flags()
	f.StringVar(&catalogFlags.search, "search", "", "Case-insensitive text search")
	f.StringSliceVar(&catalogFlags.causes, "cause", nil, "Cause filter (repeatable)")
	f.IntVar(&catalogFlags.maxDistance, "max-distance", prefs.MaxDistance, "Maximum distance in miles")
	f.StringVar(&catalogFlags.location, "location", string(models.LocationFilterAll), "all, In-person or Remote")
	f.StringSliceVar(&catalogFlags.times, "time", nil, "Time commitment filter (repeatable)")
	f.StringSliceVar(&catalogFlags.availability, "availability", nil, "Availability filter (repeatable)")
}

func runCatalog(cmd *cobra.Command, args []string) error {
	filters, err := catalogFilters()
	if err != nil {
		return err
	}
	cat, err := loadCatalog(cfg.Catalog.Path)
	if err != nil {
		return err
	}

	results := filter.Discover(cat.All(), filters)
	renderCatalog(cmd.OutOrStdout(), results, cat.Len())
	return nil
}

// catalogFilters turns the flags into discover filters. Values outside the
// enumerations are rejected instead of being silently ignored.
func catalogFilters() (prefs.Filters, error) {
	location := models.LocationFilter(catalogFlags.location)
	causes := set.Of(slice.Map(catalogFlags.causes, func(_ int, s string) models.Cause { return models.Cause(s) })...)
	times := set.Of(slice.Map(catalogFlags.times, func(_ int, s string) models.TimeCommitment { return models.TimeCommitment(s) })...)
	avail := set.Of(slice.Map(catalogFlags.availability, func(_ int, s string) models.Availability { return models.Availability(s) })...)

	patch := prefs.FiltersPatch{
		SearchQuery:    &catalogFlags.search,
		Causes:         &causes,
		MaxDistance:    &catalogFlags.maxDistance,
		TimeCommitment: &times,
		Availability:   &avail,
		LocationType:   &location,
	}
	if err := patch.Validate(); err != nil {
		return prefs.Filters{}, fmt.Errorf("invalid filter flag: %w", err)
	}
	return prefs.DefaultFilters().Apply(patch), nil
}

func renderCatalog(w io.Writer, opps []models.Opportunity, total int) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"ID", "Title", "Organization", "Causes", "Location", "Commitment", "Distance", "Spots"})
	for _, o := range opps {
		causes := slice.Map(o.Causes, func(_ int, c models.Cause) string { return string(c) })
		distance := "remote"
		if !o.IsRemote() {
			distance = fmt.Sprintf("%.1f mi", o.Distance)
		}
		t.AppendRow(table.Row{
			o.ID, o.Title, o.Organization, strings.Join(causes, ", "), o.LocationType,
			o.TimeCommitment, distance, fmt.Sprintf("%d/%d", o.SpotsAvailable, o.SpotsTotal),
		})
	}
	t.AppendFooter(table.Row{"", fmt.Sprintf("%d of %d opportunities", len(opps), total)})
	t.Render()
}
