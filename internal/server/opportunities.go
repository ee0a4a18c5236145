package server

import (
	"net/http"
	"net/url"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gin-gonic/gin"

	"voluntaura/internal/filter"
	"voluntaura/internal/models"
	"voluntaura/internal/notify"
	"voluntaura/internal/prefs"
)

type shareLink struct {
	Title string `json:"title"`
	Text  string `json:"text"`
	URL   string `json:"url"`
}

// present resolves the display image of every opportunity.
func present(opps []models.Opportunity) []models.Opportunity {
	return slice.Map(opps, func(_ int, o models.Opportunity) models.Opportunity {
		o.ImageURL = o.Image()
		return o
	})
}

// statusFlags reports which status sets contain id.
func statusFlags(st prefs.State, id string) map[models.StatusKind]bool {
	flags := make(map[models.StatusKind]bool, len(models.StatusKinds))
	for _, kind := range models.StatusKinds {
		flags[kind] = st.Status(kind).Has(id)
	}
	return flags
}

// handleListOpportunities runs discover mode with the stored filters. The q
// query parameter overrides the search text for this request only.
func (s *Server) handleListOpportunities(c *gin.Context) {
	filters := s.prefs.Snapshot().Filters
	if q, ok := c.GetQuery("q"); ok {
		filters.SearchQuery = q
	}

	results := filter.Discover(s.catalog.All(), filters)
	respondSuccess(c, http.StatusOK, gin.H{
		"opportunities":    present(results),
		"count":            len(results),
		"total":            s.catalog.Len(),
		"filters":          filters,
		"activeFilters":    filters.ActiveCount(),
		"hasActiveFilters": filters.HasActive(),
	})
}

func (s *Server) handleGetOpportunity(c *gin.Context) {
	opp, ok := s.lookup(c)
	if !ok {
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{
		"opportunity": present([]models.Opportunity{opp})[0],
		"status":      statusFlags(s.prefs.Snapshot(), opp.ID),
	})
}

// handleSimilar lists up to three other opportunities sharing a cause.
func (s *Server) handleSimilar(c *gin.Context) {
	opp, ok := s.lookup(c)
	if !ok {
		return
	}
	similar := filter.Similar(s.catalog.All(), opp, filter.SimilarLimit)
	respondSuccess(c, http.StatusOK, gin.H{"opportunities": present(similar)})
}

// handleShare builds a share link. There is no native share sheet on the
// server, so the response always carries the copied-link toast.
func (s *Server) handleShare(c *gin.Context) {
	opp, ok := s.lookup(c)
	if !ok {
		return
	}

	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	link := url.URL{
		Scheme:   scheme,
		Host:     c.Request.Host,
		Path:     "/discover",
		RawQuery: url.Values{"opportunity": []string{opp.ID}}.Encode(),
	}

	respondSuccess(c, http.StatusOK, gin.H{
		"share": shareLink{Title: opp.Title, Text: opp.ShortDescription, URL: link.String()},
		"toast": notify.LinkCopied(),
	})
}
