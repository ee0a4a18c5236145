package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"voluntaura/internal/models"
)

var beach = models.Opportunity{ID: "1", Title: "Beach Cleanup"}

func TestForStatusAdd(t *testing.T) {
	saved := ForStatusAdd(models.StatusSaved, beach)
	assert.Equal(t, "Saved!", saved.Title)
	assert.Equal(t, "Beach Cleanup has been saved to your list.", saved.Description)

	applied := ForStatusAdd(models.StatusApplied, beach)
	assert.Equal(t, "Application submitted! 🎉", applied.Title)
	assert.Equal(t, "Your interest in Beach Cleanup has been recorded.", applied.Description)

	done := ForStatusAdd(models.StatusCompleted, beach)
	assert.Equal(t, "Marked as completed! 🌟", done.Title)
	assert.Equal(t, "Great work making a difference!", done.Description)
}

func TestForStatusRemove(t *testing.T) {
	assert.Equal(t, "Removed from saved", ForStatusRemove(models.StatusSaved, beach).Title)
	assert.Equal(t, RemovedFromMatches(), ForStatusRemove(models.StatusMatched, beach))
	assert.Equal(t, Removed(), ForStatusRemove(models.StatusApplied, beach))
	assert.Equal(t, Removed(), ForStatusRemove(models.StatusCompleted, beach))
}

func TestSwipeSaved(t *testing.T) {
	toast := SwipeSaved(beach)
	assert.Equal(t, "Saved for later! ⭐", toast.Title)
	assert.Equal(t, "Beach Cleanup has been saved to your list.", toast.Description)
}

func TestLinkCopied(t *testing.T) {
	assert.Equal(t, Toast{Title: "Link copied!", Description: "Share link has been copied to clipboard."}, LinkCopied())
}
