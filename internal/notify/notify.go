// Package notify builds the transient toast messages returned alongside
// state changes. Toasts are never stored.
package notify

import (
	"fmt"

	"voluntaura/internal/models"
)

// Toast is a short confirmation shown after an action.
type Toast struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// Saved confirms opp was added to the saved list.
func Saved(opp models.Opportunity) Toast {
	return Toast{Title: "Saved!", Description: fmt.Sprintf("%s has been saved to your list.", opp.Title)}
}

// Unsaved confirms opp was taken off the saved list.
func Unsaved(opp models.Opportunity) Toast {
	return Toast{Title: "Removed from saved", Description: fmt.Sprintf("%s has been removed from your saved list.", opp.Title)}
}

// RemovedFromMatches confirms a match was dropped.
func RemovedFromMatches() Toast {
	return Toast{Title: "Removed from matches"}
}

// Removed is the generic removal confirmation.
func Removed() Toast {
	return Toast{Title: "Removed"}
}

// Applied confirms interest in opp was recorded.
func Applied(opp models.Opportunity) Toast {
	return Toast{Title: "Application submitted! 🎉", Description: fmt.Sprintf("Your interest in %s has been recorded.", opp.Title)}
}

// Completed celebrates a finished opportunity.
func Completed() Toast {
	return Toast{Title: "Marked as completed! 🌟", Description: "Great work making a difference!"}
}

// GoalUpdated confirms a new monthly hours goal.
func GoalUpdated() Toast {
	return Toast{Title: "Goal updated!"}
}

// SwipeSaved is shown when a card is bookmarked from the swipe feed.
func SwipeSaved(opp models.Opportunity) Toast {
	return Toast{Title: "Saved for later! ⭐", Description: fmt.Sprintf("%s has been saved to your list.", opp.Title)}
}

// LinkCopied is the share fallback when no native share is available.
func LinkCopied() Toast {
	return Toast{Title: "Link copied!", Description: "Share link has been copied to clipboard."}
}

// ForStatusAdd picks the toast for adding opp to a status set.
func ForStatusAdd(kind models.StatusKind, opp models.Opportunity) Toast {
	switch kind {
	case models.StatusSaved:
		return Saved(opp)
	case models.StatusApplied:
		return Applied(opp)
	case models.StatusCompleted:
		return Completed()
	}
	return Toast{Title: "Added to matches"}
}

// ForStatusRemove picks the toast for removing opp from a status set.
func ForStatusRemove(kind models.StatusKind, opp models.Opportunity) Toast {
	switch kind {
	case models.StatusSaved:
		return Unsaved(opp)
	case models.StatusMatched:
		return RemovedFromMatches()
	}
	return Removed()
}
