package swipe

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voluntaura/internal/models"
)

type closeRecorder struct {
	mu  sync.Mutex
	ids []string
}

func (r *closeRecorder) record(opp models.Opportunity) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ids = append(r.ids, opp.ID)
}

func (r *closeRecorder) closed() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.ids...)
}

func TestCelebration_AutoDismisses(t *testing.T) {
	rec := &closeRecorder{}
	c := NewCelebration(20*time.Millisecond, rec.record)
	defer c.Close()

	c.Matched(models.Opportunity{ID: "1", Title: "Beach Cleanup"})
	shown, ok := c.Current()
	require.True(t, ok)
	assert.Equal(t, "1", shown.ID)

	assert.Eventually(t, func() bool {
		_, visible := c.Current()
		return !visible
	}, time.Second, 5*time.Millisecond)
	assert.Eventually(t, func() bool { return len(rec.closed()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"1"}, rec.closed())
}

func TestCelebration_DismissEarly(t *testing.T) {
	rec := &closeRecorder{}
	c := NewCelebration(time.Hour, rec.record)
	defer c.Close()

	c.Matched(models.Opportunity{ID: "2"})
	c.Dismiss()

	_, ok := c.Current()
	assert.False(t, ok)
	assert.Equal(t, []string{"2"}, rec.closed())

	c.Dismiss()
	assert.Equal(t, []string{"2"}, rec.closed(), "dismissing nothing is a no-op")
}

func TestCelebration_NewMatchReplacesPrevious(t *testing.T) {
	rec := &closeRecorder{}
	c := NewCelebration(time.Hour, rec.record)
	defer c.Close()

	c.Matched(models.Opportunity{ID: "a"})
	c.Matched(models.Opportunity{ID: "b"})

	shown, ok := c.Current()
	require.True(t, ok)
	assert.Equal(t, "b", shown.ID)
	assert.Empty(t, rec.closed())
}

func TestCelebration_CloseIgnoresLaterMatches(t *testing.T) {
	c := NewCelebration(time.Hour, nil)
	c.Matched(models.Opportunity{ID: "a"})
	c.Close()

	_, ok := c.Current()
	assert.False(t, ok)

	c.Matched(models.Opportunity{ID: "b"})
	_, ok = c.Current()
	assert.False(t, ok)
}

func TestNewCelebration_DefaultsDuration(t *testing.T) {
	c := NewCelebration(0, nil)
	defer c.Close()
	assert.Equal(t, DefaultCelebration, c.duration)
}
