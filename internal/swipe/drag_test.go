package swipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDrag_Release(t *testing.T) {
	tests := []struct {
		name string
		dx   float64
		want Decision
	}{
		{name: "past threshold right", dx: 150, want: DecisionRight},
		{name: "past threshold left", dx: -101, want: DecisionLeft},
		{name: "exactly threshold snaps back", dx: 100, want: DecisionNone},
		{name: "short drag", dx: -40, want: DecisionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Drag
			d.Start(200, 300)
			d.Move(200+tt.dx, 310)
			assert.Equal(t, tt.want, d.Release())
			assert.Zero(t, d.X)
			assert.Zero(t, d.Y)
		})
	}
}

func TestDrag_VisualFeedback(t *testing.T) {
	var d Drag
	d.Start(0, 0)

	d.Move(50, 0)
	assert.InDelta(t, 2.5, d.Rotation(), 1e-9)
	assert.InDelta(t, 0.5, d.StampOpacity(), 1e-9)
	assert.InDelta(t, 1-50.0/300, d.CardOpacity(), 1e-9)

	d.Move(-400, 0)
	assert.InDelta(t, -20, d.Rotation(), 1e-9)
	assert.Equal(t, 1.0, d.StampOpacity())
	assert.Equal(t, 0.0, d.CardOpacity())
}

func TestDrag_MoveWithoutStartIsIgnored(t *testing.T) {
	var d Drag
	d.Move(500, 0)
	assert.Zero(t, d.X)
	assert.Equal(t, DecisionNone, d.Release())
}

func TestDecision_String(t *testing.T) {
	assert.Equal(t, "left", DecisionLeft.String())
	assert.Equal(t, "right", DecisionRight.String())
	assert.Equal(t, "none", DecisionNone.String())
}
