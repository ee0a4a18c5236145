package swipe

import "math"

// SwipeThreshold is the horizontal drag distance that commits a swipe.
const SwipeThreshold = 100.0

// Decision is what a released drag resolves to.
type Decision int

const (
	DecisionNone Decision = iota
	DecisionLeft
	DecisionRight
)

// String names the decision for logs and metrics labels.
func (d Decision) String() string {
	switch d {
	case DecisionLeft:
		return "left"
	case DecisionRight:
		return "right"
	}
	return "none"
}

// Drag is the throwaway view model for a card being dragged. It never
// touches a Session; callers apply the Decision on release.
type Drag struct {
	startX, startY float64
	X, Y           float64
	dragging       bool
}

// Start begins tracking at a pointer position.
func (d *Drag) Start(x, y float64) {
	d.startX, d.startY = x, y
	d.X, d.Y = 0, 0
	d.dragging = true
}

// Move updates the offset while dragging.
func (d *Drag) Move(x, y float64) {
	if !d.dragging {
		return
	}
	d.X = x - d.startX
	d.Y = y - d.startY
}

// Rotation in degrees for the current offset.
func (d *Drag) Rotation() float64 {
	return d.X * 0.05
}

// CardOpacity fades the card as it travels, reaching 0 at three thresholds.
func (d *Drag) CardOpacity() float64 {
	return math.Max(0, 1-math.Abs(d.X)/(3*SwipeThreshold))
}

// StampOpacity of the like/nope stamp, between 0 and 1.
func (d *Drag) StampOpacity() float64 {
	return math.Min(1, math.Abs(d.X)/SwipeThreshold)
}

// Release ends the drag and reports the decision. The offset snaps back.
func (d *Drag) Release() Decision {
	if !d.dragging {
		return DecisionNone
	}
	decision := DecisionNone
	switch {
	case d.X > SwipeThreshold:
		decision = DecisionRight
	case d.X < -SwipeThreshold:
		decision = DecisionLeft
	}
	*d = Drag{}
	return decision
}
