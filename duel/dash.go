package duel

// DashDetector turns two presses of the same direction within Window ticks
// into a dash request.
type DashDetector struct {
	Window int

	lastLeft  int
	lastRight int
	seenLeft  bool
	seenRight bool
}

// DefaultDashWindow is about 250ms at 60 ticks per second.
const DefaultDashWindow = 15

func NewDashDetector(window int) *DashDetector {
	if window <= 0 {
		window = DefaultDashWindow
	}
	return &DashDetector{Window: window}
}

// Observe records this tick's press edges and returns -1, +1 or 0.
func (d *DashDetector) Observe(frame int, leftPressed, rightPressed bool) int {
	if d == nil {
		return 0
	}
	dash := 0
	if leftPressed {
		if d.seenLeft && frame-d.lastLeft <= d.Window {
			dash = -1
			d.seenLeft = false
		} else {
			d.lastLeft = frame
			d.seenLeft = true
		}
	}
	if rightPressed {
		if d.seenRight && frame-d.lastRight <= d.Window {
			dash = 1
			d.seenRight = false
		} else {
			d.lastRight = frame
			d.seenRight = true
		}
	}
	return dash
}
