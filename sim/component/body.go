package component

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/duel/common"
)

// Body is an axis-aligned box. Pos is the top-left corner; a body resting on
// the ground has Pos.Y equal to the arena ground line.
type Body struct {
	Pos    cp.Vector
	Vel    cp.Vector
	Width  float64
	Height float64
	Mass   float64

	// Damped requests ground friction for the current tick. Systems set it
	// and the physics step clears it after use.
	Damped bool
}

func (b *Body) Box() cp.BB {
	if b == nil {
		return cp.BB{}
	}
	return common.NewRect(b.Pos.X, b.Pos.Y, b.Width, b.Height)
}

func (b *Body) CenterX() float64 {
	if b == nil {
		return 0
	}
	return b.Pos.X + b.Width/2
}

// Grounded reports whether the body rests on (or below) the ground line.
func (b *Body) Grounded(groundY float64) bool {
	return b != nil && b.Pos.Y >= groundY
}

// Cornered reports whether the body is within margin of either arena wall.
func (b *Body) Cornered(arenaWidth, margin float64) bool {
	if b == nil {
		return false
	}
	return b.Pos.X < margin || b.Pos.X > arenaWidth-margin-b.Width
}

// TowardCenter is the direction (+1 or -1) from the body to the arena middle.
func (b *Body) TowardCenter(arenaWidth float64) float64 {
	if b.Pos.X < arenaWidth/2 {
		return 1
	}
	return -1
}
