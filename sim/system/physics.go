package system

import (
	"math"

	"github.com/milk9111/duel/common"
	"github.com/milk9111/duel/sim"
	"github.com/milk9111/duel/sim/component"
)

// PhysicsSystem integrates both bodies, clamps them to the arena and resolves
// the elastic push between them.
type PhysicsSystem struct{}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{}
}

func (p *PhysicsSystem) Update(s *sim.State) {
	if s == nil || s.Player == nil || s.Boss == nil {
		return
	}
	t := s.Tuning
	integrate(&s.Player.Body, t)
	integrate(&s.Boss.Body, t)

	if s.Player.State == component.PlayerDash || s.Boss.State == component.BossDodge {
		return
	}
	ResolveContact(&s.Player.Body, &s.Boss.Body, t.Physics)
	clampToArena(&s.Player.Body, t.Arena)
	clampToArena(&s.Boss.Body, t.Arena)
}

func integrate(b *component.Body, t component.Tuning) {
	if b.Damped {
		b.Vel.X *= t.Physics.Friction
		b.Damped = false
	}
	b.Vel.Y += t.Physics.Gravity
	b.Pos = b.Pos.Add(b.Vel)
	clampToArena(b, t.Arena)
}

func clampToArena(b *component.Body, a component.ArenaTuning) {
	if b.Pos.Y > a.GroundY {
		b.Pos.Y = a.GroundY
		b.Vel.Y = 0
	}
	if b.Pos.X < 0 {
		b.Pos.X = 0
		b.Vel.X = 0
	}
	if maxX := a.Width - b.Width; b.Pos.X > maxX {
		b.Pos.X = maxX
		b.Vel.X = 0
	}
}

// ResolveContact separates overlapping bodies by inverse-mass share and
// applies a restitution impulse when they are closing. Returns whether the
// bodies overlapped.
func ResolveContact(a, b *component.Body, pt component.PhysicsTuning) bool {
	if !common.Overlaps(a.Box(), b.Box()) {
		return false
	}

	right := a.Pos.X + a.Width - b.Pos.X
	left := b.Pos.X + b.Width - a.Pos.X
	overlap := left
	if right < left {
		overlap = -right
	}

	total := a.Mass + b.Mass
	if math.Abs(overlap) < pt.MaxSeparation {
		a.Pos.X += overlap * (b.Mass / total)
		b.Pos.X -= overlap * (a.Mass / total)
	}

	normal := 1.0
	if overlap < 0 {
		normal = -1
	}
	along := (a.Vel.X - b.Vel.X) * normal
	if along > 0 {
		return true
	}

	j := -(1 + pt.Elasticity) * along
	j /= 1/a.Mass + 1/b.Mass
	a.Vel.X += j * normal / a.Mass
	b.Vel.X -= j * normal / b.Mass
	return true
}
