package sim

import (
	"math"

	"github.com/milk9111/duel/sim/component"
)

// Roller supplies uniform random numbers in [0,1).
type Roller interface {
	Float64() float64
}

// Resources gates consumable use. Each call checks and decrements in one step.
type Resources interface {
	TryConsumeHeal() bool
	TryConsumeTools(n int) bool
}

// Tuner may reshape a decision probability before it is rolled. The result
// is clamped to [0,1] by the caller.
type Tuner interface {
	Adjust(decision string, ctx map[string]any, base float64) float64
}

type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeVictory
	OutcomeDefeat
)

func (o Outcome) String() string {
	switch o {
	case OutcomeVictory:
		return "victory"
	case OutcomeDefeat:
		return "defeat"
	default:
		return "none"
	}
}

// State is the whole mutable simulation. Systems read and write it in the
// order the scheduler runs them.
type State struct {
	Frame  int
	Tuning component.Tuning

	Player      *component.Player
	Boss        *component.Boss
	Projectiles []component.Projectile

	Intent  component.Intent
	HitStop int
	Outcome Outcome

	Rand      Roller
	Resources Resources
	Tuner     Tuner

	Events EventQueue
}

func NewState(t component.Tuning, ps component.PlayerStats, bs component.BossStats) *State {
	return &State{
		Tuning: t,
		Player: component.NewPlayer(ps, t),
		Boss:   component.NewBoss(bs, t),
	}
}

func (s *State) Level() int {
	if s == nil || s.Boss == nil {
		return 1
	}
	return s.Boss.Stats.Level
}

// Distance is the horizontal gap between the two bodies' left edges.
func (s *State) Distance() float64 {
	return math.Abs(s.Player.Pos.X - s.Boss.Pos.X)
}

// Roll consumes one random number and reports whether it fell below p.
func (s *State) Roll(p float64) bool {
	return s.Rand.Float64() < p
}

func (s *State) Float() float64 {
	return s.Rand.Float64()
}

func (s *State) HitStopFor(frames int) {
	if s == nil || frames <= 0 {
		return
	}
	s.HitStop = frames
}

func (s *State) Log(msg string) {
	if s == nil {
		return
	}
	s.Events.Push(Event{Type: EventLog, Message: msg})
}

func (s *State) Cue(kind component.CueKind, x float64) {
	if s == nil {
		return
	}
	s.Events.Push(Event{Type: EventCue, Cue: component.Cue{Kind: kind, X: x, Frame: s.Frame}})
}

func (s *State) Spawn(p component.Projectile) {
	s.Projectiles = append(s.Projectiles, p)
}
