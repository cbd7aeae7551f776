package component

import "github.com/jakecoffman/cp"

type BossState int

const (
	BossIdle BossState = iota
	BossPace
	BossWindup
	BossAttack
	BossRecover
	BossBlock
	BossDodge
	BossHit
)

func (s BossState) String() string {
	switch s {
	case BossIdle:
		return "IDLE"
	case BossPace:
		return "PACE"
	case BossWindup:
		return "WINDUP"
	case BossAttack:
		return "ATTACK"
	case BossRecover:
		return "RECOVER"
	case BossBlock:
		return "BLOCK"
	case BossDodge:
		return "DODGE"
	case BossHit:
		return "HIT"
	default:
		return "UNKNOWN"
	}
}

// DelayedKind is what a DelayedAction performs once its countdown ends.
type DelayedKind int

const (
	DelayedThrow DelayedKind = iota
	DelayedCounter
)

type DelayedAction struct {
	Frames int
	Kind   DelayedKind
}

type Boss struct {
	Body
	Pools
	Stats BossStats

	State       BossState
	Timer       int
	MaxWindup   int
	FacingRight bool

	Attack   AttackType
	Perilous bool
	// Armored attacks are not interrupted by player hits.
	Armored       bool
	MoveQueue     []AttackType
	StrikePending bool

	DodgeCooldown int
	PaceCooldown  int
	PostureLock   int

	ComboCounter int
	LastHitFrame int
	HasBeenHit   bool

	Pending []DelayedAction
}

func NewBoss(stats BossStats, t Tuning) *Boss {
	b := t.Boss.Body
	return &Boss{
		Body: Body{
			Pos:    vec(b.StartX, t.Arena.GroundY),
			Width:  b.Width,
			Height: b.Height,
			Mass:   b.Mass,
		},
		Pools: NewPools(stats.MaxHealth, stats.MaxPosture),
		Stats: stats,
		State: BossIdle,
		Timer: 60,
	}
}

// Enter switches state and starts its timer.
func (b *Boss) Enter(state BossState, frames int) {
	if b == nil {
		return
	}
	b.State = state
	b.Timer = frames
	b.StrikePending = false
	if state != BossWindup && state != BossAttack {
		b.Armored = false
	}
}

// Schedule queues an action to run after the given number of ticks.
func (b *Boss) Schedule(frames int, kind DelayedKind) {
	if b == nil {
		return
	}
	b.Pending = append(b.Pending, DelayedAction{Frames: frames, Kind: kind})
}

// HitWithin reports whether the player landed a hit in the last window ticks.
func (b *Boss) HitWithin(frame, window int) bool {
	return b != nil && b.HasBeenHit && frame-b.LastHitFrame <= window
}

func vec(x, y float64) cp.Vector {
	return cp.Vector{X: x, Y: y}
}
