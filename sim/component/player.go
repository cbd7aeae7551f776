package component

type PlayerState int

const (
	PlayerIdle PlayerState = iota
	PlayerRun
	PlayerAttack
	PlayerDash
	PlayerHeal
	PlayerThrustCharge
	PlayerThrustRelease
	PlayerFloatingPassage
	PlayerHit
)

func (s PlayerState) String() string {
	switch s {
	case PlayerIdle:
		return "IDLE"
	case PlayerRun:
		return "RUN"
	case PlayerAttack:
		return "ATTACK"
	case PlayerDash:
		return "DASH"
	case PlayerHeal:
		return "HEAL"
	case PlayerThrustCharge:
		return "THRUST_CHARGE"
	case PlayerThrustRelease:
		return "THRUST_RELEASE"
	case PlayerFloatingPassage:
		return "FLOATING_PASSAGE"
	case PlayerHit:
		return "HIT"
	default:
		return "UNKNOWN"
	}
}

// StrikeKind identifies a pending player hit-check.
type StrikeKind int

const (
	StrikeNone StrikeKind = iota
	StrikeSlash
	StrikeThrust
	StrikeFlurry
)

// Strike is a data-only request for the combat system to resolve one player
// hit-check this tick.
type Strike struct {
	Kind StrikeKind
	// Final marks the last hit of a flurry, the only one that feeds the
	// boss combo counter.
	Final bool
}

type Player struct {
	Body
	Pools
	Stats PlayerStats

	State       PlayerState
	Timer       int
	FacingRight bool

	// Blocking mirrors the held block control for the current tick.
	Blocking    bool
	ParryTimer  int
	ParryBuffer int

	Charge     int
	ThrustMult float64

	ToolCooldown int
	PostureLock  int

	HealQueued    bool
	ThrowQueued   bool
	SpecialQueued bool

	Strike Strike
}

func NewPlayer(stats PlayerStats, t Tuning) *Player {
	b := t.Player.Body
	return &Player{
		Body: Body{
			Pos:    vec(b.StartX, t.Arena.GroundY),
			Width:  b.Width,
			Height: b.Height,
			Mass:   b.Mass,
		},
		Pools:       NewPools(stats.MaxHealth, stats.MaxPosture),
		Stats:       stats,
		State:       PlayerIdle,
		FacingRight: true,
		ThrustMult:  1,
	}
}

// Vulnerable reports the states that cannot defend against a boss hit.
func (p *Player) Vulnerable() bool {
	return p != nil && (p.State == PlayerHeal || p.State == PlayerThrustCharge)
}

// Threatening reports whether the player is mid-swing with enough of the move
// left for the boss to react.
func (p *Player) Threatening() bool {
	if p == nil || p.Timer <= 5 {
		return false
	}
	switch p.State {
	case PlayerAttack, PlayerFloatingPassage, PlayerThrustRelease:
		return true
	}
	return false
}

// Enter switches state and starts its timer. Pending strikes are dropped.
func (p *Player) Enter(state PlayerState, frames int) {
	if p == nil {
		return
	}
	p.State = state
	p.Timer = frames
	p.Strike = Strike{}
}
