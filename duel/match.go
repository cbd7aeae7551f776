package duel

import (
	"errors"
	"fmt"

	"github.com/milk9111/duel/sim"
	"github.com/milk9111/duel/sim/component"
	"github.com/milk9111/duel/sim/system"
)

var ErrInvalidStats = errors.New("duel: invalid stats")

// HUD is the per-tick gauge snapshot for the presentation layer.
type HUD struct {
	PlayerHealth     float64
	PlayerMaxHealth  float64
	PlayerPosture    float64
	PlayerMaxPosture float64
	BossHealth       float64
	BossMaxHealth    float64
	BossPosture      float64
	BossMaxPosture   float64
}

// Hooks are optional presentation callbacks. Nil hooks are skipped.
type Hooks struct {
	HUD func(HUD)
	Log func(string)
	Cue func(component.Cue)
	End func(sim.Outcome)
}

type Config struct {
	Tuning    component.Tuning
	Player    component.PlayerStats
	Boss      component.BossStats
	Resources Resources
	// Rand defaults to a fixed seed when nil.
	Rand  sim.Roller
	Tuner sim.Tuner
	Hooks Hooks
}

// Match owns one duel from construction until an outcome fires.
type Match struct {
	state  *sim.State
	sched  *sim.Scheduler
	hooks  Hooks
	paused bool
	ended  bool

	lastLog string
	carry   component.Intent
}

func NewMatch(cfg Config) (*Match, error) {
	if err := validatePlayer(cfg.Player); err != nil {
		return nil, err
	}
	if err := validateBoss(cfg.Boss); err != nil {
		return nil, err
	}

	tuning := cfg.Tuning
	if tuning.Arena.Width <= 0 {
		tuning = component.DefaultTuning()
	}
	st := sim.NewState(tuning, cfg.Player, cfg.Boss)
	st.Resources = cfg.Resources
	if st.Resources == nil {
		st.Resources = NewPouch(0, 0)
	}
	st.Rand = cfg.Rand
	if st.Rand == nil {
		st.Rand = NewRand(1)
	}
	st.Tuner = cfg.Tuner

	return &Match{
		state: st,
		sched: system.NewPipeline(),
		hooks: cfg.Hooks,
	}, nil
}

func validatePlayer(p component.PlayerStats) error {
	if p.MaxHealth <= 0 || p.MaxPosture <= 0 {
		return fmt.Errorf("%w: player pools must be positive", ErrInvalidStats)
	}
	if p.AttackPower < 0 {
		return fmt.Errorf("%w: player attack power %.2f", ErrInvalidStats, p.AttackPower)
	}
	return nil
}

func validateBoss(b component.BossStats) error {
	if b.MaxHealth <= 0 || b.MaxPosture <= 0 {
		return fmt.Errorf("%w: boss pools must be positive", ErrInvalidStats)
	}
	if b.Aggression < 0 || b.Aggression > MaxAggression {
		return fmt.Errorf("%w: boss aggression %.2f outside [0, %.2f]", ErrInvalidStats, b.Aggression, MaxAggression)
	}
	if b.Level < 0 {
		return fmt.Errorf("%w: boss level %d", ErrInvalidStats, b.Level)
	}
	return nil
}

// Step advances one tick. Paused and finished matches ignore the call; during
// hit-stop only the freeze counter moves and press edges are held over.
func (m *Match) Step(in component.Intent) {
	if m == nil || m.paused || m.ended {
		return
	}
	s := m.state
	if s.HitStop > 0 {
		s.HitStop--
		m.carry = mergeEdges(m.carry, in)
		return
	}

	s.Frame++
	s.Intent = mergeEdges(m.carry, in)
	m.carry = component.Intent{}

	m.sched.Update(s)
	m.checkOutcome()
	m.flush()
}

// mergeEdges keeps press edges from held-over ticks so a parry or attack
// pressed during a freeze still lands.
func mergeEdges(carry, in component.Intent) component.Intent {
	in.BlockPressed = in.BlockPressed || carry.BlockPressed
	in.Attack = in.Attack || carry.Attack
	in.Heal = in.Heal || carry.Heal
	in.Throw = in.Throw || carry.Throw
	in.Special = in.Special || carry.Special
	if in.Dash == 0 {
		in.Dash = carry.Dash
	}
	return in
}

// checkOutcome latches the first terminal condition. Player defeat is
// evaluated before boss defeat.
func (m *Match) checkOutcome() {
	s := m.state
	switch {
	case !s.Player.Alive():
		s.Outcome = sim.OutcomeDefeat
		s.Log("Death")
	case !s.Boss.Alive():
		s.Outcome = sim.OutcomeVictory
		s.Log("Immortality severed")
	default:
		return
	}
	m.ended = true
}

func (m *Match) flush() {
	for _, evt := range m.state.Events.Drain() {
		switch evt.Type {
		case sim.EventLog:
			m.lastLog = evt.Message
			if m.hooks.Log != nil {
				m.hooks.Log(evt.Message)
			}
		case sim.EventCue:
			if m.hooks.Cue != nil {
				m.hooks.Cue(evt.Cue)
			}
		}
	}
	if m.hooks.HUD != nil {
		m.hooks.HUD(m.HUD())
	}
	if m.ended && m.hooks.End != nil {
		m.hooks.End(m.state.Outcome)
	}
}

func (m *Match) HUD() HUD {
	p := m.state.Player
	b := m.state.Boss
	return HUD{
		PlayerHealth:     p.Health,
		PlayerMaxHealth:  p.MaxHealth,
		PlayerPosture:    p.Posture,
		PlayerMaxPosture: p.MaxPosture,
		BossHealth:       b.Health,
		BossMaxHealth:    b.MaxHealth,
		BossPosture:      b.Posture,
		BossMaxPosture:   b.MaxPosture,
	}
}

func (m *Match) SetPaused(paused bool) {
	if m == nil {
		return
	}
	m.paused = paused
}

func (m *Match) Paused() bool {
	return m != nil && m.paused
}

// Over reports whether an outcome has fired.
func (m *Match) Over() bool {
	return m != nil && m.ended
}

func (m *Match) Outcome() sim.Outcome {
	if m == nil {
		return sim.OutcomeNone
	}
	return m.state.Outcome
}

// LastLog is the most recent narration line.
func (m *Match) LastLog() string {
	if m == nil {
		return ""
	}
	return m.lastLog
}

func (m *Match) Frame() int {
	if m == nil {
		return 0
	}
	return m.state.Frame
}

// State exposes the simulation for read-only presentation. Callers must not
// mutate it.
func (m *Match) State() *sim.State {
	if m == nil {
		return nil
	}
	return m.state
}
