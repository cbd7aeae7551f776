package system

import (
	"math"

	"github.com/milk9111/duel/sim"
	"github.com/milk9111/duel/sim/component"
)

// PostureSystem applies posture breaks and passive posture recovery.
type PostureSystem struct{}

func NewPostureSystem() *PostureSystem {
	return &PostureSystem{}
}

func (ps *PostureSystem) Update(s *sim.State) {
	if s == nil || s.Player == nil || s.Boss == nil {
		return
	}
	if s.Boss.PostureBroken() {
		Deathblow(s)
	}
	if s.Player.PostureBroken() {
		BreakPlayerPosture(s)
	}
	recoverPlayerPosture(s.Player)
	recoverBossPosture(s.Boss)
}

// Deathblow takes half the boss's max health and resets its posture.
func Deathblow(s *sim.State) {
	b := s.Boss
	b.Damage(b.MaxHealth * 0.5)
	b.SetPosture(0)
	b.Enter(component.BossHit, 120)
	b.MoveQueue = b.MoveQueue[:0]
	b.Vel.Y = -7
	s.HitStopFor(40)
	s.Log("Deathblow!")
	s.Cue(component.CueDeathblow, b.CenterX())
}

// PlayerPostureRecovery is the per-tick posture decay for the player.
func PlayerPostureRecovery(healthFrac, bonus float64, blocking bool) float64 {
	rate := 0.02 + 0.06*healthFrac + bonus
	if blocking {
		rate *= 2
	}
	return rate
}

// BossPostureRecovery falls off with the cube of remaining health.
func BossPostureRecovery(healthFrac float64) float64 {
	return math.Max(0.005, 0.06*healthFrac*healthFrac*healthFrac)
}

func recoverPlayerPosture(p *component.Player) {
	if p.Posture <= 0 || p.PostureLock > 0 {
		return
	}
	switch p.State {
	case component.PlayerAttack, component.PlayerThrustRelease, component.PlayerFloatingPassage:
		return
	}
	blocking := p.Blocking && p.State != component.PlayerHit
	p.SetPosture(p.Posture - PlayerPostureRecovery(p.HealthFrac(), p.Stats.PostureRecoveryBonus, blocking))
}

func recoverBossPosture(b *component.Boss) {
	if b.Posture <= 0 || b.PostureLock > 0 {
		return
	}
	if b.State == component.BossAttack || b.State == component.BossWindup {
		return
	}
	b.SetPosture(b.Posture - BossPostureRecovery(b.HealthFrac()))
}
