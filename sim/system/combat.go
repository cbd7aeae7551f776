package system

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/duel/common"
	"github.com/milk9111/duel/sim"
	"github.com/milk9111/duel/sim/component"
)

// MeleeOutcome is the single result of one melee hit-check.
type MeleeOutcome int

const (
	MeleeMiss MeleeOutcome = iota
	MeleeParry
	MeleeGuard
	MeleeHit
)

func (o MeleeOutcome) String() string {
	switch o {
	case MeleeParry:
		return "parry"
	case MeleeGuard:
		return "guard"
	case MeleeHit:
		return "hit"
	default:
		return "miss"
	}
}

const (
	perilousDamageMult  = 2.35
	hitPostureFraction  = 0.2
	playerPostureLock   = 60
	parryPostureLock    = 60
	postureBreakStagger = 120
)

// CombatSystem resolves the melee hit-checks requested this tick.
type CombatSystem struct{}

func NewCombatSystem() *CombatSystem {
	return &CombatSystem{}
}

func (cs *CombatSystem) Update(s *sim.State) {
	if s == nil || s.Player == nil || s.Boss == nil {
		return
	}
	if s.Boss.StrikePending {
		s.Boss.StrikePending = false
		ResolveBossStrike(s)
	}
	if strike := s.Player.Strike; strike.Kind != component.StrikeNone {
		s.Player.Strike = component.Strike{}
		ResolvePlayerStrike(s, strike)
	}
}

// BossAttackBox is the area a boss strike covers. Sweeps hug the ground;
// thrusts are narrow at chest height.
func BossAttackBox(b *component.Boss, profile component.AttackProfile) cp.BB {
	x, y, w, h := b.Pos.X, b.Pos.Y, b.Width, b.Height
	switch b.Attack {
	case component.AttackSweep:
		left := x + w - profile.Range + 20
		if b.FacingRight {
			left = x - 20
		}
		return common.NewRect(left, y+h-35, profile.Range, 45)
	case component.AttackThrust:
		return common.NewRect(reachLeft(b, profile.Range), y+20, profile.Range, 40)
	default:
		return common.NewRect(reachLeft(b, profile.Range), y-40, profile.Range, 120)
	}
}

func reachLeft(b *component.Boss, reach float64) float64 {
	if b.FacingRight {
		return b.Pos.X
	}
	return b.Pos.X + b.Width - reach
}

// PlayerStrikeBox is the area a player hit-check covers.
func PlayerStrikeBox(p *component.Player, kind component.StrikeKind) cp.BB {
	x, y := p.Pos.X, p.Pos.Y
	switch kind {
	case component.StrikeThrust:
		w := 150 + float64(p.Charge)
		left := x + 10 - w
		if p.FacingRight {
			left = x + 30
		}
		return common.NewRect(left, y+20, w, 30)
	case component.StrikeFlurry:
		left := x - 80
		if p.FacingRight {
			left = x + 10
		}
		return common.NewRect(left, y-20, 100, 80)
	default:
		left := x - 80
		if p.FacingRight {
			left = x + 30
		}
		return common.NewRect(left, y, 90, 60)
	}
}

// Guarding reports whether the held block applies. Block only works when the
// player is not busy with another action.
func Guarding(p *component.Player) bool {
	return p.Blocking && (p.State == component.PlayerIdle || p.State == component.PlayerRun)
}

// ResolveBossStrike adjudicates the boss's active strike against the player.
// Exactly one of miss, parry, guard or hit applies.
func ResolveBossStrike(s *sim.State) MeleeOutcome {
	b := s.Boss
	p := s.Player
	profile := s.Tuning.Attacks.Of(b.Attack)
	if !common.Overlaps(BossAttackBox(b, profile), p.Box()) {
		return MeleeMiss
	}

	sweep := b.Attack == component.AttackSweep
	if p.State == component.PlayerDash && !b.Perilous {
		s.Log("Dodged!")
		return MeleeMiss
	}

	forced := false
	switch p.State {
	case component.PlayerHit, component.PlayerHeal, component.PlayerThrustCharge, component.PlayerDash:
		forced = true
	}
	if p.State == component.PlayerHeal || p.State == component.PlayerThrustCharge {
		s.Log("Interrupted!")
	}

	switch {
	case !forced && p.ParryTimer > 0 && !sweep:
		parryBoss(s, profile)
		return MeleeParry
	case !forced && Guarding(p) && !b.Perilous && !sweep:
		guardBoss(s)
		return MeleeGuard
	}
	hitPlayer(s, profile)
	return MeleeHit
}

// ParryPostureDamage is the posture a parried boss strike inflicts on the boss.
func ParryPostureDamage(level int, attack component.AttackType) float64 {
	dmg := 15 + float64(level)
	if attack == component.AttackHeavy {
		dmg *= 2
	}
	return dmg
}

// GuardPostureDamage is the posture a guarded boss strike inflicts on the player.
func GuardPostureDamage(level int) float64 {
	return 65 + 2*float64(level)
}

func parryBoss(s *sim.State, profile component.AttackProfile) {
	b := s.Boss
	p := s.Player
	p.Vel.X = -common.Dir(p.FacingRight) * 3
	b.Vel.X = -bossDir(b) * 2
	b.AddPosture(ParryPostureDamage(s.Level(), b.Attack))
	b.PostureLock = max(b.PostureLock, parryPostureLock)
	s.HitStopFor(12)
	s.Log("Perfect parry!")
	s.Cue(component.CueParry, (p.CenterX()+b.CenterX())/2)

	if b.Attack == component.AttackHeavy {
		b.Enter(component.BossRecover, profile.Recover+30)
		s.Log("Boss loses balance!")
	}
}

func guardBoss(s *sim.State) {
	p := s.Player
	p.Vel.X = -common.Dir(p.FacingRight) * 5
	s.HitStopFor(2)
	s.Log("Guarded")
	s.Cue(component.CueBlock, p.CenterX())
	if p.AddPosture(GuardPostureDamage(s.Level())) {
		BreakPlayerPosture(s)
	}
}

func hitPlayer(s *sim.State, profile component.AttackProfile) {
	b := s.Boss
	p := s.Player
	perilous := b.Perilous

	dmg := b.Stats.Damage * profile.DamageMult
	knock, lift, stagger, stop := 8.0, -4.0, 25, 5
	if perilous {
		dmg *= perilousDamageMult
		knock, lift, stagger, stop = 15, -8, 60, 12
	}
	if b.Attack == component.AttackSweep {
		lift = -12
		s.Log("Swept off your feet!")
	} else if perilous {
		s.Log("Perilous strike lands!")
	} else {
		s.Log("Took damage")
	}

	p.Damage(dmg)
	StaggerPlayer(p, stagger)
	p.PostureLock = playerPostureLock
	if p.AddPosture(dmg * hitPostureFraction) {
		BreakPlayerPosture(s)
	}
	p.Vel.X = bossDir(b) * knock
	p.Vel.Y = lift
	s.HitStopFor(stop)
	s.Cue(component.CueHit, p.CenterX())
}

// StaggerPlayer forces HIT and cancels every voluntary action.
func StaggerPlayer(p *component.Player, frames int) {
	p.Enter(component.PlayerHit, frames)
	p.Charge = 0
	p.ThrustMult = 1
	p.HealQueued = false
	p.ThrowQueued = false
	p.SpecialQueued = false
}

// BreakPlayerPosture stuns the player for a long stagger and empties the gauge.
func BreakPlayerPosture(s *sim.State) {
	p := s.Player
	StaggerPlayer(p, postureBreakStagger)
	p.SetPosture(0)
	s.Log("Posture broken!")
	s.Cue(component.CueBreak, p.CenterX())
}

// ResolvePlayerStrike adjudicates one player hit-check against the boss.
func ResolvePlayerStrike(s *sim.State, strike component.Strike) MeleeOutcome {
	b := s.Boss
	p := s.Player
	if !common.Overlaps(PlayerStrikeBox(p, strike.Kind), b.Box()) {
		if strike.Kind == component.StrikeSlash {
			s.Cue(component.CueSwing, p.CenterX())
		}
		return MeleeMiss
	}
	if b.State == component.BossDodge {
		s.Log("Attack missed!")
		return MeleeMiss
	}
	if strike.Kind == component.StrikeFlurry {
		return flurryHit(s, strike)
	}

	atk := p.Stats.AttackPower
	dir := common.Dir(p.FacingRight)
	thrust := strike.Kind == component.StrikeThrust

	if b.State == component.BossBlock {
		s.HitStopFor(3)
		s.Log("Blocked!")
		s.Cue(component.CueBlock, b.CenterX())
		b.AddPosture(5 + atk*0.15)
		b.Vel.X += dir * 5
		p.Vel.X -= dir * 3
		if thrust {
			p.Vel.X = 0
			b.AddPosture(10)
		}
		return MeleeGuard
	}

	dmg := atk
	if thrust {
		dmg *= p.ThrustMult
	}
	s.HitStopFor(4)
	s.Cue(component.CueHit, b.CenterX())
	b.Damage(dmg)
	b.AddPosture(3 + atk*0.1)
	b.Vel.X += dir * 2
	staggerBoss(b, 12)
	b.PostureLock = 180
	registerComboHit(s)
	return MeleeHit
}

func flurryHit(s *sim.State, strike component.Strike) MeleeOutcome {
	b := s.Boss
	atk := s.Player.Stats.AttackPower
	dmg := atk * 0.3
	posture := 1.5 + atk*0.05

	if b.State == component.BossBlock {
		s.Cue(component.CueBlock, b.CenterX())
		b.Damage(math.Max(1, dmg*0.2))
		b.AddPosture(posture * 0.8)
		return MeleeGuard
	}
	s.Cue(component.CueHit, b.CenterX())
	b.Damage(dmg)
	b.AddPosture(posture)
	staggerBoss(b, 8)
	b.PostureLock = 60
	if strike.Final {
		registerComboHit(s)
	}
	return MeleeHit
}

// staggerBoss interrupts the boss unless its current attack is armored.
func staggerBoss(b *component.Boss, frames int) {
	if b.Armored {
		return
	}
	b.Enter(component.BossHit, frames)
	b.MoveQueue = b.MoveQueue[:0]
}

func registerComboHit(s *sim.State) {
	b := s.Boss
	window := s.Tuning.Boss.ComboWindow
	if b.HasBeenHit && s.Frame-b.LastHitFrame < window {
		b.ComboCounter++
	} else {
		b.ComboCounter = 1
	}
	b.LastHitFrame = s.Frame
	b.HasBeenHit = true

	if b.Armored || counterPending(b) {
		return
	}
	arena := s.Tuning.Arena
	if ShouldCounter(b.ComboCounter, s.Level(), b.Cornered(arena.Width, arena.CornerMargin)) {
		b.Schedule(1, component.DelayedCounter)
		s.Log(fmt.Sprintf("Boss is enraged after %d hits", b.ComboCounter))
	}
}

func counterPending(b *component.Boss) bool {
	for _, action := range b.Pending {
		if action.Kind == component.DelayedCounter {
			return true
		}
	}
	return false
}
