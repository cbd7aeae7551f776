package system

import (
	"fmt"
	"math"
	"slices"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/duel/common"
	"github.com/milk9111/duel/sim"
	"github.com/milk9111/duel/sim/component"
)

// PlayerSystem advances the player state machine from the tick's intent.
type PlayerSystem struct{}

func NewPlayerSystem() *PlayerSystem {
	return &PlayerSystem{}
}

func (ps *PlayerSystem) Update(s *sim.State) {
	if s == nil || s.Player == nil {
		return
	}
	p := s.Player
	in := s.Intent
	t := s.Tuning.Player

	p.Blocking = in.Block
	if in.Heal {
		p.HealQueued = true
	}
	if in.Throw {
		p.ThrowQueued = true
	}
	if in.Special {
		p.SpecialQueued = true
	}
	armParry(p, in, t)

	if in.Dash != 0 {
		startDash(s, in.Dash)
	}
	if in.Attack && (p.State == component.PlayerIdle || p.State == component.PlayerRun) {
		p.Enter(component.PlayerAttack, t.AttackFrames)
	}

	switch p.State {
	case component.PlayerDash:
		p.Timer--
		if p.Timer <= 0 {
			p.Enter(component.PlayerIdle, 0)
			p.Vel.X *= 0.5
		}
	case component.PlayerThrustCharge:
		updateThrustCharge(s)
	case component.PlayerThrustRelease:
		p.Vel.X *= 0.9
	default:
		updateMovement(s)
	}

	if in.ThrustHold && p.State == component.PlayerIdle {
		p.Enter(component.PlayerThrustCharge, 0)
		p.Charge = 0
		s.Cue(component.CueCharge, p.CenterX())
	}

	switch p.State {
	case component.PlayerAttack, component.PlayerHit, component.PlayerThrustRelease, component.PlayerFloatingPassage:
		p.Timer--
	}
	if p.ParryTimer > 0 {
		p.ParryTimer--
	}
	if p.ToolCooldown > 0 {
		p.ToolCooldown--
	}
	if p.PostureLock > 0 {
		p.PostureLock--
	}

	tryHeal(s)
	if p.State == component.PlayerHeal {
		updateHeal(s)
	}
	tryThrow(s)
	trySpecial(s)

	switch p.State {
	case component.PlayerFloatingPassage:
		updateFloatingPassage(s)
	case component.PlayerAttack:
		if p.Timer == t.AttackHitAt {
			p.Strike = component.Strike{Kind: component.StrikeSlash}
		}
		if p.Timer <= 0 {
			p.Enter(component.PlayerIdle, 0)
		}
	case component.PlayerThrustRelease:
		if p.Timer == t.ThrustHitAt {
			p.Strike = component.Strike{Kind: component.StrikeThrust}
		}
		if p.Timer <= 0 {
			p.Enter(component.PlayerIdle, 0)
			p.Charge = 0
			p.ThrustMult = 1
		}
	case component.PlayerHit:
		if p.Timer <= 0 {
			p.Enter(component.PlayerIdle, 0)
		}
	}
}

// armParry buffers the block press for a few ticks; every buffered tick
// refreshes the full parry window.
func armParry(p *component.Player, in component.Intent, t component.PlayerTuning) {
	if in.BlockPressed {
		p.ParryBuffer = t.ParryBuffer
	}
	if p.ParryBuffer > 0 {
		p.ParryTimer = t.ParryWindow
		p.ParryBuffer--
	}
}

func startDash(s *sim.State, dir int) {
	p := s.Player
	switch p.State {
	case component.PlayerDash, component.PlayerHit, component.PlayerThrustCharge,
		component.PlayerHeal, component.PlayerFloatingPassage:
		return
	}
	t := s.Tuning.Player
	d := common.Sign(float64(dir))
	p.Enter(component.PlayerDash, t.DashFrames)
	p.Vel.X = d * t.DashSpeed
	p.FacingRight = d > 0

	toBoss := common.Sign(s.Boss.Pos.X - p.Pos.X)
	if toBoss == 0 {
		toBoss = 1
	}
	if d == toBoss {
		p.Vel.Y = -t.DashHop
		s.Log("Lunge!")
	} else {
		p.Vel.Y = 0
		s.Log("Sidestep")
	}
	s.Cue(component.CueDash, p.CenterX())
}

func updateThrustCharge(s *sim.State) {
	p := s.Player
	t := s.Tuning.Player
	p.Vel.X *= 0.8

	if s.Intent.ThrustHold {
		if p.Charge < t.MaxCharge {
			p.Charge++
		}
		if s.Frame%30 == 0 {
			s.Cue(component.CueCharge, p.CenterX())
		}
		return
	}

	frac := ChargeFraction(p.Charge, t.MaxCharge)
	p.Enter(component.PlayerThrustRelease, t.ThrustFrames)
	p.Vel.X = common.Dir(p.FacingRight) * ThrustSpeed(frac)
	p.ThrustMult = ThrustDamageMult(frac)
	s.Cue(component.CueThrustAttack, p.CenterX())
	if frac > 0.8 {
		s.Log("Charged thrust!")
	} else {
		s.Log("Thrust")
	}
}

// ChargeFraction is the accumulated charge as a fraction of the cap.
func ChargeFraction(charge, max int) float64 {
	if max <= 0 {
		return 0
	}
	return common.Clamp01(float64(charge) / float64(max))
}

// ThrustSpeed is the initial lunge speed for a charge fraction.
func ThrustSpeed(frac float64) float64 {
	return 15 + 15*frac
}

// ThrustDamageMult scales attack power from 1.2x to 2.2x with charge.
func ThrustDamageMult(frac float64) float64 {
	return 1.2 + frac
}

func updateMovement(s *sim.State) {
	p := s.Player
	in := s.Intent
	t := s.Tuning.Player

	if !in.MoveLeft && !in.MoveRight && p.State != component.PlayerHit && p.State != component.PlayerFloatingPassage {
		p.Damped = true
	}

	switch p.State {
	case component.PlayerHit, component.PlayerAttack, component.PlayerHeal,
		component.PlayerFloatingPassage, component.PlayerThrustCharge:
		return
	}

	speed, accel := t.WalkSpeed, t.WalkAccel
	if p.Blocking {
		speed *= t.BlockSpeedMul
		accel = t.BlockAccel
	}
	if in.MoveLeft {
		p.Vel.X = math.Max(p.Vel.X-accel, -speed)
		p.FacingRight = false
	}
	if in.MoveRight {
		p.Vel.X = math.Min(p.Vel.X+accel, speed)
		p.FacingRight = true
	}

	if !p.Blocking {
		if math.Abs(p.Vel.X) > 0.5 {
			p.State = component.PlayerRun
		} else {
			p.State = component.PlayerIdle
		}
	}

	if in.Jump && p.Grounded(s.Tuning.Arena.GroundY) {
		p.Vel.Y = -t.JumpSpeed
	}
}

func tryHeal(s *sim.State) {
	p := s.Player
	if !p.HealQueued {
		return
	}
	p.HealQueued = false

	switch p.State {
	case component.PlayerDash, component.PlayerAttack, component.PlayerFloatingPassage,
		component.PlayerHit, component.PlayerHeal, component.PlayerThrustCharge,
		component.PlayerThrustRelease:
		return
	}
	if !p.Grounded(s.Tuning.Arena.GroundY) {
		return
	}
	if s.Resources == nil || !s.Resources.TryConsumeHeal() {
		insufficient(s, "insufficient: the gourd is empty")
		return
	}
	p.Enter(component.PlayerHeal, s.Tuning.Player.HealFrames)
	s.Log("Drinking from the gourd...")
	s.Cue(component.CueHeal, p.CenterX())
}

func updateHeal(s *sim.State) {
	p := s.Player
	p.Vel.X *= 0.9
	p.Timer--
	if p.Timer > 0 {
		return
	}
	amount := p.MaxHealth * s.Tuning.Player.HealFraction
	p.Heal(amount)
	p.Enter(component.PlayerIdle, 0)
	s.Log(fmt.Sprintf("Recovered %d health", int(amount)))
}

func tryThrow(s *sim.State) {
	p := s.Player
	if !p.ThrowQueued {
		return
	}
	switch p.State {
	case component.PlayerHit, component.PlayerHeal, component.PlayerFloatingPassage, component.PlayerThrustCharge:
		p.ThrowQueued = false
		return
	}
	if p.ToolCooldown > 0 {
		return
	}
	p.ThrowQueued = false
	if s.Resources == nil || !s.Resources.TryConsumeTools(1) {
		insufficient(s, "insufficient: no spirit emblems")
		return
	}

	t := s.Tuning.Player
	dir := common.Dir(p.FacingRight)
	p.ToolCooldown = t.ShurikenCooldown
	s.Spawn(component.Projectile{
		Pos:   cp.Vector{X: p.CenterX() + 20*dir, Y: p.Pos.Y + 20},
		Vel:   cp.Vector{X: dir * t.ShurikenSpeed},
		Life:  t.ShurikenLife,
		Owner: component.OwnerPlayer,
	})
	s.Log("Prosthetic tool: shuriken")
	s.Cue(component.CueThrow, p.CenterX())
}

func trySpecial(s *sim.State) {
	p := s.Player
	if !p.SpecialQueued {
		return
	}
	switch p.State {
	case component.PlayerHit, component.PlayerHeal, component.PlayerThrustCharge:
		p.SpecialQueued = false
		return
	}
	if p.ToolCooldown > 0 {
		return
	}
	p.SpecialQueued = false

	t := s.Tuning.Player
	if s.Resources == nil || !s.Resources.TryConsumeTools(t.SpecialCost) {
		insufficient(s, fmt.Sprintf("insufficient: %d spirit emblems required", t.SpecialCost))
		return
	}
	p.Enter(component.PlayerFloatingPassage, t.SpecialFrames)
	p.ToolCooldown = t.SpecialCooldown
	s.Log("Combat art: Floating Passage")
	s.Cue(component.CueSwing, p.CenterX())
}

func updateFloatingPassage(s *sim.State) {
	p := s.Player
	t := s.Tuning.Player
	elapsed := t.SpecialFrames - p.Timer
	p.Vel.X = common.Dir(p.FacingRight) * t.SpecialSpeed

	if slices.Contains(t.SpecialHits, elapsed) {
		p.Strike = component.Strike{
			Kind:  component.StrikeFlurry,
			Final: len(t.SpecialHits) > 0 && elapsed == t.SpecialHits[len(t.SpecialHits)-1],
		}
		s.Cue(component.CueFlurry, p.CenterX())
	}
	if p.Timer <= 0 {
		p.Enter(component.PlayerIdle, 0)
		p.Vel.X = 0
	}
}

func insufficient(s *sim.State, msg string) {
	s.Log(msg)
	s.Cue(component.CueInsufficient, s.Player.CenterX())
}
