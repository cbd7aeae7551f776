package system

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/duel/common"
	"github.com/milk9111/duel/sim"
	"github.com/milk9111/duel/sim/component"
)

// BossSystem runs the boss decision loop. It reads the player as sensory
// input but never writes player state.
type BossSystem struct{}

func NewBossSystem() *BossSystem {
	return &BossSystem{}
}

func (bs *BossSystem) Update(s *sim.State) {
	if s == nil || s.Boss == nil || s.Player == nil {
		return
	}
	b := s.Boss
	p := s.Player

	runPending(s)

	if b.ComboCounter > 0 && b.HasBeenHit && s.Frame-b.LastHitFrame > s.Tuning.Boss.ComboReset {
		b.ComboCounter = 0
	}

	b.FacingRight = p.Pos.X > b.Pos.X
	b.Damped = true
	if b.DodgeCooldown > 0 {
		b.DodgeCooldown--
	}
	if b.PostureLock > 0 {
		b.PostureLock--
	}
	if b.PaceCooldown > 0 {
		b.PaceCooldown--
	}

	react(s)

	switch b.State {
	case component.BossIdle:
		if b.Timer > 0 {
			b.Timer--
		}
		if b.Timer <= 0 {
			decideIdle(s)
		}
	case component.BossPace:
		updatePace(s)
	case component.BossWindup:
		updateWindup(s)
	case component.BossAttack:
		updateAttack(s)
	case component.BossRecover:
		b.Timer--
		b.Vel.X *= 0.9
		if b.Timer <= 0 {
			b.Enter(component.BossIdle, 20)
		}
	case component.BossBlock:
		b.Timer--
		b.Vel.X *= 0.5
		if b.Timer <= 0 {
			b.Enter(component.BossIdle, 15)
		}
	case component.BossDodge:
		b.Timer--
		if b.Timer <= 0 {
			b.Enter(component.BossIdle, 10)
			b.Vel.X = 0
		}
	case component.BossHit:
		b.Timer--
		b.Vel.X *= 0.95
		if b.Timer <= 0 {
			recoverFromHit(s)
		}
	}
}

// chance passes a base probability through the optional tuner and clamps it.
func chance(s *sim.State, decision string, base float64) float64 {
	if s.Tuner == nil {
		return common.Clamp01(base)
	}
	return common.Clamp01(s.Tuner.Adjust(decision, decisionContext(s), base))
}

func decisionContext(s *sim.State) map[string]any {
	b := s.Boss
	return map[string]any{
		"level":          s.Level(),
		"frame":          s.Frame,
		"distance":       s.Distance(),
		"attack":         b.Attack.String(),
		"boss_state":     b.State.String(),
		"player_state":   s.Player.State.String(),
		"boss_health":    b.HealthFrac(),
		"boss_posture":   b.PostureFrac(),
		"player_health":  s.Player.HealthFrac(),
		"cornered":       b.Cornered(s.Tuning.Arena.Width, s.Tuning.Arena.CornerMargin),
		"combo_counter":  b.ComboCounter,
		"player_blocked": s.Player.Blocking,
	}
}

func bossDir(b *component.Boss) float64 {
	return common.Dir(b.FacingRight)
}

func runPending(s *sim.State) {
	b := s.Boss
	if len(b.Pending) == 0 {
		return
	}
	kept := b.Pending[:0]
	var due []component.DelayedKind
	for _, action := range b.Pending {
		action.Frames--
		if action.Frames > 0 {
			kept = append(kept, action)
			continue
		}
		due = append(due, action.Kind)
	}
	b.Pending = kept

	for _, kind := range due {
		switch kind {
		case component.DelayedThrow:
			throwShuriken(s)
		case component.DelayedCounter:
			counterAttack(s)
		}
	}
}

// react lets the boss answer a committed player swing with a dodge or a read
// block.
func react(s *sim.State) {
	b := s.Boss
	p := s.Player
	switch b.State {
	case component.BossIdle, component.BossPace, component.BossBlock, component.BossRecover:
	default:
		return
	}
	if !p.Threatening() {
		return
	}

	d := s.Distance()
	level := s.Level()
	if b.DodgeCooldown <= 0 && d < 180 && s.Roll(chance(s, DecisionDodge, DodgeChance(level, b.State))) {
		b.Enter(component.BossDodge, 15)
		b.DodgeCooldown = 120
		b.Vel.X = -bossDir(b) * 15
		s.Log("Boss: swift evasion")
		s.Cue(component.CueDash, b.CenterX())
		return
	}
	if b.State == component.BossBlock || d >= 170 {
		return
	}
	full := p.Charge >= s.Tuning.Player.MaxCharge
	if s.Roll(chance(s, DecisionBlockRead, BlockReadChance(level, p.State, full))) {
		b.Enter(component.BossBlock, 45)
		b.Vel.X = 0
		s.Log("Boss: iron guard")
		s.Cue(component.CueBlock, b.CenterX())
	}
}

func decideIdle(s *sim.State) {
	b := s.Boss
	d := s.Distance()
	level := s.Level()

	if d >= 150 && d <= 350 && s.Roll(chance(s, DecisionShuriken, ShurikenChance(level))) {
		s.Log("Boss: shuriken!")
		s.Cue(component.CueThrow, b.CenterX())
		stagger := s.Tuning.Boss.ShurikenStagger
		throwShuriken(s)
		for i := 1; i < ShurikenCount(level); i++ {
			b.Schedule(i*stagger, component.DelayedThrow)
		}
		b.Timer = ShurikenCooldown(level)
		return
	}

	if d > 350 && s.Roll(0.4) {
		b.Attack = component.AttackHeavy
		b.Perilous = false
		b.MaxWindup = 45
		b.Enter(component.BossWindup, 45)
		b.Vel.Y = -14
		b.Vel.X = bossDir(b) * 10
		s.Log("Boss: leaping strike")
		return
	}

	if d > 80 && d < 300 && b.PaceCooldown <= 0 && s.Roll(0.35) {
		b.Enter(component.BossPace, 40+int(s.Float()*40))
		return
	}

	if d < 250 && s.Roll(b.Stats.Aggression) {
		beginAttack(s)
		return
	}

	speed := b.Stats.Speed
	dir := bossDir(b)
	if d > 80 {
		b.Vel.X += dir * speed * 0.2
		if math.Abs(b.Vel.X) > speed {
			b.Vel.X = dir * speed
		}
		return
	}
	if s.Roll(0.05) {
		b.Enter(component.BossPace, 20)
		b.Vel.Y = -7
		b.Vel.X = -dir * 8
	}
}

// SelectAttack rolls the attack type and its perilous flag.
func SelectAttack(s *sim.State) (component.AttackType, bool) {
	b := s.Boss
	p := s.Player
	d := s.Distance()
	level := s.Level()

	retreating := (p.Pos.X < b.Pos.X && p.Vel.X < -1.2) || (p.Pos.X > b.Pos.X && p.Vel.X > 1.2)
	thrust := chance(s, DecisionThrust, ThrustChance(ThrustContext{
		Level:            level,
		Distance:         d,
		PlayerVulnerable: p.Vulnerable(),
		PlayerBlocking:   p.Blocking,
		PlayerRetreating: retreating,
		BossPostureFrac:  b.PostureFrac(),
		RecentlyHit:      b.HitWithin(s.Frame, 45),
	}))
	sweep := chance(s, DecisionSweep, SweepChance(level, d))

	r := s.Float()
	switch {
	case r < thrust:
		return component.AttackThrust, rollPerilous(s, component.AttackThrust, false)
	case sweep > 0 && r < thrust+sweep:
		return component.AttackSweep, true
	case r < thrust+sweep+HeavyChance:
		return component.AttackHeavy, rollPerilous(s, component.AttackHeavy, false)
	default:
		return component.AttackLight, false
	}
}

func rollPerilous(s *sim.State, attack component.AttackType, counter bool) bool {
	base := PerilousChance(PerilousContext{
		Attack:           attack,
		Level:            s.Level(),
		PlayerVulnerable: s.Player.Vulnerable(),
		Counter:          counter,
	})
	return s.Roll(chance(s, DecisionPerilous, base))
}

func beginAttack(s *sim.State) {
	b := s.Boss
	level := s.Level()
	attack, perilous := SelectAttack(s)
	b.Attack = attack
	b.Perilous = perilous

	if attack == component.AttackLight && level > 3 && s.Roll(0.5) {
		b.MoveQueue = append(b.MoveQueue, component.AttackCombo)
		if level > 10 {
			b.MoveQueue = append(b.MoveQueue, component.AttackCombo)
		}
	}

	b.MaxWindup = WindupFrames(s.Tuning.Attacks.Of(attack).Windup, level)
	b.Enter(component.BossWindup, b.MaxWindup)

	switch {
	case attack == component.AttackSweep:
		s.Log("Peril! Sweep! Jump or back off!")
	case perilous:
		s.Log(fmt.Sprintf("Peril! %s attack!", attack))
	case attack == component.AttackHeavy:
		s.Log("Boss charges a heavy strike")
	case attack == component.AttackThrust:
		s.Log("Boss: thrust!")
	}
	if perilous {
		s.Cue(component.CuePerilous, b.CenterX())
	}
}

func updatePace(s *sim.State) {
	b := s.Boss
	b.Timer--
	if s.Distance() < 100 {
		b.Vel.X -= bossDir(b) * 0.5
	}
	if s.Roll(0.02) {
		b.Attack = component.AttackLight
		b.Perilous = false
		b.MaxWindup = 20
		b.Enter(component.BossWindup, 20)
		return
	}
	if b.Timer <= 0 {
		b.Enter(component.BossIdle, 10)
		b.PaceCooldown = s.Tuning.Boss.PaceCooldown
	}
}

func updateWindup(s *sim.State) {
	b := s.Boss
	arena := s.Tuning.Arena
	b.Timer--

	cornered := b.Cornered(arena.Width, arena.CornerMargin)
	if cornered && float64(b.Timer) > float64(b.MaxWindup)*0.5 {
		b.Vel.X += b.TowardCenter(arena.Width) * 0.8
	}
	if b.Timer > 0 {
		return
	}

	profile := s.Tuning.Attacks.Of(b.Attack)
	b.Enter(component.BossAttack, profile.Active)
	s.Cue(component.CueSwing, b.CenterX())
	if !b.Grounded(arena.GroundY) {
		return
	}
	b.Vel.X = bossDir(b) * profile.Lunge
	if s.Roll(chance(s, DecisionJump, JumpChance(b.Attack, cornered))) {
		b.Vel.Y = -12
	}
}

func updateAttack(s *sim.State) {
	b := s.Boss
	profile := s.Tuning.Attacks.Of(b.Attack)
	b.Timer--
	if b.Timer == profile.Active/2 {
		b.StrikePending = true
	}
	if b.Timer > 0 {
		return
	}

	if n := len(b.MoveQueue); n > 0 {
		b.MoveQueue = b.MoveQueue[:n-1]
		b.Attack = component.AttackCombo
		b.Perilous = false
		b.MaxWindup = s.Tuning.Attacks.Combo.Windup
		b.Enter(component.BossWindup, b.MaxWindup)
		return
	}
	b.Enter(component.BossRecover, profile.Recover)
	if s.Roll(0.3) {
		b.Vel.Y = -9
		b.Vel.X = -bossDir(b) * 8
	}
}

func recoverFromHit(s *sim.State) {
	b := s.Boss
	arena := s.Tuning.Arena
	d := s.Distance()

	switch {
	case b.Cornered(arena.Width, arena.CornerMargin) && d < 250:
		if s.Roll(chance(s, DecisionEscape, EscapeChance(s.Level()))) {
			b.Enter(component.BossDodge, 18)
			b.DodgeCooldown = 60
			b.Vel.X = b.TowardCenter(arena.Width) * 18
			b.Vel.Y = -10
			s.Log("Boss: breaks out of the corner!")
			s.Cue(component.CueDash, b.CenterX())
			return
		}
		b.Enter(component.BossBlock, 45)
		s.Log("Boss: forced guard")
	case d < 200:
		b.Enter(component.BossBlock, 45)
		s.Log("Boss: forced guard")
	default:
		b.Enter(component.BossIdle, 20)
	}
}

// counterAttack is the armored answer to a sustained player combo.
func counterAttack(s *sim.State) {
	b := s.Boss
	if !b.Alive() {
		return
	}
	arena := s.Tuning.Arena
	b.Attack = component.AttackHeavy
	b.MaxWindup = 25
	b.MoveQueue = b.MoveQueue[:0]
	b.Enter(component.BossWindup, 25)
	b.Armored = true
	b.Perilous = rollPerilous(s, component.AttackHeavy, true)
	b.ComboCounter = 0
	b.Vel.X = b.TowardCenter(arena.Width) * 12
	b.Vel.Y = -12

	if b.Perilous {
		s.Log("Boss: perilous counter!")
	} else {
		s.Log("Boss: furious counter!")
	}
	s.Cue(component.CuePerilous, b.CenterX())
}

func throwShuriken(s *sim.State) {
	b := s.Boss
	if !b.Alive() {
		return
	}
	dir := bossDir(b)
	s.Spawn(component.Projectile{
		Pos:   cp.Vector{X: b.CenterX() + 25*dir, Y: b.Pos.Y + 30},
		Vel:   cp.Vector{X: dir * (13 + s.Float()*4), Y: (s.Float() - 0.5) * 2},
		Life:  s.Tuning.Boss.ShurikenLife,
		Owner: component.OwnerBoss,
	})
}
