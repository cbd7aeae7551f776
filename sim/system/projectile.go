package system

import (
	"math"

	"github.com/milk9111/duel/common"
	"github.com/milk9111/duel/sim"
	"github.com/milk9111/duel/sim/component"
)

// ProjectileSystem flies thrown shuriken and resolves their contacts.
type ProjectileSystem struct{}

func NewProjectileSystem() *ProjectileSystem {
	return &ProjectileSystem{}
}

func (ps *ProjectileSystem) Update(s *sim.State) {
	if s == nil || len(s.Projectiles) == 0 {
		return
	}
	g := s.Tuning.Physics.ProjectileGravity
	arena := s.Tuning.Arena

	kept := s.Projectiles[:0]
	for _, pr := range s.Projectiles {
		pr.Pos = pr.Pos.Add(pr.Vel)
		pr.Vel.Y += g
		pr.Life--

		if !resolveProjectile(s, &pr) {
			continue
		}
		if pr.Life <= 0 || pr.Pos.X < 0 || pr.Pos.X > arena.Width || pr.Pos.Y > arena.GroundY+100 {
			continue
		}
		kept = append(kept, pr)
	}
	s.Projectiles = kept
}

// resolveProjectile reports whether the projectile survives its contacts.
func resolveProjectile(s *sim.State, pr *component.Projectile) bool {
	switch pr.Owner {
	case component.OwnerPlayer:
		if !common.Overlaps(pr.Box(), s.Boss.Box()) || s.Boss.State == component.BossDodge {
			return true
		}
		shurikenHitsBoss(s, pr)
		return false
	case component.OwnerBoss:
		if !common.Overlaps(pr.Box(), s.Player.Box()) {
			return true
		}
		return shurikenHitsPlayer(s, pr)
	}
	return true
}

func shurikenHitsBoss(s *sim.State, pr *component.Projectile) {
	b := s.Boss
	canBlock := false
	switch b.State {
	case component.BossIdle, component.BossPace, component.BossBlock, component.BossRecover:
		canBlock = true
	}

	if canBlock && s.Roll(chance(s, DecisionProjectileBlock, ProjectileBlockChance(s.Level()))) {
		b.Enter(component.BossBlock, 20)
		b.Vel.X = 0
		b.AddPosture(0.5)
		s.Log("Boss deflects the shuriken")
		s.Cue(component.CueBlock, pr.Pos.X)
		return
	}

	b.Damage(math.Max(1, s.Player.Stats.AttackPower*0.3))
	b.AddPosture(0.5)
	b.PostureLock = 120
	if b.State == component.BossPace {
		b.Enter(component.BossIdle, 10)
		b.Vel.X = 0
	}
	s.Cue(component.CueClink, pr.Pos.X)
}

// shurikenHitsPlayer reports whether the projectile keeps flying.
func shurikenHitsPlayer(s *sim.State, pr *component.Projectile) bool {
	p := s.Player
	switch {
	case p.State == component.PlayerDash:
		return true
	case p.ParryTimer > 0:
		pr.Vel.X = -pr.Vel.X * 1.2
		pr.Owner = component.OwnerPlayer
		s.Log("Shuriken deflected!")
		s.Cue(component.CueParry, pr.Pos.X)
		return true
	case Guarding(p):
		s.Log("Blocked the shuriken")
		s.Cue(component.CueBlock, pr.Pos.X)
		if p.AddPosture(10) {
			BreakPlayerPosture(s)
		}
	default:
		p.Damage(s.Boss.Stats.Damage * 0.4)
		p.AddPosture(5)
		p.PostureLock = playerPostureLock
		s.Log("Hit by a shuriken!")
		s.Cue(component.CueHit, pr.Pos.X)
	}
	return false
}
