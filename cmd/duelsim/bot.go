package main

import (
	"math/rand"

	"github.com/milk9111/duel/sim"
	"github.com/milk9111/duel/sim/component"
)

// Bot plays the player side from what is visible on screen: boss state,
// distance and its own health.
type Bot struct {
	// Skill is the chance a telegraphed swing is answered with a timed parry.
	Skill float64

	rng       *rand.Rand
	charging  int
	sawAttack bool
}

func NewBot(seed int64, skill float64) *Bot {
	return &Bot{Skill: skill, rng: rand.New(rand.NewSource(seed))}
}

func (b *Bot) Intent(st *sim.State) component.Intent {
	var in component.Intent
	if st == nil || st.Player == nil || st.Boss == nil {
		return in
	}
	p, boss := st.Player, st.Boss
	dist := st.Distance()
	toward := 1
	if boss.Pos.X < p.Pos.X {
		toward = -1
	}

	if b.charging > 0 {
		b.charging--
		in.ThrustHold = b.charging > 0
		return in
	}

	if boss.State != component.BossAttack {
		b.sawAttack = false
	}
	switch boss.State {
	case component.BossAttack:
		if dist > 260 {
			break
		}
		if boss.Attack == component.AttackSweep {
			in.Jump = true
			return in
		}
		if boss.Perilous {
			in.Dash = -toward
			return in
		}
		in.Block = true
		if !b.sawAttack {
			b.sawAttack = true
			in.BlockPressed = b.rng.Float64() < b.Skill
		}
		return in
	case component.BossWindup:
		if dist < 250 {
			in.Block = true
			return in
		}
	}

	if p.HealthFrac() < 0.4 && dist > 200 && b.rng.Float64() < 0.05 {
		in.Heal = true
		return in
	}

	if dist > 110 {
		in.MoveRight = toward > 0
		in.MoveLeft = toward < 0
		if dist > 150 && dist < 350 && b.rng.Float64() < 0.01 {
			in.Throw = true
		}
		return in
	}

	switch boss.State {
	case component.BossIdle, component.BossPace, component.BossRecover, component.BossHit:
		switch r := b.rng.Float64(); {
		case r < 0.01:
			b.charging = 40
			in.ThrustHold = true
		case r < 0.015:
			in.Special = true
		default:
			in.Attack = true
		}
	}
	return in
}
