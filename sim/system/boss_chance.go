package system

import (
	"math"

	"github.com/milk9111/duel/common"
	"github.com/milk9111/duel/sim/component"
)

// Every decision the boss rolls is a pure function of its context returning a
// probability in [0,1].

// ThrustContext is what the boss reads before committing to a thrust.
type ThrustContext struct {
	Level            int
	Distance         float64
	PlayerVulnerable bool
	PlayerBlocking   bool
	PlayerRetreating bool
	BossPostureFrac  float64
	RecentlyHit      bool
}

const maxThrustChance = 0.55

func ThrustChance(c ThrustContext) float64 {
	if c.Level < 2 {
		return 0
	}
	ideal := c.Distance >= 120 && c.Distance <= 200
	extended := c.Distance >= 90 && c.Distance <= 240
	if !extended && !c.PlayerVulnerable {
		return 0
	}

	chance := 0.05 + math.Min(0.2, 0.01*float64(c.Level))
	switch {
	case ideal:
		chance += 0.35
	case extended:
		chance += 0.15
	default:
		chance += 0.1
	}
	if c.PlayerVulnerable {
		chance += 0.35
	}
	if c.PlayerBlocking {
		chance += 0.1
	}
	if c.PlayerRetreating {
		chance += 0.1
	}
	if c.BossPostureFrac > 0.65 {
		chance -= 0.1
	}
	if c.RecentlyHit {
		chance -= 0.05
	}
	return common.Clamp(chance, 0, maxThrustChance)
}

// SweepChance is zero until level 6 and favours close range.
func SweepChance(level int, distance float64) float64 {
	if level <= 5 {
		return 0
	}
	base := 0.04
	if distance < 140 {
		base = 0.12
	}
	return common.Clamp01(base + math.Min(0.12, 0.01*float64(level-5)))
}

// HeavyChance is the slice of the attack roll that lands on HEAVY once
// thrust and sweep are excluded.
const HeavyChance = 0.35

type PerilousContext struct {
	Attack           component.AttackType
	Level            int
	PlayerVulnerable bool
	// Counter marks the armored counter-attack.
	Counter bool
}

// PerilousChance is the single source for the unblockable flag. Sweeps are
// always perilous; light and combo strikes never are.
func PerilousChance(c PerilousContext) float64 {
	switch c.Attack {
	case component.AttackSweep:
		return 1
	case component.AttackThrust:
		bonus := 0.0
		if c.PlayerVulnerable {
			bonus = 0.2
		}
		return common.Clamp01(math.Min(0.85, 0.3+0.03*float64(c.Level)+bonus))
	case component.AttackHeavy:
		if c.Counter {
			return 0.4
		}
		return common.Clamp(0.28+0.01*float64(c.Level-1), 0, 0.6)
	default:
		return 0
	}
}

func DodgeChance(level int, state component.BossState) float64 {
	chance := 0.02 + 0.004*float64(level)
	if state == component.BossRecover || state == component.BossBlock {
		chance += 0.15
	}
	return common.Clamp01(chance)
}

// BlockReadChance is the per-tick chance the boss reads an incoming swing.
// A fully charged thrust is the hardest to read.
func BlockReadChance(level int, playerState component.PlayerState, fullCharge bool) float64 {
	if playerState == component.PlayerThrustRelease {
		if fullCharge {
			return 0.005
		}
		return 0.02
	}
	return common.Clamp01(0.01 + 0.003*float64(level))
}

func ShurikenChance(level int) float64 {
	return common.Clamp01(0.05 + math.Min(0.15, 0.005*float64(level)))
}

func ShurikenCount(level int) int {
	switch {
	case level > 10:
		return 3
	case level > 5:
		return 2
	default:
		return 1
	}
}

func ShurikenCooldown(level int) int {
	return max(70, 110-2*level)
}

func EscapeChance(level int) float64 {
	return common.Clamp01(0.4 + 0.03*float64(level))
}

// ProjectileBlockChance applies while the boss is free to raise its guard.
func ProjectileBlockChance(level int) float64 {
	return common.Clamp01(math.Min(0.95, 0.2+0.05*float64(level)))
}

// JumpChance is the chance the boss leaves the ground as a strike begins.
func JumpChance(attack component.AttackType, cornered bool) float64 {
	switch {
	case attack == component.AttackThrust:
		return 0
	case cornered:
		return 0.6
	case attack == component.AttackHeavy:
		return 0.3
	default:
		return 0
	}
}

// CounterThreshold drops by one every five levels, never below two.
func CounterThreshold(level int) int {
	return max(2, 5-level/5)
}

func ShouldCounter(counter, level int, cornered bool) bool {
	threshold := CounterThreshold(level)
	return counter >= threshold && (cornered || counter >= threshold+2)
}

// WindupFrames shortens a windup by 1.5 ticks per level, floored at 20.
func WindupFrames(base, level int) int {
	return max(20, int(float64(base)-1.5*float64(level)))
}
