package system

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/milk9111/duel/sim/component"
)

func TestThrustChance(t *testing.T) {
	tests := []struct {
		name string
		ctx  ThrustContext
		want float64
	}{
		{name: "too low level", ctx: ThrustContext{Level: 1, Distance: 150}, want: 0},
		{name: "out of range", ctx: ThrustContext{Level: 5, Distance: 400}, want: 0},
		{name: "extended band", ctx: ThrustContext{Level: 2, Distance: 100}, want: 0.05 + 0.02 + 0.15},
		{name: "ideal band", ctx: ThrustContext{Level: 4, Distance: 150}, want: 0.05 + 0.04 + 0.35},
		{name: "vulnerable far away", ctx: ThrustContext{Level: 2, Distance: 400, PlayerVulnerable: true}, want: 0.05 + 0.02 + 0.1 + 0.35},
		{name: "capped", ctx: ThrustContext{Level: 30, Distance: 150, PlayerVulnerable: true, PlayerBlocking: true}, want: 0.55},
		{name: "penalties", ctx: ThrustContext{Level: 2, Distance: 100, BossPostureFrac: 0.7, RecentlyHit: true}, want: 0.05 + 0.02 + 0.15 - 0.1 - 0.05},
		{name: "retreating", ctx: ThrustContext{Level: 2, Distance: 100, PlayerRetreating: true}, want: 0.05 + 0.02 + 0.15 + 0.1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.want, ThrustChance(tt.ctx), 1e-9)
		})
	}
}

func TestSweepChance(t *testing.T) {
	require.Zero(t, SweepChance(5, 100))
	require.InDelta(t, 0.12+0.05, SweepChance(10, 100), 1e-9)
	require.InDelta(t, 0.04+0.05, SweepChance(10, 200), 1e-9)
	require.InDelta(t, 0.12+0.12, SweepChance(40, 100), 1e-9)
}

func TestPerilousChance(t *testing.T) {
	tests := []struct {
		name string
		ctx  PerilousContext
		want float64
	}{
		{name: "sweep always", ctx: PerilousContext{Attack: component.AttackSweep, Level: 1}, want: 1},
		{name: "light never", ctx: PerilousContext{Attack: component.AttackLight, Level: 50}, want: 0},
		{name: "combo never", ctx: PerilousContext{Attack: component.AttackCombo, Level: 50}, want: 0},
		{name: "thrust", ctx: PerilousContext{Attack: component.AttackThrust, Level: 10}, want: 0.6},
		{name: "thrust vulnerable", ctx: PerilousContext{Attack: component.AttackThrust, Level: 10, PlayerVulnerable: true}, want: 0.8},
		{name: "thrust capped", ctx: PerilousContext{Attack: component.AttackThrust, Level: 40}, want: 0.85},
		{name: "heavy", ctx: PerilousContext{Attack: component.AttackHeavy, Level: 1}, want: 0.28},
		{name: "heavy capped", ctx: PerilousContext{Attack: component.AttackHeavy, Level: 80}, want: 0.6},
		{name: "counter", ctx: PerilousContext{Attack: component.AttackHeavy, Level: 80, Counter: true}, want: 0.4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.want, PerilousChance(tt.ctx), 1e-9)
		})
	}
}

func TestChancesStayInUnitInterval(t *testing.T) {
	states := []component.BossState{component.BossIdle, component.BossRecover, component.BossBlock}
	for level := 0; level <= 100; level += 3 {
		for d := 0.0; d <= 1000; d += 25 {
			for _, vulnerable := range []bool{false, true} {
				c := ThrustChance(ThrustContext{Level: level, Distance: d, PlayerVulnerable: vulnerable, PlayerBlocking: true, PlayerRetreating: true})
				require.True(t, c >= 0 && c <= 0.55, "thrust %v", c)
			}
			s := SweepChance(level, d)
			require.True(t, s >= 0 && s <= 1)
		}
		for _, st := range states {
			c := DodgeChance(level, st)
			require.True(t, c >= 0 && c <= 1)
		}
		for _, v := range []float64{
			ShurikenChance(level), EscapeChance(level), ProjectileBlockChance(level),
			BlockReadChance(level, component.PlayerAttack, false),
		} {
			require.True(t, v >= 0 && v <= 1, "level %d value %v", level, v)
		}
	}
}

func TestBlockReadChance(t *testing.T) {
	require.InDelta(t, 0.013, BlockReadChance(1, component.PlayerAttack, false), 1e-9)
	require.Equal(t, 0.02, BlockReadChance(1, component.PlayerThrustRelease, false))
	require.Equal(t, 0.005, BlockReadChance(1, component.PlayerThrustRelease, true))
}

func TestCounterThreshold(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{1, 5}, {4, 5}, {5, 4}, {10, 3}, {15, 2}, {40, 2},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, CounterThreshold(tt.level), "level %d", tt.level)
	}

	require.True(t, ShouldCounter(5, 1, true))
	require.False(t, ShouldCounter(5, 1, false))
	require.True(t, ShouldCounter(7, 1, false))
	require.False(t, ShouldCounter(4, 1, true))
}

func TestShurikenVolley(t *testing.T) {
	require.Equal(t, 1, ShurikenCount(5))
	require.Equal(t, 2, ShurikenCount(6))
	require.Equal(t, 3, ShurikenCount(11))
	require.Equal(t, 108, ShurikenCooldown(1))
	require.Equal(t, 70, ShurikenCooldown(30))
}

func TestJumpChanceAndWindup(t *testing.T) {
	require.Zero(t, JumpChance(component.AttackThrust, true))
	require.Equal(t, 0.6, JumpChance(component.AttackLight, true))
	require.Equal(t, 0.3, JumpChance(component.AttackHeavy, false))
	require.Zero(t, JumpChance(component.AttackLight, false))

	require.Equal(t, 65, WindupFrames(80, 10))
	require.Equal(t, 20, WindupFrames(25, 10))
	require.Equal(t, 33, WindupFrames(35, 1))
}
