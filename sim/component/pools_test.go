package component

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPoolsClamp(t *testing.T) {
	tests := []struct {
		name        string
		apply       func(p *Pools)
		wantHealth  float64
		wantPosture float64
	}{
		{name: "overkill", apply: func(p *Pools) { p.Damage(500) }, wantHealth: 0},
		{name: "overheal", apply: func(p *Pools) { p.Damage(10); p.Heal(500) }, wantHealth: 100},
		{name: "negative damage ignored", apply: func(p *Pools) { p.Damage(-20) }, wantHealth: 100},
		{name: "posture overflow", apply: func(p *Pools) { p.AddPosture(80); p.AddPosture(80) }, wantHealth: 100, wantPosture: 50},
		{name: "posture underflow", apply: func(p *Pools) { p.AddPosture(-5) }, wantHealth: 100},
		{name: "scale", apply: func(p *Pools) { p.AddPosture(40); p.ScalePosture(0.5) }, wantHealth: 100, wantPosture: 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPools(100, 50)
			tt.apply(&p)
			require.Equal(t, tt.wantHealth, p.Health)
			require.Equal(t, tt.wantPosture, p.Posture)
			require.GreaterOrEqual(t, p.Health, 0.0)
			require.LessOrEqual(t, p.Posture, p.MaxPosture)
		})
	}
}

func TestAddPostureReportsBreak(t *testing.T) {
	p := NewPools(100, 50)
	require.False(t, p.AddPosture(49))
	require.True(t, p.AddPosture(1))
	require.True(t, p.PostureBroken())
}

func TestNilPoolsAreInert(t *testing.T) {
	var p *Pools
	p.Damage(10)
	p.Heal(10)
	require.False(t, p.Alive())
	require.False(t, p.AddPosture(10))
	require.Zero(t, p.HealthFrac())
}

func TestAttackTableLookup(t *testing.T) {
	table := DefaultAttackTable()
	tests := []struct {
		attack  AttackType
		windup  int
		active  int
		recover int
		rng     float64
	}{
		{AttackLight, 35, 15, 40, 130},
		{AttackHeavy, 80, 25, 140, 160},
		{AttackCombo, 25, 12, 30, 120},
		{AttackThrust, 45, 8, 60, 200},
		{AttackSweep, 60, 18, 90, 220},
	}
	for _, tt := range tests {
		t.Run(tt.attack.String(), func(t *testing.T) {
			got := table.Of(tt.attack)
			require.Equal(t, tt.windup, got.Windup)
			require.Equal(t, tt.active, got.Active)
			require.Equal(t, tt.recover, got.Recover)
			require.Equal(t, tt.rng, got.Range)
		})
	}
}

func TestBodyCornered(t *testing.T) {
	b := Body{Width: 50}
	b.Pos.X = 100
	require.True(t, b.Cornered(1000, 120))
	require.Equal(t, 1.0, b.TowardCenter(1000))
	b.Pos.X = 500
	require.False(t, b.Cornered(1000, 120))
	b.Pos.X = 840
	require.True(t, b.Cornered(1000, 120))
	require.Equal(t, -1.0, b.TowardCenter(1000))
}
