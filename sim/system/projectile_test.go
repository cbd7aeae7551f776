package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/duel/sim"
	"github.com/milk9111/duel/sim/component"
)

// incoming places one boss shuriken that reaches the player's box next tick.
func incoming(st *sim.State) {
	st.Spawn(component.Projectile{
		Pos:   cp.Vector{X: 145, Y: 380},
		Vel:   cp.Vector{X: -15},
		Life:  60,
		Owner: component.OwnerBoss,
	})
}

// outgoing places one player shuriken that reaches the boss next tick.
func outgoing(st *sim.State) {
	st.Spawn(component.Projectile{
		Pos:   cp.Vector{X: 585, Y: 380},
		Vel:   cp.Vector{X: 15},
		Life:  60,
		Owner: component.OwnerPlayer,
	})
}

func TestShurikenAgainstPlayer(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(p *component.Player)
		wantKept    bool
		wantHealth  float64
		wantPosture float64
	}{
		{
			name:        "unguarded",
			setup:       func(p *component.Player) {},
			wantHealth:  200 - 28.5*0.4,
			wantPosture: 5,
		},
		{
			name:        "dash passes through",
			setup:       func(p *component.Player) { p.Enter(component.PlayerDash, 10) },
			wantKept:    true,
			wantHealth:  200,
			wantPosture: 0,
		},
		{
			name:        "guarded",
			setup:       func(p *component.Player) { p.Blocking = true },
			wantHealth:  200,
			wantPosture: 10,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := newTestState(1)
			tt.setup(st.Player)
			incoming(st)

			NewProjectileSystem().Update(st)
			require.Equal(t, tt.wantKept, len(st.Projectiles) == 1)
			require.InDelta(t, tt.wantHealth, st.Player.Health, 1e-9)
			require.InDelta(t, tt.wantPosture, st.Player.Posture, 1e-9)
		})
	}
}

func TestParryReflectsShuriken(t *testing.T) {
	st := newTestState(1)
	st.Player.ParryTimer = 5
	incoming(st)

	NewProjectileSystem().Update(st)
	require.Len(t, st.Projectiles, 1)
	pr := st.Projectiles[0]
	require.Equal(t, component.OwnerPlayer, pr.Owner)
	require.InDelta(t, 18, pr.Vel.X, 1e-9)
	require.InDelta(t, 200, st.Player.Health, 1e-9)
	require.Contains(t, cues(st), component.CueParry)
}

func TestShurikenAgainstBoss(t *testing.T) {
	t.Run("staggered boss takes the hit", func(t *testing.T) {
		st := newTestState(1)
		st.Boss.Enter(component.BossHit, 10)
		outgoing(st)

		NewProjectileSystem().Update(st)
		require.Empty(t, st.Projectiles)
		require.InDelta(t, st.Boss.MaxHealth-3, st.Boss.Health, 1e-9)
		require.InDelta(t, 0.5, st.Boss.Posture, 1e-9)
		require.Equal(t, 120, st.Boss.PostureLock)
	})

	t.Run("idle boss deflects", func(t *testing.T) {
		st := newTestState(1)
		st.Rand = fixedRoll(0)
		outgoing(st)

		NewProjectileSystem().Update(st)
		require.Empty(t, st.Projectiles)
		require.Equal(t, component.BossBlock, st.Boss.State)
		require.InDelta(t, st.Boss.MaxHealth, st.Boss.Health, 1e-9)
	})

	t.Run("pacing boss is interrupted", func(t *testing.T) {
		st := newTestState(1)
		st.Boss.Enter(component.BossPace, 30)
		outgoing(st)

		NewProjectileSystem().Update(st)
		require.Equal(t, component.BossIdle, st.Boss.State)
		require.Equal(t, 10, st.Boss.Timer)
		require.Less(t, st.Boss.Health, st.Boss.MaxHealth)
	})

	t.Run("dodging boss is ignored", func(t *testing.T) {
		st := newTestState(1)
		st.Boss.Enter(component.BossDodge, 10)
		outgoing(st)

		NewProjectileSystem().Update(st)
		require.Len(t, st.Projectiles, 1)
		require.InDelta(t, st.Boss.MaxHealth, st.Boss.Health, 1e-9)
	})
}

func TestProjectileFlightAndDespawn(t *testing.T) {
	st := newTestState(1)
	st.Spawn(component.Projectile{Pos: cp.Vector{X: 400, Y: 200}, Vel: cp.Vector{X: 10}, Life: 2, Owner: component.OwnerPlayer})
	st.Spawn(component.Projectile{Pos: cp.Vector{X: 995, Y: 200}, Vel: cp.Vector{X: 10}, Life: 50, Owner: component.OwnerPlayer})
	ps := NewProjectileSystem()

	ps.Update(st)
	require.Len(t, st.Projectiles, 1)
	pr := st.Projectiles[0]
	require.InDelta(t, 410, pr.Pos.X, 1e-9)
	require.InDelta(t, 200, pr.Pos.Y, 1e-9)
	require.InDelta(t, 0.15, pr.Vel.Y, 1e-9)
	require.Equal(t, 1, pr.Life)

	ps.Update(st)
	require.Empty(t, st.Projectiles)
}
