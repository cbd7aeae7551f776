package duel

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/milk9111/duel/prefabs"
	"github.com/milk9111/duel/sim/component"
	"github.com/milk9111/duel/sim/system"
)

func TestLoadTuningMatchesDefaults(t *testing.T) {
	tuning, err := LoadTuning(TuningFile)
	require.NoError(t, err)
	require.Equal(t, component.DefaultTuning(), tuning)
}

func TestLoadTuningMissingFile(t *testing.T) {
	tuning, err := LoadTuning("missing.yaml")
	require.Error(t, err)
	require.Equal(t, component.DefaultTuning(), tuning)
}

func TestLoadPlayer(t *testing.T) {
	stats, pouch, err := LoadPlayer()
	require.NoError(t, err)
	require.Equal(t, component.PlayerStats{AttackPower: 10, MaxHealth: 200, MaxPosture: 100}, stats)

	gourds, emblems := pouch.Counts()
	require.Equal(t, 3, gourds)
	require.Equal(t, 15, emblems)
}

func TestScaleBoss(t *testing.T) {
	spec, err := prefabs.LoadBossSpec()
	require.NoError(t, err)

	tests := []struct {
		name  string
		level int
		want  component.BossStats
	}{
		{
			name:  "level one",
			level: 1,
			want:  component.BossStats{MaxHealth: 340, MaxPosture: 155, Aggression: 0.285, Damage: 28.5, Speed: 2.25, Level: 1},
		},
		{
			name:  "capped",
			level: 30,
			want:  component.BossStats{MaxHealth: 4400, MaxPosture: 1750, Aggression: 0.95, Damage: 130, Speed: 8, Level: 30},
		},
		{
			name:  "negative level clamps to zero",
			level: -3,
			want:  component.BossStats{MaxHealth: 200, MaxPosture: 100, Aggression: 0.25, Damage: 25, Speed: 2, Level: 0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScaleBoss(spec, tt.level)
			require.Equal(t, spec.Name, got.Name)
			require.InDelta(t, tt.want.MaxHealth, got.MaxHealth, 1e-9)
			require.InDelta(t, tt.want.MaxPosture, got.MaxPosture, 1e-9)
			require.InDelta(t, tt.want.Aggression, got.Aggression, 1e-9)
			require.InDelta(t, tt.want.Damage, got.Damage, 1e-9)
			require.InDelta(t, tt.want.Speed, got.Speed, 1e-9)
			require.Equal(t, tt.want.Level, got.Level)
		})
	}
}

func TestScaleBossIgnoresLooseAggressionCap(t *testing.T) {
	spec := prefabs.BossSpec{
		Base:     prefabs.BossStatsSpec{MaxHealth: 1, MaxPosture: 1, Aggression: 0.9},
		PerLevel: prefabs.BossStatsSpec{Aggression: 0.5},
		Caps:     prefabs.BossCapsSpec{Aggression: 2},
	}
	require.InDelta(t, MaxAggression, ScaleBoss(spec, 3).Aggression, 1e-9)
}

func TestLoadTuner(t *testing.T) {
	tuner, err := LoadTuner("")
	require.NoError(t, err)
	require.Nil(t, tuner)

	_, err = LoadTuner("missing.tengo")
	require.Error(t, err)

	tuner, err = LoadTuner("boss_tuning.tengo")
	require.NoError(t, err)
	require.NotNil(t, tuner)

	require.InDelta(t, 0.4, tuner.Adjust(system.DecisionPerilous, map[string]any{"boss_health": 0.2}, 0.3), 1e-9)
	require.InDelta(t, 0.3, tuner.Adjust(system.DecisionPerilous, map[string]any{"boss_health": 0.9}, 0.3), 1e-9)
	require.InDelta(t, 0.3, tuner.Adjust(system.DecisionDodge, map[string]any{"boss_posture": 0.9}, 0.2), 1e-9)
	require.InDelta(t, 0.5, tuner.Adjust(system.DecisionThrust, nil, 0.5), 1e-9)
}

func TestLoadConfigBuildsAPlayableMatch(t *testing.T) {
	cfg, err := LoadConfig(4, true)
	require.NoError(t, err)
	require.NotNil(t, cfg.Tuner)
	require.Equal(t, 4, cfg.Boss.Level)

	cfg.Rand = NewRand(5)
	m, err := NewMatch(cfg)
	require.NoError(t, err)
	for i := 0; i < 600 && !m.Over(); i++ {
		m.Step(component.Intent{MoveRight: i%3 == 0, Attack: i%20 == 0})
	}
	require.Positive(t, m.Frame())
}
