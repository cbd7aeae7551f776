package duel

import (
	"fmt"
	"math"
	"strings"

	"github.com/milk9111/duel/prefabs"
	"github.com/milk9111/duel/sim"
	"github.com/milk9111/duel/sim/component"
	"github.com/milk9111/duel/sim/system"
)

// MaxAggression caps the per-decision attack roll of any boss.
const MaxAggression = 0.95

const (
	TuningFile = "duel.yaml"
	PlayerFile = "player.yaml"
	BossFile   = "boss.yaml"
)

// LoadTuning overlays a YAML prefab onto the built-in tuning.
func LoadTuning(name string) (component.Tuning, error) {
	t := component.DefaultTuning()
	if err := prefabs.LoadInto(name, &t); err != nil {
		return component.DefaultTuning(), err
	}
	return t, nil
}

// LoadPlayer returns the default player stat block and a pouch stocked with
// its consumables.
func LoadPlayer() (component.PlayerStats, *Pouch, error) {
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return component.PlayerStats{}, nil, err
	}
	stats := component.PlayerStats{
		AttackPower:          spec.AttackPower,
		MaxHealth:            spec.MaxHealth,
		MaxPosture:           spec.MaxPosture,
		PostureRecoveryBonus: spec.PostureRecoveryBonus,
	}
	return stats, NewPouch(spec.Gourds, spec.Emblems), nil
}

// LoadBoss scales the boss prefab to a level. The returned script name may
// be empty.
func LoadBoss(level int) (component.BossStats, string, error) {
	spec, err := prefabs.LoadBossSpec()
	if err != nil {
		return component.BossStats{}, "", err
	}
	return ScaleBoss(spec, level), spec.Script, nil
}

// ScaleBoss grows every stat linearly with level and applies the caps.
func ScaleBoss(spec prefabs.BossSpec, level int) component.BossStats {
	l := float64(max(level, 0))
	aggCap := spec.Caps.Aggression
	if aggCap <= 0 || aggCap > MaxAggression {
		aggCap = MaxAggression
	}
	speed := spec.Base.Speed + spec.PerLevel.Speed*l
	if spec.Caps.Speed > 0 {
		speed = math.Min(spec.Caps.Speed, speed)
	}
	return component.BossStats{
		Name:       spec.Name,
		MaxHealth:  spec.Base.MaxHealth + spec.PerLevel.MaxHealth*l,
		MaxPosture: spec.Base.MaxPosture + spec.PerLevel.MaxPosture*l,
		Aggression: math.Min(aggCap, spec.Base.Aggression+spec.PerLevel.Aggression*l),
		Damage:     spec.Base.Damage + spec.PerLevel.Damage*l,
		Speed:      speed,
		Level:      max(level, 0),
	}
}

// LoadTuner compiles a boss tuning script. An empty name means no script.
func LoadTuner(name string) (sim.Tuner, error) {
	if strings.TrimSpace(name) == "" {
		return nil, nil
	}
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("duel: load script %s: %w", name, err)
	}
	tuner, err := system.NewScriptTuner(name, src)
	if err != nil {
		return nil, err
	}
	return tuner, nil
}

// LoadConfig assembles a match config from the prefab files for a level.
func LoadConfig(level int, withScript bool) (Config, error) {
	tuning, err := LoadTuning(TuningFile)
	if err != nil {
		return Config{}, err
	}
	player, pouch, err := LoadPlayer()
	if err != nil {
		return Config{}, err
	}
	boss, script, err := LoadBoss(level)
	if err != nil {
		return Config{}, err
	}
	cfg := Config{Tuning: tuning, Player: player, Boss: boss, Resources: pouch}
	if withScript {
		if cfg.Tuner, err = LoadTuner(script); err != nil {
			return Config{}, err
		}
	}
	return cfg, nil
}
