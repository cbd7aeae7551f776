package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// LoadSpec decodes a YAML prefab into T.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return spec, nil
}

// LoadInto decodes a YAML prefab onto an existing value so keys missing from
// the file keep their current values.
func LoadInto(filename string, out any) error {
	data, err := Load(filename)
	if err != nil {
		return fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return nil
}

// PlayerSpec is the default player loadout.
type PlayerSpec struct {
	Name                 string  `yaml:"name"`
	AttackPower          float64 `yaml:"attack_power"`
	MaxHealth            float64 `yaml:"max_health"`
	MaxPosture           float64 `yaml:"max_posture"`
	PostureRecoveryBonus float64 `yaml:"posture_recovery_bonus"`
	Gourds               int     `yaml:"gourds"`
	Emblems              int     `yaml:"emblems"`
}

// BossSpec describes how a boss's stats grow with level.
type BossSpec struct {
	Name     string        `yaml:"name"`
	Base     BossStatsSpec `yaml:"base"`
	PerLevel BossStatsSpec `yaml:"per_level"`
	Caps     BossCapsSpec  `yaml:"caps"`
	Script   string        `yaml:"script"`
}

type BossStatsSpec struct {
	MaxHealth  float64 `yaml:"max_health"`
	MaxPosture float64 `yaml:"max_posture"`
	Aggression float64 `yaml:"aggression"`
	Damage     float64 `yaml:"damage"`
	Speed      float64 `yaml:"speed"`
}

type BossCapsSpec struct {
	Aggression float64 `yaml:"aggression"`
	Speed      float64 `yaml:"speed"`
}

func LoadPlayerSpec() (PlayerSpec, error) {
	return LoadSpec[PlayerSpec]("player.yaml")
}

func LoadBossSpec() (BossSpec, error) {
	return LoadSpec[BossSpec]("boss.yaml")
}
