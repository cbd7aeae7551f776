package component

// PlayerStats is the stat block supplied by the progression layer.
type PlayerStats struct {
	AttackPower          float64 `yaml:"attack_power"`
	MaxHealth            float64 `yaml:"max_health"`
	MaxPosture           float64 `yaml:"max_posture"`
	PostureRecoveryBonus float64 `yaml:"posture_recovery_bonus"`
}

// BossStats is produced by an external generator for a given level.
type BossStats struct {
	Name       string  `yaml:"name"`
	MaxHealth  float64 `yaml:"max_health"`
	MaxPosture float64 `yaml:"max_posture"`
	Aggression float64 `yaml:"aggression"`
	Damage     float64 `yaml:"damage"`
	Speed      float64 `yaml:"speed"`
	Level      int     `yaml:"level"`
}
