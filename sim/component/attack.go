package component

// AttackType is the kind of boss melee move.
type AttackType int

const (
	AttackLight AttackType = iota
	AttackHeavy
	AttackCombo
	AttackThrust
	AttackSweep
)

func (a AttackType) String() string {
	switch a {
	case AttackLight:
		return "light"
	case AttackHeavy:
		return "heavy"
	case AttackCombo:
		return "combo"
	case AttackThrust:
		return "thrust"
	case AttackSweep:
		return "sweep"
	default:
		return "unknown"
	}
}

// AttackProfile holds the frame timings and reach of one attack type.
type AttackProfile struct {
	Windup     int     `yaml:"windup"`
	Active     int     `yaml:"active"`
	Recover    int     `yaml:"recover"`
	DamageMult float64 `yaml:"damage_mult"`
	Range      float64 `yaml:"range"`
	Lunge      float64 `yaml:"lunge"`
}

// AttackTable maps every attack type to its profile.
type AttackTable struct {
	Light  AttackProfile `yaml:"light"`
	Heavy  AttackProfile `yaml:"heavy"`
	Combo  AttackProfile `yaml:"combo"`
	Thrust AttackProfile `yaml:"thrust"`
	Sweep  AttackProfile `yaml:"sweep"`
}

// Of looks up a profile. Unknown types fall back to Light.
func (t AttackTable) Of(a AttackType) AttackProfile {
	switch a {
	case AttackHeavy:
		return t.Heavy
	case AttackCombo:
		return t.Combo
	case AttackThrust:
		return t.Thrust
	case AttackSweep:
		return t.Sweep
	default:
		return t.Light
	}
}

func DefaultAttackTable() AttackTable {
	return AttackTable{
		Light:  AttackProfile{Windup: 35, Active: 15, Recover: 40, DamageMult: 0.8, Range: 130, Lunge: 5},
		Heavy:  AttackProfile{Windup: 80, Active: 25, Recover: 140, DamageMult: 1.5, Range: 160, Lunge: 9},
		Combo:  AttackProfile{Windup: 25, Active: 12, Recover: 30, DamageMult: 0.7, Range: 120, Lunge: 7},
		Thrust: AttackProfile{Windup: 45, Active: 8, Recover: 60, DamageMult: 1.3, Range: 200, Lunge: 18},
		Sweep:  AttackProfile{Windup: 60, Active: 18, Recover: 90, DamageMult: 1.1, Range: 220, Lunge: 11},
	}
}
