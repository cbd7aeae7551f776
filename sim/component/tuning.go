package component

// Tuning gathers every constant the simulation reads. DefaultTuning returns
// the shipped values; YAML overlays decode onto a copy of it.
type Tuning struct {
	Arena   ArenaTuning   `yaml:"arena"`
	Physics PhysicsTuning `yaml:"physics"`
	Player  PlayerTuning  `yaml:"player"`
	Boss    BossTuning    `yaml:"boss"`
	Attacks AttackTable   `yaml:"attacks"`
}

type ArenaTuning struct {
	Width   float64 `yaml:"width"`
	GroundY float64 `yaml:"ground_y"`
	// CornerMargin is the distance from a wall inside which a body counts as cornered.
	CornerMargin float64 `yaml:"corner_margin"`
}

type PhysicsTuning struct {
	Gravity           float64 `yaml:"gravity"`
	Friction          float64 `yaml:"friction"`
	Elasticity        float64 `yaml:"elasticity"`
	ProjectileGravity float64 `yaml:"projectile_gravity"`
	// MaxSeparation caps the overlap that is corrected positionally.
	MaxSeparation float64 `yaml:"max_separation"`
}

type BodyTuning struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Mass   float64 `yaml:"mass"`
	StartX float64 `yaml:"start_x"`
}

type PlayerTuning struct {
	Body BodyTuning `yaml:"body"`

	WalkSpeed     float64 `yaml:"walk_speed"`
	WalkAccel     float64 `yaml:"walk_accel"`
	BlockAccel    float64 `yaml:"block_accel"`
	BlockSpeedMul float64 `yaml:"block_speed_mul"`
	JumpSpeed     float64 `yaml:"jump_speed"`

	DashSpeed  float64 `yaml:"dash_speed"`
	DashFrames int     `yaml:"dash_frames"`
	DashHop    float64 `yaml:"dash_hop"`

	AttackFrames int `yaml:"attack_frames"`
	AttackHitAt  int `yaml:"attack_hit_at"`

	MaxCharge    int `yaml:"max_charge"`
	ThrustFrames int `yaml:"thrust_frames"`
	ThrustHitAt  int `yaml:"thrust_hit_at"`

	HealFrames   int     `yaml:"heal_frames"`
	HealFraction float64 `yaml:"heal_fraction"`

	ParryWindow int `yaml:"parry_window"`
	ParryBuffer int `yaml:"parry_buffer"`

	ShurikenSpeed    float64 `yaml:"shuriken_speed"`
	ShurikenLife     int     `yaml:"shuriken_life"`
	ShurikenCooldown int     `yaml:"shuriken_cooldown"`

	SpecialCost     int     `yaml:"special_cost"`
	SpecialFrames   int     `yaml:"special_frames"`
	SpecialCooldown int     `yaml:"special_cooldown"`
	SpecialSpeed    float64 `yaml:"special_speed"`
	SpecialHits     []int   `yaml:"special_hits"`
}

type BossTuning struct {
	Body BodyTuning `yaml:"body"`

	ComboWindow  int `yaml:"combo_window"`
	ComboReset   int `yaml:"combo_reset"`
	PaceCooldown int `yaml:"pace_cooldown"`

	ShurikenLife    int `yaml:"shuriken_life"`
	ShurikenStagger int `yaml:"shuriken_stagger"`
}

func DefaultTuning() Tuning {
	return Tuning{
		Arena: ArenaTuning{Width: 1000, GroundY: 350, CornerMargin: 120},
		Physics: PhysicsTuning{
			Gravity:           0.6,
			Friction:          0.85,
			Elasticity:        0.3,
			ProjectileGravity: 0.15,
			MaxSeparation:     50,
		},
		Player: PlayerTuning{
			Body:             BodyTuning{Width: 30, Height: 60, Mass: 1, StartX: 100},
			WalkSpeed:        2.8,
			WalkAccel:        0.8,
			BlockAccel:       0.5,
			BlockSpeedMul:    0.5,
			JumpSpeed:        14,
			DashSpeed:        12,
			DashFrames:       15,
			DashHop:          4,
			AttackFrames:     18,
			AttackHitAt:      10,
			MaxCharge:        60,
			ThrustFrames:     13,
			ThrustHitAt:      11,
			HealFrames:       45,
			HealFraction:     0.5,
			ParryWindow:      26,
			ParryBuffer:      6,
			ShurikenSpeed:    15,
			ShurikenLife:     60,
			ShurikenCooldown: 30,
			SpecialCost:      3,
			SpecialFrames:    60,
			SpecialCooldown:  100,
			SpecialSpeed:     2,
			SpecialHits:      []int{0, 10, 20, 30, 50},
		},
		Boss: BossTuning{
			Body:            BodyTuning{Width: 50, Height: 80, Mass: 10, StartX: 600},
			ComboWindow:     90,
			ComboReset:      120,
			PaceCooldown:    60,
			ShurikenLife:    80,
			ShurikenStagger: 9,
		},
		Attacks: DefaultAttackTable(),
	}
}
