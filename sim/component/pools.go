package component

// Pools holds the health and posture gauges of a combatant. Every mutation
// clamps immediately so readers never observe an out-of-range value.
type Pools struct {
	Health     float64
	MaxHealth  float64
	Posture    float64
	MaxPosture float64
}

// NewPools starts at full health and zero posture.
func NewPools(maxHealth, maxPosture float64) Pools {
	if maxHealth <= 0 {
		maxHealth = 1
	}
	if maxPosture <= 0 {
		maxPosture = 1
	}
	return Pools{Health: maxHealth, MaxHealth: maxHealth, MaxPosture: maxPosture}
}

func (p *Pools) Alive() bool {
	return p != nil && p.Health > 0
}

// Damage subtracts health. Non-positive amounts are ignored.
func (p *Pools) Damage(amount float64) {
	if p == nil || amount <= 0 {
		return
	}
	p.SetHealth(p.Health - amount)
}

// Heal restores health up to MaxHealth.
func (p *Pools) Heal(amount float64) {
	if p == nil || amount <= 0 {
		return
	}
	p.SetHealth(p.Health + amount)
}

func (p *Pools) SetHealth(v float64) {
	if p == nil {
		return
	}
	p.Health = clampRange(v, p.MaxHealth)
}

// AddPosture returns true when the gauge is full after the change.
func (p *Pools) AddPosture(amount float64) bool {
	if p == nil {
		return false
	}
	p.SetPosture(p.Posture + amount)
	return p.PostureBroken()
}

func (p *Pools) SetPosture(v float64) {
	if p == nil {
		return
	}
	p.Posture = clampRange(v, p.MaxPosture)
}

// ScalePosture multiplies the posture gauge.
func (p *Pools) ScalePosture(f float64) {
	if p == nil {
		return
	}
	p.SetPosture(p.Posture * f)
}

func (p *Pools) PostureBroken() bool {
	return p != nil && p.Posture >= p.MaxPosture
}

func (p *Pools) HealthFrac() float64 {
	if p == nil || p.MaxHealth <= 0 {
		return 0
	}
	return p.Health / p.MaxHealth
}

func (p *Pools) PostureFrac() float64 {
	if p == nil || p.MaxPosture <= 0 {
		return 0
	}
	return p.Posture / p.MaxPosture
}

func clampRange(v, max float64) float64 {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
