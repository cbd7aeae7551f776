package duel

import (
	"sync"

	"github.com/milk9111/duel/sim"
)

// Resources gates consumables owned outside the match.
type Resources = sim.Resources

// Pouch is an in-memory Resources with healing gourds and spirit emblems.
type Pouch struct {
	mu      sync.Mutex
	gourds  int
	emblems int
}

func NewPouch(gourds, emblems int) *Pouch {
	return &Pouch{gourds: max(0, gourds), emblems: max(0, emblems)}
}

func (p *Pouch) TryConsumeHeal() bool {
	if p == nil {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.gourds <= 0 {
		return false
	}
	p.gourds--
	return true
}

// TryConsumeTools spends n emblems only when all n are available.
func (p *Pouch) TryConsumeTools(n int) bool {
	if p == nil || n <= 0 {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.emblems < n {
		return false
	}
	p.emblems -= n
	return true
}

func (p *Pouch) Counts() (gourds, emblems int) {
	if p == nil {
		return 0, 0
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.gourds, p.emblems
}
