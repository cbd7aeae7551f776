package system

import "github.com/milk9111/duel/sim"

// NewPipeline wires the per-tick systems in their fixed order: the player
// acts on input, the boss reacts, bodies move, then hits are resolved.
func NewPipeline() *sim.Scheduler {
	return sim.NewScheduler(
		NewPlayerSystem(),
		NewBossSystem(),
		NewPhysicsSystem(),
		NewProjectileSystem(),
		NewCombatSystem(),
		NewPostureSystem(),
	)
}
