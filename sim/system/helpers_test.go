package system

import (
	"github.com/milk9111/duel/sim"
	"github.com/milk9111/duel/sim/component"
)

type fixedRoll float64

func (f fixedRoll) Float64() float64 { return float64(f) }

type stubResources struct {
	heals int
	tools int
}

func (r *stubResources) TryConsumeHeal() bool {
	if r.heals <= 0 {
		return false
	}
	r.heals--
	return true
}

func (r *stubResources) TryConsumeTools(n int) bool {
	if n <= 0 || r.tools < n {
		return false
	}
	r.tools -= n
	return true
}

type constTuner float64

func (c constTuner) Adjust(string, map[string]any, float64) float64 { return float64(c) }

func newTestState(level int) *sim.State {
	st := sim.NewState(component.DefaultTuning(),
		component.PlayerStats{AttackPower: 10, MaxHealth: 200, MaxPosture: 100},
		component.BossStats{
			MaxHealth:  200 + 140*float64(level),
			MaxPosture: 100 + 55*float64(level),
			Aggression: 0.3,
			Damage:     25 + 3.5*float64(level),
			Speed:      2.25,
			Level:      level,
		})
	st.Rand = fixedRoll(0.99)
	st.Resources = &stubResources{}
	return st
}

func cues(st *sim.State) []component.CueKind {
	var out []component.CueKind
	for _, evt := range st.Events.Drain() {
		if evt.Type == sim.EventCue {
			out = append(out, evt.Cue.Kind)
		}
	}
	return out
}
