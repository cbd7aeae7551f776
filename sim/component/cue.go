package component

// CueKind names an audio/vfx cue. The values double as sound bank keys.
type CueKind string

const (
	CueParry        CueKind = "parry"
	CueBlock        CueKind = "block"
	CueHit          CueKind = "hit"
	CueSwing        CueKind = "swing"
	CuePerilous     CueKind = "perilous"
	CueDeathblow    CueKind = "deathblow"
	CueBreak        CueKind = "break"
	CueHeal         CueKind = "heal"
	CueDash         CueKind = "dash"
	CueThrow        CueKind = "throw"
	CueClink        CueKind = "clink"
	CueFlurry       CueKind = "flurry"
	CueCharge       CueKind = "charge"
	CueThrustAttack CueKind = "thrust_attack"
	CueInsufficient CueKind = "insufficient"
)

// Cue is emitted for the presentation layer. X is the world position the
// effect should appear at.
type Cue struct {
	Kind  CueKind
	X     float64
	Frame int
}
