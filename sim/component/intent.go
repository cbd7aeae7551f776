package component

// Intent is the per-tick control snapshot. Held flags stay true while the
// control is down; edge flags are true only on the tick the control went down.
type Intent struct {
	MoveLeft  bool
	MoveRight bool
	Jump      bool

	// Block is held; BlockPressed is the edge that arms the parry window.
	Block        bool
	BlockPressed bool

	Attack bool

	// Heal, Throw and Special are edges that latch a request until it is
	// attempted.
	Heal    bool
	Throw   bool
	Special bool

	ThrustHold bool

	// Dash is -1 or +1 on a detected double tap, 0 otherwise.
	Dash int
}
