// Package breathing implements the guided breathing timer: a four-phase
// cycle advanced by explicit ticks from the host's frame loop.
package breathing

// Phase is one stage of a breathing cycle.
type Phase int

const (
	PhaseInhale Phase = iota
	PhaseHold
	PhaseExhale
	PhasePostExhaleHold
)

var phaseNames = map[Phase]string{
	PhaseInhale:         "inhale",
	PhaseHold:           "hold",
	PhaseExhale:         "exhale",
	PhasePostExhaleHold: "post-exhale-hold",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "unknown"
}

// Instruction returns the guidance text shown while the phase runs.
func (p Phase) Instruction() string {
	switch p {
	case PhaseHold:
		return "Hold your breath..."
	case PhaseExhale:
		return "Exhale slowly..."
	case PhasePostExhaleHold:
		return "Hold before inhaling..."
	default:
		return "Inhale slowly..."
	}
}

// Expanding reports whether the breathing circle should grow during the phase.
func (p Phase) Expanding() bool {
	return p == PhaseInhale || p == PhaseHold
}
