package breathing

import (
	"fmt"
	"time"
)

// Pattern is a named set of phase durations. A zero Hold or PostExhaleHold
// means the pattern has no such phase.
type Pattern struct {
	ID             string
	Name           string
	Inhale         time.Duration
	Hold           time.Duration
	Exhale         time.Duration
	PostExhaleHold time.Duration
}

func (p Pattern) HasHold() bool           { return p.Hold > 0 }
func (p Pattern) HasPostExhaleHold() bool { return p.PostExhaleHold > 0 }

// Label renders the selector text, e.g. "4-7-8 Breathing (4-7-8)".
func (p Pattern) Label() string {
	return fmt.Sprintf("%s (%s-%s-%s)", p.Name, seconds(p.Inhale), seconds(p.Hold), seconds(p.Exhale))
}

// CycleLength is the time one full cycle takes.
func (p Pattern) CycleLength() time.Duration {
	return p.Inhale + p.Hold + p.Exhale + p.PostExhaleHold
}

func seconds(d time.Duration) string {
	return fmt.Sprintf("%g", d.Seconds())
}

var patterns = []Pattern{
	{ID: "box", Name: "Box Breathing", Inhale: 4 * time.Second, Hold: 4 * time.Second, Exhale: 4 * time.Second, PostExhaleHold: 4 * time.Second},
	{ID: "478", Name: "4-7-8 Breathing", Inhale: 4 * time.Second, Hold: 7 * time.Second, Exhale: 8 * time.Second},
	{ID: "deep", Name: "Deep Breathing", Inhale: 5 * time.Second, Hold: 2 * time.Second, Exhale: 5 * time.Second},
}

// Patterns returns the fixed pattern catalog.
func Patterns() []Pattern {
	out := make([]Pattern, len(patterns))
	copy(out, patterns)
	return out
}

// PatternByID looks up a catalog pattern, falling back to the first entry
// for unknown IDs.
func PatternByID(id string) Pattern {
	for _, p := range patterns {
		if p.ID == id {
			return p
		}
	}
	return patterns[0]
}

// IndexOf returns the catalog position of a pattern ID, or 0.
func IndexOf(id string) int {
	for i, p := range patterns {
		if p.ID == id {
			return i
		}
	}
	return 0
}

// PhaseDuration returns how long phase lasts under pattern.
func PhaseDuration(phase Phase, p Pattern) time.Duration {
	switch phase {
	case PhaseInhale:
		return p.Inhale
	case PhaseHold:
		return p.Hold
	case PhaseExhale:
		return p.Exhale
	case PhasePostExhaleHold:
		return p.PostExhaleHold
	}
	return 0
}

// NextPhase returns the phase that follows phase under pattern.
func NextPhase(phase Phase, p Pattern) Phase {
	switch phase {
	case PhaseInhale:
		if p.HasHold() {
			return PhaseHold
		}
		return PhaseExhale
	case PhaseHold:
		return PhaseExhale
	case PhaseExhale:
		if p.HasPostExhaleHold() {
			return PhasePostExhaleHold
		}
		return PhaseInhale
	default:
		return PhaseInhale
	}
}
