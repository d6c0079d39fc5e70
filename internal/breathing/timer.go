package breathing

import "time"

// ReadyText is shown before the first tick of a session.
const ReadyText = "Ready"

// State is the observable timer state.
type State struct {
	Phase   Phase
	Elapsed time.Duration
	Active  bool
}

// Timer advances a Pattern through its phases. It is not safe for
// concurrent use; the host calls Tick once per frame from its event loop.
type Timer struct {
	pattern     Pattern
	state       State
	instruction string
	cycles      int
}

func NewTimer(p Pattern) *Timer {
	return &Timer{pattern: p}
}

func (t *Timer) Pattern() Pattern { return t.pattern }
func (t *Timer) State() State     { return t.state }
func (t *Timer) Active() bool     { return t.state.Active }

// Cycles counts completed cycles in the current session.
func (t *Timer) Cycles() int { return t.cycles }

// Instruction returns the text last emitted by Tick.
func (t *Timer) Instruction() string {
	if t.instruction == "" {
		return ReadyText
	}
	return t.instruction
}

// Start begins a new session from the top of the cycle.
func (t *Timer) Start() {
	t.state = State{Phase: PhaseInhale, Active: true}
	t.instruction = ""
	t.cycles = 0
}

// Pause halts ticking and keeps phase and elapsed as they are.
func (t *Timer) Pause() {
	t.state.Active = false
}

// Stop is Pause; the session state is retained until the next Start.
func (t *Timer) Stop() {
	t.Pause()
}

// Toggle starts an inactive timer (resetting it) or pauses an active one.
func (t *Timer) Toggle() {
	if t.state.Active {
		t.Pause()
		return
	}
	t.Start()
}

// SetPattern swaps the pattern, stopping the session and resetting it to
// the top of the cycle. It does not resume.
func (t *Timer) SetPattern(p Pattern) {
	t.pattern = p
	t.state = State{Phase: PhaseInhale}
	t.instruction = ""
	t.cycles = 0
}

// Tick adds delta to the elapsed time of the current phase. When the phase
// duration is reached it moves to the next phase with elapsed reset to zero.
// The returned instruction belongs to the phase the tick started in.
func (t *Timer) Tick(delta time.Duration) string {
	if !t.state.Active {
		return t.Instruction()
	}
	if delta < 0 {
		delta = 0
	}
	current := t.state.Phase
	t.state.Elapsed += delta
	if t.state.Elapsed >= PhaseDuration(current, t.pattern) {
		next := NextPhase(current, t.pattern)
		if next == PhaseInhale {
			t.cycles++
		}
		t.state.Phase = next
		t.state.Elapsed = 0
	}
	t.instruction = current.Instruction()
	return t.instruction
}

// PhaseProgress is the completed fraction of the current phase in [0, 1].
func (t *Timer) PhaseProgress() float64 {
	d := PhaseDuration(t.state.Phase, t.pattern)
	if d <= 0 {
		return 1
	}
	f := float64(t.state.Elapsed) / float64(d)
	if f > 1 {
		return 1
	}
	return f
}

// Remaining is the time left in the current phase.
func (t *Timer) Remaining() time.Duration {
	r := PhaseDuration(t.state.Phase, t.pattern) - t.state.Elapsed
	if r < 0 {
		return 0
	}
	return r
}
