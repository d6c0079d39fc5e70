package breathing

import (
	"testing"
	"time"
)

func TestTickAtPhaseDurationFollowsTransitionTable(t *testing.T) {
	for _, p := range Patterns() {
		for _, phase := range []Phase{PhaseInhale, PhaseHold, PhaseExhale, PhasePostExhaleHold} {
			tm := NewTimer(p)
			tm.Start()
			tm.state.Phase = phase
			tm.Tick(PhaseDuration(phase, p))
			got := tm.State()
			if want := NextPhase(phase, p); got.Phase != want {
				t.Fatalf("%s/%s: expected %s, got %s", p.ID, phase, want, got.Phase)
			}
			if got.Elapsed != 0 {
				t.Fatalf("%s/%s: expected elapsed reset, got %v", p.ID, phase, got.Elapsed)
			}
		}
	}
}

func TestSmallIncrementsAccumulateUntilThreshold(t *testing.T) {
	step := 100 * time.Millisecond
	for _, p := range Patterns() {
		tm := NewTimer(p)
		tm.Start()
		var total time.Duration
		for total+step < p.Inhale {
			tm.Tick(step)
			total += step
			st := tm.State()
			if st.Phase != PhaseInhale {
				t.Fatalf("%s: phase changed early at %v", p.ID, total)
			}
			if st.Elapsed != total {
				t.Fatalf("%s: expected elapsed %v, got %v", p.ID, total, st.Elapsed)
			}
		}
		tm.Tick(step)
		if tm.State().Phase == PhaseInhale {
			t.Fatalf("%s: expected transition once elapsed reached %v", p.ID, p.Inhale)
		}
	}
}

func TestPatternWithoutHoldSkipsHold(t *testing.T) {
	p := Pattern{ID: "simple", Name: "Simple", Inhale: 5 * time.Second, Exhale: 5 * time.Second}
	tm := NewTimer(p)
	tm.Start()
	want := []Phase{PhaseExhale, PhaseInhale, PhaseExhale, PhaseInhale}
	for i, w := range want {
		tm.Tick(5 * time.Second)
		got := tm.State().Phase
		if got == PhaseHold || got == PhasePostExhaleHold {
			t.Fatalf("step %d: visited %s", i, got)
		}
		if got != w {
			t.Fatalf("step %d: expected %s, got %s", i, w, got)
		}
	}
}

func TestBoxBreathingCycle(t *testing.T) {
	tm := NewTimer(PatternByID("box"))
	tm.Start()
	want := []Phase{PhaseHold, PhaseExhale, PhasePostExhaleHold, PhaseInhale}
	for i, w := range want {
		tm.Tick(4*time.Second - time.Millisecond)
		if tm.State().Phase == w {
			t.Fatalf("step %d: phase lasted less than 4s", i)
		}
		tm.Tick(time.Millisecond)
		if got := tm.State().Phase; got != w {
			t.Fatalf("step %d: expected %s, got %s", i, w, got)
		}
	}
	if tm.Cycles() != 1 {
		t.Fatalf("expected 1 cycle, got %d", tm.Cycles())
	}
}

func TestFourSevenEightScenario(t *testing.T) {
	tm := NewTimer(PatternByID("478"))
	tm.Start()
	steps := []struct {
		delta time.Duration
		phase Phase
	}{
		{4 * time.Second, PhaseHold},
		{7 * time.Second, PhaseExhale},
		{8 * time.Second, PhaseInhale},
	}
	for _, s := range steps {
		tm.Tick(s.delta)
		st := tm.State()
		if st.Phase != s.phase || st.Elapsed != 0 {
			t.Fatalf("after %v: expected %s/0, got %s/%v", s.delta, s.phase, st.Phase, st.Elapsed)
		}
	}
}

func TestStopThenStartResets(t *testing.T) {
	tm := NewTimer(PatternByID("478"))
	tm.Start()
	tm.Tick(4 * time.Second)
	tm.Tick(3 * time.Second)
	tm.Stop()
	st := tm.State()
	if st.Active || st.Phase != PhaseHold || st.Elapsed != 3*time.Second {
		t.Fatalf("expected retained paused state, got %+v", st)
	}
	tm.Tick(10 * time.Second)
	if tm.State() != st {
		t.Fatalf("expected inactive timer to ignore ticks")
	}
	tm.Start()
	if got := tm.State(); got != (State{Phase: PhaseInhale, Active: true}) {
		t.Fatalf("expected reset on start, got %+v", got)
	}
}

func TestToggle(t *testing.T) {
	tm := NewTimer(PatternByID("deep"))
	tm.Toggle()
	if !tm.Active() {
		t.Fatalf("expected toggle to start")
	}
	tm.Tick(time.Second)
	tm.Toggle()
	if tm.Active() {
		t.Fatalf("expected toggle to pause")
	}
	tm.Toggle()
	if tm.State().Elapsed != 0 {
		t.Fatalf("expected restart to reset elapsed")
	}
}

func TestSetPatternStopsAndResets(t *testing.T) {
	tm := NewTimer(PatternByID("box"))
	tm.Start()
	tm.Tick(5 * time.Second)
	tm.Tick(time.Second)
	tm.SetPattern(PatternByID("deep"))
	if got := tm.State(); got != (State{Phase: PhaseInhale}) {
		t.Fatalf("expected stopped reset state, got %+v", got)
	}
	if tm.Pattern().ID != "deep" {
		t.Fatalf("expected pattern swap")
	}
	if tm.Instruction() != ReadyText {
		t.Fatalf("expected ready text after pattern change, got %q", tm.Instruction())
	}
}

func TestInstructionKeepsOldPhaseOnTransitionTick(t *testing.T) {
	tm := NewTimer(PatternByID("478"))
	if tm.Instruction() != ReadyText {
		t.Fatalf("expected ready text before first tick")
	}
	tm.Start()
	if got := tm.Tick(time.Second); got != "Inhale slowly..." {
		t.Fatalf("unexpected instruction %q", got)
	}
	if got := tm.Tick(3 * time.Second); got != "Inhale slowly..." {
		t.Fatalf("expected old-phase instruction on transition, got %q", got)
	}
	if got := tm.Tick(time.Second); got != "Hold your breath..." {
		t.Fatalf("unexpected instruction %q", got)
	}
}

func TestZeroLengthPhaseExitsOnNextTick(t *testing.T) {
	p := Pattern{ID: "x", Inhale: time.Second, Exhale: time.Second}
	tm := NewTimer(p)
	tm.Start()
	tm.state.Phase = PhaseHold
	tm.Tick(0)
	if tm.State().Phase != PhaseExhale {
		t.Fatalf("expected zero-length hold to exit, got %s", tm.State().Phase)
	}
}

func TestNegativeDeltaIgnored(t *testing.T) {
	tm := NewTimer(PatternByID("box"))
	tm.Start()
	tm.Tick(time.Second)
	tm.Tick(-5 * time.Second)
	if tm.State().Elapsed != time.Second {
		t.Fatalf("expected elapsed unchanged, got %v", tm.State().Elapsed)
	}
}

func TestPhaseProgressAndRemaining(t *testing.T) {
	tm := NewTimer(PatternByID("box"))
	tm.Start()
	tm.Tick(time.Second)
	if got := tm.PhaseProgress(); got != 0.25 {
		t.Fatalf("expected 0.25, got %v", got)
	}
	if got := tm.Remaining(); got != 3*time.Second {
		t.Fatalf("expected 3s remaining, got %v", got)
	}
}
