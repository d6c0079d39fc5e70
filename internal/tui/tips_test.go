package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/akyairhashvil/serenity/internal/goals"
	"github.com/charmbracelet/x/ansi"
)

func TestTipsGoalToggle(t *testing.T) {
	h := newHarness(t)
	m := press(h.model(), "4", "enter")
	if !h.svc.IsGoalCompleted(context.Background(), "water") {
		t.Fatalf("expected goal persisted")
	}
	m = press(m, "enter")
	if h.svc.IsGoalCompleted(context.Background(), "water") {
		t.Fatalf("expected un-check persisted")
	}
	for range h.cat.Goals {
		m = press(m, "enter", "down")
	}
	if m.status != goals.AllDoneMessage {
		t.Fatalf("expected celebration, got %q", m.status)
	}
	if !strings.Contains(m.View(), goals.AllDoneMessage) {
		t.Fatalf("expected celebration in view")
	}
}

func TestTipsResetsGoalsOnNewDay(t *testing.T) {
	h := newHarness(t)
	m := press(h.model(), "4", "enter")
	if !m.tips.board.Done("water") {
		t.Fatalf("expected water checked")
	}
	m = press(m, "1", "4")
	if !m.tips.board.Done("water") {
		t.Fatalf("expected goal kept on the same day")
	}

	h.clock.Advance(24 * time.Hour)
	m = press(m, "1", "4")
	if m.tips.board.Done("water") {
		t.Fatalf("expected goals cleared after the day turned")
	}
	if h.svc.IsGoalCompleted(context.Background(), "water") {
		t.Fatalf("expected reset persisted")
	}
}

func TestTipsMarkdown(t *testing.T) {
	md := tipsMarkdown([]string{"Sleep well"}, "https://example.org")
	if !strings.Contains(md, "- Sleep well") || !strings.Contains(md, "(https://example.org)") {
		t.Fatalf("unexpected markdown %q", md)
	}
	if out := ansi.Strip(renderMarkdown(md, 40)); !strings.Contains(out, "Sleep") {
		t.Fatalf("expected rendered tip, got %q", out)
	}
}
