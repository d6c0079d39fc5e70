package tui

import (
	"context"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/akyairhashvil/serenity/internal/catalog"
	"github.com/akyairhashvil/serenity/internal/database"
	"github.com/akyairhashvil/serenity/internal/music"
	"github.com/akyairhashvil/serenity/internal/router"
	"github.com/akyairhashvil/serenity/internal/testutil"
	"github.com/akyairhashvil/serenity/internal/userdata"
	tea "github.com/charmbracelet/bubbletea"
)

type testClock struct{ t time.Time }

func (c *testClock) Now() time.Time          { return c.t }
func (c *testClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

type harness struct {
	db    *database.Database
	svc   *userdata.Service
	clock *testClock
	cat   *catalog.Catalog
	opts  Options
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	t.Cleanup(func() { SetTheme("default") })
	db := testutil.OpenDB(t)
	clk := &testClock{t: time.Date(2026, 10, 14, 9, 0, 0, 0, time.Local)}
	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog.Default failed: %v", err)
	}
	svc := userdata.NewService(db, userdata.ClockFunc(clk.Now))
	h := &harness{db: db, svc: svc, clock: clk, cat: cat}
	h.opts = Options{
		Service:    svc,
		Settings:   db,
		Catalog:    cat,
		Player:     music.NewPlayer(nil, music.NewClockBackend(clk.Now)),
		ReportsDir: t.TempDir(),
		Now:        clk.Now,
		Rand:       rand.New(rand.NewSource(1)),
	}
	return h
}

func (h *harness) model() MainModel {
	return NewMainModel(context.Background(), h.opts)
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func update(m MainModel, msg tea.Msg) (MainModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(MainModel), cmd
}

func press(m MainModel, keys ...string) MainModel {
	for _, k := range keys {
		m, _ = update(m, keyMsg(k))
	}
	return m
}

func TestNavigationWraps(t *testing.T) {
	m := newHarness(t).model()
	if m.Screen() != router.ScreenHome {
		t.Fatalf("expected home, got %v", m.Screen())
	}
	m = press(m, "tab")
	if m.Screen() != router.ScreenBreathing {
		t.Fatalf("expected breathing, got %v", m.Screen())
	}
	m = press(m, "shift+tab", "shift+tab")
	if m.Screen() != router.ScreenProgress {
		t.Fatalf("expected progress after wrapping back, got %v", m.Screen())
	}
	m = press(m, "3")
	if m.Screen() != router.ScreenMusic {
		t.Fatalf("expected music, got %v", m.Screen())
	}
}

func TestUnknownStartPathShowsNotFound(t *testing.T) {
	h := newHarness(t)
	h.opts.StartPath = "/nowhere"
	m := h.model()
	if m.Screen() != router.ScreenNotFound {
		t.Fatalf("expected not found, got %v", m.Screen())
	}
	if !strings.Contains(m.View(), "Page not found") {
		t.Fatalf("expected not found view")
	}
	m = press(m, "enter")
	if m.Screen() != router.ScreenHome {
		t.Fatalf("expected home after enter, got %v", m.Screen())
	}
}

func TestViewsRender(t *testing.T) {
	m := newHarness(t).model()
	m, _ = update(m, tea.WindowSizeMsg{Width: 80, Height: 40})
	for _, s := range router.Nav() {
		m, _ = m.navigate(s)
		view := m.View()
		if !strings.Contains(view, s.Title()) {
			t.Fatalf("expected %q in %v view", s.Title(), s)
		}
	}
}

func TestThemeCyclePersists(t *testing.T) {
	h := newHarness(t)
	m := h.model()
	press(m, "t")
	if CurrentTheme.Name != "Dracula" {
		t.Fatalf("expected dracula theme, got %q", CurrentTheme.Name)
	}
	if v, ok := h.db.GetSetting(context.Background(), "theme"); !ok || v != "dracula" {
		t.Fatalf("expected theme setting persisted, got %q", v)
	}
	SetTheme("default")
	h.model()
	if CurrentTheme.Name != "Dracula" {
		t.Fatalf("expected stored theme applied on startup")
	}
}
