package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/serenity/internal/config"
	"github.com/akyairhashvil/serenity/internal/models"
	"github.com/akyairhashvil/serenity/internal/mood"
	"github.com/akyairhashvil/serenity/internal/util"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const selectMoodMessage = "Please select how you're feeling today"

// homeModel is the check-in form. The cursor runs over the moods and then
// the continue row.
type homeModel struct {
	cursor   int
	selected models.Mood
	stress   int
	quote    *models.Quote
	err      string
}

func newHomeModel() homeModel {
	return homeModel{stress: config.DefaultStressLevel}
}

func (m MainModel) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	h := &m.home
	moods := m.opts.Catalog.Moods
	switch {
	case key.Matches(msg, m.keys.Up):
		if h.cursor > 0 {
			h.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if h.cursor < len(moods) {
			h.cursor++
		}
	case key.Matches(msg, m.keys.Left):
		h.stress = util.Clamp(h.stress-1, config.MinStressLevel, config.MaxStressLevel)
	case key.Matches(msg, m.keys.Right):
		h.stress = util.Clamp(h.stress+1, config.MinStressLevel, config.MaxStressLevel)
	case key.Matches(msg, m.keys.Enter, m.keys.Toggle):
		if h.cursor < len(moods) {
			h.selected = moods[h.cursor].Value
			h.err = ""
			if q, ok := mood.PickQuote(h.selected, m.opts.Catalog.HomeQuotes, m.opts.Rand); ok {
				h.quote = &q
			} else {
				h.quote = nil
			}
			return m, nil
		}
		return m.submitCheckIn()
	}
	return m, nil
}

func (m MainModel) submitCheckIn() (MainModel, tea.Cmd) {
	h := &m.home
	if h.selected == "" {
		h.err = selectMoodMessage
		return m, nil
	}
	if _, err := m.opts.Service.AddMoodEntry(m.ctx, h.selected, h.stress); err != nil {
		util.LogError("tui: save mood entry", err)
		h.err = "Could not save your check-in"
		return m, nil
	}
	rec := mood.Recommend(h.stress)
	m.status = rec.Message()
	m.home = newHomeModel()
	if rec.Navigates() {
		return m.navigate(rec.Screen)
	}
	return m, nil
}

func (m MainModel) viewHome(width int) string {
	h := m.home
	var b strings.Builder
	for i, opt := range m.opts.Catalog.Moods {
		cursor := "  "
		if i == h.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s %s", opt.Emoji, opt.Label)
		style := CurrentTheme.Dim
		if opt.Value == h.selected {
			style = CurrentTheme.Focused
			line += "  ✓"
		} else if i == h.cursor {
			style = CurrentTheme.Highlight
		}
		b.WriteString(cursor + style.Render(line) + "\n")
	}

	b.WriteString("\n" + fmt.Sprintf("Stress level: %s %d/10\n", stressBar(h.stress), h.stress))
	b.WriteString(CurrentTheme.Dim.Render("←/→ to adjust") + "\n\n")

	cont := "[ Continue ]"
	if h.cursor == len(m.opts.Catalog.Moods) {
		b.WriteString("> " + CurrentTheme.Focused.Render(cont) + "\n")
	} else {
		b.WriteString("  " + CurrentTheme.Dim.Render(cont) + "\n")
	}
	if h.err != "" {
		b.WriteString(CurrentTheme.Error.Render(h.err) + "\n")
	}
	if h.quote != nil {
		b.WriteString("\n" + CurrentTheme.Quote.Width(width).Render(fmt.Sprintf("%q", h.quote.Text)) + "\n")
	}
	return b.String()
}

func stressBar(level int) string {
	return "[" + strings.Repeat("■", level) + strings.Repeat("·", config.MaxStressLevel-level) + "]"
}
