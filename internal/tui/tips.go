package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/serenity/internal/goals"
	"github.com/akyairhashvil/serenity/internal/models"
	"github.com/akyairhashvil/serenity/internal/util"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

type tipsModel struct {
	board    *goals.Board
	cursor   int
	quote    *models.Quote
	rendered string
}

func (m MainModel) newTipsModel() tipsModel {
	t := tipsModel{board: goals.NewBoard(m.ctx, m.opts.Catalog.Goals, m.opts.Service)}
	if q, ok := goals.QuoteOfDay(m.opts.Catalog.DailyQuotes, m.opts.Rand); ok {
		t.quote = &q
	}
	return t
}

func (m MainModel) updateTips(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	t := &m.tips
	list := t.board.Goals()
	switch {
	case key.Matches(msg, m.keys.Up):
		if t.cursor > 0 {
			t.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if t.cursor < len(list)-1 {
			t.cursor++
		}
	case key.Matches(msg, m.keys.Enter, m.keys.Toggle):
		if len(list) == 0 {
			return m, nil
		}
		if _, err := t.board.Toggle(m.ctx, list[t.cursor].ID); err != nil {
			util.LogError("tui: toggle goal", err)
			m.status = "Could not save goal"
			return m, nil
		}
		if t.board.AllCompleted() {
			m.status = goals.AllDoneMessage
		}
	}
	return m, nil
}

func tipsMarkdown(tips []string, moreURL string) string {
	var b strings.Builder
	b.WriteString("## Wellness Tips\n\n")
	for _, tip := range tips {
		b.WriteString("- " + tip + "\n")
	}
	if moreURL != "" {
		b.WriteString("\n[More wellness tips](" + moreURL + ")\n")
	}
	return b.String()
}

func renderMarkdown(md string, width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(CurrentTheme.Glamour),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		util.LogError("tui: markdown renderer", err)
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		util.LogError("tui: render markdown", err)
		return md
	}
	return strings.Trim(out, "\n")
}

func (m *MainModel) refreshTips() {
	m.tips.rendered = renderMarkdown(tipsMarkdown(m.opts.Catalog.Tips, m.opts.Catalog.MoreTipsURL), contentWidth(m.width))
}

func (m MainModel) viewTips(width int) string {
	t := m.tips
	var b strings.Builder
	if t.quote != nil {
		b.WriteString(CurrentTheme.Card.Width(width).Render(
			CurrentTheme.Quote.Render(fmt.Sprintf("%q", t.quote.Text))+"\n"+
				CurrentTheme.Dim.Render("- "+t.quote.Author)) + "\n\n")
	}

	done, total := t.board.Count()
	b.WriteString(CurrentTheme.Header.Render(fmt.Sprintf("Today's Micro-Goals (%d/%d)", done, total)) + "\n")
	for i, g := range t.board.Goals() {
		cursor := "  "
		if i == t.cursor {
			cursor = "> "
		}
		if t.board.Done(g.ID) {
			b.WriteString(cursor + CurrentTheme.Done.Render("[x] "+g.Text) + "\n")
			continue
		}
		style := CurrentTheme.Dim
		if i == t.cursor {
			style = CurrentTheme.Highlight
		}
		b.WriteString(cursor + style.Render("[ ] "+g.Text) + "\n")
	}
	if total > 0 && t.board.AllCompleted() {
		b.WriteString(CurrentTheme.Success.Render(goals.AllDoneMessage) + "\n")
	}

	rendered := t.rendered
	if rendered == "" {
		rendered = renderMarkdown(tipsMarkdown(m.opts.Catalog.Tips, m.opts.Catalog.MoreTipsURL), width)
	}
	b.WriteString("\n" + rendered + "\n")
	return b.String()
}
