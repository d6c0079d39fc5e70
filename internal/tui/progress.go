package tui

import (
	"strings"

	"github.com/akyairhashvil/serenity/internal/config"
	"github.com/akyairhashvil/serenity/internal/mood"
	"github.com/akyairhashvil/serenity/internal/report"
	"github.com/akyairhashvil/serenity/internal/util"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const thanksMessage = "Thank you for your feedback!"

type progressModel struct {
	moodCursor int
	feedback   textarea.Model
	editing    bool
	thanks     bool
	thanksGen  int
}

func newProgressModel() progressModel {
	ta := textarea.New()
	ta.Placeholder = "Share your thoughts about your wellness journey..."
	ta.CharLimit = config.MaxFeedbackLength
	ta.ShowLineNumbers = false
	ta.SetWidth(config.ContentWidth - 2)
	ta.SetHeight(3)
	return progressModel{feedback: ta}
}

func (m MainModel) updateProgress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := &m.progress
	moods := m.opts.Catalog.Moods
	switch {
	case key.Matches(msg, m.keys.Left):
		if p.moodCursor > 0 {
			p.moodCursor--
		}
	case key.Matches(msg, m.keys.Right):
		if p.moodCursor < len(moods)-1 {
			p.moodCursor++
		}
	case key.Matches(msg, m.keys.Enter):
		if len(moods) == 0 {
			return m, nil
		}
		if _, err := m.opts.Service.AddMoodEntry(m.ctx, moods[p.moodCursor].Value, config.DefaultStressLevel); err != nil {
			util.LogError("tui: update mood", err)
			m.status = "Could not save your mood"
			return m, nil
		}
		m.status = "Mood updated"
	case key.Matches(msg, m.keys.Feedback):
		p.editing = true
		cmd := p.feedback.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.Export):
		return m, m.exportPDF()
	case key.Matches(msg, m.keys.ExportJSON):
		return m, m.exportJSON()
	}
	return m, nil
}

func (m MainModel) updateFeedback(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := &m.progress
	switch {
	case key.Matches(msg, m.keys.Escape):
		p.editing = false
		p.feedback.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		if strings.TrimSpace(p.feedback.Value()) == "" {
			return m, nil
		}
		p.feedback.Reset()
		p.feedback.Blur()
		p.editing = false
		p.thanks = true
		p.thanksGen++
		return m, thanksCmd(p.thanksGen)
	}
	var cmd tea.Cmd
	p.feedback, cmd = p.feedback.Update(msg)
	return m, cmd
}

func (m MainModel) exportPDF() tea.Cmd {
	entries := m.opts.Service.RecentMoodEntries(m.ctx, config.RecentMoodEntries)
	completed := m.opts.Service.CompletedGoals(m.ctx)
	dir, goalList, now := m.opts.ReportsDir, m.opts.Catalog.Goals, m.opts.Now()
	return func() tea.Msg {
		path, err := report.WriteFile(dir, entries, goalList, completed, now)
		if err != nil {
			util.LogError("tui: export pdf", err)
			return statusMsg("Export failed: " + err.Error())
		}
		return statusMsg("Report saved to " + path)
	}
}

func (m MainModel) exportJSON() tea.Cmd {
	payload, err := m.opts.Service.Export(m.ctx)
	if err != nil {
		util.LogError("tui: export json", err)
		return func() tea.Msg { return statusMsg("Export failed: " + err.Error()) }
	}
	dir, now := m.opts.ReportsDir, m.opts.Now()
	return func() tea.Msg {
		path, err := report.WriteJSON(dir, payload, now)
		if err != nil {
			util.LogError("tui: write json export", err)
			return statusMsg("Export failed: " + err.Error())
		}
		return statusMsg("Data exported to " + path)
	}
}

func (m MainModel) viewProgress(width int) string {
	p := m.progress
	var b strings.Builder

	var opts []string
	for i, o := range m.opts.Catalog.Moods {
		style := CurrentTheme.Nav
		if i == p.moodCursor {
			style = CurrentTheme.NavActive
		}
		opts = append(opts, style.Render(o.Emoji+" "+o.Label))
	}
	b.WriteString("Update your mood: " + lipgloss.JoinHorizontal(lipgloss.Top, opts...) + "\n\n")

	points := mood.Points(m.opts.Service.RecentMoodEntries(m.ctx, config.RecentMoodEntries))
	if len(points) == 0 {
		b.WriteString(CurrentTheme.Dim.Render("No mood entries yet. Check in from the home screen.") + "\n")
	} else {
		rows := make([][]string, 0, len(points))
		for _, pt := range points {
			rows = append(rows, []string{
				pt.Label,
				m.opts.Catalog.Emoji(pt.Entry.Mood) + " " + string(pt.Entry.Mood),
				mood.StressLabel(pt.Stress),
			})
		}
		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(CurrentTheme.Border)).
			Headers("Date", "Mood", "Stress").
			Rows(rows...)
		b.WriteString(t.Render() + "\n")
	}

	b.WriteString("\n" + CurrentTheme.Header.Render("Feedback") + "\n")
	b.WriteString(p.feedback.View() + "\n")
	switch {
	case p.thanks:
		b.WriteString(CurrentTheme.Success.Render(thanksMessage) + "\n")
	case p.editing:
		b.WriteString(CurrentTheme.Dim.Render("ctrl+s to send, esc to cancel") + "\n")
	default:
		b.WriteString(CurrentTheme.Dim.Render(truncateLabel("i to write feedback, e to export PDF, x to export data", width)) + "\n")
	}
	return b.String()
}
