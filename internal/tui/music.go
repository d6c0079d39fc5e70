package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/akyairhashvil/serenity/internal/config"
	"github.com/akyairhashvil/serenity/internal/models"
	"github.com/akyairhashvil/serenity/internal/music"
	"github.com/akyairhashvil/serenity/internal/util"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

type musicModel struct {
	cursor    int
	catCursor int
	category  string
	bar       progress.Model
	gen       int
}

func (m MainModel) newMusicModel() musicModel {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = config.ProgressBarWidth
	mm := musicModel{bar: bar}
	if m.opts.Player != nil {
		vol := m.opts.Config.Volume
		if v, ok := m.setting(config.SettingVolume); ok {
			if n, err := strconv.Atoi(v); err == nil {
				vol = n
			}
		}
		m.opts.Player.SetVolume(vol)
	}
	return mm
}

func (m MainModel) visibleTracks() []models.Track {
	return music.Filter(m.opts.Catalog.Tracks, m.music.category)
}

func (m MainModel) updateMusic(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	mm := &m.music
	p := m.opts.Player
	tracks := m.visibleTracks()
	switch {
	case key.Matches(msg, m.keys.Up):
		if mm.cursor > 0 {
			mm.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if mm.cursor < len(tracks)-1 {
			mm.cursor++
		}
	case key.Matches(msg, m.keys.Left):
		if n := len(m.opts.Catalog.Categories); n > 0 {
			mm.catCursor = (mm.catCursor - 1 + n) % n
		}
	case key.Matches(msg, m.keys.Right):
		if n := len(m.opts.Catalog.Categories); n > 0 {
			mm.catCursor = (mm.catCursor + 1) % n
		}
	case key.Matches(msg, m.keys.Category):
		if len(m.opts.Catalog.Categories) > 0 {
			mm.category = music.ToggleCategory(mm.category, m.opts.Catalog.Categories[mm.catCursor].ID)
			mm.cursor = 0
		}
	case key.Matches(msg, m.keys.Enter):
		if p == nil || len(tracks) == 0 {
			return m, nil
		}
		p.Select(tracks[mm.cursor])
		cmd := mm.resumePoll(p)
		return m, cmd
	case key.Matches(msg, m.keys.Toggle):
		if p == nil {
			return m, nil
		}
		p.Toggle()
		cmd := mm.resumePoll(p)
		return m, cmd
	case key.Matches(msg, m.keys.Favorite):
		if len(tracks) == 0 {
			return m, nil
		}
		fav, err := m.opts.Service.ToggleFavorite(m.ctx, tracks[mm.cursor].ID)
		if err != nil {
			util.LogError("tui: toggle favorite", err)
			return m, nil
		}
		if fav {
			m.status = "Added to favorites"
		} else {
			m.status = "Removed from favorites"
		}
	case key.Matches(msg, m.keys.VolumeUp):
		m.changeVolume(config.VolumeStep)
	case key.Matches(msg, m.keys.VolumeDown):
		m.changeVolume(-config.VolumeStep)
	}
	return m, nil
}

// resumePoll restarts the progress poll when the player is playing. Each
// restart bumps gen so only one poll chain is live.
func (mm *musicModel) resumePoll(p *music.Player) tea.Cmd {
	mm.gen++
	if !p.Playing() {
		return nil
	}
	return pollCmd(mm.gen)
}

func (m *MainModel) changeVolume(step int) {
	p := m.opts.Player
	if p == nil {
		return
	}
	p.SetVolume(p.Volume() + step)
	m.saveSetting(config.SettingVolume, strconv.Itoa(p.Volume()))
}

func (m MainModel) handlePoll(msg PollMsg) (tea.Model, tea.Cmd) {
	p := m.opts.Player
	if p == nil || msg.Gen != m.music.gen || !p.Playing() {
		return m, nil
	}
	if p.Poll() && !m.loopCalming() {
		return m, nil
	}
	return m, pollCmd(m.music.gen)
}

// loopCalming replays the calming track when it ends mid-session.
func (m MainModel) loopCalming() bool {
	if !m.breathing.owned || !m.breathing.timer.Active() {
		return false
	}
	m.opts.Player.Toggle()
	return m.opts.Player.Playing()
}

func (m MainModel) viewMusic(width int) string {
	mm := m.music
	var b strings.Builder

	var cats []string
	for i, c := range m.opts.Catalog.Categories {
		label := fmt.Sprintf("%s (%d)", c.Name, m.opts.Catalog.TrackCount(c.ID))
		style := CurrentTheme.Dim
		if c.ID == mm.category {
			style = CurrentTheme.NavActive
		} else if i == mm.catCursor {
			style = CurrentTheme.Highlight
		}
		cats = append(cats, style.Render(label))
	}
	b.WriteString(strings.Join(cats, " ") + "\n\n")

	favs := m.opts.Service.Favorites(m.ctx)
	var current models.Track
	var hasCurrent bool
	if m.opts.Player != nil {
		current, hasCurrent = m.opts.Player.Current()
	}
	tracks := m.visibleTracks()
	if len(tracks) == 0 {
		b.WriteString(CurrentTheme.Dim.Render("No tracks in this category.") + "\n")
	}
	for i, t := range tracks {
		cursor := "  "
		style := CurrentTheme.Dim
		if i == mm.cursor {
			cursor = "> "
			style = CurrentTheme.Highlight
		}
		mark := " "
		if favs[t.ID] {
			mark = "♥"
		}
		line := fmt.Sprintf("%s %s - %s  %s", mark, t.Title, t.Artist, formatClock(t.Duration()))
		if hasCurrent && current.ID == t.ID {
			style = CurrentTheme.Focused
		}
		b.WriteString(cursor + style.Render(truncateLabel(line, width-2)) + "\n")
	}

	if hasCurrent {
		p := m.opts.Player
		state := "Paused"
		if p.Playing() {
			state = "Playing"
		}
		b.WriteString("\n" + CurrentTheme.Focused.Render(fmt.Sprintf("%s: %s", state, current.Title)) + "\n")
		b.WriteString(mm.bar.ViewAs(p.Progress()/100) + "\n")
	}
	if m.opts.Player != nil {
		b.WriteString(CurrentTheme.Dim.Render(fmt.Sprintf("Volume %d%%", m.opts.Player.Volume())) + "\n")
	}
	return b.String()
}
