package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/akyairhashvil/serenity/internal/breathing"
	"github.com/akyairhashvil/serenity/internal/config"
	"github.com/akyairhashvil/serenity/internal/models"
	"github.com/akyairhashvil/serenity/internal/music"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
)

type breathingModel struct {
	timer     *breathing.Timer
	interval  time.Duration
	gen       int
	lastFrame time.Time
	spring    harmonica.Spring
	radius    float64
	velocity  float64

	// sound is the calming sounds preference; owned is set while the
	// session itself started the calming track.
	sound bool
	owned bool
}

func (m MainModel) newBreathingModel() breathingModel {
	id := m.opts.Config.DefaultPattern
	if v, ok := m.setting(config.SettingPattern); ok {
		id = v
	}
	interval := m.opts.Config.FrameInterval
	if interval <= 0 {
		interval = config.FrameInterval
	}
	fps := int(time.Second / interval)
	if fps < 1 {
		fps = 1
	}
	sound := false
	if v, ok := m.setting(config.SettingCalmingSounds); ok {
		sound, _ = strconv.ParseBool(v)
	}
	return breathingModel{
		timer:    breathing.NewTimer(breathing.PatternByID(id)),
		interval: interval,
		spring:   harmonica.NewSpring(harmonica.FPS(fps), config.SpringFrequency, config.SpringDamping),
		radius:   config.CircleMinRadius,
		sound:    sound,
	}
}

// stop ends the session. Frames already in flight carry the old gen and are
// dropped on arrival.
func (b *breathingModel) stop() {
	b.timer.Stop()
	b.gen++
}

// start begins a session. The first frame only records its timestamp, so
// every delta is measured on the frame clock.
func (b *breathingModel) start() tea.Cmd {
	b.timer.Start()
	b.gen++
	b.lastFrame = time.Time{}
	return frameCmd(b.interval, b.gen)
}

func (m *MainModel) startBreathing() tea.Cmd {
	frame := m.breathing.start()
	if !m.breathing.sound {
		return frame
	}
	return tea.Batch(frame, m.playCalming())
}

func (m *MainModel) stopBreathing() {
	m.breathing.stop()
	m.pauseCalming()
}

func (m MainModel) calmingTrack() (models.Track, bool) {
	if t, ok := m.opts.Catalog.Track(config.CalmingTrackID); ok {
		return t, true
	}
	if tracks := music.Filter(m.opts.Catalog.Tracks, config.CalmingCategory); len(tracks) > 0 {
		return tracks[0], true
	}
	return models.Track{}, false
}

// playCalming starts or resumes the calming track and its progress poll.
func (m *MainModel) playCalming() tea.Cmd {
	p := m.opts.Player
	track, ok := m.calmingTrack()
	if p == nil || !ok {
		return nil
	}
	cur, has := p.Current()
	switch {
	case has && cur.ID == track.ID && p.Playing():
		// Already playing from the Music screen; leave ownership alone.
	case has && cur.ID == track.ID:
		p.Toggle()
		m.breathing.owned = p.Playing()
	default:
		p.Select(track)
		m.breathing.owned = p.Playing()
	}
	return m.music.resumePoll(p)
}

// pauseCalming pauses the calming track if this session started it.
func (m *MainModel) pauseCalming() {
	if !m.breathing.owned {
		return
	}
	m.breathing.owned = false
	p := m.opts.Player
	track, ok := m.calmingTrack()
	if p == nil || !ok {
		return
	}
	if cur, has := p.Current(); has && cur.ID == track.ID && p.Playing() {
		p.Toggle()
		m.music.gen++
	}
}

func (m *MainModel) toggleSound() tea.Cmd {
	b := &m.breathing
	b.sound = !b.sound
	m.saveSetting(config.SettingCalmingSounds, strconv.FormatBool(b.sound))
	if b.sound {
		m.status = "Calming sounds on"
	} else {
		m.status = "Calming sounds off"
	}
	if !b.timer.Active() {
		return nil
	}
	if b.sound {
		return m.playCalming()
	}
	m.pauseCalming()
	return nil
}

func (m MainModel) updateBreathing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Toggle, m.keys.Enter):
		if m.breathing.timer.Active() {
			m.stopBreathing()
			return m, nil
		}
		cmd := m.startBreathing()
		return m, cmd
	case key.Matches(msg, m.keys.Sound):
		cmd := m.toggleSound()
		return m, cmd
	case key.Matches(msg, m.keys.Pattern, m.keys.Right):
		m.selectPattern(1)
	case key.Matches(msg, m.keys.Left):
		m.selectPattern(-1)
	}
	return m, nil
}

func (m *MainModel) selectPattern(step int) {
	patterns := breathing.Patterns()
	idx := breathing.IndexOf(m.breathing.timer.Pattern().ID)
	idx = (idx + step + len(patterns)) % len(patterns)
	m.breathing.timer.SetPattern(patterns[idx])
	m.breathing.gen++
	m.pauseCalming()
	m.saveSetting(config.SettingPattern, patterns[idx].ID)
}

// handleFrame advances the timer by the time since the previous frame and
// schedules the next one while the session is active.
func (m MainModel) handleFrame(msg FrameMsg) (tea.Model, tea.Cmd) {
	b := &m.breathing
	if msg.Gen != b.gen || !b.timer.Active() {
		return m, nil
	}
	var delta time.Duration
	if !b.lastFrame.IsZero() {
		delta = msg.At.Sub(b.lastFrame)
	}
	b.lastFrame = msg.At
	b.timer.Tick(delta)
	b.radius, b.velocity = b.spring.Update(b.radius, b.velocity, b.targetRadius())
	return m, frameCmd(b.interval, b.gen)
}

func (b breathingModel) targetRadius() float64 {
	if b.timer.Active() && b.timer.State().Phase.Expanding() {
		return config.CircleMaxRadius
	}
	return config.CircleMinRadius
}

func (m MainModel) viewBreathing(width int) string {
	b := m.breathing
	var s strings.Builder
	for i, p := range breathing.Patterns() {
		marker := "  "
		style := CurrentTheme.Dim
		if p.ID == b.timer.Pattern().ID {
			marker = "> "
			style = CurrentTheme.Focused
		}
		s.WriteString(marker + style.Render(fmt.Sprintf("%d. %s", i+1, p.Label())) + "\n")
	}
	s.WriteString("\n")

	style := CurrentTheme.Contract
	if b.timer.State().Phase.Expanding() {
		style = CurrentTheme.Expand
	}
	s.WriteString(style.Render(center(renderCircle(b.radius), width)) + "\n\n")

	s.WriteString(center(CurrentTheme.Focused.Render(b.timer.Instruction()), width) + "\n")
	if b.timer.Active() {
		info := fmt.Sprintf("%s  %s  cycles %d", b.timer.State().Phase, formatSeconds(b.timer.Remaining()), b.timer.Cycles())
		s.WriteString(center(CurrentTheme.Dim.Render(info), width) + "\n")
		s.WriteString(center(CurrentTheme.Dim.Render("space to pause"), width) + "\n")
	} else {
		s.WriteString(center(CurrentTheme.Dim.Render("space to start, p to change pattern"), width) + "\n")
	}
	sound := "off"
	if b.sound {
		sound = "on"
	}
	s.WriteString(center(CurrentTheme.Dim.Render("calming sounds "+sound+" (s)"), width) + "\n")
	return s.String()
}

// renderCircle draws a filled circle of r rows. Columns are doubled to
// compensate for terminal cell aspect.
func renderCircle(r float64) string {
	if r < 1 {
		r = 1
	}
	size := int(r + 0.5)
	var rows []string
	for y := -size; y <= size; y++ {
		var row strings.Builder
		for x := -2 * size; x <= 2*size; x++ {
			fx := float64(x) / 2
			fy := float64(y)
			if fx*fx+fy*fy <= r*r {
				row.WriteString("●")
			} else {
				row.WriteString(" ")
			}
		}
		rows = append(rows, row.String())
	}
	return strings.Join(rows, "\n")
}
