// Package tui hosts the Bubble Tea program: the five screens, the frame
// loop that drives the breathing timer and the music progress poll.
package tui

import (
	"context"
	"math/rand"
	"time"

	"github.com/akyairhashvil/serenity/internal/catalog"
	"github.com/akyairhashvil/serenity/internal/config"
	"github.com/akyairhashvil/serenity/internal/music"
	"github.com/akyairhashvil/serenity/internal/router"
	"github.com/akyairhashvil/serenity/internal/userdata"
	"github.com/akyairhashvil/serenity/internal/util"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Settings persists small preferences.
type Settings interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
}

// Options wires the model to its collaborators.
type Options struct {
	Service    *userdata.Service
	Settings   Settings
	Catalog    *catalog.Catalog
	Player     *music.Player
	Config     *config.Config
	ReportsDir string
	StartPath  string
	Now        func() time.Time
	Rand       *rand.Rand
}

// MainModel is the root bubbletea model that switches between screens.
type MainModel struct {
	ctx    context.Context
	opts   Options
	screen router.Screen
	keys   KeyMap
	help   help.Model
	status string
	width  int
	height int

	home      homeModel
	breathing breathingModel
	music     musicModel
	tips      tipsModel
	progress  progressModel
}

func NewMainModel(ctx context.Context, opts Options) MainModel {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(opts.Now().UnixNano()))
	}
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	m := MainModel{
		ctx:    ctx,
		opts:   opts,
		screen: router.Resolve(opts.StartPath),
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
	m.applyTheme()
	m.home = newHomeModel()
	m.breathing = m.newBreathingModel()
	m.music = m.newMusicModel()
	m.tips = m.newTipsModel()
	m.progress = newProgressModel()
	m.refreshTips()
	return m
}

func (m *MainModel) applyTheme() {
	name := m.opts.Config.Theme
	if v, ok := m.setting(config.SettingTheme); ok {
		name = v
	}
	SetTheme(name)
}

func (m MainModel) setting(key string) (string, bool) {
	if m.opts.Settings == nil {
		return "", false
	}
	return m.opts.Settings.GetSetting(m.ctx, key)
}

func (m MainModel) saveSetting(key, value string) {
	if m.opts.Settings == nil {
		return
	}
	if err := m.opts.Settings.SetSetting(m.ctx, key, value); err != nil {
		util.LogError("tui: save setting "+key, err)
	}
}

// Screen reports the screen currently shown.
func (m MainModel) Screen() router.Screen { return m.screen }

func (m MainModel) Init() tea.Cmd {
	return nil
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.refreshTips()
		m.progress.feedback.SetWidth(contentWidth(m.width) - 2)
		return m, nil
	case FrameMsg:
		return m.handleFrame(msg)
	case PollMsg:
		return m.handlePoll(msg)
	case thanksExpiredMsg:
		if msg.gen == m.progress.thanksGen {
			m.progress.thanks = false
		}
		return m, nil
	case statusMsg:
		m.status = string(msg)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	if m.screen == router.ScreenProgress && m.progress.editing {
		var cmd tea.Cmd
		m.progress.feedback, cmd = m.progress.feedback.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m MainModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, m.quit()
	}
	if m.screen == router.ScreenProgress && m.progress.editing {
		return m.updateFeedback(msg)
	}
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, m.quit()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Theme):
		m.cycleTheme()
		return m, nil
	case key.Matches(msg, m.keys.NextScreen):
		return m.navigate(m.screen.Next())
	case key.Matches(msg, m.keys.PrevScreen):
		return m.navigate(m.screen.Prev())
	case key.Matches(msg, m.keys.Home):
		return m.navigate(router.ScreenHome)
	case key.Matches(msg, m.keys.Breathing):
		return m.navigate(router.ScreenBreathing)
	case key.Matches(msg, m.keys.Music):
		return m.navigate(router.ScreenMusic)
	case key.Matches(msg, m.keys.Tips):
		return m.navigate(router.ScreenTips)
	case key.Matches(msg, m.keys.Progress):
		return m.navigate(router.ScreenProgress)
	}

	switch m.screen {
	case router.ScreenHome:
		return m.updateHome(msg)
	case router.ScreenBreathing:
		return m.updateBreathing(msg)
	case router.ScreenMusic:
		return m.updateMusic(msg)
	case router.ScreenTips:
		return m.updateTips(msg)
	case router.ScreenProgress:
		return m.updateProgress(msg)
	case router.ScreenNotFound:
		if key.Matches(msg, m.keys.Enter, m.keys.Escape) {
			return m.navigate(router.ScreenHome)
		}
	}
	return m, nil
}

func (m MainModel) quit() tea.Cmd {
	if m.opts.Player != nil {
		if err := m.opts.Player.Close(); err != nil {
			util.LogError("tui: close player", err)
		}
	}
	return tea.Quit
}

// navigate switches screens. Leaving the breathing screen ends its session;
// entering tips applies the daily goal reset if the day has turned.
func (m MainModel) navigate(to router.Screen) (MainModel, tea.Cmd) {
	if m.screen == router.ScreenBreathing && to != router.ScreenBreathing {
		m.stopBreathing()
	}
	if to == router.ScreenTips {
		if _, err := m.opts.Service.ResetDailyGoalsIfNeeded(m.ctx); err != nil {
			util.LogError("tui: daily goal reset", err)
		}
		m.tips.board.Reload(m.ctx)
	}
	m.screen = to
	return m, nil
}

func (m *MainModel) cycleTheme() {
	next := ThemeNames[0]
	for i, name := range ThemeNames {
		if Themes[name].Name == CurrentTheme.Name {
			next = ThemeNames[(i+1)%len(ThemeNames)]
			break
		}
	}
	SetTheme(next)
	m.refreshTips()
	m.saveSetting(config.SettingTheme, next)
}

func (m MainModel) View() string {
	width := contentWidth(m.width)
	var body string
	switch m.screen {
	case router.ScreenHome:
		body = m.viewHome(width)
	case router.ScreenBreathing:
		body = m.viewBreathing(width)
	case router.ScreenMusic:
		body = m.viewMusic(width)
	case router.ScreenTips:
		body = m.viewTips(width)
	case router.ScreenProgress:
		body = m.viewProgress(width)
	default:
		body = m.viewNotFound()
	}

	sections := []string{m.renderNav(), m.renderHeader(width), body}
	if m.status != "" {
		sections = append(sections, CurrentTheme.Highlight.Render(truncateLabel(m.status, width)))
	}
	sections = append(sections, m.help.View(m.keys))
	return CurrentTheme.Base.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m MainModel) renderNav() string {
	var tabs []string
	for _, s := range router.Nav() {
		style := CurrentTheme.Nav
		if s == m.screen {
			style = CurrentTheme.NavActive
		}
		tabs = append(tabs, style.Render(s.NavLabel()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...) + "\n"
}

func (m MainModel) renderHeader(width int) string {
	title := CurrentTheme.Header.Render(truncateLabel(m.screen.Title(), width))
	sub := CurrentTheme.Subtitle.Render(truncateLabel(m.screen.Subtitle(), width))
	return title + "\n" + sub + "\n"
}

func (m MainModel) viewNotFound() string {
	return CurrentTheme.Error.Render("Page not found") + "\n" +
		CurrentTheme.Dim.Render("Press enter to go home.") + "\n"
}
