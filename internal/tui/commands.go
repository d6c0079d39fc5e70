package tui

import (
	"time"

	"github.com/akyairhashvil/serenity/internal/config"
	tea "github.com/charmbracelet/bubbletea"
)

// --- Messages ---

// FrameMsg advances the breathing animation. Gen ties a frame to the run
// that scheduled it.
type FrameMsg struct {
	At  time.Time
	Gen int
}

// PollMsg refreshes music progress.
type PollMsg struct {
	At  time.Time
	Gen int
}

type thanksExpiredMsg struct{ gen int }

type statusMsg string

func frameCmd(interval time.Duration, gen int) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg{At: t, Gen: gen}
	})
}

func pollCmd(gen int) tea.Cmd {
	return tea.Tick(config.PollInterval, func(t time.Time) tea.Msg {
		return PollMsg{At: t, Gen: gen}
	})
}

func thanksCmd(gen int) tea.Cmd {
	return tea.Tick(config.FeedbackThanksFor, func(time.Time) tea.Msg {
		return thanksExpiredMsg{gen: gen}
	})
}
