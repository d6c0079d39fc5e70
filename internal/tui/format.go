package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/akyairhashvil/serenity/internal/config"
	"github.com/charmbracelet/x/ansi"
)

// formatClock renders a duration as mm:ss, or h:mm:ss past an hour.
func formatClock(d time.Duration) string {
	total := int(d.Seconds())
	if total < 0 {
		total = 0
	}
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// formatSeconds renders a phase countdown like "3s".
func formatSeconds(d time.Duration) string {
	secs := int((d + time.Second - 1) / time.Second)
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%ds", secs)
}

func truncateLabel(text string, max int) string {
	if max <= 0 {
		return ""
	}
	if ansi.StringWidth(text) <= max {
		return text
	}
	return ansi.Truncate(text, max, config.TruncationSuffix)
}

// center pads each line of s to sit in the middle of width columns.
func center(s string, width int) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		pad := (width - ansi.StringWidth(line)) / 2
		if pad > 0 {
			lines[i] = strings.Repeat(" ", pad) + line
		}
	}
	return strings.Join(lines, "\n")
}

func contentWidth(termWidth int) int {
	w := config.ContentWidth
	if termWidth > 0 && termWidth-4 < w {
		w = termWidth - 4
	}
	if w < config.MinContentWidth {
		w = config.MinContentWidth
	}
	return w
}
