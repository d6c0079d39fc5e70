package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name      string
	Base      lipgloss.Style
	Border    lipgloss.Color
	Header    lipgloss.Style
	Subtitle  lipgloss.Style
	Nav       lipgloss.Style
	NavActive lipgloss.Style
	Focused   lipgloss.Style
	Dim       lipgloss.Style
	Highlight lipgloss.Style
	Error     lipgloss.Style
	Success   lipgloss.Style
	Done      lipgloss.Style
	Quote     lipgloss.Style
	Expand    lipgloss.Style
	Contract  lipgloss.Style
	Card      lipgloss.Style
	Glamour   string
}

var Themes = map[string]Theme{
	"default": {
		Name:      "Default",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("63"),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("111")).Bold(true),
		Subtitle:  lipgloss.NewStyle().Foreground(lipgloss.Color("246")).Italic(true),
		Nav:       lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Padding(0, 1),
		NavActive: lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("63")).Bold(true).Padding(0, 1),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("111")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true),
		Done:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true),
		Quote:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Italic(true),
		Expand:    lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
		Contract:  lipgloss.NewStyle().Foreground(lipgloss.Color("147")),
		Card:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63")).Padding(0, 1),
		Glamour:   "dark",
	},
	"dracula": {
		Name:      "Dracula",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("62"),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),
		Subtitle:  lipgloss.NewStyle().Foreground(lipgloss.Color("60")).Italic(true),
		Nav:       lipgloss.NewStyle().Foreground(lipgloss.Color("60")).Padding(0, 1),
		NavActive: lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("62")).Bold(true).Padding(0, 1),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("141")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("210")),
		Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true),
		Done:      lipgloss.NewStyle().Foreground(lipgloss.Color("60")).Strikethrough(true),
		Quote:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Italic(true),
		Expand:    lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
		Contract:  lipgloss.NewStyle().Foreground(lipgloss.Color("141")),
		Card:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62")).Padding(0, 1),
		Glamour:   "dracula",
	},
}

// ThemeNames lists themes in cycle order.
var ThemeNames = []string{"default", "dracula"}

// CurrentTheme holds the currently active theme.
var CurrentTheme = Themes["default"]

// SetTheme switches the active theme. Unknown names are ignored.
func SetTheme(name string) bool {
	t, ok := Themes[name]
	if ok {
		CurrentTheme = t
	}
	return ok
}
