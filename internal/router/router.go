// Package router maps paths onto the application's screens.
package router

import "strings"

type Screen int

const (
	ScreenHome Screen = iota
	ScreenBreathing
	ScreenMusic
	ScreenTips
	ScreenProgress
	ScreenNotFound
)

type screenInfo struct {
	path     string
	title    string
	subtitle string
	nav      string
}

var screens = map[Screen]screenInfo{
	ScreenHome:      {"/", "Welcome", "How are you feeling today?", "Home"},
	ScreenBreathing: {"/breathing", "Breathing Exercise", "Follow the rhythm for calm and focus", "Breathe"},
	ScreenMusic:     {"/music", "Music Therapy", "Relax with calming sounds", "Music"},
	ScreenTips:      {"/tips", "Daily Goals & Tips", "Small steps for better wellbeing", "Tips"},
	ScreenProgress:  {"/progress", "Your Progress", "Track your mood and wellness journey", "Progress"},
	ScreenNotFound:  {"", "Not Found", "Nothing lives at this path", ""},
}

var nav = []Screen{ScreenHome, ScreenBreathing, ScreenMusic, ScreenTips, ScreenProgress}

// Resolve returns the screen for path. Unknown paths resolve to ScreenNotFound.
func Resolve(path string) Screen {
	p := strings.ToLower(strings.TrimSpace(path))
	if p == "" {
		p = "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if len(p) > 1 {
		p = strings.TrimRight(p, "/")
		if p == "" {
			p = "/"
		}
	}
	for _, s := range nav {
		if screens[s].path == p {
			return s
		}
	}
	return ScreenNotFound
}

func (s Screen) Path() string     { return screens[s].path }
func (s Screen) Title() string    { return screens[s].title }
func (s Screen) Subtitle() string { return screens[s].subtitle }
func (s Screen) NavLabel() string { return screens[s].nav }

func (s Screen) String() string {
	if s == ScreenNotFound {
		return "not-found"
	}
	if s == ScreenHome {
		return "home"
	}
	return strings.TrimPrefix(s.Path(), "/")
}

// Nav lists the navigable screens in menu order.
func Nav() []Screen {
	out := make([]Screen, len(nav))
	copy(out, nav)
	return out
}

// Next returns the screen after s in menu order, wrapping around.
// NotFound moves to Home.
func (s Screen) Next() Screen {
	i := s.index()
	if i < 0 {
		return ScreenHome
	}
	return nav[(i+1)%len(nav)]
}

// Prev returns the screen before s in menu order, wrapping around.
func (s Screen) Prev() Screen {
	i := s.index()
	if i < 0 {
		return ScreenHome
	}
	return nav[(i+len(nav)-1)%len(nav)]
}

func (s Screen) index() int {
	for i, n := range nav {
		if n == s {
			return i
		}
	}
	return -1
}
