// Package music implements the ambient music player and its audio backends.
package music

import (
	"github.com/akyairhashvil/serenity/internal/config"
	"github.com/akyairhashvil/serenity/internal/models"
	"github.com/akyairhashvil/serenity/internal/util"
)

// Player tracks the current track, play state, volume and progress.
// Tracks with a local file use the audio backend; the rest use the silent one.
type Player struct {
	audio    Backend
	silent   Backend
	active   Backend
	current  *models.Track
	playing  bool
	volume   int
	progress float64
}

// NewPlayer builds a player. audio may be nil when no sound device is wanted.
func NewPlayer(audio, silent Backend) *Player {
	return &Player{audio: audio, silent: silent, volume: config.DefaultVolume}
}

func (p *Player) Current() (models.Track, bool) {
	if p.current == nil {
		return models.Track{}, false
	}
	return *p.current, true
}

func (p *Player) Playing() bool     { return p.playing }
func (p *Player) Volume() int       { return p.volume }
func (p *Player) Progress() float64 { return p.progress }

func (p *Player) backendFor(track models.Track) Backend {
	if track.File != "" && p.audio != nil {
		return p.audio
	}
	return p.silent
}

// Select plays track. Selecting the current track toggles play and pause;
// selecting a track that failed to load retries the load.
func (p *Player) Select(track models.Track) {
	if p.current != nil && p.current.ID == track.ID && p.active != nil {
		p.Toggle()
		return
	}
	if p.active != nil {
		p.active.Pause()
	}
	t := track
	p.current = &t
	p.progress = 0
	p.playing = false
	p.active = p.backendFor(track)
	if err := p.active.Load(track); err != nil {
		util.LogError("music: load "+track.ID, err)
		p.active = nil
		return
	}
	p.active.SetVolume(p.volume)
	p.play()
}

func (p *Player) play() {
	if err := p.active.Play(); err != nil {
		util.LogError("music: play", err)
		p.playing = false
		return
	}
	p.playing = true
}

// Toggle pauses or resumes the current track.
func (p *Player) Toggle() {
	if p.current == nil || p.active == nil {
		return
	}
	if p.playing {
		p.active.Pause()
		p.playing = false
		return
	}
	p.play()
}

// SetVolume clamps v to 0..100.
func (p *Player) SetVolume(v int) {
	p.volume = util.Clamp(v, 0, 100)
	if p.active != nil {
		p.active.SetVolume(p.volume)
	}
}

// Poll refreshes progress. It reports true when the track just ended, in
// which case the track is paused and rewound so the next Toggle replays it.
func (p *Player) Poll() bool {
	if !p.playing || p.active == nil {
		return false
	}
	length := p.active.Length()
	if length <= 0 {
		return false
	}
	pos := p.active.Position()
	if pos >= length {
		p.active.Pause()
		if err := p.active.Rewind(); err != nil {
			util.LogError("music: rewind", err)
		}
		p.playing = false
		p.progress = 0
		return true
	}
	p.progress = util.ClampFloat(float64(pos)/float64(length)*100, 0, 100)
	return false
}

func (p *Player) Close() error {
	var err error
	if p.audio != nil {
		err = p.audio.Close()
	}
	if p.silent != nil {
		if cerr := p.silent.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// Filter returns tracks in category. An empty category keeps all.
func Filter(tracks []models.Track, category string) []models.Track {
	if category == "" {
		return tracks
	}
	var out []models.Track
	for _, t := range tracks {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

// ToggleCategory returns the new filter after selecting category.
func ToggleCategory(current, selected string) string {
	if current == selected {
		return ""
	}
	return selected
}
