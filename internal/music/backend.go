package music

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/akyairhashvil/serenity/internal/models"
	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

var (
	ErrNoTrack          = errors.New("no track loaded")
	ErrUnsupportedAudio = errors.New("unsupported audio format")
)

// Backend plays one track at a time. Volume is 0..100.
type Backend interface {
	Load(track models.Track) error
	Play() error
	Pause()
	// Rewind moves the playhead back to the start without changing play state.
	Rewind() error
	Position() time.Duration
	Length() time.Duration
	SetVolume(v int)
	Close() error
}

// ClockBackend keeps a silent playhead driven by a clock. Tracks without a
// local file play through it.
type ClockBackend struct {
	now       func() time.Time
	length    time.Duration
	offset    time.Duration
	startedAt time.Time
	playing   bool
	loaded    bool
}

func NewClockBackend(now func() time.Time) *ClockBackend {
	if now == nil {
		now = time.Now
	}
	return &ClockBackend{now: now}
}

func (c *ClockBackend) Load(track models.Track) error {
	c.length = track.Duration()
	c.offset = 0
	c.playing = false
	c.loaded = true
	return nil
}

func (c *ClockBackend) Play() error {
	if !c.loaded {
		return ErrNoTrack
	}
	if !c.playing {
		c.startedAt = c.now()
		c.playing = true
	}
	return nil
}

func (c *ClockBackend) Pause() {
	if c.playing {
		c.offset += c.now().Sub(c.startedAt)
		c.playing = false
	}
}

func (c *ClockBackend) Rewind() error {
	if !c.loaded {
		return ErrNoTrack
	}
	c.offset = 0
	if c.playing {
		c.startedAt = c.now()
	}
	return nil
}

func (c *ClockBackend) Position() time.Duration {
	pos := c.offset
	if c.playing {
		pos += c.now().Sub(c.startedAt)
	}
	if c.length > 0 && pos > c.length {
		pos = c.length
	}
	return pos
}

func (c *ClockBackend) Length() time.Duration { return c.length }

func (c *ClockBackend) SetVolume(int) {}

func (c *ClockBackend) Close() error {
	c.playing = false
	c.loaded = false
	return nil
}

// BeepBackend decodes local mp3 and wav files and plays them on the speaker.
type BeepBackend struct {
	mu       sync.Mutex
	inited   bool
	rate     beep.SampleRate
	stream   beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	volume   *effects.Volume
	level    int
	attached bool
}

func NewBeepBackend() *BeepBackend {
	return &BeepBackend{level: 100}
}

func decode(path string) (beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		return mp3.Decode(f)
	case ".wav":
		return wav.Decode(f)
	default:
		f.Close()
		return nil, beep.Format{}, fmt.Errorf("%w: %s", ErrUnsupportedAudio, path)
	}
}

func (b *BeepBackend) Load(track models.Track) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	// The previous track never outlives a Load, even a failed one.
	b.detach()
	if track.File == "" {
		return fmt.Errorf("track %q: %w", track.ID, ErrNoTrack)
	}
	stream, format, err := decode(track.File)
	if err != nil {
		return fmt.Errorf("loading %q: %w", track.ID, err)
	}

	if !b.inited {
		if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
			stream.Close()
			return fmt.Errorf("initializing speaker: %w", err)
		}
		b.inited = true
		b.rate = format.SampleRate
	}

	var s beep.Streamer = stream
	if format.SampleRate != b.rate {
		s = beep.Resample(4, format.SampleRate, b.rate, stream)
	}
	b.stream = stream
	b.format = format
	b.ctrl = &beep.Ctrl{Streamer: s, Paused: true}
	b.volume = &effects.Volume{Streamer: b.ctrl, Base: 2}
	b.applyVolume()
	speaker.Play(b.volume)
	b.attached = true
	return nil
}

func (b *BeepBackend) detach() {
	if !b.attached {
		return
	}
	speaker.Clear()
	b.stream.Close()
	b.stream = nil
	b.ctrl = nil
	b.volume = nil
	b.attached = false
}

func (b *BeepBackend) Play() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.ctrl == nil {
		return ErrNoTrack
	}
	speaker.Lock()
	b.ctrl.Paused = false
	speaker.Unlock()
	return nil
}

func (b *BeepBackend) Pause() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.ctrl == nil {
		return
	}
	speaker.Lock()
	b.ctrl.Paused = true
	speaker.Unlock()
}

func (b *BeepBackend) Rewind() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.stream == nil {
		return ErrNoTrack
	}
	speaker.Lock()
	err := b.stream.Seek(0)
	speaker.Unlock()
	return err
}

func (b *BeepBackend) Position() time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.stream == nil {
		return 0
	}
	speaker.Lock()
	pos := b.stream.Position()
	speaker.Unlock()
	return b.format.SampleRate.D(pos)
}

func (b *BeepBackend) Length() time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.stream == nil {
		return 0
	}
	return b.format.SampleRate.D(b.stream.Len())
}

func (b *BeepBackend) SetVolume(v int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.level = v
	if b.volume == nil {
		return
	}
	speaker.Lock()
	b.applyVolume()
	speaker.Unlock()
}

// applyVolume maps 0..100 onto a base-2 gain where 100 is unity.
func (b *BeepBackend) applyVolume() {
	if b.level <= 0 {
		b.volume.Silent = true
		return
	}
	b.volume.Silent = false
	b.volume.Volume = math.Log2(float64(b.level) / 100)
}

func (b *BeepBackend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.detach()
	return nil
}
