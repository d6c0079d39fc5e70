// Package catalog holds the read-only content shown by the screens: moods,
// quotes, goals, tips and the music library.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/akyairhashvil/serenity/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var builtin []byte

var ErrInvalidCatalog = errors.New("invalid catalog")

type Catalog struct {
	Moods       []models.MoodOption `yaml:"moods"`
	HomeQuotes  []models.Quote      `yaml:"home_quotes"`
	DailyQuotes []models.Quote      `yaml:"daily_quotes"`
	Goals       []models.Goal       `yaml:"goals"`
	Tips        []string            `yaml:"tips"`
	MoreTipsURL string              `yaml:"more_tips_url"`
	Categories  []models.Category   `yaml:"categories"`
	Tracks      []models.Track      `yaml:"tracks"`
}

// Default parses the embedded catalog.
func Default() (*Catalog, error) {
	return Parse(builtin)
}

// Parse decodes and validates a catalog document.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Override is a user file that may replace the music library, typically to
// point tracks at local audio files.
type Override struct {
	Categories []models.Category `yaml:"categories"`
	Tracks     []models.Track    `yaml:"tracks"`
}

// WithOverride loads path and swaps in its categories and tracks. Relative
// track files resolve against the override file's directory.
func (c *Catalog) WithOverride(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog override: %w", err)
	}
	var o Override
	if err := yaml.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("parsing catalog override: %w", err)
	}
	next := *c
	if len(o.Categories) > 0 {
		next.Categories = o.Categories
	}
	if len(o.Tracks) > 0 {
		base := filepath.Dir(path)
		next.Tracks = make([]models.Track, len(o.Tracks))
		for i, t := range o.Tracks {
			if t.File != "" && !filepath.IsAbs(t.File) {
				t.File = filepath.Join(base, t.File)
			}
			next.Tracks[i] = t
		}
	}
	if err := next.Validate(); err != nil {
		return nil, err
	}
	return &next, nil
}

// Validate checks for duplicate IDs, unknown categories and invalid moods.
func (c *Catalog) Validate() error {
	if len(c.Moods) == 0 {
		return fmt.Errorf("%w: no moods", ErrInvalidCatalog)
	}
	for _, m := range c.Moods {
		if !m.Value.Valid() {
			return fmt.Errorf("%w: unknown mood %q", ErrInvalidCatalog, m.Value)
		}
	}
	for _, q := range c.HomeQuotes {
		if q.Mood != models.MoodAny && !q.Mood.Valid() {
			return fmt.Errorf("%w: quote %q has unknown mood %q", ErrInvalidCatalog, q.Text, q.Mood)
		}
	}
	seen := make(map[string]bool)
	for _, g := range c.Goals {
		if g.ID == "" || seen[g.ID] {
			return fmt.Errorf("%w: duplicate or empty goal id %q", ErrInvalidCatalog, g.ID)
		}
		seen[g.ID] = true
	}
	cats := make(map[string]bool)
	for _, cat := range c.Categories {
		if cat.ID == "" || cats[cat.ID] {
			return fmt.Errorf("%w: duplicate or empty category id %q", ErrInvalidCatalog, cat.ID)
		}
		cats[cat.ID] = true
	}
	tracks := make(map[string]bool)
	for _, t := range c.Tracks {
		if t.ID == "" || tracks[t.ID] {
			return fmt.Errorf("%w: duplicate or empty track id %q", ErrInvalidCatalog, t.ID)
		}
		if !cats[t.Category] {
			return fmt.Errorf("%w: track %q has unknown category %q", ErrInvalidCatalog, t.ID, t.Category)
		}
		tracks[t.ID] = true
	}
	return nil
}

// Mood returns the option for value.
func (c *Catalog) Mood(value models.Mood) (models.MoodOption, bool) {
	for _, m := range c.Moods {
		if m.Value == value {
			return m, true
		}
	}
	return models.MoodOption{}, false
}

// Emoji returns the emoji for a mood, or "" when unknown.
func (c *Catalog) Emoji(value models.Mood) string {
	m, _ := c.Mood(value)
	return m.Emoji
}

// Track finds a track by ID.
func (c *Catalog) Track(id string) (models.Track, bool) {
	for _, t := range c.Tracks {
		if t.ID == id {
			return t, true
		}
	}
	return models.Track{}, false
}

// TrackCount returns how many tracks belong to a category.
func (c *Catalog) TrackCount(category string) int {
	n := 0
	for _, t := range c.Tracks {
		if t.Category == category {
			n++
		}
	}
	return n
}
