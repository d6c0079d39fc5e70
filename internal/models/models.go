package models

import "time"

// Mood is the self-reported feeling captured at a check-in.
type Mood string

const (
	MoodSad     Mood = "sad"
	MoodNeutral Mood = "neutral"
	MoodGood    Mood = "good"
	MoodGreat   Mood = "great"
)

// MoodAny marks quotes that fit every mood.
const MoodAny Mood = "any"

// Score maps a mood onto the 1..4 progress scale. Unknown moods score 0.
func (m Mood) Score() int {
	switch m {
	case MoodSad:
		return 1
	case MoodNeutral:
		return 2
	case MoodGood:
		return 3
	case MoodGreat:
		return 4
	}
	return 0
}

func (m Mood) Valid() bool { return m.Score() > 0 }

// MoodFromScore is the inverse of Score.
func MoodFromScore(score int) (Mood, bool) {
	for _, m := range []Mood{MoodSad, MoodNeutral, MoodGood, MoodGreat} {
		if m.Score() == score {
			return m, true
		}
	}
	return "", false
}

// MoodEntry is one check-in. Timestamp is unix milliseconds.
type MoodEntry struct {
	Timestamp   int64 `json:"timestamp"`
	Mood        Mood  `json:"mood"`
	StressLevel int   `json:"stressLevel"`
}

func (e MoodEntry) Time() time.Time {
	return time.UnixMilli(e.Timestamp)
}

// UserData is the persisted user blob.
type UserData struct {
	MoodHistory    []MoodEntry `json:"moodHistory"`
	Favorites      []string    `json:"favorites"`
	CompletedGoals []string    `json:"completedGoals"`
}

// Normalize replaces nil slices so the blob always serializes as arrays.
func (d *UserData) Normalize() {
	if d.MoodHistory == nil {
		d.MoodHistory = []MoodEntry{}
	}
	if d.Favorites == nil {
		d.Favorites = []string{}
	}
	if d.CompletedGoals == nil {
		d.CompletedGoals = []string{}
	}
}

// MoodOption is a selectable mood on the check-in screens.
type MoodOption struct {
	Value Mood   `yaml:"value"`
	Emoji string `yaml:"emoji"`
	Label string `yaml:"label"`
}

// Quote is a short encouragement. Home quotes carry a Mood, tips quotes an Author.
type Quote struct {
	Text   string `yaml:"text"`
	Author string `yaml:"author,omitempty"`
	Mood   Mood   `yaml:"mood,omitempty"`
}

// Goal is a daily micro-goal.
type Goal struct {
	ID   string `yaml:"id"`
	Text string `yaml:"text"`
}

// Category groups music tracks.
type Category struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

// Track is an ambient music track. File, when set, is a local audio file
// used for playback.
type Track struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Artist      string `yaml:"artist"`
	Category    string `yaml:"category"`
	URL         string `yaml:"url"`
	DurationSec int    `yaml:"duration"`
	File        string `yaml:"file,omitempty"`
}

func (t Track) Duration() time.Duration {
	return time.Duration(t.DurationSec) * time.Second
}
