// Package testutil holds fluent builders and fixtures shared by tests.
package testutil

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/akyairhashvil/serenity/internal/database"
	"github.com/akyairhashvil/serenity/internal/models"
)

// MoodEntryBuilder provides fluent API for creating test mood entries.
type MoodEntryBuilder struct {
	entry models.MoodEntry
}

func NewMoodEntry() *MoodEntryBuilder {
	return &MoodEntryBuilder{
		entry: models.MoodEntry{
			Timestamp:   time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC).UnixMilli(),
			Mood:        models.MoodNeutral,
			StressLevel: 5,
		},
	}
}

func (b *MoodEntryBuilder) WithMood(m models.Mood) *MoodEntryBuilder {
	b.entry.Mood = m
	return b
}

func (b *MoodEntryBuilder) WithStress(level int) *MoodEntryBuilder {
	b.entry.StressLevel = level
	return b
}

func (b *MoodEntryBuilder) At(t time.Time) *MoodEntryBuilder {
	b.entry.Timestamp = t.UnixMilli()
	return b
}

func (b *MoodEntryBuilder) Build() models.MoodEntry {
	return b.entry
}

// TrackBuilder provides fluent API for creating test tracks.
type TrackBuilder struct {
	track models.Track
}

func NewTrack(id string) *TrackBuilder {
	return &TrackBuilder{
		track: models.Track{ID: id, Title: "Track " + id, Artist: "Test", Category: "nature", DurationSec: 60},
	}
}

func (b *TrackBuilder) WithCategory(c string) *TrackBuilder {
	b.track.Category = c
	return b
}

func (b *TrackBuilder) WithDuration(d time.Duration) *TrackBuilder {
	b.track.DurationSec = int(d / time.Second)
	return b
}

func (b *TrackBuilder) WithFile(path string) *TrackBuilder {
	b.track.File = path
	return b
}

func (b *TrackBuilder) Build() models.Track {
	return b.track
}

// UserDataBuilder assembles a stored user blob.
type UserDataBuilder struct {
	data models.UserData
}

func NewUserData() *UserDataBuilder {
	d := models.UserData{}
	d.Normalize()
	return &UserDataBuilder{data: d}
}

func (b *UserDataBuilder) WithEntries(entries ...models.MoodEntry) *UserDataBuilder {
	b.data.MoodHistory = append(b.data.MoodHistory, entries...)
	return b
}

func (b *UserDataBuilder) WithFavorites(ids ...string) *UserDataBuilder {
	b.data.Favorites = append(b.data.Favorites, ids...)
	return b
}

func (b *UserDataBuilder) WithCompletedGoals(ids ...string) *UserDataBuilder {
	b.data.CompletedGoals = append(b.data.CompletedGoals, ids...)
	return b
}

func (b *UserDataBuilder) Build() models.UserData {
	return b.data
}

// OpenDB opens a database in a temp dir and closes it when the test ends.
func OpenDB(t *testing.T) *database.Database {
	t.Helper()
	db, err := database.Open(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("db close failed: %v", err)
		}
	})
	return db
}
