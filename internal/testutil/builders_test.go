package testutil

import (
	"context"
	"testing"

	"github.com/akyairhashvil/serenity/internal/models"
)

func TestBuilders(t *testing.T) {
	e := NewMoodEntry().WithMood(models.MoodGreat).WithStress(2).Build()
	if e.Mood != models.MoodGreat || e.StressLevel != 2 {
		t.Fatalf("unexpected entry %+v", e)
	}
	tr := NewTrack("rain").WithCategory("nature").Build()
	if tr.ID != "rain" || tr.Category != "nature" || tr.DurationSec != 60 {
		t.Fatalf("unexpected track %+v", tr)
	}
	d := NewUserData().WithEntries(e).WithFavorites("rain").WithCompletedGoals("water").Build()
	if len(d.MoodHistory) != 1 || d.Favorites[0] != "rain" || d.CompletedGoals[0] != "water" {
		t.Fatalf("unexpected user data %+v", d)
	}
}

func TestOpenDB(t *testing.T) {
	db := OpenDB(t)
	if err := db.Save(context.Background(), "k", []byte("v")); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
}
