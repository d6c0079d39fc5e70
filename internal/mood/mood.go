// Package mood holds check-in logic: stress-based screen recommendations,
// encouraging quote selection and progress points.
package mood

import (
	"fmt"
	"math/rand"

	"github.com/akyairhashvil/serenity/internal/config"
	"github.com/akyairhashvil/serenity/internal/models"
	"github.com/akyairhashvil/serenity/internal/router"
)

// Recommendation is the outcome of a check-in.
type Recommendation struct {
	Screen      router.Screen
	Title       string
	Description string
}

// Recommend suggests where to go next for a stress level.
func Recommend(stress int) Recommendation {
	switch {
	case stress > config.BreathingStressThreshold:
		return Recommendation{router.ScreenBreathing, "Breathing exercise recommended", "Let's try a calming breathing exercise"}
	case stress > config.MusicStressThreshold:
		return Recommendation{router.ScreenMusic, "Music therapy recommended", "Some calming music might help you relax"}
	default:
		return Recommendation{router.ScreenHome, "Mood tracked successfully", "Feel free to explore the app"}
	}
}

// Navigates reports whether the recommendation leaves the home screen.
func (r Recommendation) Navigates() bool {
	return r.Screen != router.ScreenHome
}

// Message joins title and description for a status line.
func (r Recommendation) Message() string {
	return r.Title + ": " + r.Description
}

// PickQuote chooses a quote tagged with m or with "any". It returns false
// when nothing matches.
func PickQuote(m models.Mood, quotes []models.Quote, rng *rand.Rand) (models.Quote, bool) {
	var relevant []models.Quote
	for _, q := range quotes {
		if q.Mood == m || q.Mood == models.MoodAny {
			relevant = append(relevant, q)
		}
	}
	if len(relevant) == 0 {
		return models.Quote{}, false
	}
	return relevant[rng.Intn(len(relevant))], true
}

// Point is one entry on the progress view. Stress is scaled to the mood's
// 0..4 range.
type Point struct {
	Label  string
	Mood   int
	Stress float64
	Entry  models.MoodEntry
}

// Points converts entries for display, oldest first.
func Points(entries []models.MoodEntry) []Point {
	out := make([]Point, 0, len(entries))
	for _, e := range entries {
		t := e.Time()
		out = append(out, Point{
			Label:  fmt.Sprintf("%d/%d", int(t.Month()), t.Day()),
			Mood:   e.Mood.Score(),
			Stress: float64(e.StressLevel) / 2.5,
			Entry:  e,
		})
	}
	return out
}

// StressLabel renders a scaled stress value back on the 10-point scale.
func StressLabel(scaled float64) string {
	return fmt.Sprintf("%.1f/10", scaled*2.5)
}
