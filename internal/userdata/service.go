package userdata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/akyairhashvil/serenity/internal/config"
	"github.com/akyairhashvil/serenity/internal/models"
	"github.com/akyairhashvil/serenity/internal/util"
)

var ErrInvalidMood = errors.New("invalid mood")

// Service reads and writes the user blob through a Store. Every operation
// loads the current blob first, so independent callers never clobber each
// other's fields.
type Service struct {
	store Store
	clock Clock
}

func NewService(store Store, clock Clock) *Service {
	if clock == nil {
		clock = SystemClock
	}
	return &Service{store: store, clock: clock}
}

// Load returns the stored user data. Missing, unreadable or malformed data
// is logged and replaced by an empty default.
func (s *Service) Load(ctx context.Context) models.UserData {
	var d models.UserData
	blob, ok, err := s.store.Load(ctx, config.UserDataKey)
	if err != nil {
		util.LogError("load user data", err)
	} else if ok {
		if err := json.Unmarshal(blob, &d); err != nil {
			util.LogError("failed to parse user data", err)
			d = models.UserData{}
		}
	}
	d.Normalize()
	return d
}

func encode(d models.UserData) ([]byte, error) {
	d.Normalize()
	blob, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("encoding user data: %w", err)
	}
	return blob, nil
}

func (s *Service) save(ctx context.Context, d models.UserData) error {
	blob, err := encode(d)
	if err != nil {
		return err
	}
	if err := s.store.Save(ctx, config.UserDataKey, blob); err != nil {
		return fmt.Errorf("saving user data: %w", err)
	}
	return nil
}

// AddMoodEntry records a check-in, keeping only the most recent entries.
func (s *Service) AddMoodEntry(ctx context.Context, mood models.Mood, stress int) (models.MoodEntry, error) {
	if !mood.Valid() {
		return models.MoodEntry{}, fmt.Errorf("%w: %q", ErrInvalidMood, mood)
	}
	entry := models.MoodEntry{
		Timestamp:   s.clock.Now().UnixMilli(),
		Mood:        mood,
		StressLevel: util.Clamp(stress, config.MinStressLevel, config.MaxStressLevel),
	}
	d := s.Load(ctx)
	d.MoodHistory = append(d.MoodHistory, entry)
	if n := len(d.MoodHistory); n > config.MaxMoodEntries {
		d.MoodHistory = append([]models.MoodEntry(nil), d.MoodHistory[n-config.MaxMoodEntries:]...)
	}
	return entry, s.save(ctx, d)
}

// RecentMoodEntries returns up to count entries, oldest first.
// A non-positive count uses the default.
func (s *Service) RecentMoodEntries(ctx context.Context, count int) []models.MoodEntry {
	if count <= 0 {
		count = config.RecentMoodEntries
	}
	h := s.Load(ctx).MoodHistory
	if len(h) > count {
		h = h[len(h)-count:]
	}
	return h
}

// ToggleFavorite flips a track's favorite state and returns the new state.
func (s *Service) ToggleFavorite(ctx context.Context, trackID string) (bool, error) {
	d := s.Load(ctx)
	fav := !util.Contains(d.Favorites, trackID)
	if fav {
		d.Favorites = append(d.Favorites, trackID)
	} else {
		d.Favorites = util.Remove(d.Favorites, trackID)
	}
	return fav, s.save(ctx, d)
}

func (s *Service) IsFavorite(ctx context.Context, trackID string) bool {
	return util.Contains(s.Load(ctx).Favorites, trackID)
}

// Favorites returns the favorite track IDs as a set.
func (s *Service) Favorites(ctx context.Context) map[string]bool {
	out := make(map[string]bool)
	for _, id := range s.Load(ctx).Favorites {
		out[id] = true
	}
	return out
}

// CompleteGoal marks a goal done. Completing twice is a no-op.
func (s *Service) CompleteGoal(ctx context.Context, goalID string) error {
	d := s.Load(ctx)
	if util.Contains(d.CompletedGoals, goalID) {
		return nil
	}
	d.CompletedGoals = append(d.CompletedGoals, goalID)
	return s.save(ctx, d)
}

// UncompleteGoal clears a goal's completion.
func (s *Service) UncompleteGoal(ctx context.Context, goalID string) error {
	d := s.Load(ctx)
	if !util.Contains(d.CompletedGoals, goalID) {
		return nil
	}
	d.CompletedGoals = util.Remove(d.CompletedGoals, goalID)
	return s.save(ctx, d)
}

func (s *Service) IsGoalCompleted(ctx context.Context, goalID string) bool {
	return util.Contains(s.Load(ctx).CompletedGoals, goalID)
}

// CompletedGoals returns completed goal IDs as a set.
func (s *Service) CompletedGoals(ctx context.Context) map[string]bool {
	out := make(map[string]bool)
	for _, id := range s.Load(ctx).CompletedGoals {
		out[id] = true
	}
	return out
}

// ResetCompletedGoals clears every completed goal.
func (s *Service) ResetCompletedGoals(ctx context.Context) error {
	d := s.Load(ctx)
	d.CompletedGoals = []string{}
	return s.save(ctx, d)
}

// ClearData removes the user blob and the last reset date.
func (s *Service) ClearData(ctx context.Context) error {
	if err := s.store.Delete(ctx, config.UserDataKey, config.LastGoalsResetKey); err != nil {
		return fmt.Errorf("clearing user data: %w", err)
	}
	return nil
}
