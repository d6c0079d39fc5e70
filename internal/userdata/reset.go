package userdata

import (
	"context"
	"fmt"
	"time"

	"github.com/akyairhashvil/serenity/internal/config"
	"github.com/akyairhashvil/serenity/internal/util"
)

const dateLayout = "2006-01-02"

// DateKey formats t as the calendar day used for the daily reset.
func DateKey(t time.Time) string {
	return t.Format(dateLayout)
}

// ShouldReset reports whether goals recorded on lastResetDate are stale on today.
func ShouldReset(today, lastResetDate string) bool {
	return today != lastResetDate
}

// ResetDailyGoalsIfNeeded clears completed goals once per calendar day and
// records today as the last reset. Both writes land together or not at all.
// It reports whether a reset happened.
func (s *Service) ResetDailyGoalsIfNeeded(ctx context.Context) (bool, error) {
	today := DateKey(s.clock.Now())
	var last string
	blob, ok, err := s.store.Load(ctx, config.LastGoalsResetKey)
	if err != nil {
		util.LogError("load last reset date", err)
	} else if ok {
		last = string(blob)
	}
	if !ShouldReset(today, last) {
		return false, nil
	}
	d := s.Load(ctx)
	d.CompletedGoals = []string{}
	blob, err = encode(d)
	if err != nil {
		return false, err
	}
	err = s.store.SaveAll(ctx, map[string][]byte{
		config.UserDataKey:       blob,
		config.LastGoalsResetKey: []byte(today),
	})
	if err != nil {
		return false, fmt.Errorf("saving goal reset: %w", err)
	}
	return true, nil
}
