package userdata

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/akyairhashvil/serenity/internal/config"
	"github.com/golang/mock/gomock"
)

func TestShouldReset(t *testing.T) {
	cases := []struct {
		today, last string
		want        bool
	}{
		{"2026-10-14", "2026-10-14", false},
		{"2026-10-14", "2026-10-13", true},
		{"2026-10-14", "", true},
	}
	for _, tc := range cases {
		if got := ShouldReset(tc.today, tc.last); got != tc.want {
			t.Fatalf("ShouldReset(%q, %q) = %v, want %v", tc.today, tc.last, got, tc.want)
		}
	}
}

func TestResetDailyGoalsIfNeeded(t *testing.T) {
	now := time.Date(2026, 10, 14, 8, 0, 0, 0, time.Local)
	clock := ClockFunc(func() time.Time { return now })
	svc, db := setupService(t, clock)
	ctx := context.Background()

	reset, err := svc.ResetDailyGoalsIfNeeded(ctx)
	if err != nil || !reset {
		t.Fatalf("expected first run to reset, reset=%v err=%v", reset, err)
	}
	if err := svc.CompleteGoal(ctx, "water"); err != nil {
		t.Fatalf("CompleteGoal failed: %v", err)
	}

	now = now.Add(10 * time.Hour)
	reset, err = svc.ResetDailyGoalsIfNeeded(ctx)
	if err != nil || reset {
		t.Fatalf("expected same-day run to keep goals, reset=%v err=%v", reset, err)
	}
	if !svc.IsGoalCompleted(ctx, "water") {
		t.Fatalf("expected goal kept on same day")
	}

	now = now.Add(24 * time.Hour)
	reset, err = svc.ResetDailyGoalsIfNeeded(ctx)
	if err != nil || !reset {
		t.Fatalf("expected next-day run to reset, reset=%v err=%v", reset, err)
	}
	if svc.IsGoalCompleted(ctx, "water") {
		t.Fatalf("expected goals cleared on a new day")
	}
	blob, ok, err := db.Load(ctx, config.LastGoalsResetKey)
	if err != nil || !ok || string(blob) != DateKey(now) {
		t.Fatalf("expected last reset date %s, got %q ok=%v err=%v", DateKey(now), blob, ok, err)
	}
}

func TestResetDailyGoalsUsesInjectedClock(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockStore(ctrl)
	clock := NewMockClock(ctrl)
	clock.EXPECT().Now().Return(time.Date(2026, 1, 2, 12, 0, 0, 0, time.Local))
	store.EXPECT().Load(gomock.Any(), config.LastGoalsResetKey).Return([]byte("2026-01-02"), true, nil)

	reset, err := NewService(store, clock).ResetDailyGoalsIfNeeded(context.Background())
	if err != nil || reset {
		t.Fatalf("expected no reset, reset=%v err=%v", reset, err)
	}
}

func TestResetDailyGoalsWritesGoalsAndDateTogether(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockStore(ctrl)
	clock := NewMockClock(ctrl)
	clock.EXPECT().Now().Return(time.Date(2026, 1, 3, 7, 0, 0, 0, time.Local))
	store.EXPECT().Load(gomock.Any(), config.LastGoalsResetKey).Return([]byte("2026-01-02"), true, nil)
	store.EXPECT().Load(gomock.Any(), config.UserDataKey).
		Return([]byte(`{"moodHistory":[],"favorites":["rain-1"],"completedGoals":["water"]}`), true, nil)
	store.EXPECT().SaveAll(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, entries map[string][]byte) error {
			if len(entries) != 2 {
				t.Fatalf("expected two entries, got %d", len(entries))
			}
			if got := string(entries[config.LastGoalsResetKey]); got != "2026-01-03" {
				t.Fatalf("expected reset date 2026-01-03, got %q", got)
			}
			want := `{"moodHistory":[],"favorites":["rain-1"],"completedGoals":[]}`
			if got := string(entries[config.UserDataKey]); got != want {
				t.Fatalf("expected cleared goals %s, got %s", want, got)
			}
			return nil
		})

	reset, err := NewService(store, clock).ResetDailyGoalsIfNeeded(context.Background())
	if err != nil || !reset {
		t.Fatalf("expected reset, reset=%v err=%v", reset, err)
	}
}

func TestResetDailyGoalsFailureReportsNoReset(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockStore(ctrl)
	clock := NewMockClock(ctrl)
	clock.EXPECT().Now().Return(time.Date(2026, 1, 3, 7, 0, 0, 0, time.Local))
	store.EXPECT().Load(gomock.Any(), config.LastGoalsResetKey).Return(nil, false, nil)
	store.EXPECT().Load(gomock.Any(), config.UserDataKey).Return(nil, false, nil)
	store.EXPECT().SaveAll(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	reset, err := NewService(store, clock).ResetDailyGoalsIfNeeded(context.Background())
	if err == nil || reset {
		t.Fatalf("expected failed reset, reset=%v err=%v", reset, err)
	}
}

func TestClearDataRemovesUserState(t *testing.T) {
	now := time.Date(2026, 10, 14, 8, 0, 0, 0, time.Local)
	svc, db := setupService(t, ClockFunc(func() time.Time { return now }))
	ctx := context.Background()
	if _, err := svc.ResetDailyGoalsIfNeeded(ctx); err != nil {
		t.Fatalf("reset failed: %v", err)
	}
	if _, err := svc.ToggleFavorite(ctx, "ocean-1"); err != nil {
		t.Fatalf("ToggleFavorite failed: %v", err)
	}
	if err := svc.ClearData(ctx); err != nil {
		t.Fatalf("ClearData failed: %v", err)
	}
	if svc.IsFavorite(ctx, "ocean-1") {
		t.Fatalf("expected favorites cleared")
	}
	for _, key := range []string{config.UserDataKey, config.LastGoalsResetKey} {
		if _, ok, err := db.Load(ctx, key); err != nil || ok {
			t.Fatalf("expected %s removed, ok=%v err=%v", key, ok, err)
		}
	}
}
