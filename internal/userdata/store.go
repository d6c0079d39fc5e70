// Package userdata manages the persisted user blob: mood history, favorite
// tracks and completed daily goals.
package userdata

import (
	"context"
	"time"
)

// Store persists opaque blobs by key.
//
//go:generate mockgen -source=store.go -destination=mock_store_test.go -package=userdata
type Store interface {
	Load(ctx context.Context, key string) ([]byte, bool, error)
	Save(ctx context.Context, key string, blob []byte) error
	// SaveAll writes every entry atomically.
	SaveAll(ctx context.Context, entries map[string][]byte) error
	Delete(ctx context.Context, keys ...string) error
}

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads the wall clock.
var SystemClock Clock = ClockFunc(time.Now)
