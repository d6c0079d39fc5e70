// Package goals tracks today's micro-goals against the persisted completion set.
package goals

import (
	"context"
	"math/rand"

	"github.com/akyairhashvil/serenity/internal/models"
)

// AllDoneMessage is shown once every goal is checked.
const AllDoneMessage = "Amazing job! You've completed all your goals today."

// Completer persists goal completion.
type Completer interface {
	CompleteGoal(ctx context.Context, goalID string) error
	UncompleteGoal(ctx context.Context, goalID string) error
	CompletedGoals(ctx context.Context) map[string]bool
}

// Board is the checklist shown on the tips screen.
type Board struct {
	goals []models.Goal
	done  map[string]bool
	store Completer
}

// NewBoard loads completion state for goals.
func NewBoard(ctx context.Context, goals []models.Goal, store Completer) *Board {
	b := &Board{goals: goals, store: store, done: make(map[string]bool)}
	b.Reload(ctx)
	return b
}

// Reload refreshes completion from the store.
func (b *Board) Reload(ctx context.Context) {
	done := b.store.CompletedGoals(ctx)
	b.done = make(map[string]bool, len(b.goals))
	for _, g := range b.goals {
		b.done[g.ID] = done[g.ID]
	}
}

func (b *Board) Goals() []models.Goal { return b.goals }

func (b *Board) Done(goalID string) bool { return b.done[goalID] }

// Toggle flips a goal and persists the change. It returns the new state;
// true means the goal was just completed.
func (b *Board) Toggle(ctx context.Context, goalID string) (bool, error) {
	next := !b.done[goalID]
	var err error
	if next {
		err = b.store.CompleteGoal(ctx, goalID)
	} else {
		err = b.store.UncompleteGoal(ctx, goalID)
	}
	if err != nil {
		return b.done[goalID], err
	}
	b.done[goalID] = next
	return next, nil
}

// Count returns completed and total goals.
func (b *Board) Count() (int, int) {
	n := 0
	for _, g := range b.goals {
		if b.done[g.ID] {
			n++
		}
	}
	return n, len(b.goals)
}

// AllCompleted reports whether every goal is done. An empty board is complete.
func (b *Board) AllCompleted() bool {
	done, total := b.Count()
	return done == total
}

// QuoteOfDay picks one of quotes.
func QuoteOfDay(quotes []models.Quote, rng *rand.Rand) (models.Quote, bool) {
	if len(quotes) == 0 {
		return models.Quote{}, false
	}
	return quotes[rng.Intn(len(quotes))], true
}
