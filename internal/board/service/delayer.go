package service

import (
	"context"
	"time"
)

// Delayer models the simulated backend latency on identity operations. It is
// an explicit contract so tests inject NopDelayer instead of waiting on real
// timers; production uses TimerDelayer honouring context cancellation.
type Delayer interface {
	Wait(ctx context.Context, d time.Duration) error
}

// TimerDelayer waits on a real timer.
type TimerDelayer struct{}

func (TimerDelayer) Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// NopDelayer never waits.
type NopDelayer struct{}

func (NopDelayer) Wait(ctx context.Context, _ time.Duration) error { return ctx.Err() }
