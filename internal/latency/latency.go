// Package latency supplies pluggable delay strategies used to simulate the
// round trip of a remote matching call.
//
// The matcher itself is synchronous and never imports this package; callers
// at the presentation boundary decide whether, and how long, to wait before
// invoking it.
package latency

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"
)

// Delayer waits before a simulated remote call. Implementations return
// ctx.Err() when the context ends first.
type Delayer interface {
	Delay(ctx context.Context) error
}

// None never waits.
type None struct{}

// Delay returns ctx.Err() without waiting.
func (None) Delay(ctx context.Context) error {
	return ctx.Err()
}

// Fixed waits for a constant duration.
type Fixed time.Duration

// Delay waits for the configured duration.
func (f Fixed) Delay(ctx context.Context) error {
	return Sleep(ctx, time.Duration(f))
}

// Uniform waits for a random duration in [Min, Max).
type Uniform struct {
	Min time.Duration
	Max time.Duration

	mu  sync.Mutex
	rng *rand.Rand
}

// NewUniform returns a Uniform delayer. A nil source seeds from the runtime.
// Min and Max are swapped when given in the wrong order.
func NewUniform(min, max time.Duration, src rand.Source) *Uniform {
	if max < min {
		min, max = max, min
	}
	u := &Uniform{Min: min, Max: max}
	if src != nil {
		u.rng = rand.New(src)
	}
	return u
}

// Next returns the duration the next Delay call would wait.
func (u *Uniform) Next() time.Duration {
	span := u.Max - u.Min
	if span <= 0 {
		return u.Min
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.rng == nil {
		return u.Min + time.Duration(rand.Int64N(int64(span)))
	}
	return u.Min + time.Duration(u.rng.Int64N(int64(span)))
}

// Delay waits for a freshly drawn duration.
func (u *Uniform) Delay(ctx context.Context) error {
	return Sleep(ctx, u.Next())
}

// Sleep blocks for d, returning early with ctx.Err() if the context ends.
func Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
