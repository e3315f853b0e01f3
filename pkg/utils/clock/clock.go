package clock

import (
	"context"
	"time"
)

type ctxClockKey struct{}

type Clock func() time.Time

// Now returns the current time, or the injected test clock if one is set on
// the context. Session timestamps must always come from here so tests can
// pin them.
func Now(ctx context.Context) time.Time {
	clock, ok := ctx.Value(ctxClockKey{}).(Clock)
	if !ok {
		return time.Now()
	}
	return clock()
}

func With(ctx context.Context, clock Clock) context.Context {
	return context.WithValue(ctx, ctxClockKey{}, clock)
}
