package time

import (
	"context"
	"time"

	"github.com/cleitonmarx/symbiont-taskchat/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// UTCClock implements domain.CurrentTimeProvider with the wall clock.
// Timestamps are always returned in UTC so stored values and due date math agree.
type UTCClock struct{}

// Now returns the current UTC time.
func (UTCClock) Now() time.Time {
	return time.Now().UTC()
}

// InitClock registers the UTCClock in the dependency container.
type InitClock struct{}

// Initialize registers the clock as the domain.CurrentTimeProvider.
func (InitClock) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.CurrentTimeProvider](UTCClock{})
	return ctx, nil
}
