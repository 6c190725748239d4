package monitor

import (
	"context"
	"time"

	"github.com/bnema/uiprefs"
)

// pollSource adapts a read-current-state function into a stream by
// probing on a fixed interval and emitting only when the bundle changed.
// Platforms without a change-notification mechanism (macOS defaults,
// Windows registry) build on it.
type pollSource struct {
	interval time.Duration
	read     func() uiprefs.Preferences
}

// Subscribe implements uiprefs.Source.
func (s *pollSource) Subscribe(ctx context.Context, interest uiprefs.Interest) (<-chan uiprefs.Preferences, error) {
	out := make(chan uiprefs.Preferences, 1)
	current := interest.Mask(s.read())
	out <- current

	go func() {
		defer close(out)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				next := interest.Mask(s.read())
				if next.Equal(current) {
					continue
				}
				current = next
				select {
				case out <- next:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}
