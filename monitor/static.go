package monitor

import (
	"context"

	"github.com/bnema/uiprefs"
)

// Static is a source that delivers one fixed bundle and never updates.
// Useful for hosts that resolve preferences elsewhere and for tests.
type Static uiprefs.Preferences

// Subscribe implements uiprefs.Source.
func (s Static) Subscribe(_ context.Context, interest uiprefs.Interest) (<-chan uiprefs.Preferences, error) {
	out := make(chan uiprefs.Preferences, 1)
	out <- interest.Mask(uiprefs.Preferences(s))
	return out, nil
}

// Channel is a source fed by the host. Every bundle passed to Send is
// delivered to subscribers in order; Close ends the stream.
type Channel struct {
	ch chan uiprefs.Preferences
}

// NewChannel returns a channel source with the given buffer size.
func NewChannel(buffer int) *Channel {
	if buffer < 0 {
		buffer = 0
	}
	return &Channel{ch: make(chan uiprefs.Preferences, buffer)}
}

// Send queues one bundle, blocking while the buffer is full.
func (c *Channel) Send(p uiprefs.Preferences) {
	c.ch <- p
}

// Close ends the stream. Send must not be called afterwards.
func (c *Channel) Close() {
	close(c.ch)
}

// Subscribe implements uiprefs.Source.
func (c *Channel) Subscribe(ctx context.Context, interest uiprefs.Interest) (<-chan uiprefs.Preferences, error) {
	out := make(chan uiprefs.Preferences, cap(c.ch)+1)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case p, ok := <-c.ch:
				if !ok {
					return
				}
				select {
				case out <- interest.Mask(p):
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}
