package uiprefs

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// ErrStreamEnded is returned by Poll after the preference stream has
// ended and every queued bundle has been applied.
var ErrStreamEnded = errors.New("uiprefs: preference stream ended")

// DefaultHandoffCapacity is the default capacity of the hand-off channel
// between the forwarding goroutine and the poll step.
const DefaultHandoffCapacity = 64

// Source delivers preference bundles. Subscribe opens one lazy, possibly
// infinite stream reporting the requested categories; the first bundle is
// the current state and each following bundle reflects a change. The
// returned channel stays open for the lifetime of the stream.
//
// The monitor package provides platform sources.
type Source interface {
	Subscribe(ctx context.Context, interest Interest) (<-chan Preferences, error)
}

// Pump bridges an asynchronous preference stream into a Store.
//
// Start opens the subscription and spawns a single forwarding goroutine
// that owns the sending half of the hand-off channel. Poll runs on the
// host's tick loop, owns the receiving half and the store, and never
// blocks. The forwarder is fire-and-forget: it is ended by stream
// exhaustion or context cancellation and is never joined.
type Pump struct {
	store    *Store
	source   Source
	interest Interest
	capacity int
	log      zerolog.Logger

	handoff chan Preferences
	ended   bool
}

// NewPump creates a pump feeding store from source.
func NewPump(store *Store, source Source, interest Interest, capacity int, log zerolog.Logger) *Pump {
	if capacity <= 0 {
		capacity = DefaultHandoffCapacity
	}
	return &Pump{
		store:    store,
		source:   source,
		interest: interest,
		capacity: capacity,
		log:      log,
	}
}

// Start subscribes to the source and spawns the forwarding goroutine.
// A subscription failure is returned to the caller; nothing is spawned.
func (p *Pump) Start(ctx context.Context) error {
	stream, err := p.source.Subscribe(ctx, p.interest)
	if err != nil {
		return fmt.Errorf("subscribe to preference source: %w", err)
	}

	p.handoff = make(chan Preferences, p.capacity)
	go p.forward(ctx, stream)
	p.log.Debug().Int("capacity", p.capacity).Msg("preference pump started")
	return nil
}

// forward pushes every bundle from the stream onto the hand-off channel,
// preserving arrival order. It exclusively owns the sending half and
// closes it when the stream ends or the context is cancelled.
func (p *Pump) forward(ctx context.Context, stream <-chan Preferences) {
	defer close(p.handoff)
	for {
		select {
		case <-ctx.Done():
			p.log.Debug().Msg("preference forwarder cancelled")
			return
		case prefs, ok := <-stream:
			if !ok {
				p.log.Debug().Msg("preference stream exhausted")
				return
			}
			select {
			case p.handoff <- prefs:
			case <-ctx.Done():
				p.log.Debug().Msg("preference forwarder cancelled")
				return
			}
		}
	}
}

// Poll receives at most one queued bundle and applies it to the store.
// An empty queue is the steady state and a successful no-op. Once the
// stream has ended and the queue is drained, Poll reports ErrStreamEnded
// exactly once; later calls are no-ops.
//
// Poll must only be called from the host's single poll step.
func (p *Pump) Poll() error {
	if p.handoff == nil || p.ended {
		return nil
	}
	select {
	case prefs, ok := <-p.handoff:
		if !ok {
			p.ended = true
			return ErrStreamEnded
		}
		p.store.Replace(prefs)
	default:
	}
	return nil
}
