package uiprefs

import (
	"context"

	"github.com/rs/zerolog"
)

// Host is the surface a Watcher installs itself into: a one-time startup
// phase and a per-frame (or per-tick) phase. Tick errors are handled by
// the host's own error policy; they never abort the host.
type Host interface {
	// OnStartup registers fn to run once during host startup.
	OnStartup(fn func(ctx context.Context) error)
	// OnTick registers fn to run once per host tick.
	OnTick(fn func() error)
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithInterest limits the subscription to the given preference
// categories. The default is InterestAll.
func WithInterest(interest Interest) Option {
	return func(w *Watcher) { w.interest = interest }
}

// WithHandoffCapacity sets the capacity of the hand-off channel. Hosts
// with slow tick rates may want a larger buffer; the forwarder blocks
// while the buffer is full, so no bundle is ever dropped.
func WithHandoffCapacity(capacity int) Option {
	return func(w *Watcher) { w.capacity = capacity }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(w *Watcher) { w.log = log }
}

// Watcher ties a Source, a Pump and a Store together behind the
// host-facing surface: Start once, Tick every frame, Current at any time.
type Watcher struct {
	store    *Store
	pump     *Pump
	interest Interest
	capacity int
	log      zerolog.Logger
}

// New creates a watcher over the given preference source.
func New(source Source, opts ...Option) *Watcher {
	w := &Watcher{
		store:    NewStore(),
		interest: InterestAll,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.pump = NewPump(w.store, source, w.interest, w.capacity, w.log)
	return w
}

// Start opens the background subscription. Call once at startup. The
// spawned forwarder runs for the application's lifetime and is abandoned,
// not joined, at shutdown: cancelling ctx ends it without blocking anyone.
func (w *Watcher) Start(ctx context.Context) error {
	return w.pump.Start(ctx)
}

// Tick applies at most one pending preference bundle to the snapshot.
// Call once per frame from the host's tick loop.
func (w *Watcher) Tick() error {
	return w.pump.Poll()
}

// Current returns the latest known preference bundle. Safe to call from
// any goroutine at any time; before the first update it reports "no
// preference" for every field.
func (w *Watcher) Current() Preferences {
	return w.store.Current()
}

// Attach installs the watcher's startup and tick steps into a host.
func (w *Watcher) Attach(h Host) {
	h.OnStartup(w.Start)
	h.OnTick(w.Tick)
}
