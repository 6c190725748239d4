package uiprefs

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSource implements Source over a plain channel.
type fakeSource struct {
	ch  chan Preferences
	err error
}

func (f *fakeSource) Subscribe(_ context.Context, _ Interest) (<-chan Preferences, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.ch, nil
}

// newQueuedPump returns a pump with a hand-off channel that tests fill
// directly, bypassing the forwarding goroutine.
func newQueuedPump(capacity int) (*Pump, *Store) {
	store := NewStore()
	pump := NewPump(store, nil, InterestAll, capacity, zerolog.Nop())
	pump.handoff = make(chan Preferences, capacity)
	return pump, store
}

func TestPollBeforeStartIsNoop(t *testing.T) {
	store := NewStore()
	pump := NewPump(store, nil, InterestAll, 0, zerolog.Nop())

	require.NoError(t, pump.Poll())
	assert.Equal(t, Preferences{}, store.Current())
}

func TestPollEmptyQueueIsNoop(t *testing.T) {
	pump, store := newQueuedPump(8)

	require.NoError(t, pump.Poll())
	assert.Equal(t, Preferences{}, store.Current())
}

func TestPollAppliesSingleUpdate(t *testing.T) {
	pump, store := newQueuedPump(8)

	want := Preferences{ColorScheme: ColorSchemeDark, Contrast: ContrastMore}
	pump.handoff <- want

	require.NoError(t, pump.Poll())
	assert.True(t, store.Current().Equal(want))

	// Nothing else queued: the snapshot stays put.
	require.NoError(t, pump.Poll())
	assert.True(t, store.Current().Equal(want))
}

func TestPollDrainsOneBundlePerTick(t *testing.T) {
	const n = 5
	pump, store := newQueuedPump(n)

	bundles := make([]Preferences, n)
	for i := range bundles {
		bundles[i] = Preferences{DoubleClickInterval: time.Duration(i+1) * 100 * time.Millisecond}
		pump.handoff <- bundles[i]
	}

	for k := 0; k < n; k++ {
		require.NoError(t, pump.Poll())
		assert.True(t, store.Current().Equal(bundles[k]), "after poll %d", k+1)
	}
	assert.True(t, store.Current().Equal(bundles[n-1]))
}

func TestPollReportsStreamEndOnce(t *testing.T) {
	pump, store := newQueuedPump(8)

	queued := Preferences{ColorScheme: ColorSchemeLight}
	pump.handoff <- queued
	close(pump.handoff)

	// Queued bundles are still applied after the stream ends.
	require.NoError(t, pump.Poll())
	assert.True(t, store.Current().Equal(queued))

	err := pump.Poll()
	require.ErrorIs(t, err, ErrStreamEnded)

	// Reported once; later polls are quiet no-ops.
	require.NoError(t, pump.Poll())
	assert.True(t, store.Current().Equal(queued))
}

func TestStartReturnsSubscribeError(t *testing.T) {
	subscribeErr := fmt.Errorf("no session bus")
	pump := NewPump(NewStore(), &fakeSource{err: subscribeErr}, InterestAll, 0, zerolog.Nop())

	err := pump.Start(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, subscribeErr)
}

func TestForwarderPreservesArrivalOrder(t *testing.T) {
	source := &fakeSource{ch: make(chan Preferences, 8)}
	store := NewStore()
	pump := NewPump(store, source, InterestAll, 8, zerolog.Nop())
	require.NoError(t, pump.Start(context.Background()))

	first := Preferences{ColorScheme: ColorSchemeDark}
	second := Preferences{ColorScheme: ColorSchemeLight}
	source.ch <- first
	source.ch <- second

	require.Eventually(t, func() bool {
		_ = pump.Poll()
		return store.Current().Equal(first)
	}, time.Second, time.Millisecond)

	require.Eventually(t, func() bool {
		_ = pump.Poll()
		return store.Current().Equal(second)
	}, time.Second, time.Millisecond)
}

func TestForwarderEndsWithStream(t *testing.T) {
	source := &fakeSource{ch: make(chan Preferences, 1)}
	pump := NewPump(NewStore(), source, InterestAll, 1, zerolog.Nop())
	require.NoError(t, pump.Start(context.Background()))

	close(source.ch)

	require.Eventually(t, func() bool {
		return errors.Is(pump.Poll(), ErrStreamEnded)
	}, time.Second, time.Millisecond)
}

func TestForwarderStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	source := &fakeSource{ch: make(chan Preferences)}
	pump := NewPump(NewStore(), source, InterestAll, 1, zerolog.Nop())
	require.NoError(t, pump.Start(ctx))

	cancel()

	// Cancellation closes the hand-off from the sending side.
	require.Eventually(t, func() bool {
		return errors.Is(pump.Poll(), ErrStreamEnded)
	}, time.Second, time.Millisecond)
}
