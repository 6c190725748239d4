package monitor

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/uiprefs"
)

// mutableRead is a read function whose result tests can swap.
type mutableRead struct {
	mu sync.Mutex
	p  uiprefs.Preferences
}

func (r *mutableRead) read() uiprefs.Preferences {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.p
}

func (r *mutableRead) set(p uiprefs.Preferences) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p = p
}

func TestPollSourceSeedsImmediately(t *testing.T) {
	read := &mutableRead{p: uiprefs.Preferences{ColorScheme: uiprefs.ColorSchemeDark}}
	source := &pollSource{interval: time.Hour, read: read.read}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	stream, err := source.Subscribe(ctx, uiprefs.InterestAll)
	require.NoError(t, err)

	select {
	case p := <-stream:
		assert.True(t, p.ColorScheme.IsDark())
	case <-time.After(time.Second):
		t.Fatal("no seed bundle")
	}
}

func TestPollSourceEmitsOnChangeOnly(t *testing.T) {
	read := &mutableRead{p: uiprefs.Preferences{ColorScheme: uiprefs.ColorSchemeLight}}
	source := &pollSource{interval: time.Millisecond, read: read.read}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	stream, err := source.Subscribe(ctx, uiprefs.InterestAll)
	require.NoError(t, err)

	seed := <-stream
	assert.True(t, seed.ColorScheme.IsLight())

	// Unchanged state produces no bundles.
	select {
	case <-stream:
		t.Fatal("unexpected bundle for unchanged state")
	case <-time.After(20 * time.Millisecond):
	}

	read.set(uiprefs.Preferences{ColorScheme: uiprefs.ColorSchemeDark})
	select {
	case p := <-stream:
		assert.True(t, p.ColorScheme.IsDark())
	case <-time.After(time.Second):
		t.Fatal("change was not emitted")
	}
}

func TestPollSourceAppliesInterest(t *testing.T) {
	read := &mutableRead{p: uiprefs.Preferences{
		ColorScheme: uiprefs.ColorSchemeDark,
		Contrast:    uiprefs.ContrastMore,
	}}
	source := &pollSource{interval: time.Hour, read: read.read}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	stream, err := source.Subscribe(ctx, uiprefs.InterestColorScheme)
	require.NoError(t, err)

	p := <-stream
	assert.True(t, p.ColorScheme.IsDark())
	assert.True(t, p.Contrast.IsNoPreference())
}

func TestPollSourceCancelEndsStream(t *testing.T) {
	read := &mutableRead{}
	source := &pollSource{interval: time.Millisecond, read: read.read}

	ctx, cancel := context.WithCancel(context.Background())
	stream, err := source.Subscribe(ctx, uiprefs.InterestAll)
	require.NoError(t, err)

	<-stream
	cancel()

	require.Eventually(t, func() bool {
		select {
		case _, ok := <-stream:
			return !ok
		default:
			return false
		}
	}, time.Second, time.Millisecond)
}
