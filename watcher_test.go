package uiprefs_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/uiprefs"
	"github.com/bnema/uiprefs/monitor"
)

// fakeHost records the hooks a watcher installs.
type fakeHost struct {
	startup []func(ctx context.Context) error
	ticks   []func() error
}

func (h *fakeHost) OnStartup(fn func(ctx context.Context) error) {
	h.startup = append(h.startup, fn)
}

func (h *fakeHost) OnTick(fn func() error) {
	h.ticks = append(h.ticks, fn)
}

func TestWatcherDefaultSnapshot(t *testing.T) {
	w := uiprefs.New(monitor.NewChannel(1))
	assert.Equal(t, uiprefs.Preferences{}, w.Current())
}

func TestWatcherAppliesUpdatesInOrder(t *testing.T) {
	source := monitor.NewChannel(4)
	w := uiprefs.New(source)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))

	dark := uiprefs.Preferences{ColorScheme: uiprefs.ColorSchemeDark}
	light := uiprefs.Preferences{ColorScheme: uiprefs.ColorSchemeLight}
	source.Send(dark)
	source.Send(light)

	require.Eventually(t, func() bool {
		_ = w.Tick()
		return w.Current().Equal(dark)
	}, time.Second, time.Millisecond)

	require.Eventually(t, func() bool {
		_ = w.Tick()
		return w.Current().Equal(light)
	}, time.Second, time.Millisecond)
}

func TestWatcherInterestMasksBundles(t *testing.T) {
	source := monitor.NewChannel(1)
	w := uiprefs.New(source, uiprefs.WithInterest(uiprefs.InterestColorScheme))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))

	source.Send(uiprefs.Preferences{
		ColorScheme: uiprefs.ColorSchemeDark,
		Contrast:    uiprefs.ContrastMore,
		AccentColor: uiprefs.NewAccentColor(1, 0, 0),
	})

	require.Eventually(t, func() bool {
		_ = w.Tick()
		return w.Current().ColorScheme.IsDark()
	}, time.Second, time.Millisecond)

	current := w.Current()
	assert.True(t, current.Contrast.IsNoPreference())
	assert.False(t, current.AccentColor.Valid)
}

func TestWatcherTickAfterSourceClose(t *testing.T) {
	source := monitor.NewChannel(1)
	w := uiprefs.New(source)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))

	dark := uiprefs.Preferences{ColorScheme: uiprefs.ColorSchemeDark}
	source.Send(dark)
	source.Close()

	require.Eventually(t, func() bool {
		_ = w.Tick()
		return w.Current().Equal(dark)
	}, time.Second, time.Millisecond)

	// The queued bundle survives the close; the ended stream is reported
	// through the tick error, and the snapshot is retained.
	require.Eventually(t, func() bool {
		return w.Tick() != nil
	}, time.Second, time.Millisecond)
	assert.True(t, w.Current().Equal(dark))
}

func TestWatcherAttachInstallsHooks(t *testing.T) {
	host := &fakeHost{}
	w := uiprefs.New(monitor.Static(uiprefs.Preferences{ColorScheme: uiprefs.ColorSchemeDark}))
	w.Attach(host)

	require.Len(t, host.startup, 1)
	require.Len(t, host.ticks, 1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, host.startup[0](ctx))

	require.Eventually(t, func() bool {
		require.NoError(t, host.ticks[0]())
		return w.Current().ColorScheme.IsDark()
	}, time.Second, time.Millisecond)
}
