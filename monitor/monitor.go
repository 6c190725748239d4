// Package monitor provides platform preference sources for uiprefs.
//
// New picks the native mechanism for the current platform: the XDG
// desktop portal settings interface on Linux, `defaults` probing on
// macOS and registry probing on Windows, falling back to environment
// variables everywhere else. Static and Channel sources are available
// for hosts that supply their own preference values and for tests.
package monitor

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/uiprefs"
)

// DefaultPollInterval is how often polling sources re-read platform
// state when no interval is configured.
const DefaultPollInterval = 2 * time.Second

// Options configures source construction.
type Options struct {
	// PollInterval is the re-read interval for polling sources (macOS,
	// Windows). The Linux portal source is signal-driven and ignores it.
	PollInterval time.Duration
	// Logger receives debug output from sources. Defaults to a no-op.
	Logger zerolog.Logger
}

func (o Options) withDefaults() Options {
	if o.PollInterval <= 0 {
		o.PollInterval = DefaultPollInterval
	}
	return o
}

// New returns the preference source for the current platform. When the
// native mechanism is unavailable (no session bus, no gsettings, no
// defaults binary) it falls back to the environment source.
func New(opts Options) uiprefs.Source {
	opts = opts.withDefaults()
	if src, ok := newPlatformSource(opts); ok {
		return src
	}
	return NewEnv()
}
