//go:build !linux && !darwin && !windows

package monitor

import "github.com/bnema/uiprefs"

func newPlatformSource(Options) (uiprefs.Source, bool) {
	return nil, false
}
