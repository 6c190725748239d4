package monitor

import (
	"context"
	"os"
	"strings"

	"github.com/bnema/uiprefs"
)

// EnvSource reads preferences from environment variables once and emits
// a single bundle. It is the fallback when no platform mechanism exists.
//
// Recognized variables: GTK_THEME (a name containing "dark" selects the
// dark scheme), REDUCE_MOTION, REDUCE_TRANSPARENCY and HIGH_CONTRAST
// (truthy values "1", "true", "yes", "on").
type EnvSource struct{}

// NewEnv returns an environment-variable source.
func NewEnv() *EnvSource {
	return &EnvSource{}
}

// Subscribe implements uiprefs.Source. The stream delivers one bundle
// and then stays open without further updates.
func (*EnvSource) Subscribe(_ context.Context, interest uiprefs.Interest) (<-chan uiprefs.Preferences, error) {
	out := make(chan uiprefs.Preferences, 1)
	out <- interest.Mask(readEnvPreferences())
	return out, nil
}

func readEnvPreferences() uiprefs.Preferences {
	var p uiprefs.Preferences

	if theme := os.Getenv("GTK_THEME"); theme != "" {
		if strings.Contains(strings.ToLower(theme), "dark") {
			p.ColorScheme = uiprefs.ColorSchemeDark
		} else {
			p.ColorScheme = uiprefs.ColorSchemeLight
		}
	}
	if envTruthy(os.Getenv("REDUCE_MOTION")) {
		p.ReducedMotion = uiprefs.ReducedMotionReduce
	}
	if envTruthy(os.Getenv("REDUCE_TRANSPARENCY")) {
		p.ReducedTransparency = uiprefs.ReducedTransparencyReduce
	}
	if envTruthy(os.Getenv("HIGH_CONTRAST")) {
		p.Contrast = uiprefs.ContrastMore
	}
	return p
}

func envTruthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
