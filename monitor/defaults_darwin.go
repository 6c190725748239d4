//go:build darwin

package monitor

import (
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/uiprefs"
)

func newPlatformSource(opts Options) (uiprefs.Source, bool) {
	if _, err := exec.LookPath("defaults"); err != nil {
		return nil, false
	}
	return &pollSource{interval: opts.PollInterval, read: readDefaults}, true
}

// readDefaults probes the user defaults database. Missing keys read as
// "no preference"; `defaults read` exits non-zero for unset keys.
func readDefaults() uiprefs.Preferences {
	var p uiprefs.Preferences

	// AppleInterfaceStyle only exists when dark mode is on.
	if style, ok := defaultsRead("-g", "AppleInterfaceStyle"); ok {
		p.ColorScheme = mapInterfaceStyle(style)
	} else {
		p.ColorScheme = uiprefs.ColorSchemeLight
	}

	if v, ok := defaultsRead("com.apple.universalaccess", "reduceMotion"); ok && v == "1" {
		p.ReducedMotion = uiprefs.ReducedMotionReduce
	}
	if v, ok := defaultsRead("com.apple.universalaccess", "reduceTransparency"); ok && v == "1" {
		p.ReducedTransparency = uiprefs.ReducedTransparencyReduce
	}
	if v, ok := defaultsRead("com.apple.universalaccess", "increaseContrast"); ok && v == "1" {
		p.Contrast = uiprefs.ContrastMore
	}

	if v, ok := defaultsRead("-g", "AppleAccentColor"); ok {
		if index, err := strconv.Atoi(v); err == nil {
			p.AccentColor = accentFromIndex(index)
		}
	}

	if v, ok := defaultsRead("-g", "com.apple.mouse.doubleClickThreshold"); ok {
		if seconds, err := strconv.ParseFloat(v, 64); err == nil && seconds > 0 {
			p.DoubleClickInterval = time.Duration(seconds * float64(time.Second))
		}
	}
	return p
}

func defaultsRead(domain, key string) (string, bool) {
	output, err := exec.Command("defaults", "read", domain, key).Output()
	if err != nil {
		return "", false
	}
	return strings.TrimSpace(string(output)), true
}

func mapInterfaceStyle(style string) uiprefs.ColorScheme {
	if strings.EqualFold(style, "dark") {
		return uiprefs.ColorSchemeDark
	}
	return uiprefs.ColorSchemeLight
}

// accentFromIndex maps the AppleAccentColor index to its sRGB value.
// The key is absent when the default (multicolor) accent is active.
func accentFromIndex(index int) uiprefs.AccentColor {
	switch index {
	case -1: // graphite
		return uiprefs.NewAccentColor(0.596, 0.596, 0.596)
	case 0: // red
		return uiprefs.NewAccentColor(1.0, 0.271, 0.227)
	case 1: // orange
		return uiprefs.NewAccentColor(0.969, 0.508, 0.106)
	case 2: // yellow
		return uiprefs.NewAccentColor(1.0, 0.776, 0.0)
	case 3: // green
		return uiprefs.NewAccentColor(0.384, 0.729, 0.275)
	case 4: // blue
		return uiprefs.NewAccentColor(0.0, 0.478, 1.0)
	case 5: // purple
		return uiprefs.NewAccentColor(0.584, 0.239, 0.588)
	case 6: // pink
		return uiprefs.NewAccentColor(0.969, 0.310, 0.620)
	default:
		return uiprefs.AccentColor{}
	}
}
