//go:build linux

package monitor

import (
	"time"

	"github.com/godbus/dbus/v5"

	"github.com/bnema/uiprefs"
)

// unwrapVariant peels nested D-Bus variants; portal backends disagree on
// how deeply values are wrapped.
func unwrapVariant(v any) any {
	for {
		variant, ok := v.(dbus.Variant)
		if !ok {
			return v
		}
		v = variant.Value()
	}
}

func asUint32(v any) (uint32, bool) {
	switch n := unwrapVariant(v).(type) {
	case uint32:
		return n, true
	case int32:
		if n < 0 {
			return 0, false
		}
		return uint32(n), true
	case uint64:
		return uint32(n), true
	case int64:
		if n < 0 {
			return 0, false
		}
		return uint32(n), true
	default:
		return 0, false
	}
}

// mapPortalColorScheme maps the org.freedesktop.appearance color-scheme
// value: 0 no preference, 1 prefer dark, 2 prefer light. Unknown values
// are specified to mean no preference.
func mapPortalColorScheme(v any) uiprefs.ColorScheme {
	switch n, _ := asUint32(v); n {
	case 1:
		return uiprefs.ColorSchemeDark
	case 2:
		return uiprefs.ColorSchemeLight
	default:
		return uiprefs.ColorSchemeNoPreference
	}
}

// mapPortalContrast maps the org.freedesktop.appearance contrast value:
// 0 no preference, 1 higher contrast.
func mapPortalContrast(v any) uiprefs.Contrast {
	if n, ok := asUint32(v); ok && n == 1 {
		return uiprefs.ContrastMore
	}
	return uiprefs.ContrastNoPreference
}

// mapPortalAccentColor maps the org.freedesktop.appearance accent-color
// (ddd) tuple. Components outside [0, 1] mean no preference.
func mapPortalAccentColor(v any) uiprefs.AccentColor {
	tuple, ok := unwrapVariant(v).([]any)
	if !ok || len(tuple) != 3 {
		return uiprefs.AccentColor{}
	}
	var rgb [3]float64
	for i, component := range tuple {
		f, ok := component.(float64)
		if !ok || f < 0 || f > 1 {
			return uiprefs.AccentColor{}
		}
		rgb[i] = f
	}
	return uiprefs.NewAccentColor(rgb[0], rgb[1], rgb[2])
}

// mapEnableAnimations maps the GNOME enable-animations boolean: animation
// disabled means the user prefers reduced motion.
func mapEnableAnimations(v any) uiprefs.ReducedMotion {
	enabled, ok := unwrapVariant(v).(bool)
	if !ok {
		return uiprefs.ReducedMotionNoPreference
	}
	if !enabled {
		return uiprefs.ReducedMotionReduce
	}
	return uiprefs.ReducedMotionNoPreference
}

// mapDoubleClickMillis maps the GNOME double-click value (milliseconds).
func mapDoubleClickMillis(v any) time.Duration {
	var ms int64
	switch n := unwrapVariant(v).(type) {
	case int32:
		ms = int64(n)
	case uint32:
		ms = int64(n)
	case int64:
		ms = n
	case int:
		ms = int64(n)
	case float64:
		ms = int64(n)
	default:
		return 0
	}
	if ms <= 0 {
		return 0
	}
	return time.Duration(ms) * time.Millisecond
}
