// Package uiprefs exposes system-level UI and accessibility preferences
// (color scheme, contrast, reduced motion, reduced transparency, accent
// color and double-click interval) as a single snapshot value that a host
// application reads synchronously and refreshes once per tick.
//
// A background subscription to a platform preference source (see the
// monitor package) forwards each new preference bundle into a hand-off
// channel; the host's tick phase drains at most one bundle per tick and
// replaces the snapshot wholesale.
package uiprefs

import (
	"fmt"
	"time"
)

// ColorScheme is the user's preference for either light or dark mode.
// It corresponds to the prefers-color-scheme CSS media feature.
type ColorScheme uint8

const (
	// ColorSchemeNoPreference indicates that the user has not expressed an
	// active preference, that the platform doesn't support a color scheme
	// preference, or that reading the preference failed.
	ColorSchemeNoPreference ColorScheme = iota
	// ColorSchemeLight indicates that the user prefers a light appearance.
	ColorSchemeLight
	// ColorSchemeDark indicates that the user prefers a dark appearance.
	ColorSchemeDark
)

// IsNoPreference reports whether no color scheme preference is set.
func (c ColorScheme) IsNoPreference() bool { return c == ColorSchemeNoPreference }

// IsLight reports whether the user prefers a light appearance.
func (c ColorScheme) IsLight() bool { return c == ColorSchemeLight }

// IsDark reports whether the user prefers a dark appearance.
func (c ColorScheme) IsDark() bool { return c == ColorSchemeDark }

func (c ColorScheme) String() string {
	switch c {
	case ColorSchemeLight:
		return "light"
	case ColorSchemeDark:
		return "dark"
	default:
		return "no-preference"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c ColorScheme) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *ColorScheme) UnmarshalText(text []byte) error {
	switch string(text) {
	case "light":
		*c = ColorSchemeLight
	case "dark":
		*c = ColorSchemeDark
	case "no-preference", "":
		*c = ColorSchemeNoPreference
	default:
		return fmt.Errorf("unknown color scheme %q", text)
	}
	return nil
}

// Contrast is the user's preferred contrast level.
// It corresponds to the prefers-contrast CSS media feature.
type Contrast uint8

const (
	// ContrastNoPreference indicates that the user has not expressed an
	// active preference, that the platform doesn't support a contrast
	// preference, or that reading the preference failed.
	ContrastNoPreference Contrast = iota
	// ContrastMore indicates a preference for a higher level of contrast.
	ContrastMore
	// ContrastLess indicates a preference for a lower level of contrast.
	ContrastLess
	// ContrastCustom indicates a forced color mode whose contrast matches
	// neither ContrastMore nor ContrastLess.
	ContrastCustom
)

// IsNoPreference reports whether no contrast preference is set.
func (c Contrast) IsNoPreference() bool { return c == ContrastNoPreference }

// IsMore reports whether the user prefers higher contrast.
func (c Contrast) IsMore() bool { return c == ContrastMore }

// IsLess reports whether the user prefers lower contrast.
func (c Contrast) IsLess() bool { return c == ContrastLess }

// IsCustom reports whether a custom forced color mode is active.
func (c Contrast) IsCustom() bool { return c == ContrastCustom }

func (c Contrast) String() string {
	switch c {
	case ContrastMore:
		return "more"
	case ContrastLess:
		return "less"
	case ContrastCustom:
		return "custom"
	default:
		return "no-preference"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c Contrast) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Contrast) UnmarshalText(text []byte) error {
	switch string(text) {
	case "more":
		*c = ContrastMore
	case "less":
		*c = ContrastLess
	case "custom":
		*c = ContrastCustom
	case "no-preference", "":
		*c = ContrastNoPreference
	default:
		return fmt.Errorf("unknown contrast %q", text)
	}
	return nil
}

// ReducedMotion is the user's preference for minimal motion, especially
// motion that simulates the third dimension. It corresponds to the
// prefers-reduced-motion CSS media feature.
type ReducedMotion uint8

const (
	// ReducedMotionNoPreference indicates that the user has not expressed
	// an active preference, that the platform doesn't support a reduced
	// motion preference, or that reading the preference failed.
	ReducedMotionNoPreference ReducedMotion = iota
	// ReducedMotionReduce indicates a preference for minimal motion.
	ReducedMotionReduce
)

// IsNoPreference reports whether no reduced motion preference is set.
func (r ReducedMotion) IsNoPreference() bool { return r == ReducedMotionNoPreference }

// IsReduce reports whether the user prefers minimal motion.
func (r ReducedMotion) IsReduce() bool { return r == ReducedMotionReduce }

func (r ReducedMotion) String() string {
	if r == ReducedMotionReduce {
		return "reduce"
	}
	return "no-preference"
}

// MarshalText implements encoding.TextMarshaler.
func (r ReducedMotion) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *ReducedMotion) UnmarshalText(text []byte) error {
	switch string(text) {
	case "reduce":
		*r = ReducedMotionReduce
	case "no-preference", "":
		*r = ReducedMotionNoPreference
	default:
		return fmt.Errorf("unknown reduced motion value %q", text)
	}
	return nil
}

// ReducedTransparency indicates that applications should not use
// transparent or semitransparent backgrounds. It corresponds to the
// prefers-reduced-transparency CSS media feature.
type ReducedTransparency uint8

const (
	// ReducedTransparencyNoPreference indicates that the user has not
	// expressed an active preference, that the platform doesn't support a
	// reduced transparency preference, or that reading the preference
	// failed.
	ReducedTransparencyNoPreference ReducedTransparency = iota
	// ReducedTransparencyReduce indicates a preference for no transparent
	// or semitransparent backgrounds.
	ReducedTransparencyReduce
)

// IsNoPreference reports whether no reduced transparency preference is set.
func (r ReducedTransparency) IsNoPreference() bool { return r == ReducedTransparencyNoPreference }

// IsReduce reports whether the user prefers opaque backgrounds.
func (r ReducedTransparency) IsReduce() bool { return r == ReducedTransparencyReduce }

func (r ReducedTransparency) String() string {
	if r == ReducedTransparencyReduce {
		return "reduce"
	}
	return "no-preference"
}

// MarshalText implements encoding.TextMarshaler.
func (r ReducedTransparency) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *ReducedTransparency) UnmarshalText(text []byte) error {
	switch string(text) {
	case "reduce":
		*r = ReducedTransparencyReduce
	case "no-preference", "":
		*r = ReducedTransparencyNoPreference
	default:
		return fmt.Errorf("unknown reduced transparency value %q", text)
	}
	return nil
}

// Preferences is one complete bundle of system-level UI preferences.
//
// It is a plain value: copied freely, compared with ==-style field
// equality via Equal, and replaced wholesale on every update. The zero
// value means "no preference" for every field.
type Preferences struct {
	// ColorScheme is the user's preference for light or dark mode.
	ColorScheme ColorScheme `json:"color_scheme"`
	// Contrast is the user's preferred contrast level.
	Contrast Contrast `json:"contrast"`
	// ReducedMotion is the user's reduced motion preference.
	ReducedMotion ReducedMotion `json:"reduced_motion"`
	// ReducedTransparency is the user's reduced transparency preference.
	ReducedTransparency ReducedTransparency `json:"reduced_transparency"`
	// AccentColor is the system-wide accent color, if one is set.
	AccentColor AccentColor `json:"accent_color"`
	// DoubleClickInterval is the maximum time between the first and second
	// click for them to count as a double click. Zero means no preference.
	DoubleClickInterval time.Duration `json:"double_click_interval"`
}

// Equal reports whether two bundles hold the same preference values.
// Accent color components are compared within a small float tolerance.
func (p Preferences) Equal(other Preferences) bool {
	return p.ColorScheme == other.ColorScheme &&
		p.Contrast == other.Contrast &&
		p.ReducedMotion == other.ReducedMotion &&
		p.ReducedTransparency == other.ReducedTransparency &&
		p.AccentColor.Equal(other.AccentColor) &&
		p.DoubleClickInterval == other.DoubleClickInterval
}
