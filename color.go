package uiprefs

import (
	"encoding/json"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// accentTolerance is the per-component tolerance used when comparing
// accent colors. Preference sources deliver components as doubles; a
// round trip through the snapshot must not be treated as a change.
const accentTolerance = 1e-6

// AccentColor is the system-wide accent color preference. The zero value
// means no accent color is set (or the platform doesn't expose one).
type AccentColor struct {
	// Color holds the accent color in sRGB with components in [0, 1].
	// Only meaningful when Valid is true.
	Color colorful.Color
	// Valid reports whether an accent color is set.
	Valid bool
}

// NewAccentColor builds an accent color from sRGB components in [0, 1].
func NewAccentColor(r, g, b float64) AccentColor {
	return AccentColor{Color: colorful.Color{R: r, G: g, B: b}, Valid: true}
}

// Equal reports whether two accent colors are the same, comparing
// components within a small tolerance.
func (a AccentColor) Equal(other AccentColor) bool {
	if a.Valid != other.Valid {
		return false
	}
	if !a.Valid {
		return true
	}
	return math.Abs(a.Color.R-other.Color.R) <= accentTolerance &&
		math.Abs(a.Color.G-other.Color.G) <= accentTolerance &&
		math.Abs(a.Color.B-other.Color.B) <= accentTolerance
}

// Hex returns the color as "#rrggbb", or the empty string when no accent
// color is set.
func (a AccentColor) Hex() string {
	if !a.Valid {
		return ""
	}
	return a.Color.Hex()
}

type accentColorJSON struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// MarshalJSON encodes the accent color as {"r":..,"g":..,"b":..}, or null
// when no accent color is set.
func (a AccentColor) MarshalJSON() ([]byte, error) {
	if !a.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(accentColorJSON{R: a.Color.R, G: a.Color.G, B: a.Color.B})
}

// UnmarshalJSON decodes the representation produced by MarshalJSON.
func (a *AccentColor) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*a = AccentColor{}
		return nil
	}
	var c accentColorJSON
	if err := json.Unmarshal(data, &c); err != nil {
		return err
	}
	*a = NewAccentColor(c.R, c.G, c.B)
	return nil
}
