package uiprefs

// Interest selects the preference categories a subscription reports.
// Categories outside the interest set stay at their zero "no preference"
// values in every delivered bundle.
type Interest uint8

const (
	// InterestColorScheme requests light/dark mode updates.
	InterestColorScheme Interest = 1 << iota
	// InterestContrast requests contrast level updates.
	InterestContrast
	// InterestReducedMotion requests reduced motion updates.
	InterestReducedMotion
	// InterestReducedTransparency requests reduced transparency updates.
	InterestReducedTransparency
	// InterestAccentColor requests accent color updates.
	InterestAccentColor
	// InterestDoubleClickInterval requests double-click interval updates.
	InterestDoubleClickInterval

	// InterestAll requests every preference category.
	InterestAll = InterestColorScheme | InterestContrast |
		InterestReducedMotion | InterestReducedTransparency |
		InterestAccentColor | InterestDoubleClickInterval
)

// Has reports whether every category in flag is part of the interest set.
func (i Interest) Has(flag Interest) bool {
	return i&flag == flag
}

// Mask returns a copy of p with every category outside the interest set
// reset to its "no preference" value.
func (i Interest) Mask(p Preferences) Preferences {
	if !i.Has(InterestColorScheme) {
		p.ColorScheme = ColorSchemeNoPreference
	}
	if !i.Has(InterestContrast) {
		p.Contrast = ContrastNoPreference
	}
	if !i.Has(InterestReducedMotion) {
		p.ReducedMotion = ReducedMotionNoPreference
	}
	if !i.Has(InterestReducedTransparency) {
		p.ReducedTransparency = ReducedTransparencyNoPreference
	}
	if !i.Has(InterestAccentColor) {
		p.AccentColor = AccentColor{}
	}
	if !i.Has(InterestDoubleClickInterval) {
		p.DoubleClickInterval = 0
	}
	return p
}
