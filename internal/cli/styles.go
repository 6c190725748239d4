package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/uiprefs"
)

// Theme holds the lipgloss styles for snapshot rendering.
type Theme struct {
	Title  lipgloss.Style
	Key    lipgloss.Style
	Value  lipgloss.Style
	Muted  lipgloss.Style
	Error  lipgloss.Style
	Swatch lipgloss.Style
}

// NewTheme returns the default CLI theme.
func NewTheme() *Theme {
	return &Theme{
		Title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Key:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Width(22),
		Value:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		Muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Swatch: lipgloss.NewStyle().Bold(true),
	}
}

// RenderSnapshot renders a preference bundle as aligned key/value lines.
// "No preference" values are dimmed.
func (t *Theme) RenderSnapshot(p uiprefs.Preferences) string {
	var b strings.Builder

	writeLine := func(key, value string, noPreference bool) {
		style := t.Value
		if noPreference {
			style = t.Muted
		}
		b.WriteString(t.Key.Render(key))
		b.WriteString(style.Render(value))
		b.WriteByte('\n')
	}

	writeLine("Color scheme", p.ColorScheme.String(), p.ColorScheme.IsNoPreference())
	writeLine("Contrast", p.Contrast.String(), p.Contrast.IsNoPreference())
	writeLine("Reduced motion", p.ReducedMotion.String(), p.ReducedMotion.IsNoPreference())
	writeLine("Reduced transparency", p.ReducedTransparency.String(), p.ReducedTransparency.IsNoPreference())

	if p.AccentColor.Valid {
		hex := p.AccentColor.Hex()
		swatch := t.Swatch.Foreground(lipgloss.Color(hex)).Render("●")
		b.WriteString(t.Key.Render("Accent color"))
		b.WriteString(swatch)
		b.WriteByte(' ')
		b.WriteString(t.Value.Render(hex))
		b.WriteByte('\n')
	} else {
		writeLine("Accent color", "none", true)
	}

	if p.DoubleClickInterval > 0 {
		writeLine("Double-click interval", fmt.Sprintf("%dms", p.DoubleClickInterval.Milliseconds()), false)
	} else {
		writeLine("Double-click interval", "no-preference", true)
	}

	return b.String()
}
