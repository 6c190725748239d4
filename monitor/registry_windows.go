//go:build windows

package monitor

import (
	"strconv"
	"time"

	"golang.org/x/sys/windows/registry"

	"github.com/bnema/uiprefs"
)

const (
	personalizeKeyPath   = `SOFTWARE\Microsoft\Windows\CurrentVersion\Themes\Personalize`
	accentKeyPath        = `SOFTWARE\Microsoft\Windows\CurrentVersion\Explorer\Accent`
	mouseKeyPath         = `Control Panel\Mouse`
	highContrastKeyPath  = `Control Panel\Accessibility\HighContrast`
	windowMetricsKeyPath = `Control Panel\Desktop\WindowMetrics`
)

// hcfHighContrastOn is the HCF_HIGHCONTRASTON bit of the HighContrast
// Flags value.
const hcfHighContrastOn = 0x1

func newPlatformSource(opts Options) (uiprefs.Source, bool) {
	return &pollSource{interval: opts.PollInterval, read: readRegistry}, true
}

// readRegistry probes HKCU for the preference values. Keys missing on
// older Windows versions read as "no preference".
func readRegistry() uiprefs.Preferences {
	var p uiprefs.Preferences

	if v, ok := registryDword(personalizeKeyPath, "AppsUseLightTheme"); ok {
		p.ColorScheme = mapAppsUseLightTheme(v)
	}
	if v, ok := registryDword(accentKeyPath, "AccentColorMenu"); ok {
		p.AccentColor = accentFromABGR(v)
	}
	if v, ok := registryString(mouseKeyPath, "DoubleClickSpeed"); ok {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			p.DoubleClickInterval = time.Duration(ms) * time.Millisecond
		}
	}
	if v, ok := registryString(highContrastKeyPath, "Flags"); ok {
		if flags, err := strconv.Atoi(v); err == nil && flags&hcfHighContrastOn != 0 {
			p.Contrast = uiprefs.ContrastMore
		}
	}
	if v, ok := registryString(windowMetricsKeyPath, "MinAnimate"); ok && v == "0" {
		p.ReducedMotion = uiprefs.ReducedMotionReduce
	}
	return p
}

func mapAppsUseLightTheme(v uint64) uiprefs.ColorScheme {
	if v == 0 {
		return uiprefs.ColorSchemeDark
	}
	return uiprefs.ColorSchemeLight
}

// accentFromABGR maps an AccentColorMenu dword (0xAABBGGRR) to sRGB.
func accentFromABGR(v uint64) uiprefs.AccentColor {
	r := float64(v&0xff) / 255
	g := float64(v>>8&0xff) / 255
	b := float64(v>>16&0xff) / 255
	return uiprefs.NewAccentColor(r, g, b)
}

func registryDword(path, name string) (uint64, bool) {
	k, err := registry.OpenKey(registry.CURRENT_USER, path, registry.QUERY_VALUE)
	if err != nil {
		return 0, false
	}
	defer k.Close()

	v, _, err := k.GetIntegerValue(name)
	if err != nil {
		return 0, false
	}
	return v, true
}

func registryString(path, name string) (string, bool) {
	k, err := registry.OpenKey(registry.CURRENT_USER, path, registry.QUERY_VALUE)
	if err != nil {
		return "", false
	}
	defer k.Close()

	v, _, err := k.GetStringValue(name)
	if err != nil {
		return "", false
	}
	return v, true
}
