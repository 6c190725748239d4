//go:build linux

package monitor

import (
	"context"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/rymdport/portal/settings"

	"github.com/bnema/uiprefs"
)

const (
	appearanceNamespace = "org.freedesktop.appearance"
	interfaceNamespace  = "org.gnome.desktop.interface"
	mouseNamespace      = "org.gnome.desktop.peripherals.mouse"

	colorSchemeKey = "color-scheme"
	contrastKey    = "contrast"
	accentColorKey = "accent-color"
	animationsKey  = "enable-animations"
	doubleClickKey = "double-click"
)

// portalSource streams preferences from the XDG desktop portal settings
// interface (org.freedesktop.portal.Settings) over the session bus. It
// seeds with a full read and then rebuilds the bundle on every
// SettingChanged signal.
type portalSource struct {
	log zerolog.Logger
}

func newPlatformSource(opts Options) (uiprefs.Source, bool) {
	// A working portal implies a session bus and a settings backend;
	// color-scheme is the one key every backend provides.
	if _, err := settings.ReadOne(appearanceNamespace, colorSchemeKey); err != nil {
		opts.Logger.Debug().Err(err).Msg("settings portal unavailable")
		return nil, false
	}
	return &portalSource{log: opts.Logger}, true
}

// Subscribe implements uiprefs.Source. The signal listener runs for the
// application's lifetime; cancelling ctx only stops forwarding.
func (s *portalSource) Subscribe(ctx context.Context, interest uiprefs.Interest) (<-chan uiprefs.Preferences, error) {
	out := make(chan uiprefs.Preferences, 1)
	current := s.readBundle(interest)
	out <- current

	go func() {
		err := settings.OnSignalSettingChanged(func(changed settings.Changed) {
			next, relevant := applySetting(current, changed.Namespace, changed.Key, changed.Value)
			next = interest.Mask(next)
			if !relevant || next.Equal(current) {
				return
			}
			current = next
			select {
			case out <- next:
			case <-ctx.Done():
			}
		})
		// OnSignalSettingChanged only returns when the signal
		// subscription could not be established or the bus is gone;
		// either way no further updates will arrive.
		if err != nil {
			s.log.Debug().Err(err).Msg("settings portal signal subscription ended")
		}
		close(out)
	}()
	return out, nil
}

// readBundle assembles a full bundle from the portal, with gsettings
// fallbacks for the GNOME keys non-GNOME portal backends omit.
func (s *portalSource) readBundle(interest uiprefs.Interest) uiprefs.Preferences {
	var p uiprefs.Preferences

	all, err := settings.ReadAll([]string{appearanceNamespace, interfaceNamespace, mouseNamespace})
	if err != nil {
		s.log.Debug().Err(err).Msg("settings portal read failed")
		return interest.Mask(p)
	}

	if ns, ok := all[appearanceNamespace]; ok {
		if v, ok := ns[colorSchemeKey]; ok {
			p.ColorScheme = mapPortalColorScheme(v.Value())
		}
		if v, ok := ns[contrastKey]; ok {
			p.Contrast = mapPortalContrast(v.Value())
		}
		if v, ok := ns[accentColorKey]; ok {
			p.AccentColor = mapPortalAccentColor(v.Value())
		}
	}

	if ns, ok := all[interfaceNamespace]; ok {
		if v, ok := ns[animationsKey]; ok {
			p.ReducedMotion = mapEnableAnimations(v.Value())
		}
	} else if raw, ok := gsettingsGet(interfaceNamespace, animationsKey); ok {
		p.ReducedMotion = mapEnableAnimations(raw == "true")
	}

	if ns, ok := all[mouseNamespace]; ok {
		if v, ok := ns[doubleClickKey]; ok {
			p.DoubleClickInterval = mapDoubleClickMillis(v.Value())
		}
	} else if raw, ok := gsettingsGet(mouseNamespace, doubleClickKey); ok {
		if ms, err := strconv.Atoi(raw); err == nil {
			p.DoubleClickInterval = mapDoubleClickMillis(ms)
		}
	}

	return interest.Mask(p)
}

// applySetting folds one changed portal setting into the previous bundle.
// It reports false for namespaces and keys this module doesn't track.
func applySetting(prev uiprefs.Preferences, namespace, key string, value any) (uiprefs.Preferences, bool) {
	switch namespace {
	case appearanceNamespace:
		switch key {
		case colorSchemeKey:
			prev.ColorScheme = mapPortalColorScheme(value)
			return prev, true
		case contrastKey:
			prev.Contrast = mapPortalContrast(value)
			return prev, true
		case accentColorKey:
			prev.AccentColor = mapPortalAccentColor(value)
			return prev, true
		}
	case interfaceNamespace:
		if key == animationsKey {
			prev.ReducedMotion = mapEnableAnimations(value)
			return prev, true
		}
	case mouseNamespace:
		if key == doubleClickKey {
			prev.DoubleClickInterval = mapDoubleClickMillis(value)
			return prev, true
		}
	}
	return prev, false
}
