package monitor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/uiprefs"
)

func clearPreferenceEnv(t *testing.T) {
	t.Helper()
	t.Setenv("GTK_THEME", "")
	t.Setenv("REDUCE_MOTION", "")
	t.Setenv("REDUCE_TRANSPARENCY", "")
	t.Setenv("HIGH_CONTRAST", "")
}

func TestEnvSourceEmptyEnvironment(t *testing.T) {
	clearPreferenceEnv(t)

	stream, err := NewEnv().Subscribe(context.Background(), uiprefs.InterestAll)
	require.NoError(t, err)

	p := <-stream
	assert.True(t, p.Equal(uiprefs.Preferences{}))
}

func TestEnvSourceDetectsPreferences(t *testing.T) {
	clearPreferenceEnv(t)
	t.Setenv("GTK_THEME", "Adwaita-Dark")
	t.Setenv("REDUCE_MOTION", "1")
	t.Setenv("HIGH_CONTRAST", "true")

	stream, err := NewEnv().Subscribe(context.Background(), uiprefs.InterestAll)
	require.NoError(t, err)

	p := <-stream
	assert.True(t, p.ColorScheme.IsDark())
	assert.True(t, p.ReducedMotion.IsReduce())
	assert.True(t, p.Contrast.IsMore())
	assert.True(t, p.ReducedTransparency.IsNoPreference())
}

func TestEnvSourceLightTheme(t *testing.T) {
	clearPreferenceEnv(t)
	t.Setenv("GTK_THEME", "Adwaita")

	stream, err := NewEnv().Subscribe(context.Background(), uiprefs.InterestAll)
	require.NoError(t, err)

	p := <-stream
	assert.True(t, p.ColorScheme.IsLight())
}

func TestEnvSourceRespectsInterest(t *testing.T) {
	clearPreferenceEnv(t)
	t.Setenv("GTK_THEME", "dark")
	t.Setenv("REDUCE_MOTION", "yes")

	stream, err := NewEnv().Subscribe(context.Background(), uiprefs.InterestReducedMotion)
	require.NoError(t, err)

	p := <-stream
	assert.True(t, p.ColorScheme.IsNoPreference())
	assert.True(t, p.ReducedMotion.IsReduce())
}

func TestEnvTruthy(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"1", true},
		{"true", true},
		{"YES", true},
		{" on ", true},
		{"", false},
		{"0", false},
		{"false", false},
		{"maybe", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, envTruthy(tt.value))
		})
	}
}
