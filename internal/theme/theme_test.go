package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plannerview/internal/domain"
)

func TestPredefinedThemes(t *testing.T) {
	themes := GetPredefinedThemes()
	require.Len(t, themes, len(GetThemeNames()))

	for _, name := range GetThemeNames() {
		th, ok := themes[name]
		require.True(t, ok, name)
		assert.Equal(t, name, th.Name)
		assert.NotEmpty(t, th.PriorityUrgent)
		assert.NotEmpty(t, th.ProgressDone)
		assert.NotEmpty(t, th.Pinned)
	}
}

func TestGetTheme(t *testing.T) {
	th, err := GetTheme("nord")
	require.NoError(t, err)
	assert.Equal(t, "nord", th.Name)

	_, err = GetTheme("neon")
	assert.ErrorIs(t, err, ErrThemeNotFound)

	assert.True(t, ThemeExists("dark"))
	assert.False(t, ThemeExists("neon"))
	assert.Equal(t, "default", GetDefaultTheme().Name)
}

func TestResolve(t *testing.T) {
	assert.Equal(t, "default", Resolve("").Name)
	assert.Equal(t, "default", Resolve("neon").Name)
	assert.Equal(t, "light", Resolve("light").Name)
}

func TestStylesCoverEveryValue(t *testing.T) {
	s := NewStyles(DefaultTheme())

	for _, p := range domain.Priorities() {
		_, ok := s.priority[p]
		assert.True(t, ok, p)
	}
	for _, p := range domain.Progresses() {
		_, ok := s.progress[p]
		assert.True(t, ok, p)
	}
	assert.NotPanics(t, func() {
		s.PriorityStyle("bogus").Render("x")
		s.ProgressStyle("bogus").Render("x")
	})
}
