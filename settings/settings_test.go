package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	s, err := ReadSettingsFrom(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "player", s.GetPlayerName())
	assert.False(t, s.GetNoGhost())
	assert.Equal(t, "en", s.GetLanguage())
}

func TestRoundTrip(t *testing.T) {
	s, err := ReadSettingsFrom(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, s.SetPlayerName("ada"))
	require.NoError(t, s.SetNoGhost(true))
	require.NoError(t, s.SetLanguage("de"))

	assert.Equal(t, "ada", s.GetPlayerName())
	assert.True(t, s.GetNoGhost())
	assert.Equal(t, "de", s.GetLanguage())
}

func TestPersistsAcrossReads(t *testing.T) {
	dir := t.TempDir()
	s, err := ReadSettingsFrom(dir)
	require.NoError(t, err)
	require.NoError(t, s.SetPlayerName("bob"))

	s, err = ReadSettingsFrom(dir)
	require.NoError(t, err)
	assert.Equal(t, "bob", s.GetPlayerName())
}

func TestIndependentInstances(t *testing.T) {
	a, err := ReadSettingsFrom(t.TempDir())
	require.NoError(t, err)
	b, err := ReadSettingsFrom(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, a.SetPlayerName("ada"))
	assert.Equal(t, "player", b.GetPlayerName())
}
