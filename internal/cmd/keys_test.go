package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jtui/internal/config"
)

func TestKeysSetPersistsBinding(t *testing.T) {
	t.Setenv("JTUI_HOME", t.TempDir())

	set := &KeysSetCmd{Key: "quit", Value: "Q, ctrl+d"}
	require.NoError(t, set.Run(&CLI{}))

	settings, err := config.LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, config.KeyBindingValue{"Q", "ctrl+d"}, settings.Keys["quit"])
}

func TestKeysSetRejectsUnknownName(t *testing.T) {
	t.Setenv("JTUI_HOME", t.TempDir())

	set := &KeysSetCmd{Key: "warp_speed", Value: "w"}
	err := set.Run(&CLI{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown key")
}

func TestKeysSetRejectsConflict(t *testing.T) {
	t.Setenv("JTUI_HOME", t.TempDir())

	require.NoError(t, (&KeysSetCmd{Key: "help", Value: "x"}).Run(&CLI{}))

	err := (&KeysSetCmd{Key: "quit", Value: "x"}).Run(&CLI{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "conflict")
}
