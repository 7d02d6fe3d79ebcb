package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/barbot/core/telegram/commands"
)

func noop(tele.Context) error { return nil }

func TestRegisterCommand(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterCommand("/start", commands.Command{Handler: noop, Description: "Main menu"})
	reg.RegisterCommand("/help", commands.Command{Handler: noop, Description: "Help"})
	reg.RegisterCommand("/suggestions", commands.Command{Handler: noop, Description: "Suggestions", AdminOnly: true})
	reg.RegisterCommand("/back", commands.Command{Handler: noop, Description: "Back", Hidden: true})

	reg.RegisterCommand("finish", commands.Command{Handler: noop, Description: "no slash"})
	reg.RegisterCommand("/empty", commands.Command{Handler: noop})
	reg.RegisterCommand("/start", commands.Command{Handler: noop, Description: "duplicate"})

	assert.Len(t, reg.Commands(), 4)
	assert.Equal(t, "Main menu", reg.Commands()["/start"].Description)

	visible := reg.ListCommands(true)
	require.Len(t, visible, 2)
	assert.Equal(t, "/help", visible[0].Text)
	assert.Equal(t, "/start", visible[1].Text)
	assert.Len(t, reg.ListCommands(false), 4)
}

func TestRegisterCallback(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.RegisterCallback("menu", noop))
	require.NoError(t, reg.RegisterCallback("game", noop))
	assert.Error(t, reg.RegisterCallback("menu", noop))
	assert.Error(t, reg.RegisterCallback("", noop))
	assert.Error(t, reg.RegisterCallback("settings", nil))

	_, ok := reg.GetCallback("menu")
	assert.True(t, ok)
	_, ok = reg.GetCallback("settings")
	assert.False(t, ok)
	assert.Equal(t, []string{"game", "menu"}, reg.ListCallbacks())
}

func TestFallbacks(t *testing.T) {
	reg := NewRegistry()
	assert.NotNil(t, reg.CallbackNotFound())
	reg.SetCallbackNotFound(nil)
	assert.NotNil(t, reg.CallbackNotFound())

	assert.Nil(t, reg.TextFallback())
	reg.SetTextFallback(noop)
	assert.NotNil(t, reg.TextFallback())
}
