package callbacks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	tele "gopkg.in/telebot.v4"
)

func TestParseCallbackData(t *testing.T) {
	cases := []struct {
		name          string
		cb            *tele.Callback
		unique, value string
	}{
		{"nil", nil, "", ""},
		{"encoded", &tele.Callback{Data: "\fmenu|find_drink"}, "menu", "find_drink"},
		{"no payload", &tele.Callback{Data: "\fsettings"}, "settings", ""},
		{"payload with separator", &tele.Callback{Data: "\fgame|a|b"}, "game", "a|b"},
		{"matched endpoint", &tele.Callback{Unique: "game", Data: "1"}, "game", "1"},
		{"plain", &tele.Callback{Data: "raw"}, "raw", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			unique, payload := ParseCallbackData(tc.cb)
			assert.Equal(t, tc.unique, unique)
			assert.Equal(t, tc.value, payload)
		})
	}
}
