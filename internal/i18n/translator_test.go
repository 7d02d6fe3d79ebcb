package i18n

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m3rciful/barbot/internal/settings"
)

func TestEmbeddedTablesAreComplete(t *testing.T) {
	tr, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "Back", tr.T(settings.English, "button.back"))
	assert.Equal(t, "Назад", tr.T(settings.Ukrainian, "button.back"))
	assert.Equal(t, "See you soon, Bob!", tr.T(settings.English, "menu.farewell", "Bob"))

	yes, no := tr.YesNo(settings.Ukrainian)
	assert.Equal(t, "так", yes)
	assert.Equal(t, "ні", no)
	assert.Equal(t, "yes", tr.Bool(settings.English, true))
}

func TestValidationMessagesExist(t *testing.T) {
	tr, err := Default()
	require.NoError(t, err)

	for _, id := range []string{settings.MsgNeedNumber, settings.MsgLimitRange, settings.MsgNameEmpty} {
		assert.True(t, tr.Has(id), id)
	}
}

func TestFallbacks(t *testing.T) {
	tr, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "Back", tr.T("de", "button.back"))
	assert.Equal(t, "no.such.id", tr.T(settings.English, "no.such.id"))
}

func TestNewRejectsIncompleteLocale(t *testing.T) {
	fsys := fstest.MapFS{
		"en.yaml": {Data: []byte("menu:\n  prompt: hi\n  help: help\n")},
		"uk.yaml": {Data: []byte("menu:\n  prompt: привіт\n")},
	}
	_, err := New(fsys)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "menu.help")
}

func TestNewRejectsNonStringLeaf(t *testing.T) {
	fsys := fstest.MapFS{
		"en.yaml": {Data: []byte("menu:\n  prompt: [a, b]\n")},
		"uk.yaml": {Data: []byte("menu:\n  prompt: b\n")},
	}
	_, err := New(fsys)
	require.Error(t, err)
}
