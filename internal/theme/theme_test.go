package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultTheme(t *testing.T) {
	th := Load("default")
	require.NotNil(t, th)
	assert.Equal(t, "default", th.Name)

	for _, name := range []string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white", "gray"} {
		_, ok := th.Color(name)
		assert.True(t, ok, "palette should contain %s", name)
	}

	for _, level := range []string{"info", "success", "warning", "error"} {
		_, ok := th.Level(level)
		assert.True(t, ok, "theme should style level %s", level)
	}

	// Internal and plain text carry no level style.
	_, ok := th.Level("internal")
	assert.False(t, ok)
	_, ok = th.Level("")
	assert.False(t, ok)
}

func TestLoadEmptyNameIsDefault(t *testing.T) {
	assert.Equal(t, "default", Load("").Name)
}

func TestLoadPlainTheme(t *testing.T) {
	th := Load("plain")
	require.NotNil(t, th)
	assert.Equal(t, "plain", th.Name)

	// Plain styles render text unchanged.
	style, ok := th.Level("warning")
	require.True(t, ok)
	assert.Equal(t, "hello", style.Render("hello"))
}

func TestLoadUnknownThemeFallsBack(t *testing.T) {
	th := Load("no-such-theme")
	require.NotNil(t, th)
	_, ok := th.Color("red")
	assert.True(t, ok, "fallback must keep the standard palette names")
}

func TestColorNamesSorted(t *testing.T) {
	names := Load("default").ColorNames()
	require.NotEmpty(t, names)
	for i := 1; i < len(names); i++ {
		assert.Less(t, names[i-1], names[i], "names must be sorted")
	}
}

func TestParseRejectsDanglingReferences(t *testing.T) {
	_, err := parse([]byte("name: broken\npalette:\n  red: \"1\"\nlevels:\n  info: missing\n"))
	assert.Error(t, err)
}

func TestFallbackTheme(t *testing.T) {
	th := fallback("x")
	_, ok := th.Level("info")
	assert.True(t, ok)
	assert.Equal(t, "text", th.Accent().Render("text"))
}
