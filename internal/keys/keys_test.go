package keys

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap_Assignments(t *testing.T) {
	k := DefaultKeyMap()

	tests := []struct {
		name     string
		binding  key.Binding
		expected []string
	}{
		{"Up uses k and up", k.Up, []string{"k", "up"}},
		{"Down uses j and down", k.Down, []string{"j", "down"}},
		{"GotoTop uses g and home", k.GotoTop, []string{"g", "home"}},
		{"GotoBottom uses G and end", k.GotoBottom, []string{"G", "end"}},
		{"Yank uses y", k.Yank, []string{"y"}},
		{"Reload uses r", k.Reload, []string{"r"}},
		{"ToggleLineNumbers uses n", k.ToggleLineNumbers, []string{"n"}},
		{"Help uses ?", k.Help, []string{"?"}},
		{"Quit uses q and ctrl+c", k.Quit, []string{"q", "ctrl+c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.binding.Keys())
		})
	}
}

func TestDefaultKeyMap_HelpTextDefined(t *testing.T) {
	k := DefaultKeyMap()

	for _, row := range k.FullHelp() {
		for _, b := range row {
			help := b.Help()
			require.NotEmpty(t, help.Key, "key help should not be empty")
			require.NotEmpty(t, help.Desc, "description help should not be empty")
		}
	}
}

func TestShortHelp(t *testing.T) {
	k := DefaultKeyMap()
	help := k.ShortHelp()

	require.Len(t, help, 3)
	require.Equal(t, k.Yank, help[0])
	require.Equal(t, k.Help, help[1])
	require.Equal(t, k.Quit, help[2])
}

func TestFullHelp(t *testing.T) {
	k := DefaultKeyMap()
	help := k.FullHelp()

	require.Len(t, help, 3, "full help should contain 3 rows")
	require.Contains(t, help[0], k.Up)
	require.Contains(t, help[0], k.Down)
	require.Contains(t, help[1], k.Yank)
	require.Contains(t, help[1], k.Reload)
	require.Contains(t, help[2], k.Quit)
}
