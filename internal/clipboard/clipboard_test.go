package clipboard

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShouldUseOSC52(t *testing.T) {
	clearEnv := func() {
		os.Unsetenv("SSH_TTY")
		os.Unsetenv("SSH_CLIENT")
		os.Unsetenv("SSH_CONNECTION")
		os.Unsetenv("TMUX")
		os.Unsetenv("STY")
	}

	tests := []struct {
		name     string
		envVars  map[string]string
		expected bool
	}{
		{
			name:     "no env vars set",
			envVars:  map[string]string{},
			expected: false,
		},
		{
			name:     "SSH_TTY set",
			envVars:  map[string]string{"SSH_TTY": "/dev/pts/0"},
			expected: true,
		},
		{
			name:     "SSH_CLIENT set",
			envVars:  map[string]string{"SSH_CLIENT": "192.168.1.1 12345 22"},
			expected: true,
		},
		{
			name:     "SSH_CONNECTION set",
			envVars:  map[string]string{"SSH_CONNECTION": "192.168.1.1 12345 192.168.1.2 22"},
			expected: true,
		},
		{
			name:     "TMUX set",
			envVars:  map[string]string{"TMUX": "/tmp/tmux-1000/default,12345,0"},
			expected: true,
		},
		{
			name:     "STY set (GNU screen)",
			envVars:  map[string]string{"STY": "12345.pts-0.hostname"},
			expected: true,
		},
		{
			name:     "SSH and TMUX both set",
			envVars:  map[string]string{"SSH_TTY": "/dev/pts/0", "TMUX": "/tmp/tmux"},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv()
			for k, v := range tt.envVars {
				os.Setenv(k, v)
			}
			t.Cleanup(clearEnv)

			require.Equal(t, tt.expected, shouldUseOSC52())
		})
	}
}

func TestMockClipboard_RecordsCopies(t *testing.T) {
	var m MockClipboard
	require.NoError(t, m.Copy("first"))
	require.NoError(t, m.Copy("second"))

	require.Equal(t, []string{"first", "second"}, m.Copied())
	require.Equal(t, "second", m.Last())
}

func TestMockClipboard_EmptyLast(t *testing.T) {
	var m MockClipboard
	require.Empty(t, m.Last())
}

func TestMockClipboard_ErrPropagates(t *testing.T) {
	m := MockClipboard{Err: errors.New("denied")}
	require.Error(t, m.Copy("text"))
	require.Empty(t, m.Copied())
}
