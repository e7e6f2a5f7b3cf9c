// Package clipboard copies text to the system clipboard, falling back
// to OSC 52 escape sequences when running over SSH or inside a
// terminal multiplexer where no local clipboard tool is reachable.
package clipboard

import (
	"os"
	"strings"
	"sync"

	"github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

// Clipboard defines the interface for clipboard operations.
type Clipboard interface {
	Copy(text string) error
}

// SystemClipboard implements Clipboard using the system clipboard,
// with OSC 52 for remote sessions.
type SystemClipboard struct{}

// Copy copies text to the clipboard.
func (SystemClipboard) Copy(text string) error {
	if shouldUseOSC52() {
		return copyOSC52(text)
	}
	if err := clipboard.WriteAll(text); err != nil {
		// No local clipboard tool available; OSC 52 may still work.
		return copyOSC52(text)
	}
	return nil
}

// shouldUseOSC52 reports whether the process appears to be running in
// a remote session or multiplexer where writing the escape sequence to
// the controlling terminal beats shelling out to a clipboard tool.
func shouldUseOSC52() bool {
	for _, v := range []string{"SSH_TTY", "SSH_CLIENT", "SSH_CONNECTION", "TMUX", "STY"} {
		if os.Getenv(v) != "" {
			return true
		}
	}
	return false
}

func copyOSC52(text string) error {
	seq := osc52.New(text)
	if os.Getenv("TMUX") != "" {
		seq = seq.Tmux()
	} else if strings.HasPrefix(os.Getenv("TERM"), "screen") {
		seq = seq.Screen()
	}

	tty, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
	if err != nil {
		// No controlling terminal; stderr is the next best target.
		_, werr := seq.WriteTo(os.Stderr)
		return werr
	}
	defer tty.Close()

	_, err = seq.WriteTo(tty)
	return err
}

// MockClipboard records copied text for tests.
type MockClipboard struct {
	mu     sync.Mutex
	copied []string
	// Err, when set, is returned by Copy.
	Err error
}

// Copy records text and returns Err.
func (m *MockClipboard) Copy(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.copied = append(m.copied, text)
	return nil
}

// Copied returns everything copied so far.
func (m *MockClipboard) Copied() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.copied...)
}

// Last returns the most recently copied text, or "".
func (m *MockClipboard) Last() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.copied) == 0 {
		return ""
	}
	return m.copied[len(m.copied)-1]
}
