// Package teatest drives bubbletea models synchronously in tests, without
// starting a tea.Program.
package teatest

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxDepth bounds how many chained commands a single message may produce.
const maxDepth = 64

// cmdTimeout skips commands that block, such as cursor blink timers.
const cmdTimeout = 10 * time.Millisecond

// Driver feeds messages to a model and resolves the commands it returns.
type Driver struct {
	t     *testing.T
	Model tea.Model

	// Quit is set once the model returns tea.Quit.
	Quit bool
	// Sent counts messages delivered to Update, including resolved commands.
	Sent int
}

// New wraps model and runs its Init command.
func New(t *testing.T, model tea.Model) *Driver {
	t.Helper()
	d := &Driver{t: t, Model: model}
	d.resolve(model.Init(), 0)
	return d
}

// Send delivers msg unless the model has already quit.
func (d *Driver) Send(msg tea.Msg) {
	d.t.Helper()
	if d.Quit {
		return
	}
	d.update(msg, 0)
}

// Key sends a named key: "enter", "esc", "ctrl+c", "up", "down", "tab".
// Anything else is typed as runes.
func (d *Driver) Key(name string) {
	d.t.Helper()
	switch name {
	case "enter":
		d.Send(tea.KeyMsg{Type: tea.KeyEnter})
	case "esc":
		d.Send(tea.KeyMsg{Type: tea.KeyEsc})
	case "ctrl+c":
		d.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
	case "up":
		d.Send(tea.KeyMsg{Type: tea.KeyUp})
	case "down":
		d.Send(tea.KeyMsg{Type: tea.KeyDown})
	case "tab":
		d.Send(tea.KeyMsg{Type: tea.KeyTab})
	default:
		d.Type(name)
	}
}

// Type sends s one rune at a time.
func (d *Driver) Type(s string) {
	d.t.Helper()
	for _, r := range s {
		d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// View renders the current model.
func (d *Driver) View() string {
	return d.Model.View()
}

func (d *Driver) update(msg tea.Msg, depth int) {
	d.Sent++
	next, cmd := d.Model.Update(msg)
	d.Model = next
	d.resolve(cmd, depth+1)
}

func (d *Driver) resolve(cmd tea.Cmd, depth int) {
	d.t.Helper()
	if cmd == nil {
		return
	}
	if depth >= maxDepth {
		d.t.Logf("teatest: command chain exceeded %d", maxDepth)
		return
	}

	msg := run(cmd)
	switch m := msg.(type) {
	case nil:
		return
	case tea.QuitMsg:
		d.Quit = true
	case tea.BatchMsg:
		for _, sub := range m {
			d.resolve(sub, depth+1)
		}
	default:
		if blink(msg) || d.Quit {
			return
		}
		d.update(msg, depth)
	}
}

func run(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(cmdTimeout):
		return nil
	}
}

// blink matches the unexported cursor blink messages from bubbles.
func blink(msg tea.Msg) bool {
	return strings.Contains(strings.ToLower(fmt.Sprintf("%T", msg)), "blink")
}
