package teatest

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

type tallyMsg struct{}

// tally counts runes and tally messages; "q" quits, "t" emits a follow-up tally.
type tally struct {
	typed   string
	tallies int
}

func (m tally) Init() tea.Cmd {
	return func() tea.Msg { return tallyMsg{} }
}

func (m tally) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tallyMsg:
		m.tallies++
	case tea.KeyMsg:
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "t":
			return m, tea.Batch(func() tea.Msg { return tallyMsg{} }, nil)
		default:
			m.typed += msg.String()
		}
	}
	return m, nil
}

func (m tally) View() string { return m.typed }

func TestDriver_InitAndFollowUpCommands(t *testing.T) {
	d := New(t, tally{})
	assert.Equal(t, 1, d.Model.(tally).tallies)

	d.Key("t")
	assert.Equal(t, 2, d.Model.(tally).tallies)
}

func TestDriver_TypeAndQuit(t *testing.T) {
	d := New(t, tally{})
	d.Type("ab")
	assert.Equal(t, "ab", d.View())

	d.Key("q")
	assert.True(t, d.Quit)

	d.Type("c")
	assert.Equal(t, "ab", d.View(), "messages after quit are dropped")
}

func TestDriver_NamedKeys(t *testing.T) {
	d := New(t, tally{})
	d.Key("enter")
	d.Key("tab")
	assert.Equal(t, "entertab", d.View())
}
