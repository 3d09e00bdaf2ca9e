// Package teatest drives bubbletea models in tests without a tea.Program.
//
// Messages go straight to Update and the Cmds that come back are run inline,
// so a test sees the model after every key press with no goroutines left
// behind.
package teatest

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxChain bounds how many Cmds a single message may trigger in a row.
const maxChain = 100

// cmdTimeout is how long a Cmd may run before it is dropped. Completing a
// lesson runs a whole store transaction inside a Cmd; timer-based Cmds such
// as tea.Tick never return in time and are skipped.
const cmdTimeout = 50 * time.Millisecond

// Driver feeds messages to Model and records whether it asked to quit.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set once a Cmd yields tea.QuitMsg. The runtime normally
	// swallows that message, so models rarely see it themselves.
	Quitting bool
}

// Option adjusts a Driver before the first message is sent.
type Option func(*Driver)

// New wraps model. Call DrainInit to run the model's Init Cmd.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// WithSize delivers a tea.WindowSizeMsg as the terminal would on start-up.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		d.Model, _ = d.Model.Update(tea.WindowSizeMsg{Width: w, Height: h})
	}
}

func (d *Driver) DrainInit() {
	d.T.Helper()
	d.run(d.Model.Init(), 0)
}

// Send delivers msg unless the model has already quit.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	var cmd tea.Cmd
	d.Model, cmd = d.Model.Update(msg)
	d.run(cmd, 0)
}

func (d *Driver) press(k tea.KeyType) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: k})
}

// PressKey sends a single printable key.
func (d *Driver) PressKey(r rune) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

func (d *Driver) PressEnter() { d.T.Helper(); d.press(tea.KeyEnter) }
func (d *Driver) PressEsc()   { d.T.Helper(); d.press(tea.KeyEsc) }
func (d *Driver) PressRight() { d.T.Helper(); d.press(tea.KeyRight) }
func (d *Driver) PressLeft()  { d.T.Helper(); d.press(tea.KeyLeft) }

func (d *Driver) View() string {
	return d.Model.View()
}

// run executes cmd and feeds its message back through Update until the
// chain ends, the model quits or maxChain is reached.
func (d *Driver) run(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil {
		return
	}
	if depth >= maxChain {
		d.T.Logf("teatest: stopped after %d chained commands", maxChain)
		return
	}

	switch msg := await(cmd).(type) {
	case nil:
	case tea.BatchMsg:
		for _, sub := range msg {
			d.run(sub, depth+1)
		}
	case tea.QuitMsg:
		d.Quitting = true
		d.Model, _ = d.Model.Update(msg)
	default:
		var next tea.Cmd
		d.Model, next = d.Model.Update(msg)
		d.run(next, depth+1)
	}
}

// await returns cmd's message, or nil when it takes longer than cmdTimeout.
func await(cmd tea.Cmd) tea.Msg {
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	select {
	case msg := <-done:
		return msg
	case <-time.After(cmdTimeout):
		return nil
	}
}
