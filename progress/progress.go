// Package progress shows a spinner on the terminal while a blocking step runs.
package progress

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/layervue/create-layervue/icon"
	"github.com/layervue/create-layervue/style"
	"github.com/layervue/create-layervue/util"
)

// ErrInterrupted is returned when the user aborts the spinner with ctrl+c.
var ErrInterrupted = errors.New("interrupted")

type doneMsg struct{ err error }

type model struct {
	spinner spinner.Model
	message string
	err     error
	done    bool
}

func newModel(message string) model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = style.New().Foreground(style.AccentColor)
	return model{spinner: s, message: message}
}

func (m model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case doneMsg:
		m.done, m.err = true, msg.err
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.done, m.err = true, ErrInterrupted
			return m, tea.Quit
		}
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " " + m.message
}

// Run executes fn while a spinner labelled message animates on stdout.
// Outside a terminal it prints an erasable progress line instead.
func Run(message string, fn func() error) error {
	if !util.IsTerminal() {
		erase := util.PrintErasable(fmt.Sprintf("%s %s", icon.Get(icon.Progress), message))
		err := fn()
		erase()
		return err
	}

	return run(message, fn, os.Stdin, os.Stdout)
}

func run(message string, fn func() error, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(newModel(message), tea.WithInput(in), tea.WithOutput(out))

	go func() {
		p.Send(doneMsg{err: fn()})
	}()

	final, err := p.Run()
	if err != nil {
		return err
	}
	return final.(model).err
}
