package spinner

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// StatusMsg replaces the message shown next to the spinner
type StatusMsg string

// DoneMsg stops the spinner
type DoneMsg struct{}

type Model struct {
	spinner  spinner.Model
	quitting bool
	done     bool
	message  string
}

func InitialModel(message string) Model {
	s := spinner.New()
	s.Spinner = spinner.Line
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#01FAC6"))
	return Model{
		spinner: s,
		message: message,
	}
}

func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		default:
			return m, nil
		}

	case StatusMsg:
		m.message = string(msg)
		return m, nil

	case DoneMsg:
		m.done = true
		return m, tea.Quit

	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
}

func (m Model) View() string {
	if m.done {
		return ""
	}
	str := fmt.Sprintf("%s %s", m.spinner.View(), m.message)
	if m.quitting {
		return str + "\n"
	}
	return str
}

// Cancelled reports whether the user quit before the work finished
func (m Model) Cancelled() bool {
	return m.quitting && !m.done
}

// Message returns the current status text
func (m Model) Message() string {
	return m.message
}
