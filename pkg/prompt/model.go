package prompt

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	questionStyle = lipgloss.NewStyle().Bold(true)
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Model is a single-line Bubble Tea prompt.
type Model struct {
	question  string
	input     textinput.Model
	submitted bool
	cancelled bool
}

// NewModel creates a focused prompt asking question.
func NewModel(question string) Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "/var/log/app/access.log"
	ti.CharLimit = 4096
	ti.Focus()

	return Model{question: question, input: ti}
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key presses; enter submits, esc and ctrl+c cancel.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter":
			m.submitted = true
			return m, tea.Quit
		case "esc", "ctrl+c":
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the question and the input line.
func (m Model) View() string {
	if m.submitted || m.cancelled {
		return questionStyle.Render(m.question) + m.input.Value() + "\n"
	}
	return questionStyle.Render(m.question) + m.input.View() + "\n" +
		helpStyle.Render("enter:confirm esc:cancel") + "\n"
}

// Value returns the text typed so far.
func (m Model) Value() string {
	return m.input.Value()
}

// Submitted reports whether the operator confirmed with enter.
func (m Model) Submitted() bool { return m.submitted }

// Cancelled reports whether the operator aborted the prompt.
func (m Model) Cancelled() bool { return m.cancelled }
