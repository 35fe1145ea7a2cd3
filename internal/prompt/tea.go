package prompt

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// TeaPrompter runs a one-line bubbletea input. Use it when in is a terminal.
type TeaPrompter struct {
	in  io.Reader
	out io.Writer
}

func NewTeaPrompter(in io.Reader, out io.Writer) *TeaPrompter {
	return &TeaPrompter{in: in, out: out}
}

func (p *TeaPrompter) Ask(ctx context.Context, question string) (string, error) {
	prog := tea.NewProgram(
		newInputModel(question),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
		tea.WithContext(ctx),
	)

	final, err := prog.Run()
	if err != nil {
		return "", fmt.Errorf("run prompt: %w", err)
	}

	m, ok := final.(inputModel)
	if !ok || m.cancelled {
		return "", ErrCancelled
	}
	return string(m.value), nil
}

type inputModel struct {
	question  string
	value     []rune
	done      bool
	cancelled bool
}

func newInputModel(question string) inputModel {
	return inputModel{question: question}
}

func (m inputModel) Init() tea.Cmd {
	return nil
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyEnter:
		m.done = true
		return m, tea.Quit
	case tea.KeyCtrlC, tea.KeyEsc:
		m.cancelled = true
		return m, tea.Quit
	case tea.KeyBackspace:
		if len(m.value) > 0 {
			m.value = m.value[:len(m.value)-1]
		}
	case tea.KeyRunes, tea.KeySpace:
		m.value = append(m.value, key.Runes...)
	}
	return m, nil
}

func (m inputModel) View() string {
	if m.done || m.cancelled {
		// leave the answered question on screen
		return fmt.Sprintf("? %s %s\n", m.question, string(m.value))
	}
	return fmt.Sprintf("? %s %s█", m.question, string(m.value))
}
