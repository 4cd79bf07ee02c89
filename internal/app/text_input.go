package app

import (
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
)

// TextInput is a thin wrapper over the single-line input bubble so the model
// deals in plain values and commands.
type TextInput struct {
	input textinput.Model
}

func NewTextInput(width int, placeholder string) *TextInput {
	input := textinput.New()
	input.Placeholder = placeholder
	input.SetWidth(width)
	return &TextInput{input: input}
}

func (t *TextInput) Resize(width int) {
	t.input.SetWidth(width)
}

func (t *TextInput) Focus() {
	t.input.Focus()
}

func (t *TextInput) Blur() {
	t.input.Blur()
}

func (t *TextInput) Focused() bool {
	return t.input.Focused()
}

func (t *TextInput) SetValue(value string) {
	t.input.SetValue(value)
}

func (t *TextInput) Value() string {
	return t.input.Value()
}

func (t *TextInput) Clear() {
	t.input.SetValue("")
}

func (t *TextInput) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return cmd
}

func (t *TextInput) View() string {
	return t.input.View()
}
