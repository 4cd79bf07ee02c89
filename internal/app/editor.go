package app

import (
	"errors"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/v2/textarea"
	tea "github.com/charmbracelet/bubbletea/v2"
)

// errEditorContent reports that the editor buffer could not be serialized to
// a valid document. The caller keeps the note's prior content in that case.
var errEditorContent = errors.New("editor buffer is not valid UTF-8")

// Editor wraps the multi-line textarea bubble and exposes the surface the
// reconciliation engine talks to. SetContent and Reset replace the buffer
// wholesale; Content serializes it.
type Editor struct {
	area textarea.Model
}

func NewEditor(width, height int) *Editor {
	area := textarea.New()
	area.Placeholder = "Write something…"
	area.ShowLineNumbers = false
	area.SetWidth(width)
	area.SetHeight(height)
	return &Editor{area: area}
}

func (e *Editor) Resize(width, height int) {
	e.area.SetWidth(width)
	e.area.SetHeight(height)
}

func (e *Editor) Focus() {
	e.area.Focus()
}

func (e *Editor) Blur() {
	e.area.Blur()
}

func (e *Editor) Focused() bool {
	return e.area.Focused()
}

func (e *Editor) SetContent(content string) {
	e.area.SetValue(content)
}

func (e *Editor) Content() (string, error) {
	value := e.area.Value()
	if !utf8.ValidString(value) {
		return "", errEditorContent
	}
	return value, nil
}

func (e *Editor) Reset() {
	e.area.SetValue("")
}

func (e *Editor) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	e.area, cmd = e.area.Update(msg)
	return cmd
}

func (e *Editor) View() string {
	return e.area.View()
}
