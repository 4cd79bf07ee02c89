package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/v2/list"
	tea "github.com/charmbracelet/bubbletea/v2"

	"jot/internal/types"
)

type noteItem struct {
	note types.Note
}

func (n noteItem) Title() string {
	return n.note.Title
}

func (n noteItem) Description() string {
	return n.note.Category
}

func (n noteItem) FilterValue() string {
	return n.note.Title
}

type noteDelegate struct{}

func (d noteDelegate) Height() int  { return 1 }
func (d noteDelegate) Spacing() int { return 0 }
func (d noteDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd {
	return nil
}

func (d noteDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	entry, ok := item.(noteItem)
	if !ok {
		return
	}
	label := entry.note.Title
	meta := ""
	if entry.note.Category != "" {
		meta = " " + categoryStyle.Render("["+entry.note.Category+"]")
	}
	if len(entry.note.Tags) > 0 {
		meta += " " + tagStyle.Render("#"+strings.Join(entry.note.Tags, " #"))
	}
	line := label + meta
	if teaser := firstLine(entry.note.Content, 40); teaser != "" {
		line += "  " + helpStyle.Render(teaser)
	}
	line = truncateToWidth(line, m.Width())
	style := noteTitleStyle
	if index == m.Index() {
		style = selectedStyle
		line = padToWidth(line, m.Width())
	}
	io.WriteString(w, style.Render(line))
}

// NoteList presents the filtered collection. Built-in list filtering stays
// off; the query pipeline owns which notes are visible.
type NoteList struct {
	list list.Model
}

func NewNoteList(width, height int) *NoteList {
	delegate := noteDelegate{}
	mlist := list.New([]list.Item{}, delegate, width, height)
	mlist.SetShowHelp(false)
	mlist.SetFilteringEnabled(false)
	mlist.SetShowPagination(false)
	mlist.SetShowStatusBar(false)
	mlist.SetShowTitle(false)
	return &NoteList{list: mlist}
}

func (n *NoteList) SetSize(width, height int) {
	n.list.SetSize(width, height)
}

// SetNotes replaces the visible collection, keeping the cursor on the same
// note id when it survives the change.
func (n *NoteList) SetNotes(notes []types.Note) {
	selected := n.SelectedID()
	items := make([]list.Item, 0, len(notes))
	for _, note := range notes {
		items = append(items, noteItem{note: note})
	}
	n.list.SetItems(items)
	if selected != 0 {
		for i, note := range notes {
			if note.ID == selected {
				n.list.Select(i)
				return
			}
		}
	}
	if len(notes) > 0 {
		n.list.Select(0)
	}
}

func (n *NoteList) Move(delta int) {
	if delta < 0 {
		n.list.CursorUp()
	} else if delta > 0 {
		n.list.CursorDown()
	}
}

func (n *NoteList) Selected() (types.Note, bool) {
	item := n.list.SelectedItem()
	entry, ok := item.(noteItem)
	if !ok {
		return types.Note{}, false
	}
	return entry.note, true
}

func (n *NoteList) SelectedID() int64 {
	note, ok := n.Selected()
	if !ok {
		return 0
	}
	return note.ID
}

func (n *NoteList) Len() int {
	return len(n.list.Items())
}

func (n *NoteList) View() string {
	if n.Len() == 0 {
		return helpStyle.Render("no notes")
	}
	return n.list.View()
}

func (n *NoteList) StatusLine() string {
	return fmt.Sprintf("%d note(s)", n.Len())
}
