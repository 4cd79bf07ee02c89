package app

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"

	"jot/internal/config"
	"jot/internal/docsync"
	"jot/internal/logging"
	"jot/internal/search"
	"jot/internal/store"
	"jot/internal/types"
)

type mode int

const (
	modeList mode = iota
	modeEdit
	modePreview
	modeSettings
	modeHelp
)

type editFocus int

const (
	focusBody editFocus = iota
	focusTitle
	focusTags
)

type statusKind int

const (
	statusNone statusKind = iota
	statusInfo
	statusError
)

// Model is the single reducer for the whole UI. All state transitions happen
// on the program goroutine; the store and the reconciliation engine are only
// ever touched from Update.
type Model struct {
	store    *store.Store
	sync     *docsync.Engine
	settings config.Settings
	log      logging.Logger

	mode   mode
	width  int
	height int

	searchInput *TextInput
	titleInput  *TextInput
	tagInput    *TextInput
	editor      *Editor
	noteList    *NoteList
	confirm     *ConfirmController

	visible []types.Note
	focus   editFocus

	previewNote     types.Note
	previewReturn   mode
	pendingDeleteID int64

	status     string
	statusKind statusKind
}

func NewModel(st *store.Store, settings config.Settings, log logging.Logger) Model {
	if log == nil {
		log = logging.Nop()
	}
	editor := NewEditor(78, 18)
	m := Model{
		store:       st,
		sync:        docsync.New(editor, log),
		settings:    settings,
		log:         log,
		searchInput: NewTextInput(40, "type to filter…"),
		titleInput:  NewTextInput(40, "title"),
		tagInput:    NewTextInput(24, "add tag"),
		editor:      editor,
		noteList:    NewNoteList(80, 20),
		confirm:     NewConfirmController(),
	}
	m.refreshVisible()
	return m
}

func Run(st *store.Store, settings config.Settings, log logging.Logger) error {
	model := NewModel(st, settings, log)
	p := tea.NewProgram(&model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	return tea.RequestBackgroundColor
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tea.BackgroundColorMsg:
		setMarkdownBackgroundDark(msg.IsDark())
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.confirm.IsOpen() {
		_, choice := m.confirm.HandleKey(msg)
		switch choice {
		case confirmChoiceConfirm:
			m.confirm.Close()
			m.deletePending()
		case confirmChoiceCancel:
			m.confirm.Close()
			m.pendingDeleteID = 0
		}
		return m, nil
	}
	switch m.mode {
	case modeList:
		return m.handleListKey(msg)
	case modeEdit:
		return m.handleEditKey(msg)
	case modePreview:
		return m.handlePreviewKey(msg)
	case modeSettings, modeHelp:
		switch msg.String() {
		case "esc", "q", "enter":
			m.mode = modeList
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searchInput.Focused() {
		switch msg.String() {
		case "esc":
			m.searchInput.Clear()
			m.searchInput.Blur()
			m.refreshVisible()
			return m, nil
		case "enter":
			m.searchInput.Blur()
			return m, nil
		case "up", "down":
			// Let the cursor move while the query keeps focus.
			if msg.String() == "up" {
				m.noteList.Move(-1)
			} else {
				m.noteList.Move(1)
			}
			return m, nil
		}
		cmd := m.searchInput.Update(msg)
		m.refreshVisible()
		return m, cmd
	}
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "/":
		m.clearStatus()
		m.searchInput.Focus()
		return m, nil
	case "up", "k":
		m.noteList.Move(-1)
		return m, nil
	case "down", "j":
		m.noteList.Move(1)
		return m, nil
	case "enter", "e":
		if note, ok := m.noteList.Selected(); ok {
			m.openNote(note)
		}
		return m, nil
	case "n":
		m.openDraft()
		return m, nil
	case "d":
		if note, ok := m.noteList.Selected(); ok {
			m.requestDelete(note)
		}
		return m, nil
	case "p":
		if note, ok := m.noteList.Selected(); ok {
			m.previewNote = note
			m.previewReturn = modeList
			m.mode = modePreview
		}
		return m, nil
	case "s":
		m.mode = modeSettings
		return m, nil
	case "?":
		m.mode = modeHelp
		return m, nil
	}
	return m, nil
}

func (m *Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		// The slot keeps whatever is in it; edits stay staged until save.
		m.applyStagedTitle()
		m.blurEditFields()
		m.mode = modeList
		return m, nil
	case "ctrl+s":
		m.save()
		return m, nil
	case "tab":
		m.cycleFocus()
		return m, nil
	case "ctrl+g":
		m.cycleCategory()
		return m, nil
	case "ctrl+p":
		m.applyStagedTitle()
		m.previewNote = m.sync.Current()
		m.previewReturn = modeEdit
		m.mode = modePreview
		return m, nil
	}
	switch m.focus {
	case focusTitle:
		cmd := m.titleInput.Update(msg)
		m.sync.SetTitle(m.titleInput.Value())
		return m, cmd
	case focusTags:
		switch msg.String() {
		case "enter":
			tag := strings.TrimSpace(m.tagInput.Value())
			if tag != "" {
				m.sync.AddTag(tag)
				m.tagInput.Clear()
			}
			return m, nil
		case "ctrl+x":
			tags := m.sync.Current().Tags
			if len(tags) > 0 {
				m.sync.RemoveTag(tags[len(tags)-1])
			}
			return m, nil
		}
		return m, m.tagInput.Update(msg)
	default:
		cmd := m.editor.Update(msg)
		if err := m.sync.WriteBack(); err != nil {
			m.setStatusError("keeping previous content: " + err.Error())
		}
		return m, cmd
	}
}

func (m *Model) handlePreviewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		// Going back into edit must restore input focus, not just the mode.
		if m.previewReturn == modeEdit {
			m.enterEditMode()
		} else {
			m.mode = modeList
		}
		return m, nil
	case "y":
		m.copyWithStatus(m.previewNote.Content, "content copied")
		return m, nil
	}
	return m, nil
}

func (m *Model) openNote(note types.Note) {
	m.clearStatus()
	m.sync.Select(note)
	m.stageEditFields()
	m.enterEditMode()
}

func (m *Model) openDraft() {
	m.clearStatus()
	m.sync.NewDraft()
	if categories := m.settings.Categories(); len(categories) > 0 {
		m.sync.SetCategory(categories[0])
	}
	m.stageEditFields()
	m.enterEditMode()
}

func (m *Model) enterEditMode() {
	m.mode = modeEdit
	m.focus = focusBody
	m.editor.Focus()
	m.titleInput.Blur()
	m.tagInput.Blur()
}

func (m *Model) stageEditFields() {
	current := m.sync.Current()
	m.titleInput.SetValue(current.Title)
	m.tagInput.Clear()
}

func (m *Model) applyStagedTitle() {
	m.sync.SetTitle(strings.TrimSpace(m.titleInput.Value()))
}

func (m *Model) blurEditFields() {
	m.editor.Blur()
	m.titleInput.Blur()
	m.tagInput.Blur()
}

func (m *Model) cycleFocus() {
	m.blurEditFields()
	switch m.focus {
	case focusBody:
		m.focus = focusTitle
		m.titleInput.Focus()
	case focusTitle:
		m.focus = focusTags
		m.tagInput.Focus()
	default:
		m.focus = focusBody
		m.editor.Focus()
	}
}

func (m *Model) cycleCategory() {
	categories := m.settings.Categories()
	if len(categories) == 0 {
		return
	}
	current := m.sync.Current().Category
	next := categories[0]
	for i, category := range categories {
		if category == current {
			next = categories[(i+1)%len(categories)]
			break
		}
	}
	m.sync.SetCategory(next)
}

func (m *Model) save() {
	m.applyStagedTitle()
	saved, err := m.store.Save(m.sync.Current())
	if errors.Is(err, store.ErrEmptyTitle) {
		m.setStatusError("a title is required before saving")
		return
	}
	if err != nil {
		m.setStatusError("save failed: " + err.Error())
		return
	}
	m.sync.Saved(saved)
	m.titleInput.Clear()
	m.tagInput.Clear()
	m.blurEditFields()
	m.refreshVisible()
	m.mode = modeList
	m.setStatusInfo("saved \"" + saved.Title + "\"")
}

func (m *Model) requestDelete(note types.Note) {
	m.pendingDeleteID = note.ID
	m.confirm.Open("Delete note", "Delete \""+note.Title+"\"? This cannot be undone.", "Delete", "Keep")
}

func (m *Model) deletePending() {
	id := m.pendingDeleteID
	m.pendingDeleteID = 0
	if id == 0 {
		return
	}
	if err := m.store.Delete(id); err != nil {
		m.setStatusError("delete failed: " + err.Error())
		return
	}
	m.sync.Deleted(id)
	m.refreshVisible()
	m.setStatusInfo("note deleted")
}

// refreshVisible recomputes the filtered projection from scratch. The
// collection is small enough that a full pass per keystroke is fine.
func (m *Model) refreshVisible() {
	m.visible = search.Filter(m.store.Notes(), m.searchInput.Value())
	m.noteList.SetNotes(m.visible)
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	contentWidth := max(20, width-2)
	m.searchInput.Resize(max(10, contentWidth-10))
	m.titleInput.Resize(max(10, contentWidth-10))
	m.tagInput.Resize(max(10, contentWidth/3))
	m.noteList.SetSize(contentWidth, max(3, height-6))
	m.editor.Resize(contentWidth, max(3, height-9))
}

func (m *Model) setStatusInfo(text string) {
	m.status = text
	m.statusKind = statusInfo
}

func (m *Model) setStatusError(text string) {
	m.status = text
	m.statusKind = statusError
	m.log.Warn("ui error", logging.F("status", text))
}

func (m *Model) clearStatus() {
	m.status = ""
	m.statusKind = statusNone
}
