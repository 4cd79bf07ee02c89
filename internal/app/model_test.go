package app

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"

	"jot/internal/config"
	"jot/internal/store"
	"jot/internal/types"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	persister := store.NewFilePersister(filepath.Join(t.TempDir(), "notes.json"))
	st := store.New(persister, nil)
	if err := st.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	m := NewModel(st, config.DefaultSettings(), nil)
	m.resize(100, 30)
	return &m
}

func seedNote(t *testing.T, m *Model, note types.Note) types.Note {
	t.Helper()
	saved, err := m.store.Save(note)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	m.refreshVisible()
	return saved
}

func pressKey(m *Model, msg tea.KeyMsg) {
	m.Update(msg)
}

func TestNewNoteKeyEntersEditModeWithDraft(t *testing.T) {
	m := newTestModel(t)
	pressKey(m, tea.KeyPressMsg{Code: 'n'})
	if m.mode != modeEdit {
		t.Fatalf("expected edit mode, got %d", m.mode)
	}
	if !m.sync.CurrentIsDraft() {
		t.Fatalf("expected a draft in the slot")
	}
	if got := m.sync.Current().Category; got != "Personal" {
		t.Fatalf("expected default category, got %q", got)
	}
}

func TestSaveWithoutTitleIsRejected(t *testing.T) {
	m := newTestModel(t)
	m.openDraft()
	m.save()
	if m.statusKind != statusError {
		t.Fatalf("expected error status, got %q", m.status)
	}
	if m.store.Len() != 0 {
		t.Fatalf("store must stay empty")
	}
	if m.mode != modeEdit {
		t.Fatalf("editing must continue after a rejected save")
	}
}

func TestRejectedSaveKeepsEditorContent(t *testing.T) {
	m := newTestModel(t)
	m.openDraft()
	m.handleEditKey(tea.KeyPressMsg{Code: 'h'})
	before := m.sync.Current().Content
	m.save()
	if got := m.sync.Current().Content; got != before {
		t.Fatalf("content changed across rejected save: %q != %q", got, before)
	}
}

func TestSavePersistsAndReturnsToList(t *testing.T) {
	m := newTestModel(t)
	m.openDraft()
	m.titleInput.SetValue("Grocery List")
	m.handleEditKey(tea.KeyPressMsg{Code: 'm', Text: "m"})
	m.save()

	if m.mode != modeList {
		t.Fatalf("expected list mode after save")
	}
	if m.statusKind != statusInfo {
		t.Fatalf("expected info status, got %q", m.status)
	}
	notes := m.store.Notes()
	if len(notes) != 1 {
		t.Fatalf("expected one note, got %d", len(notes))
	}
	if notes[0].Title != "Grocery List" || notes[0].Content != "m" {
		t.Fatalf("unexpected saved note: %#v", notes[0])
	}
	if !m.sync.CurrentIsDraft() {
		t.Fatalf("slot must hold a fresh draft after save")
	}
}

func TestOpenNotePushesContentIntoEditor(t *testing.T) {
	m := newTestModel(t)
	saved := seedNote(t, m, types.Note{Title: "a", Content: "alpha"})

	m.openNote(saved)
	if m.mode != modeEdit {
		t.Fatalf("expected edit mode")
	}
	content, err := m.editor.Content()
	if err != nil {
		t.Fatalf("content: %v", err)
	}
	if content != "alpha" {
		t.Fatalf("expected pushed content, got %q", content)
	}
	if m.titleInput.Value() != "a" {
		t.Fatalf("title not staged: %q", m.titleInput.Value())
	}
}

func TestEscFromEditKeepsSlotOccupant(t *testing.T) {
	m := newTestModel(t)
	saved := seedNote(t, m, types.Note{Title: "a", Content: "alpha"})
	m.openNote(saved)

	m.handleEditKey(tea.KeyPressMsg{Code: tea.KeyEsc})
	if m.mode != modeList {
		t.Fatalf("expected list mode")
	}
	if m.sync.Current().ID != saved.ID {
		t.Fatalf("slot occupant changed on esc")
	}
}

func TestDeleteFlowConfirm(t *testing.T) {
	m := newTestModel(t)
	seedNote(t, m, types.Note{Title: "doomed"})

	pressKey(m, tea.KeyPressMsg{Code: 'd'})
	if !m.confirm.IsOpen() {
		t.Fatalf("expected confirmation dialog")
	}
	pressKey(m, tea.KeyPressMsg{Code: 'y'})
	if m.store.Len() != 0 {
		t.Fatalf("expected note removed")
	}
	if m.confirm.IsOpen() {
		t.Fatalf("dialog must close")
	}
}

func TestDeleteFlowCancelKeepsNote(t *testing.T) {
	m := newTestModel(t)
	seedNote(t, m, types.Note{Title: "survivor"})

	pressKey(m, tea.KeyPressMsg{Code: 'd'})
	pressKey(m, tea.KeyPressMsg{Code: 'n'})
	if m.store.Len() != 1 {
		t.Fatalf("cancel must not delete")
	}
	if m.pendingDeleteID != 0 {
		t.Fatalf("pending delete id must reset")
	}
}

func TestDeletingOpenNoteResetsSlot(t *testing.T) {
	m := newTestModel(t)
	saved := seedNote(t, m, types.Note{Title: "a", Content: "alpha"})
	m.openNote(saved)
	m.handleEditKey(tea.KeyPressMsg{Code: tea.KeyEsc})

	pressKey(m, tea.KeyPressMsg{Code: 'd'})
	pressKey(m, tea.KeyPressMsg{Code: 'y'})
	if !m.sync.CurrentIsDraft() {
		t.Fatalf("deleting the open note must revert the slot to a draft")
	}
}

func TestSearchNarrowsVisibleNotes(t *testing.T) {
	m := newTestModel(t)
	seedNote(t, m, types.Note{Title: "Grocery List", Content: "milk"})
	seedNote(t, m, types.Note{Title: "Standup", Content: "parser"})

	m.searchInput.SetValue("milk")
	m.refreshVisible()
	if len(m.visible) != 1 || m.visible[0].Title != "Grocery List" {
		t.Fatalf("unexpected filter result: %#v", m.visible)
	}
	if m.noteList.Len() != 1 {
		t.Fatalf("list not updated")
	}

	m.searchInput.SetValue("")
	m.refreshVisible()
	if len(m.visible) != 2 {
		t.Fatalf("expected full collection, got %d", len(m.visible))
	}
}

func TestCycleCategoryWalksConfiguredOrder(t *testing.T) {
	m := newTestModel(t)
	m.openDraft()
	if got := m.sync.Current().Category; got != "Personal" {
		t.Fatalf("unexpected start category %q", got)
	}
	m.cycleCategory()
	if got := m.sync.Current().Category; got != "Work" {
		t.Fatalf("expected Work, got %q", got)
	}
	m.cycleCategory()
	m.cycleCategory()
	if got := m.sync.Current().Category; got != "Personal" {
		t.Fatalf("expected wrap to Personal, got %q", got)
	}
}

func TestTagInputAddAndRemove(t *testing.T) {
	m := newTestModel(t)
	m.openDraft()
	m.focus = focusTags
	m.tagInput.SetValue("home")
	m.handleEditKey(tea.KeyPressMsg{Code: tea.KeyEnter})
	if tags := m.sync.Current().Tags; len(tags) != 1 || tags[0] != "home" {
		t.Fatalf("unexpected tags %#v", tags)
	}
	if m.tagInput.Value() != "" {
		t.Fatalf("tag input must clear after add")
	}

	m.handleEditKey(tea.KeyPressMsg{Code: 'x', Mod: tea.ModCtrl})
	if tags := m.sync.Current().Tags; len(tags) != 0 {
		t.Fatalf("expected last tag removed, got %#v", tags)
	}
}

func TestPreviewFromEditReturnsWithEditorFocused(t *testing.T) {
	m := newTestModel(t)
	saved := seedNote(t, m, types.Note{Title: "a", Content: "alpha"})
	m.openNote(saved)

	m.handleEditKey(tea.KeyPressMsg{Code: 'p', Mod: tea.ModCtrl})
	if m.mode != modePreview {
		t.Fatalf("expected preview mode")
	}
	m.handlePreviewKey(tea.KeyPressMsg{Code: tea.KeyEsc})
	if m.mode != modeEdit {
		t.Fatalf("expected edit mode after leaving preview")
	}
	if !m.editor.Focused() {
		t.Fatalf("editor must regain focus so typing is not dropped")
	}
}

func TestPreviewFromListReturnsToList(t *testing.T) {
	m := newTestModel(t)
	saved := seedNote(t, m, types.Note{Title: "a", Content: "alpha"})
	m.openNote(saved)
	m.handleEditKey(tea.KeyPressMsg{Code: tea.KeyEsc})

	pressKey(m, tea.KeyPressMsg{Code: 'p'})
	if m.mode != modePreview {
		t.Fatalf("expected preview mode")
	}
	pressKey(m, tea.KeyPressMsg{Code: tea.KeyEsc})
	if m.mode != modeList {
		t.Fatalf("preview opened from the list must return to the list")
	}
}

func TestHelpAndSettingsModesReturnToList(t *testing.T) {
	m := newTestModel(t)
	pressKey(m, tea.KeyPressMsg{Code: '?'})
	if m.mode != modeHelp {
		t.Fatalf("expected help mode")
	}
	pressKey(m, tea.KeyPressMsg{Code: tea.KeyEsc})
	if m.mode != modeList {
		t.Fatalf("expected list mode")
	}
	pressKey(m, tea.KeyPressMsg{Code: 's'})
	if m.mode != modeSettings {
		t.Fatalf("expected settings mode")
	}
	pressKey(m, tea.KeyPressMsg{Code: 'q'})
	if m.mode != modeList {
		t.Fatalf("expected list mode")
	}
}
