// Package docsync reconciles a live editing surface with the single current
// note slot. The two directions use disjoint triggers: content is pushed to
// the surface only when the slot's identity changes, and copied back only on
// editor-originated edit events. Pushes therefore never feed back into
// write-backs and vice versa.
package docsync

import (
	"jot/internal/logging"
	"jot/internal/types"
)

// Surface is the live editing surface. Content returns the serialized
// document currently held by the surface; it may fail if the surface state
// cannot be serialized.
type Surface interface {
	SetContent(content string)
	Content() (string, error)
	Reset()
}

// slotKey identifies the occupant of the current slot. Persisted notes are
// keyed by id; drafts by a sequence number, so every fresh draft is a new
// identity.
type slotKey struct {
	id    int64
	draft uint64
}

type Engine struct {
	surface  Surface
	log      logging.Logger
	current  types.Note
	key      slotKey
	draftSeq uint64
}

// New creates an engine with a fresh draft in the slot. The draft's empty
// content is pushed to the surface.
func New(surface Surface, log logging.Logger) *Engine {
	if log == nil {
		log = logging.Nop()
	}
	e := &Engine{surface: surface, log: log}
	e.NewDraft()
	return e
}

// Current returns a copy of the note occupying the slot.
func (e *Engine) Current() types.Note {
	return e.current.Clone()
}

// CurrentIsDraft reports whether the slot holds an unsaved draft.
func (e *Engine) CurrentIsDraft() bool {
	return e.key.id == 0
}

// Select makes note the current slot occupant. The surface is replaced with
// the note's content iff the identity differs from the current occupant;
// re-selecting the same note is a no-op. Returns whether a push happened.
func (e *Engine) Select(note types.Note) bool {
	key := slotKey{id: note.ID}
	if key == e.key {
		return false
	}
	e.current = note.Clone()
	e.key = key
	e.surface.SetContent(e.current.Content)
	e.log.Debug("note selected", logging.F("id", note.ID))
	return true
}

// NewDraft resets the slot to a fresh draft and pushes its empty content.
func (e *Engine) NewDraft() types.Note {
	e.draftSeq++
	e.current = types.Note{}
	e.key = slotKey{draft: e.draftSeq}
	e.surface.SetContent("")
	return e.current
}

// WriteBack copies the surface's serialized content into the current note.
// Call it only from editor-originated edit events. When the surface fails
// to serialize, the prior content is retained.
func (e *Engine) WriteBack() error {
	content, err := e.surface.Content()
	if err != nil {
		e.log.Warn("surface serialization failed, keeping prior content", logging.F("err", err))
		return err
	}
	e.current.Content = content
	return nil
}

// Saved records that the current note was persisted: the surface is reset
// to empty and a fresh draft takes the slot.
func (e *Engine) Saved(persisted types.Note) {
	e.surface.Reset()
	e.draftSeq++
	e.current = types.Note{}
	e.key = slotKey{draft: e.draftSeq}
	e.log.Debug("slot reset after save", logging.F("id", persisted.ID))
}

// Deleted clears the slot if the deleted id matches the current occupant;
// the slot reverts to a fresh draft. Returns whether the slot was reset.
func (e *Engine) Deleted(id int64) bool {
	if e.key.id == 0 || e.key.id != id {
		return false
	}
	e.NewDraft()
	return true
}

// Field-by-field mutation of the slot occupant. These touch everything but
// Content, which only WriteBack may change.

func (e *Engine) SetTitle(title string) {
	e.current.Title = title
}

func (e *Engine) SetCategory(category string) {
	e.current.Category = category
}

func (e *Engine) AddTag(tag string) {
	e.current = types.AddTag(e.current, tag)
}

func (e *Engine) RemoveTag(tag string) {
	e.current = types.RemoveTag(e.current, tag)
}
