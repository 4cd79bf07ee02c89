package store

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"jot/internal/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(NewFilePersister(filepath.Join(t.TempDir(), "notes.json")), nil)
}

func TestSaveEmptyTitleLeavesCollectionUnchanged(t *testing.T) {
	store := newTestStore(t)
	if _, err := store.Save(types.Note{Content: "body"}); !errors.Is(err, ErrEmptyTitle) {
		t.Fatalf("expected ErrEmptyTitle, got %v", err)
	}
	if store.Len() != 0 {
		t.Fatalf("expected empty collection, got %d", store.Len())
	}
}

func TestSaveDraftAppendsWithFreshID(t *testing.T) {
	store := newTestStore(t)
	first, err := store.Save(types.Note{Title: "one"})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if first.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	second, err := store.Save(types.Note{Title: "two"})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if second.ID <= first.ID {
		t.Fatalf("expected strictly increasing ids, got %d then %d", first.ID, second.ID)
	}
	notes := store.Notes()
	if len(notes) != 2 || notes[0].ID != first.ID || notes[1].ID != second.ID {
		t.Fatalf("unexpected collection: %#v", notes)
	}
}

func TestSaveExistingReplacesInPlace(t *testing.T) {
	store := newTestStore(t)
	a, _ := store.Save(types.Note{Title: "a"})
	b, _ := store.Save(types.Note{Title: "b"})
	c, _ := store.Save(types.Note{Title: "c"})

	updated, err := store.Save(types.Note{ID: b.ID, Title: "b2", Content: "changed"})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if updated.ID != b.ID {
		t.Fatalf("expected id %d preserved, got %d", b.ID, updated.ID)
	}
	notes := store.Notes()
	if len(notes) != 3 {
		t.Fatalf("expected 3 notes, got %d", len(notes))
	}
	if notes[0].ID != a.ID || notes[1].ID != b.ID || notes[2].ID != c.ID {
		t.Fatalf("expected order preserved, got %#v", notes)
	}
	if notes[1].Title != "b2" || notes[1].Content != "changed" {
		t.Fatalf("expected in-place replacement, got %#v", notes[1])
	}
}

func TestIDAllocationIsStrictlyMonotonic(t *testing.T) {
	store := newTestStore(t)
	frozen := time.UnixMilli(1700000000000)
	store.now = func() time.Time { return frozen }

	var last int64
	for i := 0; i < 5; i++ {
		saved, err := store.Save(types.Note{Title: "note"})
		if err != nil {
			t.Fatalf("save: %v", err)
		}
		if saved.ID <= last {
			t.Fatalf("id %d not greater than %d", saved.ID, last)
		}
		last = saved.ID
	}
}

func TestDeleteRemovesMatchingEntryOnly(t *testing.T) {
	store := newTestStore(t)
	a, _ := store.Save(types.Note{Title: "a"})
	b, _ := store.Save(types.Note{Title: "b"})

	if err := store.Delete(a.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	notes := store.Notes()
	if len(notes) != 1 || notes[0].ID != b.ID {
		t.Fatalf("unexpected collection after delete: %#v", notes)
	}
}

func TestDeleteMissingIsNoop(t *testing.T) {
	store := newTestStore(t)
	a, _ := store.Save(types.Note{Title: "a"})
	if err := store.Delete(a.ID + 1); err != nil {
		t.Fatalf("delete missing: %v", err)
	}
	if store.Len() != 1 {
		t.Fatalf("expected collection unchanged, got %d", store.Len())
	}
}

// flakyPersister persists to memory and fails on demand.
type flakyPersister struct {
	fail   bool
	stored []types.Note
}

func (p *flakyPersister) Load() ([]types.Note, error) {
	return append([]types.Note{}, p.stored...), nil
}

func (p *flakyPersister) Persist(notes []types.Note) error {
	if p.fail {
		return errors.New("disk full")
	}
	p.stored = append([]types.Note{}, notes...)
	return nil
}

func TestFailedPersistLeavesSaveUnapplied(t *testing.T) {
	persister := &flakyPersister{fail: true}
	store := New(persister, nil)

	if _, err := store.Save(types.Note{Title: "draft"}); err == nil {
		t.Fatalf("expected persist error")
	}
	if store.Len() != 0 {
		t.Fatalf("failed save must not stay in memory, got %d note(s)", store.Len())
	}
	if len(persister.stored) != 0 {
		t.Fatalf("nothing may reach disk, got %d", len(persister.stored))
	}

	// Once persistence recovers, saving the same draft again must yield a
	// single entry, not a duplicate of a half-applied earlier attempt.
	persister.fail = false
	saved, err := store.Save(types.Note{Title: "draft"})
	if err != nil {
		t.Fatalf("save after recovery: %v", err)
	}
	if store.Len() != 1 {
		t.Fatalf("expected exactly one note after retry, got %d", store.Len())
	}
	if len(persister.stored) != 1 || persister.stored[0].ID != saved.ID {
		t.Fatalf("disk out of step with memory: %#v", persister.stored)
	}
}

func TestFailedPersistLeavesReplaceUnapplied(t *testing.T) {
	persister := &flakyPersister{}
	store := New(persister, nil)
	saved, err := store.Save(types.Note{Title: "original"})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	persister.fail = true
	if _, err := store.Save(types.Note{ID: saved.ID, Title: "changed"}); err == nil {
		t.Fatalf("expected persist error")
	}
	got, ok := store.Get(saved.ID)
	if !ok || got.Title != "original" {
		t.Fatalf("failed replace must keep prior note, got %#v", got)
	}
}

func TestFailedPersistLeavesDeleteUnapplied(t *testing.T) {
	persister := &flakyPersister{}
	store := New(persister, nil)
	saved, err := store.Save(types.Note{Title: "keep"})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	persister.fail = true
	if err := store.Delete(saved.ID); err == nil {
		t.Fatalf("expected persist error")
	}
	if store.Len() != 1 {
		t.Fatalf("failed delete must keep the note, got %d", store.Len())
	}

	persister.fail = false
	if err := store.Delete(saved.ID); err != nil {
		t.Fatalf("delete after recovery: %v", err)
	}
	if store.Len() != 0 || len(persister.stored) != 0 {
		t.Fatalf("expected empty store and disk, got %d / %d", store.Len(), len(persister.stored))
	}
}

func TestNotesReturnsClones(t *testing.T) {
	store := newTestStore(t)
	saved, _ := store.Save(types.Note{Title: "a", Tags: []string{"x"}})
	notes := store.Notes()
	notes[0].Tags[0] = "mutated"
	got, ok := store.Get(saved.ID)
	if !ok {
		t.Fatalf("expected note")
	}
	if got.Tags[0] != "x" {
		t.Fatalf("expected clone semantics, got %q", got.Tags[0])
	}
}

func TestRoundTripThroughFilePersister(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.json")
	store := New(NewFilePersister(path), nil)
	saved, err := store.Save(types.Note{
		Title:    "Grocery List",
		Content:  "# Groceries\n\n- milk",
		Category: "Personal",
		Tags:     []string{"home", "errands"},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	reloaded := New(NewFilePersister(path), nil)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	notes := reloaded.Notes()
	if len(notes) != 1 {
		t.Fatalf("expected 1 note, got %d", len(notes))
	}
	if !reflect.DeepEqual(notes[0], saved) {
		t.Fatalf("round trip mismatch:\n got %#v\nwant %#v", notes[0], saved)
	}
}

func TestLoadPreservesStoredOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.json")
	store := New(NewFilePersister(path), nil)
	store.Save(types.Note{Title: "z"})
	store.Save(types.Note{Title: "a"})
	store.Save(types.Note{Title: "m"})

	reloaded := New(NewFilePersister(path), nil)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	titles := []string{}
	for _, note := range reloaded.Notes() {
		titles = append(titles, note.Title)
	}
	if !reflect.DeepEqual(titles, []string{"z", "a", "m"}) {
		t.Fatalf("expected stored order preserved, got %#v", titles)
	}
}

func TestLoadCorruptPayloadFallsBackToEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	store := New(NewFilePersister(path), nil)
	if err := store.Load(); err != nil {
		t.Fatalf("load should fail safe, got %v", err)
	}
	if store.Len() != 0 {
		t.Fatalf("expected empty collection, got %d", store.Len())
	}
}

func TestLoadMissingFileIsEmpty(t *testing.T) {
	store := New(NewFilePersister(filepath.Join(t.TempDir(), "absent.json")), nil)
	if err := store.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	if store.Len() != 0 {
		t.Fatalf("expected empty collection, got %d", store.Len())
	}
}
