package store

import (
	"errors"
	"sync"
	"time"

	"jot/internal/logging"
	"jot/internal/types"
)

// ErrEmptyTitle is returned by Save when the note has no title. The
// collection and persisted state are left untouched; the caller decides how
// to surface it.
var ErrEmptyTitle = errors.New("note title is required")

// Store owns the in-memory note collection and writes the whole collection
// through its Persister after every mutation.
type Store struct {
	mu        sync.Mutex
	persister Persister
	log       logging.Logger
	notes     []types.Note
	lastID    int64
	now       func() time.Time
}

func New(persister Persister, log logging.Logger) *Store {
	if log == nil {
		log = logging.Nop()
	}
	return &Store{
		persister: persister,
		log:       log,
		notes:     []types.Note{},
		now:       time.Now,
	}
}

// Load populates the collection from the persister, preserving stored order.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	notes, err := s.persister.Load()
	if err != nil {
		return err
	}
	s.notes = notes
	s.lastID = 0
	for _, note := range notes {
		if note.ID > s.lastID {
			s.lastID = note.ID
		}
	}
	s.log.Debug("notes loaded", logging.F("count", len(notes)))
	return nil
}

// Save upserts note by id: an existing id is replaced in place, a draft gets
// a freshly allocated id and is appended. The mutation is staged and only
// committed once the whole collection has been persisted, so a write failure
// leaves both memory and disk exactly as they were.
func (s *Store) Save(note types.Note) (types.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if note.Title == "" {
		return types.Note{}, ErrEmptyTitle
	}

	saved := note.Clone()
	next := make([]types.Note, len(s.notes))
	copy(next, s.notes)
	replaced := false
	for i, existing := range next {
		if existing.ID != saved.ID {
			continue
		}
		next[i] = saved
		replaced = true
		break
	}
	lastID := s.lastID
	if !replaced {
		saved.ID = nextID(s.now(), lastID)
		lastID = saved.ID
		next = append(next, saved)
	}

	if err := s.persist(next); err != nil {
		return types.Note{}, err
	}
	s.notes = next
	s.lastID = lastID
	s.log.Info("note saved", logging.F("id", saved.ID), logging.F("replaced", replaced))
	return saved.Clone(), nil
}

// Delete removes the note with the given id; a missing id is a no-op. As
// with Save, the collection only changes after a successful persist.
func (s *Store) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	next := make([]types.Note, 0, len(s.notes))
	for _, note := range s.notes {
		if note.ID == id {
			found = true
			continue
		}
		next = append(next, note)
	}
	if !found {
		return nil
	}
	if err := s.persist(next); err != nil {
		return err
	}
	s.notes = next
	s.log.Info("note deleted", logging.F("id", id))
	return nil
}

// Notes returns a cloned snapshot of the collection in its current order.
func (s *Store) Notes() []types.Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]types.Note, 0, len(s.notes))
	for _, note := range s.notes {
		out = append(out, note.Clone())
	}
	return out
}

func (s *Store) Get(id int64) (types.Note, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, note := range s.notes {
		if note.ID == id {
			return note.Clone(), true
		}
	}
	return types.Note{}, false
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.notes)
}

func (s *Store) persist(notes []types.Note) error {
	if err := s.persister.Persist(notes); err != nil {
		s.log.Error("persist failed", logging.F("err", err))
		return err
	}
	return nil
}

// nextID hands out millisecond timestamps, bumped past the last issued id so
// rapid successive saves stay strictly increasing.
func nextID(now time.Time, lastID int64) int64 {
	id := now.UnixMilli()
	if id <= lastID {
		id = lastID + 1
	}
	return id
}
