package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"jot/internal/types"
)

// Persister writes and reads the whole note collection. Persistence is
// injected so the store's upsert/delete semantics stay independent of the
// backing medium.
type Persister interface {
	// Load returns the stored collection in stored order. A missing or
	// unreadable payload loads as an empty collection; only infrastructure
	// failures surface as errors.
	Load() ([]types.Note, error)
	// Persist replaces the stored collection with notes.
	Persist(notes []types.Note) error
}

type noteFile struct {
	Notes []types.Note `json:"notes"`
}

// FilePersister keeps the collection in a single JSON document on disk.
type FilePersister struct {
	path string
}

func NewFilePersister(path string) *FilePersister {
	return &FilePersister{path: path}
}

func (p *FilePersister) Load() ([]types.Note, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		return []types.Note{}, nil
	}
	return decodeNotes(data), nil
}

func (p *FilePersister) Persist(notes []types.Note) error {
	return writeJSONAtomic(p.path, noteFile{Notes: notes})
}

// decodeNotes parses a stored payload, treating malformed data as an empty
// collection so a corrupt store never takes the app down.
func decodeNotes(data []byte) []types.Note {
	if len(data) == 0 {
		return []types.Note{}
	}
	var file noteFile
	if err := json.Unmarshal(data, &file); err != nil {
		return []types.Note{}
	}
	if file.Notes == nil {
		return []types.Note{}
	}
	return file.Notes
}

func writeJSONAtomic(path string, v any) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}
	file, err := os.CreateTemp(dir, ".tmp-*.json")
	if err != nil {
		return err
	}
	defer func() {
		_ = os.Remove(file.Name())
	}()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Sync(); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}
	return os.Rename(file.Name(), path)
}
