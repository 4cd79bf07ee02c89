package types

// Note is the persisted note record. ID 0 marks a draft that has not been
// saved yet; the store assigns an id on first save.
type Note struct {
	ID       int64    `json:"id"`
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

func (n Note) Draft() bool {
	return n.ID == 0
}

func (n Note) Clone() Note {
	clone := n
	if n.Tags != nil {
		clone.Tags = append([]string(nil), n.Tags...)
	}
	return clone
}

func (n Note) HasTag(tag string) bool {
	for _, t := range n.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// AddTag appends tag to the note's tag list unless an exact match is already
// present. Insertion order is preserved; no trimming or case folding.
func AddTag(n Note, tag string) Note {
	if tag == "" || n.HasTag(tag) {
		return n
	}
	out := n.Clone()
	out.Tags = append(out.Tags, tag)
	return out
}

// RemoveTag removes the first exact match of tag; a note without the tag is
// returned unchanged.
func RemoveTag(n Note, tag string) Note {
	for i, t := range n.Tags {
		if t != tag {
			continue
		}
		out := n.Clone()
		out.Tags = append(out.Tags[:i], out.Tags[i+1:]...)
		if len(out.Tags) == 0 {
			out.Tags = nil
		}
		return out
	}
	return n
}
