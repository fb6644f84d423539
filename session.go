package filemeta

import "github.com/simonhull/filemeta/internal/types"

// Session tracks edits against an as-loaded snapshot of a metadata
// record.
//
// The snapshot is taken once, when the session starts. Nothing is cached
// beyond it: every question about change is answered by comparing the
// live record against the snapshot at call time, so edit, undo-by-edit
// and reload all behave consistently.
type Session struct {
	original *types.FileMetadata
	current  *types.FileMetadata
}

// NewSession snapshots meta and returns a session tracking edits to it.
// The live record is meta itself; mutate it through Current.
func NewSession(meta *FileMetadata) *Session {
	return &Session{
		original: meta.Clone(),
		current:  meta,
	}
}

// Current returns the live record under edit.
func (s *Session) Current() *FileMetadata {
	return s.current
}

// Original returns the snapshot taken when the session started.
func (s *Session) Original() *FileMetadata {
	return s.original
}

// HasChanges reports whether the live record differs from the snapshot
// in any editable respect: the creation date, the number of custom
// fields, or the key or value of any field.
func (s *Session) HasChanges() bool {
	if s.CreationDateModified() {
		return true
	}
	if len(s.current.CustomFields) != len(s.original.CustomFields) {
		return true
	}
	for _, field := range s.current.CustomFields {
		orig, ok := s.originalField(field.ID)
		if !ok {
			return true
		}
		if !orig.ContentEqual(field) {
			return true
		}
	}
	return false
}

// FieldModified reports whether the custom field with the given ID
// differs from its snapshot counterpart. A field added since the
// snapshot counts as modified even while still empty.
func (s *Session) FieldModified(id string) bool {
	field, ok := currentField(s.current, id)
	if !ok {
		return false
	}
	orig, ok := s.originalField(id)
	if !ok {
		return true
	}
	return !orig.ContentEqual(field)
}

// CreationDateModified reports whether the creation date has been edited
// since the snapshot.
func (s *Session) CreationDateModified() bool {
	return !s.current.CreationDate.Equal(s.original.CreationDate)
}

// Commit re-snapshots the live record, marking the current state as the
// new baseline. Call it after a successful Save.
func (s *Session) Commit() {
	s.original = s.current.Clone()
}

func (s *Session) originalField(id string) (CustomField, bool) {
	return currentField(s.original, id)
}

func currentField(meta *types.FileMetadata, id string) (CustomField, bool) {
	for _, field := range meta.CustomFields {
		if field.ID == id {
			return field, true
		}
	}
	return CustomField{}, false
}
