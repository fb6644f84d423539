package types

import (
	"slices"
	"time"
)

// FileMetadata is one loaded file's metadata record.
//
// It is populated in two phases: the fast phase fills identity, permissions,
// ledger stamps and custom fields; the deferred phase fills Extended, which
// can be expensive to compute and stays nil until requested.
type FileMetadata struct {
	// Path to the inspected file
	Path string

	// Name is the display name (final path element)
	Name string

	// CreationDate is user-mutable; edits are tracked and persisted as an
	// annotation. ModificationDate is informational, read-only.
	CreationDate     time.Time
	ModificationDate time.Time

	// Size in bytes
	Size int64

	// Permissions as an octal string ("644", "755", ...)
	Permissions string

	// Kind is the classified format category
	Kind FormatKind

	// Annotation ledger state
	EditedByTool bool
	ToolVersion  string
	LastEditDate time.Time

	// CustomFields is the ordered user-defined annotation list
	CustomFields []CustomField

	// Extended is nil until the deferred extraction phase runs
	Extended *ExtendedMetadata
}

// Equal checks if two FileMetadata values are equal.
//
// Every field participates. A nil Extended compares equal to an empty one,
// so a record that never ran extraction matches one that ran it and found
// nothing.
func (m *FileMetadata) Equal(other *FileMetadata) bool {
	if m == nil && other == nil {
		return true
	}
	if m == nil || other == nil {
		return false
	}

	if m.Path != other.Path || m.Name != other.Name ||
		!m.CreationDate.Equal(other.CreationDate) ||
		!m.ModificationDate.Equal(other.ModificationDate) ||
		m.Size != other.Size || m.Permissions != other.Permissions ||
		m.Kind != other.Kind ||
		m.EditedByTool != other.EditedByTool ||
		m.ToolVersion != other.ToolVersion ||
		!m.LastEditDate.Equal(other.LastEditDate) {
		return false
	}

	if !slices.EqualFunc(m.CustomFields, other.CustomFields, func(a, b CustomField) bool {
		return a.ID == b.ID && a.Key == b.Key && a.Value == b.Value
	}) {
		return false
	}

	return m.extended().Equal(other.extended())
}

// Clone creates a deep copy of the FileMetadata.
func (m *FileMetadata) Clone() *FileMetadata {
	if m == nil {
		return nil
	}
	clone := *m
	clone.CustomFields = slices.Clone(m.CustomFields)
	clone.Extended = m.Extended.Clone()
	return &clone
}

var emptyExtended ExtendedMetadata

func (m *FileMetadata) extended() *ExtendedMetadata {
	if m.Extended == nil {
		return &emptyExtended
	}
	return m.Extended
}
