package types

import "github.com/google/uuid"

// CustomField is one user-defined key/value annotation.
//
// ID is a stable opaque identifier used to match fields across snapshots
// when diffing. Content equality (did anything change?) considers only
// Key and Value. Keys need not be unique; IDs are.
//
// IDs are not persisted: the serialized form carries only key/value pairs
// and fresh IDs are assigned on load.
type CustomField struct {
	ID    string `json:"-"`
	Key   string `json:"key"`
	Value string `json:"value"`
}

// NewCustomField creates a field with a fresh unique ID.
func NewCustomField(key, value string) CustomField {
	return CustomField{
		ID:    uuid.NewString(),
		Key:   key,
		Value: value,
	}
}

// ContentEqual reports whether two fields carry the same key and value,
// ignoring identity.
func (f CustomField) ContentEqual(other CustomField) bool {
	return f.Key == other.Key && f.Value == other.Value
}
