// Package ledger owns the tool's reserved extended-attribute keys: the
// edited-by stamp, tool version, last-edit timestamp, the serialized
// custom-field list, and the creation-date override.
//
// Everything under the reserved prefix belongs to the ledger; removal scans
// attribute names for the prefix so that keys added by future versions are
// cleaned up too.
package ledger

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/simonhull/filemeta/internal/types"
	"github.com/simonhull/filemeta/internal/xattrstore"
)

// Prefix is the reserved attribute-key namespace.
const Prefix = "com.filemeta."

// Reserved attribute keys.
const (
	KeyEditedBy     = Prefix + "editedby"
	KeyVersion      = Prefix + "version"
	KeyLastEdit     = Prefix + "lastedit"
	KeyCustomFields = Prefix + "customfields"
	// KeyBirthtime stores the user's creation-date override. File birth
	// times cannot be set portably, so the override lives out-of-band with
	// the other annotations and wins over the filesystem value on load.
	KeyBirthtime = Prefix + "birthtime"
)

// editedByValue is what gets written to the edited-by stamp. Reads only
// check presence, never content.
const editedByValue = "filemeta"

// State is the ledger's view of a file, filled during the fast load phase.
type State struct {
	EditedByTool bool
	ToolVersion  string
	LastEditDate time.Time
	CustomFields []types.CustomField
	// BirthtimeOverride is zero when no override is stored.
	BirthtimeOverride time.Time
}

// Ledger reads and writes the reserved keys through an attribute store.
type Ledger struct {
	store xattrstore.Store
	// version written to the version stamp on every save
	version string
}

// New creates a Ledger writing the given tool version on save.
func New(store xattrstore.Store, version string) *Ledger {
	return &Ledger{store: store, version: version}
}

// Read loads the ledger state. Absent attributes leave defaults in place;
// malformed values are ignored the same way. Only real store failures
// return an error.
func (l *Ledger) Read(path string) (State, error) {
	var state State

	// Presence alone marks the file as edited, regardless of content.
	if _, ok, err := l.store.Get(path, KeyEditedBy); err != nil {
		return state, err
	} else if ok {
		state.EditedByTool = true
	}

	if data, ok, err := l.store.Get(path, KeyVersion); err != nil {
		return state, err
	} else if ok {
		state.ToolVersion = string(data)
	}

	if data, ok, err := l.store.Get(path, KeyLastEdit); err != nil {
		return state, err
	} else if ok {
		if t, err := time.Parse(time.RFC3339, string(data)); err == nil {
			state.LastEditDate = t
		}
	}

	if data, ok, err := l.store.Get(path, KeyBirthtime); err != nil {
		return state, err
	} else if ok {
		if t, err := time.Parse(time.RFC3339, string(data)); err == nil {
			state.BirthtimeOverride = t
		}
	}

	fields, err := l.readCustomFields(path)
	if err != nil {
		return state, err
	}
	state.CustomFields = fields

	return state, nil
}

// fieldRecord is the persisted shape of one custom field. IDs do not
// round-trip; loads assign fresh ones.
type fieldRecord struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func (l *Ledger) readCustomFields(path string) ([]types.CustomField, error) {
	data, ok, err := l.store.Get(path, KeyCustomFields)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var records []fieldRecord
	if err := json.Unmarshal(data, &records); err != nil {
		// A corrupt blob reads as "no custom fields", not a failure.
		return nil, nil
	}

	fields := make([]types.CustomField, 0, len(records))
	for _, rec := range records {
		fields = append(fields, types.NewCustomField(rec.Key, rec.Value))
	}
	return fields, nil
}

// Save unconditionally rewrites the three tracking stamps and serializes
// the custom-field list. The birthtime override is written only when set
// and removed when cleared.
//
// Returns the timestamp written to the last-edit stamp.
func (l *Ledger) Save(path string, fields []types.CustomField, birthtime time.Time) (time.Time, error) {
	now := time.Now().UTC().Truncate(time.Second)

	if err := l.store.Set(path, KeyEditedBy, []byte(editedByValue)); err != nil {
		return time.Time{}, err
	}
	if err := l.store.Set(path, KeyVersion, []byte(l.version)); err != nil {
		return time.Time{}, err
	}
	if err := l.store.Set(path, KeyLastEdit, []byte(now.Format(time.RFC3339))); err != nil {
		return time.Time{}, err
	}

	records := make([]fieldRecord, 0, len(fields))
	for _, f := range fields {
		records = append(records, fieldRecord{Key: f.Key, Value: f.Value})
	}
	blob, err := json.Marshal(records)
	if err != nil {
		return time.Time{}, err
	}
	if err := l.store.Set(path, KeyCustomFields, blob); err != nil {
		return time.Time{}, err
	}

	if birthtime.IsZero() {
		if err := l.store.Remove(path, KeyBirthtime); err != nil {
			return time.Time{}, err
		}
	} else {
		value := []byte(birthtime.UTC().Format(time.RFC3339))
		if err := l.store.Set(path, KeyBirthtime, value); err != nil {
			return time.Time{}, err
		}
	}

	return now, nil
}

// RemoveAll deletes every ledger attribute: the known keys plus anything
// else under the reserved prefix written by other versions of the tool.
// System metadata (name, dates, permissions) is untouched.
func (l *Ledger) RemoveAll(path string) error {
	for _, key := range []string{KeyEditedBy, KeyVersion, KeyLastEdit, KeyCustomFields, KeyBirthtime} {
		if err := l.store.Remove(path, key); err != nil {
			return err
		}
	}

	names, err := l.store.List(path)
	if err != nil {
		return err
	}
	for _, name := range names {
		if strings.HasPrefix(name, Prefix) {
			if err := l.store.Remove(path, name); err != nil {
				return err
			}
		}
	}
	return nil
}
