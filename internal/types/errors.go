package types

import "fmt"

// AttributeError is returned when an extended-attribute operation fails.
//
// Extraction never produces these: missing metadata degrades to absent
// fields. AttributeError surfaces only from mutating operations (save,
// remove) and from the initial file load.
type AttributeError struct {
	Path string
	Attr string // attribute name, empty for list operations
	Op   string // "get", "set", "remove", "list"
	Err  error
}

func (e *AttributeError) Error() string {
	if e.Attr == "" {
		return fmt.Sprintf("%s: %s attributes: %v", e.Path, e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %s attribute %q: %v", e.Path, e.Op, e.Attr, e.Err)
}

func (e *AttributeError) Unwrap() error {
	return e.Err
}

// Warning represents a non-fatal issue encountered during extraction.
//
// Warnings indicate problems that don't prevent metadata extraction but
// explain why a field came back absent. Examples include:
//   - an external inspection utility failing or timing out
//   - a malformed tag or chunk inside an otherwise readable file
//   - an undecodable attribute value
//
// Warnings are collected in File.Warnings during the extraction phase.
type Warning struct {
	// Stage where the warning occurred ("classify", "system", "pdf",
	// "image", "audio", "video", "office", "epub", "text", "archive",
	// "executable", "ledger")
	Stage string

	// Warning message
	Message string
}

// String returns a human-readable warning message.
func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Stage, w.Message)
}
