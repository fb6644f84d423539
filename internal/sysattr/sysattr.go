// Package sysattr reads OS-level provenance metadata: the full attribute
// dump, the download-quarantine marker, origin URLs, user tags and the
// Finder comment.
//
// Extraction here is independent of the file's FormatKind and runs for
// every file. An absent attribute is simply omitted, never an error.
package sysattr

import (
	"strings"
	"unicode/utf8"

	"howett.net/plist"

	"github.com/simonhull/filemeta/internal/types"
	"github.com/simonhull/filemeta/internal/xattrstore"
)

// Well-known attribute names.
const (
	KeyQuarantine    = "com.apple.quarantine"
	KeyWhereFroms    = "com.apple.metadata:kMDItemWhereFroms"
	KeyFinderComment = "com.apple.metadata:kMDItemFinderComment"
	KeyUserTags      = "com.apple.metadata:_kMDItemUserTags"
)

// Extract reads all system attributes for path through the store.
//
// Every failure is soft: a field that cannot be read stays at its zero
// value and the reason lands in the returned warnings.
func Extract(store xattrstore.Store, path string) (types.SystemAttrs, []types.Warning) {
	var attrs types.SystemAttrs
	var warnings []types.Warning

	names, err := store.List(path)
	if err != nil {
		warnings = append(warnings, types.Warning{Stage: "system", Message: err.Error()})
		return attrs, warnings
	}

	if len(names) > 0 {
		attrs.Attributes = make(map[string]string, len(names))
		for _, name := range names {
			data, ok, err := store.Get(path, name)
			if err != nil || !ok {
				continue
			}
			if utf8.Valid(data) {
				attrs.Attributes[name] = string(data)
			} else {
				attrs.Attributes[name] = types.BinaryValue
			}
		}
	}

	if data, ok, _ := store.Get(path, KeyQuarantine); ok {
		attrs.Quarantine = types.ParseQuarantine(string(data))
	}

	if data, ok, _ := store.Get(path, KeyWhereFroms); ok {
		attrs.WhereFroms = decodeWhereFroms(data)
	}

	if data, ok, _ := store.Get(path, KeyUserTags); ok {
		attrs.UserTags = decodeUserTags(data)
	}

	if data, ok, _ := store.Get(path, KeyFinderComment); ok {
		attrs.FinderComment = decodeComment(data)
	}

	return attrs, warnings
}

// decodeWhereFroms decodes the serialized origin-URL list. The value is a
// binary property list of strings; when structured decoding fails the raw
// bytes are tried as a single plain UTF-8 string.
func decodeWhereFroms(data []byte) []string {
	var urls []string
	if _, err := plist.Unmarshal(data, &urls); err == nil {
		out := urls[:0]
		for _, u := range urls {
			if u != "" {
				out = append(out, u)
			}
		}
		if len(out) > 0 {
			return out
		}
		return nil
	}
	if utf8.Valid(data) && len(data) > 0 {
		return []string{string(data)}
	}
	return nil
}

// decodeUserTags decodes the user-tag list. Entries carry an optional
// "\n<color>" suffix which is stripped.
func decodeUserTags(data []byte) []string {
	var raw []string
	if _, err := plist.Unmarshal(data, &raw); err != nil {
		return nil
	}
	tags := make([]string, 0, len(raw))
	for _, entry := range raw {
		name, _, _ := strings.Cut(entry, "\n")
		if name != "" {
			tags = append(tags, name)
		}
	}
	if len(tags) == 0 {
		return nil
	}
	return tags
}

// decodeComment reads the comment attribute, which may be a plist-wrapped
// string or plain UTF-8.
func decodeComment(data []byte) string {
	var s string
	if _, err := plist.Unmarshal(data, &s); err == nil {
		return s
	}
	if utf8.Valid(data) {
		return string(data)
	}
	return ""
}

// SetComment writes the free-text comment attribute as UTF-8. An empty
// comment removes the attribute entirely.
func SetComment(store xattrstore.Store, path, comment string) error {
	if comment == "" {
		return store.Remove(path, KeyFinderComment)
	}
	return store.Set(path, KeyFinderComment, []byte(comment))
}

// SetWhereFroms writes the origin-URL list as a binary property list.
// An empty list removes the attribute entirely.
func SetWhereFroms(store xattrstore.Store, path string, urls []string) error {
	if len(urls) == 0 {
		return store.Remove(path, KeyWhereFroms)
	}
	data, err := plist.Marshal(urls, plist.BinaryFormat)
	if err != nil {
		return err
	}
	return store.Set(path, KeyWhereFroms, data)
}

// SetUserTags writes the user-tag list as a binary property list. An
// empty list removes the attribute entirely.
func SetUserTags(store xattrstore.Store, path string, tags []string) error {
	if len(tags) == 0 {
		return store.Remove(path, KeyUserTags)
	}
	data, err := plist.Marshal(tags, plist.BinaryFormat)
	if err != nil {
		return err
	}
	return store.Set(path, KeyUserTags, data)
}

// RemoveQuarantine deletes the download-quarantine marker.
func RemoveQuarantine(store xattrstore.Store, path string) error {
	return store.Remove(path, KeyQuarantine)
}
