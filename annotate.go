package filemeta

import (
	"fmt"
	"time"

	"github.com/simonhull/filemeta/internal/sysattr"
)

// Save persists the editable metadata — the custom fields and an edited
// creation date — as extended attributes on the file, along with the
// tool's edit stamps.
//
// The creation date is written only when it differs from the
// filesystem's own birth time; an edit back to the original clears the
// stored override. Meta's edit stamps are updated in place with the
// written values.
func (f *File) Save() error {
	var birthtime time.Time
	if !f.Meta.CreationDate.Equal(f.fsBirth) {
		birthtime = f.Meta.CreationDate
	}

	written, err := f.ledger.Save(f.Path, f.Meta.CustomFields, birthtime)
	if err != nil {
		return fmt.Errorf("save annotations: %w", err)
	}

	f.Meta.EditedByTool = true
	f.Meta.ToolVersion = Version
	f.Meta.LastEditDate = written
	return nil
}

// RemoveAnnotations strips every attribute this tool has written: the
// edit stamps, the custom fields and any stored creation-date override.
// Attributes written by other software are left alone.
func (f *File) RemoveAnnotations() error {
	if err := f.ledger.RemoveAll(f.Path); err != nil {
		return fmt.Errorf("remove annotations: %w", err)
	}

	f.Meta.EditedByTool = false
	f.Meta.ToolVersion = ""
	f.Meta.LastEditDate = time.Time{}
	f.Meta.CustomFields = nil
	f.Meta.CreationDate = f.fsBirth
	return nil
}

// RemoveQuarantine deletes the quarantine attribute from the file.
// Removing an attribute that is not present is not an error.
func (f *File) RemoveQuarantine() error {
	if err := sysattr.RemoveQuarantine(f.opts.store, f.Path); err != nil {
		return fmt.Errorf("remove quarantine: %w", err)
	}
	if ext, ok := f.Extended(); ok {
		ext.System.Quarantine = nil
		delete(ext.System.Attributes, sysattr.KeyQuarantine)
	}
	return nil
}

// SetComment writes the Finder comment attribute. An empty comment
// removes the attribute.
func (f *File) SetComment(comment string) error {
	if err := sysattr.SetComment(f.opts.store, f.Path, comment); err != nil {
		return fmt.Errorf("set comment: %w", err)
	}
	if ext, ok := f.Extended(); ok {
		ext.System.FinderComment = comment
	}
	return nil
}

// SetWhereFroms writes the download-origin attribute. An empty list
// removes the attribute.
func (f *File) SetWhereFroms(urls []string) error {
	if err := sysattr.SetWhereFroms(f.opts.store, f.Path, urls); err != nil {
		return fmt.Errorf("set wherefroms: %w", err)
	}
	if ext, ok := f.Extended(); ok {
		ext.System.WhereFroms = urls
	}
	return nil
}

// SetUserTags writes the user-tag attribute. An empty list removes the
// attribute.
func (f *File) SetUserTags(tags []string) error {
	if err := sysattr.SetUserTags(f.opts.store, f.Path, tags); err != nil {
		return fmt.Errorf("set user tags: %w", err)
	}
	if ext, ok := f.Extended(); ok {
		ext.System.UserTags = tags
	}
	return nil
}
