package filemeta

import (
	"github.com/simonhull/filemeta/internal/types"
)

// FileMetadata is an alias to types.FileMetadata.
// Re-exported from internal/types to keep the public API thin.
type FileMetadata = types.FileMetadata

// ExtendedMetadata is an alias to types.ExtendedMetadata.
type ExtendedMetadata = types.ExtendedMetadata

// CustomField is an alias to types.CustomField.
type CustomField = types.CustomField

// QuarantineInfo is an alias to types.QuarantineInfo.
type QuarantineInfo = types.QuarantineInfo

// Grouped extended metadata aliases.
type (
	SystemAttrs    = types.SystemAttrs
	PDFInfo        = types.PDFInfo
	ImageInfo      = types.ImageInfo
	AudioInfo      = types.AudioInfo
	VideoInfo      = types.VideoInfo
	OfficeInfo     = types.OfficeInfo
	EPubInfo       = types.EPubInfo
	TextInfo       = types.TextInfo
	ArchiveInfo    = types.ArchiveInfo
	ExecutableInfo = types.ExecutableInfo
)

// NewCustomField creates a custom field with a fresh unique ID.
//
// The ID identifies the field across snapshot diffs; it is not persisted
// and does not participate in content equality.
func NewCustomField(key, value string) CustomField {
	return types.NewCustomField(key, value)
}

// ParseQuarantine parses a raw quarantine attribute string of the form
// "flags;timestamp;agent;origin".
func ParseQuarantine(raw string) *QuarantineInfo {
	return types.ParseQuarantine(raw)
}
