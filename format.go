package filemeta

import (
	"github.com/simonhull/filemeta/internal/classify"
	"github.com/simonhull/filemeta/internal/types"
)

// FormatKind is an alias to types.FormatKind.
// Re-exported from internal/types to keep the public API thin.
type FormatKind = types.FormatKind

// Re-export all format kind constants.
const (
	KindUnknown    = types.KindUnknown
	KindPDF        = types.KindPDF
	KindImage      = types.KindImage
	KindAudio      = types.KindAudio
	KindMovie      = types.KindMovie
	KindText       = types.KindText
	KindOffice     = types.KindOffice
	KindEPUB       = types.KindEPUB
	KindArchive    = types.KindArchive
	KindExecutable = types.KindExecutable
)

// Classify resolves the FormatKind for the file at path without loading
// anything else.
//
// Unknown is a valid answer, never an error: unknown files still carry
// system attributes and annotations.
func Classify(path string) FormatKind {
	kind, _ := classify.Detect(path)
	return kind
}
