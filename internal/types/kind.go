package types

// FormatKind represents the detected file category.
//
// The set is closed: adding a format means adding a constant here and a
// dispatch table entry in internal/extract, nothing else.
type FormatKind int

const (
	// KindUnknown represents an unrecognized file. It is a valid terminal
	// classification, not an error: system attributes are still extracted.
	KindUnknown FormatKind = iota
	// KindPDF represents PDF documents.
	KindPDF
	// KindImage represents raster images (JPEG, PNG, TIFF, HEIC, ...).
	KindImage
	// KindAudio represents audio files.
	KindAudio
	// KindMovie represents video files.
	KindMovie
	// KindText represents plain text and source code files.
	KindText
	// KindOffice represents OOXML office documents (docx, xlsx, pptx).
	KindOffice
	// KindEPUB represents ePub books.
	KindEPUB
	// KindArchive represents generic archives (zip, tar, gzip, ...).
	KindArchive
	// KindExecutable represents Mach-O executables and files with the
	// executable permission bit set.
	KindExecutable
)

// String returns a human-readable label for the kind.
func (k FormatKind) String() string {
	switch k {
	case KindPDF:
		return "PDF"
	case KindImage:
		return "Image"
	case KindAudio:
		return "Audio"
	case KindMovie:
		return "Movie"
	case KindText:
		return "Plain Text"
	case KindOffice:
		return "Office Document"
	case KindEPUB:
		return "EPUB"
	case KindArchive:
		return "Archive"
	case KindExecutable:
		return "Executable"
	case KindUnknown:
		return "Unknown"
	default:
		return "Unknown"
	}
}

// Extensions returns common file extensions for this kind.
//
// Used by the classifier as a fallback when content sniffing is
// inconclusive. Not exhaustive, deliberately: content identification
// runs first and covers the long tail.
func (k FormatKind) Extensions() []string {
	switch k {
	case KindPDF:
		return []string{".pdf"}
	case KindImage:
		return []string{".jpg", ".jpeg", ".png", ".gif", ".tiff", ".tif", ".bmp", ".webp", ".heic", ".heif"}
	case KindAudio:
		return []string{".mp3", ".m4a", ".m4b", ".flac", ".ogg", ".opus", ".wav", ".aiff", ".aif"}
	case KindMovie:
		return []string{".mp4", ".mov", ".m4v", ".mkv", ".avi", ".webm"}
	case KindText:
		return []string{".txt", ".md", ".markdown", ".go", ".py", ".c", ".h", ".sh", ".json", ".yaml", ".yml", ".xml", ".csv", ".log"}
	case KindOffice:
		return []string{".docx", ".xlsx", ".pptx"}
	case KindEPUB:
		return []string{".epub"}
	case KindArchive:
		return []string{".zip", ".tar", ".gz", ".tgz", ".bz2", ".xz", ".7z", ".rar"}
	case KindExecutable:
		return []string{".dylib", ".bundle", ".so"}
	case KindUnknown:
		return nil
	default:
		return nil
	}
}
