// Package classify resolves a file to one FormatKind.
//
// Content identification runs first, extension heuristics second. Unknown
// is a valid terminal classification and never an error: system-attribute
// extraction proceeds for unknown files too.
package classify

import (
	"encoding/binary"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/simonhull/filemeta/internal/types"
)

// Mach-O magic numbers: 32-bit and 64-bit in both byte orders, plus the
// universal (fat) binary magic.
const (
	magicMachO32        = 0xfeedface
	magicMachO32Swapped = 0xcefaedfe
	magicMachO64        = 0xfeedfacf
	magicMachO64Swapped = 0xcffaedfe
	magicFat            = 0xcafebabe
)

// officeTypes are the OOXML container content types. Checked before the
// generic archive types: both are ZIP containers and would otherwise be
// swallowed by archive detection.
var officeTypes = []string{
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"application/vnd.openxmlformats-officedocument.presentationml.presentation",
}

var archiveTypes = []string{
	"application/zip",
	"application/x-tar",
	"application/gzip",
	"application/x-bzip2",
	"application/x-xz",
	"application/x-7z-compressed",
	"application/x-rar-compressed",
	"application/x-rar",
}

// Detect classifies the file at path.
func Detect(path string) (types.FormatKind, []types.Warning) {
	var warnings []types.Warning

	mime, err := mimetype.DetectFile(path)
	if err != nil {
		warnings = append(warnings, types.Warning{Stage: "classify", Message: "content probe: " + err.Error()})
	} else if kind := fromContentType(mime); kind != types.KindUnknown {
		return kind, warnings
	}

	// Either signal alone qualifies the file as executable: a Mach-O magic
	// number in the first four bytes, or the executable permission bit.
	if isMachO(path) || hasExecBit(path) {
		return types.KindExecutable, warnings
	}

	if kind := fromExtension(path); kind != types.KindUnknown {
		return kind, warnings
	}

	return types.KindUnknown, warnings
}

func fromContentType(mime *mimetype.MIME) types.FormatKind {
	if mime.Is("application/pdf") {
		return types.KindPDF
	}

	for _, t := range officeTypes {
		if mime.Is(t) {
			return types.KindOffice
		}
	}
	if mime.Is("application/epub+zip") {
		return types.KindEPUB
	}
	for _, t := range archiveTypes {
		if mime.Is(t) {
			return types.KindArchive
		}
	}

	if mime.Is("application/x-mach-binary") {
		return types.KindExecutable
	}

	switch family(mime) {
	case "image":
		return types.KindImage
	case "audio":
		return types.KindAudio
	case "video":
		return types.KindMovie
	case "text":
		return types.KindText
	}

	// Structured text formats (JSON, XML, shell, ...) descend from
	// text/plain in the detection tree.
	for m := mime; m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return types.KindText
		}
	}

	return types.KindUnknown
}

func family(mime *mimetype.MIME) string {
	top, _, _ := strings.Cut(mime.String(), "/")
	return top
}

func fromExtension(path string) types.FormatKind {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return types.KindUnknown
	}
	kinds := []types.FormatKind{
		types.KindPDF, types.KindImage, types.KindAudio, types.KindMovie,
		types.KindOffice, types.KindEPUB, types.KindArchive,
		types.KindExecutable, types.KindText,
	}
	for _, kind := range kinds {
		for _, known := range kind.Extensions() {
			if ext == known {
				return kind
			}
		}
	}
	return types.KindUnknown
}

// isMachO reports whether the first four bytes match one of the five known
// Mach-O magic numbers.
func isMachO(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	var header [4]byte
	if _, err := io.ReadFull(f, header[:]); err != nil {
		return false
	}
	switch binary.BigEndian.Uint32(header[:]) {
	case magicMachO32, magicMachO32Swapped, magicMachO64, magicMachO64Swapped, magicFat:
		return true
	}
	return false
}

func hasExecBit(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular() && info.Mode().Perm()&0o111 != 0
}
