// Package execmeta extracts Mach-O executable facts. Architecture and
// code-signing inspection go through an injected Inspector so tests can
// substitute fakes for the system utilities.
package execmeta

import (
	"context"
	"encoding/binary"
	"io"
	"os"

	"github.com/simonhull/filemeta/internal/types"
)

// Mach-O magic numbers, same five constants the classifier probes.
const (
	magicMachO32        = 0xfeedface
	magicMachO32Swapped = 0xcefaedfe
	magicMachO64        = 0xfeedfacf
	magicMachO64Swapped = 0xcffaedfe
	magicFat            = 0xcafebabe
)

// Inspector reports architecture and signing facts for an executable.
type Inspector interface {
	// Architectures lists the CPU architectures. Fat binaries use a
	// dedicated multi-architecture listing utility, thin binaries the
	// single-architecture one.
	Architectures(ctx context.Context, path string, fat bool) ([]string, error)
	// Signed reports whether the binary carries a valid code signature.
	Signed(ctx context.Context, path string) (bool, error)
}

// Extract reads executable facts from path.
func Extract(ctx context.Context, inspector Inspector, path string) (types.ExecutableInfo, []types.Warning) {
	var info types.ExecutableInfo
	var warnings []types.Warning

	format, fat, ok := classifyMagic(path)
	if !ok {
		// Executable by permission bit only; nothing further to inspect.
		return info, warnings
	}
	info.Format = format

	if inspector == nil {
		return info, warnings
	}

	archs, err := inspector.Architectures(ctx, path, fat)
	if err != nil {
		warnings = append(warnings, types.Warning{Stage: "executable", Message: "architectures: " + err.Error()})
	} else {
		info.Architectures = archs
	}

	signed, err := inspector.Signed(ctx, path)
	if err != nil {
		warnings = append(warnings, types.Warning{Stage: "executable", Message: "signing: " + err.Error()})
	} else if signed {
		info.SigningStatus = "Signed"
	} else {
		info.SigningStatus = "Unsigned"
	}

	return info, warnings
}

// classifyMagic reads the first four bytes and matches them against the
// five known Mach-O magic numbers.
func classifyMagic(path string) (format string, fat bool, ok bool) {
	f, err := os.Open(path)
	if err != nil {
		return "", false, false
	}
	defer f.Close()

	var header [4]byte
	if _, err := io.ReadFull(f, header[:]); err != nil {
		return "", false, false
	}

	switch binary.BigEndian.Uint32(header[:]) {
	case magicMachO32, magicMachO32Swapped:
		return "Mach-O 32-bit", false, true
	case magicMachO64, magicMachO64Swapped:
		return "Mach-O 64-bit", false, true
	case magicFat:
		return "Mach-O Universal", true, true
	}
	return "", false, false
}
