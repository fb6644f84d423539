// Package archivemeta extracts archive facts. Entry counting goes through
// an injected Inspector so tests substitute a fake instead of shelling out
// to listing utilities.
package archivemeta

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/simonhull/filemeta/internal/types"
)

// Inspector counts the entries of an archive.
type Inspector interface {
	// Count returns the number of entries in the archive. Any failure
	// means the count is unknown; there is no fallback parse.
	Count(ctx context.Context, path string, format string) (int, error)
}

// Extract reads archive facts from path.
func Extract(ctx context.Context, inspector Inspector, path string) (types.ArchiveInfo, []types.Warning) {
	var info types.ArchiveInfo
	var warnings []types.Warning

	info.Format = formatLabel(path)

	if inspector == nil {
		return info, warnings
	}
	count, err := inspector.Count(ctx, path, info.Format)
	if err != nil {
		// Unknown count; deliberately no manual central-directory
		// fallback, which is not reliable across archive variants.
		warnings = append(warnings, types.Warning{Stage: "archive", Message: "count: " + err.Error()})
		return info, warnings
	}
	info.FileCount = count

	return info, warnings
}

// formatLabel derives the archive format from the file extension, with
// the compound tar extensions reported as TAR variants.
func formatLabel(path string) string {
	name := strings.ToLower(filepath.Base(path))
	switch {
	case strings.HasSuffix(name, ".tar.gz"), strings.HasSuffix(name, ".tgz"):
		return "TAR.GZ"
	case strings.HasSuffix(name, ".tar.bz2"):
		return "TAR.BZ2"
	case strings.HasSuffix(name, ".tar.xz"):
		return "TAR.XZ"
	}
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	if ext == "" {
		return ""
	}
	return strings.ToUpper(ext)
}
