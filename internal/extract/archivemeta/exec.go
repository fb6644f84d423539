package archivemeta

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// ExecInspector counts archive entries by invoking the system listing
// utilities: an integrity-test listing for ZIP, a table-of-contents
// listing for TAR. A missing utility or a non-zero exit leaves the count
// unknown.
type ExecInspector struct{}

func (ExecInspector) Count(ctx context.Context, path string, format string) (int, error) {
	switch format {
	case "ZIP":
		return countLines(ctx, "testing: ", "unzip", "-t", path)
	case "TAR", "TAR.GZ", "TAR.BZ2", "TAR.XZ", "TGZ":
		return countLines(ctx, "", "tar", "-tf", path)
	default:
		return 0, fmt.Errorf("no listing utility for %s", format)
	}
}

// countLines runs the utility and counts output lines, optionally only
// those containing the marker.
func countLines(ctx context.Context, marker string, name string, args ...string) (int, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}

	count := 0
	for _, line := range strings.Split(string(out), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if marker != "" && !strings.Contains(line, marker) {
			continue
		}
		count++
	}
	return count, nil
}
