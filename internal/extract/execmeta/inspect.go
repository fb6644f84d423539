package execmeta

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ExecInspector inspects binaries with the system utilities: the
// multi-architecture lister for fat binaries, the file identifier for thin
// ones, and the code-signing verifier for signatures.
type ExecInspector struct{}

func (ExecInspector) Architectures(ctx context.Context, path string, fat bool) ([]string, error) {
	if fat {
		out, err := exec.CommandContext(ctx, "lipo", "-archs", path).Output()
		if err != nil {
			return nil, fmt.Errorf("lipo: %w", err)
		}
		return strings.Fields(string(out)), nil
	}

	out, err := exec.CommandContext(ctx, "file", "-b", path).Output()
	if err != nil {
		return nil, fmt.Errorf("file: %w", err)
	}
	if arch := archFromDescription(string(out)); arch != "" {
		return []string{arch}, nil
	}
	return nil, nil
}

func (ExecInspector) Signed(ctx context.Context, path string) (bool, error) {
	err := exec.CommandContext(ctx, "codesign", "--verify", path).Run()
	if err == nil {
		return true, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// The verifier exits non-zero for unsigned binaries; that is an
		// answer, not a failure.
		return false, nil
	}
	return false, fmt.Errorf("codesign: %w", err)
}

// archFromDescription pulls the architecture token out of the file
// utility's description ("Mach-O 64-bit executable arm64").
func archFromDescription(desc string) string {
	for _, token := range []string{"arm64e", "arm64", "x86_64", "i386", "ppc64", "ppc"} {
		if strings.Contains(desc, token) {
			return token
		}
	}
	return ""
}
