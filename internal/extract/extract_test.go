package extract

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/simonhull/filemeta/internal/types"
	"github.com/simonhull/filemeta/internal/xattrstore"
)

func TestRun_UnknownKindStillGetsSystemAttrs(t *testing.T) {
	store := xattrstore.NewMemory()
	path := filepath.Join(t.TempDir(), "blob")
	if err := store.Set(path, "com.apple.quarantine", []byte("0081;1700000000;curl;")); err != nil {
		t.Fatal(err)
	}

	meta, warnings := Run(context.Background(), Options{Store: store}, path, types.KindUnknown)
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if meta.System.Quarantine == nil || meta.System.Quarantine.AgentName != "curl" {
		t.Errorf("expected quarantine info, got %+v", meta.System.Quarantine)
	}
	if !meta.HasAnyData() {
		t.Error("record should carry the system group")
	}
}

func TestRun_TextDispatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("line one\r\nline two\r\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	meta, _ := Run(context.Background(), Options{Store: xattrstore.NewMemory()}, path, types.KindText)
	if meta.Text.Encoding != "UTF-8" {
		t.Errorf("encoding: got %q", meta.Text.Encoding)
	}
	if meta.Text.LineEndings != "CRLF" {
		t.Errorf("line endings: got %q", meta.Text.LineEndings)
	}
}

func TestRun_NeverFails(t *testing.T) {
	// A missing file produces warnings, never an empty-handed panic or a
	// nil record.
	path := filepath.Join(t.TempDir(), "absent.pdf")

	meta, warnings := Run(context.Background(), Options{Store: xattrstore.NewMemory()}, path, types.KindPDF)
	if meta == nil {
		t.Fatal("record must always be returned")
	}
	if len(warnings) == 0 {
		t.Error("expected warnings for a missing file")
	}
}

func TestRun_NilStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("hello\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	meta, _ := Run(context.Background(), Options{}, path, types.KindText)
	if meta.System.Attributes != nil {
		t.Error("no store means no system attributes")
	}
	if meta.Text.Encoding != "UTF-8" {
		t.Errorf("format extraction should still run, got %q", meta.Text.Encoding)
	}
}
