package textmeta

import (
	"os"
	"path/filepath"
	"testing"
)

func writeText(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDetectEncoding_BOMs(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		want string
	}{
		{"utf8 bom", append([]byte{0xEF, 0xBB, 0xBF}, "hi"...), "UTF-8 (BOM)"},
		{"utf16le bom", []byte{0xFF, 0xFE, 'h', 0x00}, "UTF-16 LE"},
		{"utf16be bom", []byte{0xFE, 0xFF, 0x00, 'h'}, "UTF-16 BE"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := detectEncoding(tc.data); got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestDetectEncoding_UTF8(t *testing.T) {
	if got := detectEncoding([]byte("héllo wörld")); got != "UTF-8" {
		t.Errorf("expected UTF-8, got %q", got)
	}
	// Pure ASCII also decodes as UTF-8; UTF-8 wins the cascade.
	if got := detectEncoding([]byte("plain ascii")); got != "UTF-8" {
		t.Errorf("expected UTF-8 for ASCII, got %q", got)
	}
}

func TestDetectEncoding_UTF16WithoutBOM(t *testing.T) {
	// "héllo" little-endian, no BOM. The 0xE9 byte breaks UTF-8 decoding,
	// so the cascade reaches the UTF-16 attempt.
	data := []byte{'h', 0x00, 0xE9, 0x00, 'l', 0x00, 'l', 0x00, 'o', 0x00}
	if got := detectEncoding(data); got != "UTF-16" {
		t.Errorf("expected UTF-16, got %q", got)
	}
}

func TestDetectLineEndings(t *testing.T) {
	cases := []struct {
		name string
		data string
		want string
	}{
		{"crlf", "a\r\nb\r\n", "CRLF"},
		{"lf", "a\nb\n", "LF"},
		{"cr", "a\rb\r", "CR"},
		{"none", "single line", "single line / none"},
		{"mixed favors crlf", "a\nb\r\nc\r", "CRLF"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := detectLineEndings([]byte(tc.data)); got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestParseFrontMatter(t *testing.T) {
	doc := "---\ntitle: Draft Notes\nauthor: Jane\ntags: a, b\n---\n# Body\n"
	fields := parseFrontMatter([]byte(doc))

	if fields["title"] != "Draft Notes" {
		t.Errorf("title: got %q", fields["title"])
	}
	if fields["author"] != "Jane" {
		t.Errorf("author: got %q", fields["author"])
	}
	if fields["tags"] != "a, b" {
		t.Errorf("tags: got %q", fields["tags"])
	}
}

func TestParseFrontMatter_CRLF(t *testing.T) {
	doc := "---\r\ntitle: Windows File\r\n---\r\nbody"
	fields := parseFrontMatter([]byte(doc))
	if fields["title"] != "Windows File" {
		t.Errorf("got %v", fields)
	}
}

func TestParseFrontMatter_NotAtStart(t *testing.T) {
	if fields := parseFrontMatter([]byte("# Heading\n---\nkey: v\n---\n")); fields != nil {
		t.Errorf("expected nil for mid-document delimiters, got %v", fields)
	}
}

func TestParseFrontMatter_Unterminated(t *testing.T) {
	if fields := parseFrontMatter([]byte("---\ntitle: x\nno closing")); fields != nil {
		t.Errorf("expected nil for unterminated block, got %v", fields)
	}
}

func TestExtract_MarkdownOnlyFrontMatter(t *testing.T) {
	doc := []byte("---\ntitle: x\n---\nbody\n")

	md := writeText(t, "notes.md", doc)
	info, warnings := Extract(md)
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if info.FrontMatter["title"] != "x" {
		t.Errorf("markdown front matter: got %v", info.FrontMatter)
	}
	if info.Encoding != "UTF-8" || info.LineEndings != "LF" {
		t.Errorf("got %q / %q", info.Encoding, info.LineEndings)
	}

	// Same content under .txt: front matter is not parsed.
	txt := writeText(t, "notes.txt", doc)
	info, _ = Extract(txt)
	if info.FrontMatter != nil {
		t.Errorf("expected no front matter for .txt, got %v", info.FrontMatter)
	}
}

func TestExtract_Missing(t *testing.T) {
	_, warnings := Extract(filepath.Join(t.TempDir(), "absent.txt"))
	if len(warnings) == 0 {
		t.Error("expected a warning")
	}
}
