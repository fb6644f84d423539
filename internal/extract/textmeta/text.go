// Package textmeta extracts plain-text facts: character encoding, line
// ending style, and markdown front matter.
package textmeta

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/simonhull/filemeta/internal/types"
)

// maxRead bounds how much of the file is inspected. Encoding and line
// endings are determined from the head of the file.
const maxRead = 1 << 20

// Extract reads text facts from path.
func Extract(path string) (types.TextInfo, []types.Warning) {
	var info types.TextInfo
	var warnings []types.Warning

	f, err := os.Open(path)
	if err != nil {
		warnings = append(warnings, types.Warning{Stage: "text", Message: "open: " + err.Error()})
		return info, warnings
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxRead))
	if err != nil {
		warnings = append(warnings, types.Warning{Stage: "text", Message: "read: " + err.Error()})
		return info, warnings
	}

	info.Encoding = detectEncoding(data)
	info.LineEndings = detectLineEndings(data)

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".md" || ext == ".markdown" {
		info.FrontMatter = parseFrontMatter(data)
	}

	return info, warnings
}

// Byte-order marks, checked before any decode attempt.
var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// detectEncoding sniffs the BOM first, then attempts successive decodings
// and records the first that succeeds: UTF-8, UTF-16, ASCII, Latin-1.
func detectEncoding(data []byte) string {
	switch {
	case bytes.HasPrefix(data, bomUTF8):
		return "UTF-8 (BOM)"
	case bytes.HasPrefix(data, bomUTF16LE):
		return "UTF-16 LE"
	case bytes.HasPrefix(data, bomUTF16BE):
		return "UTF-16 BE"
	}

	// Successive decode attempts, first success wins. ASCII is ordered
	// after UTF-8 and so only matters as documentation of the cascade:
	// every ASCII file already decodes as UTF-8.
	if utf8.Valid(data) {
		return "UTF-8"
	}
	for _, enc := range []unicode.Endianness{unicode.LittleEndian, unicode.BigEndian} {
		dec := unicode.UTF16(enc, unicode.IgnoreBOM).NewDecoder()
		if decoded, err := dec.Bytes(data); err == nil && utf8.Valid(decoded) {
			return "UTF-16"
		}
	}
	if isASCII(data) {
		return "ASCII"
	}
	if _, err := charmap.ISO8859_1.NewDecoder().Bytes(data); err == nil {
		return "Latin-1"
	}

	return "Unknown"
}

func isASCII(data []byte) bool {
	for _, b := range data {
		if b > 0x7F {
			return false
		}
	}
	return true
}

// detectLineEndings is a priority check, not a count: any CRLF classifies
// the file as CRLF even when bare CR or LF appear elsewhere.
func detectLineEndings(data []byte) string {
	switch {
	case bytes.Contains(data, []byte("\r\n")):
		return "CRLF"
	case bytes.Contains(data, []byte("\n")):
		return "LF"
	case bytes.Contains(data, []byte("\r")):
		return "CR"
	default:
		return "single line / none"
	}
}

// parseFrontMatter reads a YAML-like key:value block delimited by "---"
// lines at the very start of a markdown file. Lines split naively on the
// first colon; no nesting, no quoting.
func parseFrontMatter(data []byte) map[string]string {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	if !strings.HasPrefix(text, "---") {
		return nil
	}

	parts := strings.SplitN(text, "---", 3)
	if len(parts) < 3 {
		return nil
	}
	block := parts[1]

	var fields map[string]string
	for _, line := range strings.Split(block, "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if key == "" || value == "" {
			continue
		}
		if fields == nil {
			fields = make(map[string]string)
		}
		fields[key] = value
	}
	return fields
}
