// Package pdfmeta extracts document-level PDF attributes.
package pdfmeta

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"

	"github.com/simonhull/filemeta/internal/types"
)

// Extract reads PDF document attributes from path.
//
// All failures are soft: unreadable or malformed documents yield whatever
// subset of fields could be determined, plus warnings.
func Extract(path string) (types.PDFInfo, []types.Warning) {
	var info types.PDFInfo
	var warnings []types.Warning

	// The header version is readable even when the body is not.
	info.Version = headerVersion(path)

	if warning := readDocument(path, &info); warning != "" {
		warnings = append(warnings, types.Warning{Stage: "pdf", Message: warning})
	}

	return info, warnings
}

// readDocument fills info from the parsed document. The underlying reader
// panics on malformed cross-reference tables, so the whole read is
// contained here and a panic degrades to a warning.
func readDocument(path string, info *types.PDFInfo) (warning string) {
	defer func() {
		if r := recover(); r != nil {
			warning = fmt.Sprintf("malformed document: %v", r)
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return "open: " + err.Error()
	}
	defer f.Close()

	info.PageCount = reader.NumPage()

	trailer := reader.Trailer()
	if !trailer.Key("Encrypt").IsNull() {
		info.Encrypted = true
	}

	dict := trailer.Key("Info")
	if dict.IsNull() {
		return ""
	}

	info.Title = textValue(dict.Key("Title"))
	info.Author = textValue(dict.Key("Author"))
	info.Subject = textValue(dict.Key("Subject"))
	info.Producer = textValue(dict.Key("Producer"))
	info.Keywords = keywordsValue(dict.Key("Keywords"))
	info.Created = parseDate(textValue(dict.Key("CreationDate")))
	info.Modified = parseDate(textValue(dict.Key("ModDate")))

	return ""
}

func textValue(v pdf.Value) string {
	if v.Kind() != pdf.String {
		return ""
	}
	return strings.TrimSpace(v.Text())
}

// keywordsValue accepts both the usual string form and the occasional
// array-of-strings form, joined with ", ".
func keywordsValue(v pdf.Value) string {
	if v.Kind() == pdf.Array {
		parts := make([]string, 0, v.Len())
		for i := 0; i < v.Len(); i++ {
			if s := textValue(v.Index(i)); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	}
	return textValue(v)
}

// headerVersion reads the "major.minor" version from the %PDF- header.
func headerVersion(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	header := make([]byte, 16)
	n, err := io.ReadFull(f, header)
	if err != nil && err != io.ErrUnexpectedEOF {
		return ""
	}
	if n < 8 {
		return ""
	}

	const prefix = "%PDF-"
	s := string(header[:n])
	if !strings.HasPrefix(s, prefix) {
		return ""
	}
	version := s[len(prefix):]
	for i, c := range version {
		if (c < '0' || c > '9') && c != '.' {
			version = version[:i]
			break
		}
	}
	if len(version) < 3 || !strings.Contains(version, ".") {
		return ""
	}
	return version
}

// parseDate parses PDF date strings of the form D:YYYYMMDDHHmmSS with an
// optional timezone suffix. Trailing components may be omitted.
func parseDate(raw string) time.Time {
	s := strings.TrimPrefix(raw, "D:")
	if len(s) < 4 {
		return time.Time{}
	}

	// Timezone: Z, or ±HH'mm'
	loc := time.UTC
	if i := strings.IndexAny(s, "Z+-"); i >= 0 {
		tz := s[i:]
		s = s[:i]
		if tz != "Z" && len(tz) >= 3 {
			sign := 1
			if tz[0] == '-' {
				sign = -1
			}
			var hh, mm int
			fmt.Sscanf(strings.ReplaceAll(tz[1:], "'", ""), "%2d%2d", &hh, &mm)
			loc = time.FixedZone("", sign*(hh*3600+mm*60))
		}
	}

	// Fixed-width components left to right; omitted months and days
	// default to 01, times to 00.
	pad := s
	for len(pad) < 14 {
		switch len(pad) {
		case 4, 6: // month, day
			pad += "01"
		default:
			pad += "00"
		}
	}

	t, err := time.ParseInLocation("20060102150405", pad[:14], loc)
	if err != nil {
		return time.Time{}
	}
	return t
}
