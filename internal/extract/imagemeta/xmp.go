package imagemeta

import (
	"bytes"
	"io"
	"os"
	"regexp"
	"strconv"

	"github.com/simonhull/filemeta/internal/types"
)

// maxScan bounds how much of the file gets scanned for embedded XMP and
// vendor metadata. Packets sit near the front in practice.
const maxScan = 4 << 20

var (
	// xmp:Rating appears either as an XML attribute or as an element.
	xmpRatingAttr = regexp.MustCompile(`xmp:Rating="([^"]+)"`)
	xmpRatingElem = regexp.MustCompile(`<xmp:Rating>([^<]+)</xmp:Rating>`)

	uuidPattern = regexp.MustCompile(`[0-9A-Fa-f]{8}-[0-9A-Fa-f]{4}-[0-9A-Fa-f]{4}-[0-9A-Fa-f]{4}-[0-9A-Fa-f]{12}`)
)

// readXMPRating scans for an embedded XMP packet and parses the rating,
// accepting both string and numeric representations.
func readXMPRating(path string, info *types.ImageInfo) {
	data := readHead(path)
	if data == nil {
		return
	}

	m := xmpRatingAttr.FindSubmatch(data)
	if m == nil {
		m = xmpRatingElem.FindSubmatch(data)
	}
	if m == nil {
		return
	}

	if v, err := strconv.ParseFloat(string(bytes.TrimSpace(m[1])), 64); err == nil {
		info.XMPRating = int(v)
	}
}

// contentIdentifierKey is the vendor metadata key pairing a HEIC still
// with its live-photo movie.
const contentIdentifierKey = "com.apple.quicktime.content.identifier"

// scanContentIdentifier locates the vendor key in the HEIC metadata boxes
// and returns the UUID value stored alongside it.
func scanContentIdentifier(path string) string {
	data := readHead(path)
	if data == nil {
		return ""
	}

	i := bytes.Index(data, []byte(contentIdentifierKey))
	if i < 0 {
		return ""
	}

	// The identifier value follows the key in the item list; a short
	// window past the key covers the data box layout.
	window := data[i+len(contentIdentifierKey):]
	if len(window) > 512 {
		window = window[:512]
	}
	return string(uuidPattern.Find(window))
}

func readHead(path string) []byte {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxScan))
	if err != nil {
		return nil
	}
	return data
}
