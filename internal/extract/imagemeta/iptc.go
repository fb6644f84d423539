package imagemeta

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"

	"github.com/simonhull/filemeta/internal/types"
)

// IPTC IIM datasets of interest, all in record 2 (application record).
const (
	iptcKeywords  = 25
	iptcCredit    = 110
	iptcCopyright = 116
	iptcCaption   = 120
)

// readIPTC walks the JPEG marker segments looking for an APP13 Photoshop
// resource block carrying IPTC IIM data.
func readIPTC(path string, info *types.ImageInfo) {
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()

	data := findAPP13(f)
	if data == nil {
		return
	}
	iim := findIPTCResource(data)
	if iim == nil {
		return
	}
	parseIIM(iim, info)
}

// findAPP13 scans JPEG segments for the APP13 marker and returns its
// payload past the "Photoshop 3.0\x00" signature.
func findAPP13(r io.Reader) []byte {
	var soi [2]byte
	if _, err := io.ReadFull(r, soi[:]); err != nil || soi != [2]byte{0xFF, 0xD8} {
		return nil
	}

	var header [4]byte
	for {
		if _, err := io.ReadFull(r, header[:]); err != nil {
			return nil
		}
		if header[0] != 0xFF {
			return nil
		}
		marker := header[1]
		length := int(binary.BigEndian.Uint16(header[2:4]))
		if length < 2 {
			return nil
		}
		payload := length - 2

		// Entropy-coded data starts at SOS; nothing of interest follows.
		if marker == 0xDA {
			return nil
		}

		if marker == 0xED { // APP13
			buf := make([]byte, payload)
			if _, err := io.ReadFull(r, buf); err != nil {
				return nil
			}
			const sig = "Photoshop 3.0\x00"
			if bytes.HasPrefix(buf, []byte(sig)) {
				return buf[len(sig):]
			}
			continue
		}

		if _, err := io.CopyN(io.Discard, r, int64(payload)); err != nil {
			return nil
		}
	}
}

// findIPTCResource walks 8BIM image resource blocks for id 0x0404.
func findIPTCResource(data []byte) []byte {
	for len(data) >= 12 {
		if string(data[:4]) != "8BIM" {
			return nil
		}
		id := binary.BigEndian.Uint16(data[4:6])

		// Pascal name string, padded to even length.
		nameLen := int(data[6])
		nameEnd := 7 + nameLen
		if nameEnd%2 != 0 {
			nameEnd++
		}
		if nameEnd+4 > len(data) {
			return nil
		}

		size := int(binary.BigEndian.Uint32(data[nameEnd : nameEnd+4]))
		start := nameEnd + 4
		if start+size > len(data) {
			return nil
		}

		if id == 0x0404 {
			return data[start : start+size]
		}

		// Resource data padded to even length.
		next := start + size
		if next%2 != 0 {
			next++
		}
		data = data[next:]
	}
	return nil
}

// parseIIM walks IPTC IIM datasets (0x1C record dataset length value).
func parseIIM(data []byte, info *types.ImageInfo) {
	for len(data) >= 5 {
		if data[0] != 0x1C {
			return
		}
		record := data[1]
		dataset := data[2]
		length := int(binary.BigEndian.Uint16(data[3:5]))
		if length&0x8000 != 0 {
			// Extended dataset; longer than anything IIM text uses.
			return
		}
		if 5+length > len(data) {
			return
		}
		value := string(data[5 : 5+length])
		data = data[5+length:]

		if record != 2 {
			continue
		}
		switch dataset {
		case iptcKeywords:
			info.IPTCKeywords = append(info.IPTCKeywords, value)
		case iptcCaption:
			info.IPTCCaption = value
		case iptcCredit:
			info.IPTCCredit = value
		case iptcCopyright:
			info.IPTCCopyright = value
		}
	}
}
