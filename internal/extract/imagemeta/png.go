package imagemeta

import (
	"encoding/binary"
	"io"
	"os"
	"strings"

	"github.com/simonhull/filemeta/internal/types"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}

// maxPNGTextChunk caps how much of a single text chunk gets read; text
// metadata beyond this is not worth carrying.
const maxPNGTextChunk = 64 * 1024

// readPNGText walks PNG chunks collecting tEXt and uncompressed iTXt
// entries. "Software" and "Creation Time" map to their dedicated fields;
// everything else lands in the PNGText map.
func readPNGText(path string, info *types.ImageInfo) {
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()

	sig := make([]byte, 8)
	if _, err := io.ReadFull(f, sig); err != nil || string(sig) != string(pngSignature) {
		return
	}

	var header [8]byte
	for {
		if _, err := io.ReadFull(f, header[:]); err != nil {
			return
		}
		length := int64(binary.BigEndian.Uint32(header[:4]))
		chunkType := string(header[4:8])

		if chunkType == "IEND" {
			return
		}

		if (chunkType == "tEXt" || chunkType == "iTXt") && length <= maxPNGTextChunk {
			data := make([]byte, length)
			if _, err := io.ReadFull(f, data); err != nil {
				return
			}
			key, value := decodeTextChunk(chunkType, data)
			storeText(info, key, value)
		} else {
			if _, err := f.Seek(length, io.SeekCurrent); err != nil {
				return
			}
		}

		// Skip CRC.
		if _, err := f.Seek(4, io.SeekCurrent); err != nil {
			return
		}
	}
}

func decodeTextChunk(chunkType string, data []byte) (key, value string) {
	key, rest, ok := strings.Cut(string(data), "\x00")
	if !ok {
		return "", ""
	}

	if chunkType == "tEXt" {
		return key, rest
	}

	// iTXt: compression flag, compression method, language tag,
	// translated keyword, then the text. Compressed entries are skipped.
	if len(rest) < 2 || rest[0] != 0 {
		return "", ""
	}
	rest = rest[2:]
	if _, rest, ok = strings.Cut(rest, "\x00"); !ok { // language tag
		return "", ""
	}
	if _, rest, ok = strings.Cut(rest, "\x00"); !ok { // translated keyword
		return "", ""
	}
	return key, rest
}

func storeText(info *types.ImageInfo, key, value string) {
	if key == "" || value == "" {
		return
	}
	switch key {
	case "Software":
		info.PNGSoftware = value
	case "Creation Time":
		info.PNGCreationTime = value
	default:
		if info.PNGText == nil {
			info.PNGText = make(map[string]string)
		}
		info.PNGText[key] = value
	}
}
