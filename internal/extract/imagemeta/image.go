// Package imagemeta extracts raster-image metadata: dimensions and
// orientation, TIFF/EXIF camera fields, GPS position, IPTC records, XMP
// rating, PNG text chunks and the HEIC live-photo pairing identifier.
package imagemeta

import (
	"image"
	"os"
	"path/filepath"
	"strings"

	// Registered decoders for dimension probing.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/simonhull/filemeta/internal/types"
)

// Extract reads image metadata from path. Every field degrades
// independently: a JPEG without EXIF still reports dimensions, a PNG
// reports its text chunks and nothing else.
func Extract(path string) (types.ImageInfo, []types.Warning) {
	var info types.ImageInfo
	var warnings []types.Warning

	readDimensions(path, &info)

	if w := readEXIF(path, &info); w != "" {
		warnings = append(warnings, types.Warning{Stage: "image", Message: w})
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".jpg", ".jpeg":
		readIPTC(path, &info)
	case ".png":
		readPNGText(path, &info)
	case ".heic", ".heif":
		info.HEICContentID = scanContentIdentifier(path)
	}

	readXMPRating(path, &info)

	return info, warnings
}

func readDimensions(path string, info *types.ImageInfo) {
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		// Formats without a registered decoder (HEIC) fall back to the
		// EXIF pixel dimension tags in readEXIF.
		return
	}
	info.Width = cfg.Width
	info.Height = cfg.Height
}
