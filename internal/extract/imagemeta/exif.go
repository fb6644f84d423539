package imagemeta

import (
	"fmt"
	"math"
	"os"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/tiff"

	"github.com/simonhull/filemeta/internal/types"
)

// orientationNames maps the 8-way EXIF orientation code to a human string.
var orientationNames = map[int]string{
	1: "Normal",
	2: "Mirrored horizontal",
	3: "Rotated 180°",
	4: "Mirrored vertical",
	5: "Mirrored horizontal, rotated 270° CW",
	6: "Rotated 90° CW",
	7: "Mirrored horizontal, rotated 90° CW",
	8: "Rotated 270° CW",
}

// readEXIF fills the TIFF/EXIF-sourced fields. Returns a warning message
// when the file carries no decodable EXIF block at all.
func readEXIF(path string, info *types.ImageInfo) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		// No EXIF block is the normal case for screenshots and PNGs.
		return ""
	}

	info.CameraMake = stringTag(x, exif.Make)
	info.CameraModel = stringTag(x, exif.Model)
	info.LensModel = stringTag(x, exif.LensModel)

	if o, ok := intTag(x, exif.Orientation); ok {
		info.Orientation = orientationNames[o]
	}

	// Dimension fallback for formats the config decoders can't read.
	if info.Width == 0 {
		if w, ok := intTag(x, exif.PixelXDimension); ok {
			info.Width = w
		}
	}
	if info.Height == 0 {
		if h, ok := intTag(x, exif.PixelYDimension); ok {
			info.Height = h
		}
	}

	info.Aperture = apertureString(x)
	info.ShutterSpeed = shutterString(x)

	// ISO is a list field; the first element is the rating in use.
	if iso, ok := intTag(x, exif.ISOSpeedRatings); ok {
		info.ISO = fmt.Sprintf("%d", iso)
	}

	if fl, ok := ratTag(x, exif.FocalLength); ok {
		info.FocalLength = fmt.Sprintf("%dmm", int(fl))
	}

	if t, err := x.DateTime(); err == nil {
		info.DateTaken = t
	}

	readGPS(x, info)

	return ""
}

// apertureString renders the f-stop, preferring the direct f-number and
// deriving it from the APEX aperture value (f = 2^(apex/2)) otherwise.
func apertureString(x *exif.Exif) string {
	if fnum, ok := ratTag(x, exif.FNumber); ok && fnum > 0 {
		return fmt.Sprintf("f/%.1f", fnum)
	}
	if apex, ok := ratTag(x, exif.ApertureValue); ok {
		return formatAperture(apex)
	}
	return ""
}

func formatAperture(apex float64) string {
	return fmt.Sprintf("f/%.1f", math.Pow(2, apex/2))
}

// shutterString renders exposure time as a fraction under one second and
// as seconds otherwise: 0.004 → "1/250", 2.0 → "2.0s".
func shutterString(x *exif.Exif) string {
	t, ok := ratTag(x, exif.ExposureTime)
	if !ok || t <= 0 {
		return ""
	}
	return formatExposure(t)
}

func formatExposure(seconds float64) string {
	if seconds < 1 {
		return fmt.Sprintf("1/%d", int(math.Round(1/seconds)))
	}
	return fmt.Sprintf("%.1fs", seconds)
}

func readGPS(x *exif.Exif, info *types.ImageInfo) {
	lat, long, err := x.LatLong()
	if err != nil {
		return
	}

	latRef := stringTag(x, exif.GPSLatitudeRef)
	longRef := stringTag(x, exif.GPSLongitudeRef)
	info.GPSLatitude = fmt.Sprintf("%.6f° %s", math.Abs(lat), hemisphere(latRef, lat >= 0, "N", "S"))
	info.GPSLongitude = fmt.Sprintf("%.6f° %s", math.Abs(long), hemisphere(longRef, long >= 0, "E", "W"))

	if alt, ok := ratTag(x, exif.GPSAltitude); ok {
		ref := "above sea level"
		if tag, err := x.Get(exif.GPSAltitudeRef); err == nil {
			if v, err := tag.Int(0); err == nil && v == 1 {
				ref = "below sea level"
			}
		}
		info.GPSAltitude = fmt.Sprintf("%.1f m %s", alt, ref)
	}
}

// hemisphere prefers the recorded reference letter and falls back to the
// sign of the coordinate.
func hemisphere(ref string, positive bool, pos, neg string) string {
	if ref == pos || ref == neg {
		return ref
	}
	if positive {
		return pos
	}
	return neg
}

func stringTag(x *exif.Exif, name exif.FieldName) string {
	tag, err := x.Get(name)
	if err != nil {
		return ""
	}
	s, err := tag.StringVal()
	if err != nil {
		return ""
	}
	return s
}

func intTag(x *exif.Exif, name exif.FieldName) (int, bool) {
	tag, err := x.Get(name)
	if err != nil {
		return 0, false
	}
	v, err := tag.Int(0)
	if err != nil {
		return 0, false
	}
	return v, true
}

func ratTag(x *exif.Exif, name exif.FieldName) (float64, bool) {
	tag, err := x.Get(name)
	if err != nil {
		return 0, false
	}
	if tag.Type == tiff.DTRational || tag.Type == tiff.DTSRational {
		num, den, err := tag.Rat2(0)
		if err != nil || den == 0 {
			return 0, false
		}
		return float64(num) / float64(den), true
	}
	if v, err := tag.Int(0); err == nil {
		return float64(v), true
	}
	return 0, false
}
