package avmeta

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	"github.com/dhowden/tag"

	"github.com/simonhull/filemeta/internal/types"
)

// itunesTags maps iTunes-style atom names to normalized audio fields.
// The © sign is byte 0xA9 in atom names.
var itunesTags = map[string]func(*types.AudioInfo, string){
	"\xa9nam": func(a *types.AudioInfo, v string) { a.Title = v },
	"\xa9ART": func(a *types.AudioInfo, v string) { a.Artist = v },
	"\xa9alb": func(a *types.AudioInfo, v string) { a.Album = v },
	"\xa9day": func(a *types.AudioInfo, v string) { a.Year = yearOf(v) },
	"\xa9gen": func(a *types.AudioInfo, v string) { a.Genre = v },
	"gnre":    func(a *types.AudioInfo, v string) { a.Genre = v },
	"\xa9cmt": func(a *types.AudioInfo, v string) { a.Comment = v },
	"\xa9wrt": func(a *types.AudioInfo, v string) { a.Composer = v },
}

// id3Tags maps ID3v2.3/2.4 frame IDs (plus the short v2.2 forms) to the
// same normalized fields.
var id3Tags = map[string]func(*types.AudioInfo, string){
	"TIT2": func(a *types.AudioInfo, v string) { a.Title = v },
	"TT2":  func(a *types.AudioInfo, v string) { a.Title = v },
	"TPE1": func(a *types.AudioInfo, v string) { a.Artist = v },
	"TP1":  func(a *types.AudioInfo, v string) { a.Artist = v },
	"TALB": func(a *types.AudioInfo, v string) { a.Album = v },
	"TAL":  func(a *types.AudioInfo, v string) { a.Album = v },
	"TYER": func(a *types.AudioInfo, v string) { a.Year = yearOf(v) },
	"TDRC": func(a *types.AudioInfo, v string) { a.Year = yearOf(v) },
	"TCON": func(a *types.AudioInfo, v string) { a.Genre = v },
	"COMM": func(a *types.AudioInfo, v string) { a.Comment = v },
	"TCOM": func(a *types.AudioInfo, v string) { a.Composer = v },
	"TRCK": func(a *types.AudioInfo, v string) {
		if n := trackOf(v); n > 0 {
			a.TrackNumber = n
		}
	},
}

// mapRawTags applies both namespace tables over the raw tag map.
//
// When the iTunes and ID3 namespaces both populate the same field, the
// outcome follows raw-map iteration order: last writer wins, which is
// non-deterministic when the values differ. A deterministic priority is
// a product decision not yet made.
func mapRawTags(raw map[string]interface{}, info *types.AudioInfo) {
	for key, value := range raw {
		if key == "trkn" {
			if n := trackFromAtom(value); n > 0 {
				info.TrackNumber = n
			}
			continue
		}

		set, ok := itunesTags[key]
		if !ok {
			// ID3 comment keys carry a language/description suffix
			// ("COMM ·eng·"); match on the frame ID alone.
			frameID, _, _ := strings.Cut(key, " ")
			set, ok = id3Tags[frameID]
		}
		if !ok {
			continue
		}
		if s := valueString(value); s != "" {
			set(info, s)
		}
	}
}

// trackFromAtom decodes the iTunes track-number atom blob: a 16-bit
// big-endian count at byte offset 2.
func trackFromAtom(value interface{}) int {
	switch v := value.(type) {
	case []byte:
		if len(v) < 4 {
			return 0
		}
		return int(binary.BigEndian.Uint16(v[2:4]))
	default:
		return trackOf(valueString(value))
	}
}

func valueString(value interface{}) string {
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v)
	case int:
		return strconv.Itoa(v)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case *tag.Comm:
		return strings.TrimSpace(v.Text)
	case tag.Comm:
		return strings.TrimSpace(v.Text)
	case fmt.Stringer:
		return strings.TrimSpace(v.String())
	default:
		return ""
	}
}

// yearOf reduces a date-like string ("2021-03-05") to its year.
func yearOf(v string) string {
	if len(v) > 4 {
		v = v[:4]
	}
	if _, err := strconv.Atoi(v); err != nil {
		return ""
	}
	return v
}

// trackOf parses "3" or "3/12" track strings.
func trackOf(v string) int {
	num, _, _ := strings.Cut(v, "/")
	n, err := strconv.Atoi(strings.TrimSpace(num))
	if err != nil {
		return 0
	}
	return n
}
