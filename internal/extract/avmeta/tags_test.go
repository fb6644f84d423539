package avmeta

import (
	"testing"

	"github.com/simonhull/filemeta/internal/types"
)

func TestMapRawTags_ITunesAtoms(t *testing.T) {
	raw := map[string]interface{}{
		"\xa9nam": "Night Drive",
		"\xa9ART": "The Examples",
		"\xa9alb": "First Light",
		"\xa9day": "2021-03-05",
		"\xa9gen": "Electronic",
		"\xa9cmt": "demo master",
		"\xa9wrt": "J. Doe",
	}

	var info types.AudioInfo
	mapRawTags(raw, &info)

	if info.Title != "Night Drive" {
		t.Errorf("title: got %q", info.Title)
	}
	if info.Artist != "The Examples" {
		t.Errorf("artist: got %q", info.Artist)
	}
	if info.Album != "First Light" {
		t.Errorf("album: got %q", info.Album)
	}
	if info.Year != "2021" {
		t.Errorf("year: expected 2021, got %q", info.Year)
	}
	if info.Genre != "Electronic" {
		t.Errorf("genre: got %q", info.Genre)
	}
	if info.Comment != "demo master" {
		t.Errorf("comment: got %q", info.Comment)
	}
	if info.Composer != "J. Doe" {
		t.Errorf("composer: got %q", info.Composer)
	}
}

func TestMapRawTags_ID3Frames(t *testing.T) {
	raw := map[string]interface{}{
		"TIT2": "Track Title",
		"TPE1": "Artist Name",
		"TALB": "Album Name",
		"TYER": "1999",
		"TRCK": "3/12",
	}

	var info types.AudioInfo
	mapRawTags(raw, &info)

	if info.Title != "Track Title" || info.Artist != "Artist Name" || info.Album != "Album Name" {
		t.Errorf("got %+v", info)
	}
	if info.Year != "1999" {
		t.Errorf("year: got %q", info.Year)
	}
	if info.TrackNumber != 3 {
		t.Errorf("track: expected 3, got %d", info.TrackNumber)
	}
}

func TestMapRawTags_CommentFrameSuffix(t *testing.T) {
	// ID3 comment keys carry a language/description suffix.
	raw := map[string]interface{}{"COMM eng": "a note"}

	var info types.AudioInfo
	mapRawTags(raw, &info)
	if info.Comment != "a note" {
		t.Errorf("comment: got %q", info.Comment)
	}
}

func TestMapRawTags_UnknownKeysIgnored(t *testing.T) {
	raw := map[string]interface{}{
		"XXXX":  "ignored",
		"cover": []byte{1, 2, 3},
	}

	var info types.AudioInfo
	mapRawTags(raw, &info)
	if info != (types.AudioInfo{}) {
		t.Errorf("expected untouched info, got %+v", info)
	}
}

func TestTrackFromAtom_Blob(t *testing.T) {
	// 8-byte trkn payload: reserved, track 7, total 12, reserved.
	blob := []byte{0x00, 0x00, 0x00, 0x07, 0x00, 0x0C, 0x00, 0x00}
	if got := trackFromAtom(blob); got != 7 {
		t.Errorf("expected 7, got %d", got)
	}
}

func TestTrackFromAtom_ShortBlob(t *testing.T) {
	if got := trackFromAtom([]byte{0x00, 0x01}); got != 0 {
		t.Errorf("expected 0 for short blob, got %d", got)
	}
}

func TestTrackFromAtom_String(t *testing.T) {
	if got := trackFromAtom("4/10"); got != 4 {
		t.Errorf("expected 4, got %d", got)
	}
}

func TestYearOf(t *testing.T) {
	cases := []struct{ in, want string }{
		{"2021", "2021"},
		{"2021-03-05", "2021"},
		{"2021-03-05T10:00:00Z", "2021"},
		{"notayear", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := yearOf(tc.in); got != tc.want {
			t.Errorf("%q: expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestTrackOf(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"3", 3},
		{"3/12", 3},
		{" 5 / 9", 5},
		{"x", 0},
		{"", 0},
	}
	for _, tc := range cases {
		if got := trackOf(tc.in); got != tc.want {
			t.Errorf("%q: expected %d, got %d", tc.in, tc.want, got)
		}
	}
}

func TestValueString(t *testing.T) {
	if got := valueString("  spaced "); got != "spaced" {
		t.Errorf("string: got %q", got)
	}
	if got := valueString(42); got != "42" {
		t.Errorf("int: got %q", got)
	}
	if got := valueString(uint32(7)); got != "7" {
		t.Errorf("uint32: got %q", got)
	}
	if got := valueString([]byte{1, 2}); got != "" {
		t.Errorf("bytes: expected empty, got %q", got)
	}
}
