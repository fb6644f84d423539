package avmeta

import "testing"

func TestFourCC(t *testing.T) {
	if got := FourCC(0x61766331); got != "avc1" {
		t.Errorf("expected avc1, got %q", got)
	}
	if got := FourCC(0); got != "" {
		t.Errorf("zero: expected empty, got %q", got)
	}
	// Non-printable bytes disqualify the whole code.
	if got := FourCC(0x00766331); got != "" {
		t.Errorf("non-printable: expected empty, got %q", got)
	}
}

func TestCodecFromTag(t *testing.T) {
	// The demuxer packs "avc1" least significant byte first.
	if got := codecFromTag("0x31637661"); got != "avc1" {
		t.Errorf("expected avc1, got %q", got)
	}
	if got := codecFromTag("0x6134706d"); got != "mp4a" {
		t.Errorf("expected mp4a, got %q", got)
	}
	if got := codecFromTag("notahex"); got != "" {
		t.Errorf("expected empty for garbage, got %q", got)
	}
	if got := codecFromTag("0x0000"); got != "" {
		t.Errorf("expected empty for zero tag, got %q", got)
	}
}

func TestFrameRateString(t *testing.T) {
	cases := []struct{ in, want string }{
		{"30000/1001", "29.97 fps"},
		{"25/1", "25.00 fps"},
		{"0/0", ""},
		{"24", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := frameRateString(tc.in); got != tc.want {
			t.Errorf("%q: expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestBitrateString(t *testing.T) {
	if got := bitrateString("128000"); got != "128 kbps" {
		t.Errorf("expected 128 kbps, got %q", got)
	}
	if got := bitrateString(""); got != "" {
		t.Errorf("expected empty, got %q", got)
	}
	if got := bitrateString("-5"); got != "" {
		t.Errorf("expected empty for negative, got %q", got)
	}
}

func TestStreamCodec_Preference(t *testing.T) {
	if got := streamCodec("0x31637661", "ignored", "h264"); got != "avc1" {
		t.Errorf("expected tag to win, got %q", got)
	}
	if got := streamCodec("", "hev1", "hevc"); got != "hev1" {
		t.Errorf("expected tag string, got %q", got)
	}
	if got := streamCodec("", "[0][0][0][0]", "aac"); got != "aac" {
		t.Errorf("expected name fallback, got %q", got)
	}
}

func TestContainerLabel(t *testing.T) {
	if got := containerLabel("/tmp/clip.mov"); got != "MOV" {
		t.Errorf("expected MOV, got %q", got)
	}
	if got := containerLabel("noext"); got != "" {
		t.Errorf("expected empty, got %q", got)
	}
}
