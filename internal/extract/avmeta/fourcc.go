package avmeta

import (
	"math/bits"
	"strconv"
	"strings"
)

// FourCC renders a 32-bit codec identifier as its four-character code,
// one character per byte, most significant byte first.
func FourCC(v uint32) string {
	if v == 0 {
		return ""
	}
	b := [4]byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
	for _, c := range b {
		if c < 0x20 || c > 0x7E {
			return ""
		}
	}
	return string(b[:])
}

// codecFromTag decodes the demuxer's hex codec tag ("0x31637661"). The
// tag packs the characters least significant byte first, so the value is
// byte-swapped before rendering.
func codecFromTag(tag string) string {
	hex := strings.TrimPrefix(tag, "0x")
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return ""
	}
	return FourCC(bits.ReverseBytes32(uint32(v)))
}
