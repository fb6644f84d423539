package avmeta

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/dhowden/tag"

	"github.com/simonhull/filemeta/internal/types"
)

// ExtractAudio reads audio metadata from path.
//
// Tag fields come from the common cross-format namespace first, then the
// format-specific namespaces (iTunes atoms, ID3) are mapped over them.
// Duration, bitrate and codec come from the prober's view of the first
// audio track.
func ExtractAudio(ctx context.Context, prober Prober, path string) (types.AudioInfo, []types.Warning) {
	var info types.AudioInfo
	var warnings []types.Warning

	if w := readAudioTags(path, &info); w != "" {
		warnings = append(warnings, types.Warning{Stage: "audio", Message: w})
	}

	if prober == nil {
		return info, warnings
	}
	data, err := prober.Probe(ctx, path)
	if err != nil {
		warnings = append(warnings, types.Warning{Stage: "audio", Message: "probe: " + err.Error()})
		return info, warnings
	}

	if data.Format != nil {
		info.Duration = data.Format.DurationSeconds
		info.Bitrate = bitrateString(data.Format.BitRate)
	}

	for _, stream := range data.Streams {
		if stream == nil || stream.CodecType != "audio" {
			continue
		}
		info.Codec = streamCodec(stream.CodecTag, stream.CodecTagString, stream.CodecName)
		if info.Bitrate == "" {
			info.Bitrate = bitrateString(stream.BitRate)
		}
		break // first audio track only
	}

	return info, warnings
}

func readAudioTags(path string, info *types.AudioInfo) (warning string) {
	f, err := os.Open(path)
	if err != nil {
		return "open: " + err.Error()
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		// Untagged files are common and not worth a warning.
		return ""
	}

	// Common namespace first.
	info.Title = m.Title()
	info.Artist = m.Artist()
	info.Album = m.Album()
	info.Genre = m.Genre()
	info.Comment = m.Comment()
	info.Composer = m.Composer()
	if y := m.Year(); y != 0 {
		info.Year = strconv.Itoa(y)
	}
	if n, _ := m.Track(); n != 0 {
		info.TrackNumber = n
	}

	// Format-specific namespaces second.
	mapRawTags(m.Raw(), info)

	return ""
}

// bitrateString renders a bits-per-second figure as "N kbps".
func bitrateString(raw string) string {
	bps, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || bps <= 0 {
		return ""
	}
	return fmt.Sprintf("%d kbps", bps/1000)
}

// streamCodec prefers the numeric codec tag rendered as a four-character
// code, then the demuxer's own tag string, then the codec name.
func streamCodec(codecTag, tagString, name string) string {
	if c := codecFromTag(codecTag); c != "" {
		return c
	}
	if tagString != "" && tagString != "[0][0][0][0]" {
		return tagString
	}
	return name
}
