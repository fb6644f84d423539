package avmeta

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/simonhull/filemeta/internal/types"
)

// ExtractVideo reads video metadata from path through the prober.
func ExtractVideo(ctx context.Context, prober Prober, path string) (types.VideoInfo, []types.Warning) {
	var info types.VideoInfo
	var warnings []types.Warning

	info.Container = containerLabel(path)

	if prober == nil {
		return info, warnings
	}
	data, err := prober.Probe(ctx, path)
	if err != nil {
		warnings = append(warnings, types.Warning{Stage: "video", Message: "probe: " + err.Error()})
		return info, warnings
	}

	if data.Format != nil {
		info.Duration = data.Format.DurationSeconds
		info.Bitrate = bitrateString(data.Format.BitRate)
		if v, err := data.Format.TagList.GetString("creation_time"); err == nil {
			info.CreationDate = v
		}
		info.Location = locationTag(data.Format.TagList)
	}

	for _, stream := range data.Streams {
		if stream == nil {
			continue
		}
		switch stream.CodecType {
		case "video":
			if info.Width == 0 {
				info.Width = stream.Width
				info.Height = stream.Height
				info.FrameRate = frameRateString(stream.AvgFrameRate)
				info.Codec = streamCodec(stream.CodecTag, stream.CodecTagString, stream.CodecName)
			}
		case "audio":
			info.AudioTracks++
			if lang := stream.Tags.Language; lang != "" {
				info.AudioLanguages = append(info.AudioLanguages, lang)
			}
		case "subtitle":
			info.SubtitleTracks++
			if lang := stream.Tags.Language; lang != "" {
				info.SubtitleLanguages = append(info.SubtitleLanguages, lang)
			}
		}
	}

	return info, warnings
}

// containerLabel derives the container name from the file extension,
// upper-cased: "clip.mov" → "MOV".
func containerLabel(path string) string {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	return strings.ToUpper(ext)
}

// locationTag reads the recorded location, either free text or the
// structured ISO 6709 form some containers use.
func locationTag(tags interface{ GetString(string) (string, error) }) string {
	for _, key := range []string{"location", "com.apple.quicktime.location.ISO6709"} {
		if v, err := tags.GetString(key); err == nil && v != "" {
			return v
		}
	}
	return ""
}

// frameRateString renders the demuxer's rational frame rate ("30000/1001")
// as "29.97 fps".
func frameRateString(raw string) string {
	num, den, ok := strings.Cut(raw, "/")
	if !ok {
		return ""
	}
	n, err1 := strconv.ParseFloat(num, 64)
	d, err2 := strconv.ParseFloat(den, 64)
	if err1 != nil || err2 != nil || d == 0 || n == 0 {
		return ""
	}
	return fmt.Sprintf("%.2f fps", n/d)
}
