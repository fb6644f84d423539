// Package avmeta extracts audio and video metadata. Tag namespaces come
// from the tag reader; technical track properties come from a Prober, the
// injected demuxer black box.
package avmeta

import (
	"context"

	ffprobe "gopkg.in/vansante/go-ffprobe.v2"
)

// Prober abstracts the media demuxer so tests can substitute canned probe
// results instead of requiring the ffprobe binary.
type Prober interface {
	Probe(ctx context.Context, path string) (*ffprobe.ProbeData, error)
}

// FFProbe is the Prober backed by the ffprobe utility.
type FFProbe struct{}

func (FFProbe) Probe(ctx context.Context, path string) (*ffprobe.ProbeData, error) {
	return ffprobe.ProbeURL(ctx, path)
}
