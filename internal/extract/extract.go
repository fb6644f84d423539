// Package extract routes a classified file to its format extractor and
// merges the result with the system-attribute extraction into one
// ExtendedMetadata record.
package extract

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/simonhull/filemeta/internal/extract/archivemeta"
	"github.com/simonhull/filemeta/internal/extract/avmeta"
	"github.com/simonhull/filemeta/internal/extract/execmeta"
	"github.com/simonhull/filemeta/internal/extract/imagemeta"
	"github.com/simonhull/filemeta/internal/extract/officemeta"
	"github.com/simonhull/filemeta/internal/extract/pdfmeta"
	"github.com/simonhull/filemeta/internal/extract/textmeta"
	"github.com/simonhull/filemeta/internal/sysattr"
	"github.com/simonhull/filemeta/internal/types"
	"github.com/simonhull/filemeta/internal/xattrstore"
)

// Options carries the injected collaborators every extractor family may
// need. Nil inspectors degrade to absent fields for their contribution.
type Options struct {
	Store               xattrstore.Store
	Prober              avmeta.Prober
	ArchiveInspector    archivemeta.Inspector
	ExecutableInspector execmeta.Inspector
	// Timeout bounds the whole extraction phase, external utilities
	// included. Zero means no bound.
	Timeout time.Duration
}

// extractFn fills one format family's group on the record.
type extractFn func(ctx context.Context, opts Options, path string, meta *types.ExtendedMetadata) []types.Warning

// extractors is the closed dispatch table. KindUnknown has no entry:
// unknown files still get system attributes, nothing else.
var extractors = map[types.FormatKind]extractFn{
	types.KindPDF: func(_ context.Context, _ Options, path string, meta *types.ExtendedMetadata) []types.Warning {
		info, warnings := pdfmeta.Extract(path)
		meta.PDF = info
		return warnings
	},
	types.KindImage: func(_ context.Context, _ Options, path string, meta *types.ExtendedMetadata) []types.Warning {
		info, warnings := imagemeta.Extract(path)
		meta.Image = info
		return warnings
	},
	types.KindAudio: func(ctx context.Context, opts Options, path string, meta *types.ExtendedMetadata) []types.Warning {
		info, warnings := avmeta.ExtractAudio(ctx, opts.Prober, path)
		meta.Audio = info
		return warnings
	},
	types.KindMovie: func(ctx context.Context, opts Options, path string, meta *types.ExtendedMetadata) []types.Warning {
		info, warnings := avmeta.ExtractVideo(ctx, opts.Prober, path)
		meta.Video = info
		return warnings
	},
	types.KindOffice: func(_ context.Context, _ Options, path string, meta *types.ExtendedMetadata) []types.Warning {
		info, warnings := officemeta.ExtractOffice(path)
		meta.Office = info
		return warnings
	},
	types.KindEPUB: func(_ context.Context, _ Options, path string, meta *types.ExtendedMetadata) []types.Warning {
		info, warnings := officemeta.ExtractEPub(path)
		meta.EPub = info
		return warnings
	},
	types.KindText: func(_ context.Context, _ Options, path string, meta *types.ExtendedMetadata) []types.Warning {
		info, warnings := textmeta.Extract(path)
		meta.Text = info
		return warnings
	},
	types.KindArchive: func(ctx context.Context, opts Options, path string, meta *types.ExtendedMetadata) []types.Warning {
		info, warnings := archivemeta.Extract(ctx, opts.ArchiveInspector, path)
		meta.Archive = info
		return warnings
	},
	types.KindExecutable: func(ctx context.Context, opts Options, path string, meta *types.ExtendedMetadata) []types.Warning {
		info, warnings := execmeta.Extract(ctx, opts.ExecutableInspector, path)
		meta.Executable = info
		return warnings
	},
}

// Run performs the deferred extraction phase: the system-attribute
// extractor runs unconditionally, the kind's extractor in parallel with
// it. Each extractor writes its own group, so the merge has no field
// conflicts by construction; the audio namespace collision is resolved
// inside avmeta (see mapRawTags).
//
// Run never fails: everything that went wrong is a warning, and the
// record carries whatever was determined.
func Run(ctx context.Context, opts Options, path string, kind types.FormatKind) (*types.ExtendedMetadata, []types.Warning) {
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	meta := &types.ExtendedMetadata{}
	var sysWarnings, formatWarnings []types.Warning

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if opts.Store == nil {
			return nil
		}
		meta.System, sysWarnings = sysattr.Extract(opts.Store, path)
		return nil
	})

	if fn, ok := extractors[kind]; ok {
		g.Go(func() error {
			formatWarnings = fn(ctx, opts, path, meta)
			return nil
		})
	}

	g.Wait() //nolint:errcheck // branches only report warnings

	return meta, append(sysWarnings, formatWarnings...)
}
