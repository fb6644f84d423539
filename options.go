package filemeta

import (
	"time"

	"github.com/simonhull/filemeta/internal/extract/archivemeta"
	"github.com/simonhull/filemeta/internal/extract/avmeta"
	"github.com/simonhull/filemeta/internal/extract/execmeta"
	"github.com/simonhull/filemeta/internal/xattrstore"
)

// AttributeStore is the key/value byte store bound to a file, normally
// the OS extended-attribute facility. Tests substitute NewMemoryStore().
type AttributeStore = xattrstore.Store

// MediaProber is the injected audio/video demuxer.
type MediaProber = avmeta.Prober

// ArchiveInspector is the injected archive listing capability.
type ArchiveInspector = archivemeta.Inspector

// ExecutableInspector is the injected binary inspection capability.
type ExecutableInspector = execmeta.Inspector

// NewMemoryStore returns an in-memory AttributeStore, useful in tests and
// for staging annotations without touching real files.
func NewMemoryStore() AttributeStore {
	return xattrstore.NewMemory()
}

// Option configures behavior when opening files.
//
// Options use the functional options pattern:
//
//	file, err := filemeta.Open("report.pdf",
//	    filemeta.WithProbeTimeout(5*time.Second),
//	    filemeta.WithExtendedPreload(),
//	)
type Option func(*openOptions)

// openOptions holds configuration for opening files.
type openOptions struct {
	store            AttributeStore
	prober           MediaProber
	archiveInspector ArchiveInspector
	execInspector    ExecutableInspector
	probeTimeout     time.Duration
	preloadExtended  bool // run the extraction phase during Open
	ignoreWarnings   bool // suppress all warnings
}

// defaultProbeTimeout bounds the extraction phase, external utilities
// included. Unbounded helper processes are worse than a missing field.
const defaultProbeTimeout = 20 * time.Second

func defaultOptions() *openOptions {
	return &openOptions{
		store:            xattrstore.NewOS(),
		prober:           avmeta.FFProbe{},
		archiveInspector: archivemeta.ExecInspector{},
		execInspector:    execmeta.ExecInspector{},
		probeTimeout:     defaultProbeTimeout,
	}
}

// WithStore substitutes the attribute store backing ledger reads and
// writes. The default is the operating system's xattr facility.
func WithStore(store AttributeStore) Option {
	return func(o *openOptions) {
		o.store = store
	}
}

// WithMediaProber substitutes the audio/video demuxer. The default
// shells out to ffprobe. Pass nil to skip technical AV probing entirely.
func WithMediaProber(p MediaProber) Option {
	return func(o *openOptions) {
		o.prober = p
	}
}

// WithArchiveInspector substitutes the archive listing capability. The
// default shells out to the system listing utilities. Pass nil to leave
// archive entry counts unknown.
func WithArchiveInspector(i ArchiveInspector) Option {
	return func(o *openOptions) {
		o.archiveInspector = i
	}
}

// WithExecutableInspector substitutes the binary inspection capability.
// The default shells out to the system inspection utilities. Pass nil to
// leave architectures and signing status unknown.
func WithExecutableInspector(i ExecutableInspector) Option {
	return func(o *openOptions) {
		o.execInspector = i
	}
}

// WithProbeTimeout bounds the extraction phase, external utility
// invocations included. A timeout degrades to absent fields, never an
// error. Zero removes the bound.
func WithProbeTimeout(d time.Duration) Option {
	return func(o *openOptions) {
		o.probeTimeout = d
	}
}

// WithExtendedPreload runs the extraction phase during Open instead of
// lazily on the first LoadExtended call.
//
// Use this when the extended record is always needed and the caller is
// already off the interactive path.
func WithExtendedPreload() Option {
	return func(o *openOptions) {
		o.preloadExtended = true
	}
}

// WithIgnoreWarnings suppresses all warnings.
//
// By default, non-fatal extraction issues are collected in File.Warnings.
// This option discards them.
func WithIgnoreWarnings() Option {
	return func(o *openOptions) {
		o.ignoreWarnings = true
	}
}
