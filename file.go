package filemeta

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/simonhull/filemeta/internal/classify"
	"github.com/simonhull/filemeta/internal/extract"
	"github.com/simonhull/filemeta/internal/fsinfo"
	"github.com/simonhull/filemeta/internal/ledger"
	"github.com/simonhull/filemeta/internal/types"
)

// File is an opened file with its metadata record.
//
// File loads in two phases. Open runs the fast phase: identity,
// permissions, format kind, the annotation ledger and custom fields,
// everything needed to show the file immediately. The extended phase —
// format-specific extraction, which may invoke external utilities and
// unpack container entries — is deferred until LoadExtended is called.
//
// Meta is the working record. Callers mutate it directly (custom fields,
// creation date) and persist through Save. Use NewSession to diff edits
// against the as-loaded snapshot.
type File struct {
	// Path to the inspected file
	Path string

	// Meta is the current metadata record
	Meta *FileMetadata

	// Warnings encountered during classification and extraction
	// (non-fatal issues)
	Warnings []Warning

	// Internal state (unexported)
	opts   *openOptions
	ledger *ledger.Ledger
	// fsBirth is the filesystem's own creation time, kept to tell a
	// user-edited creation date from the loaded one on save
	fsBirth time.Time
	// extracting guards the extended phase: only one extraction task per
	// file is ever in flight
	extracting atomic.Bool
	mu         sync.Mutex
}

// Open loads the fast-phase metadata for the file at path.
//
// The extended record is not loaded; call LoadExtended when it is needed,
// or pass WithExtendedPreload.
//
// Example:
//
//	file, err := filemeta.Open("photo.jpg")
//	if err != nil {
//		return err
//	}
//	fmt.Printf("%s (%s, %d bytes)\n", file.Meta.Name, file.Meta.Kind, file.Meta.Size)
func Open(path string, opts ...Option) (*File, error) {
	return OpenContext(context.Background(), path, opts...)
}

// OpenContext is Open with context support for cancellation. The context
// also bounds the preloaded extraction when WithExtendedPreload is set.
func OpenContext(ctx context.Context, path string, opts ...Option) (*File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s: is a directory", path)
	}

	f := &File{
		Path:   path,
		opts:   options,
		ledger: ledger.New(options.store, Version),
	}

	meta := &types.FileMetadata{
		Path:             path,
		Name:             filepath.Base(path),
		ModificationDate: info.ModTime(),
		Size:             info.Size(),
		Permissions:      strconv.FormatUint(uint64(info.Mode().Perm()), 8),
	}

	kind, warnings := classify.Detect(path)
	meta.Kind = kind
	f.addWarnings(warnings)

	f.fsBirth = fsinfo.BirthTime(info)
	if f.fsBirth.IsZero() {
		// Platforms without a recorded birth time report the modification
		// time, the closest observable fact.
		f.fsBirth = info.ModTime()
	}
	meta.CreationDate = f.fsBirth

	state, err := f.ledger.Read(path)
	if err != nil {
		return nil, fmt.Errorf("read annotations: %w", err)
	}
	meta.EditedByTool = state.EditedByTool
	meta.ToolVersion = state.ToolVersion
	meta.LastEditDate = state.LastEditDate
	meta.CustomFields = state.CustomFields
	if !state.BirthtimeOverride.IsZero() {
		// A stored override wins over the filesystem birth time.
		meta.CreationDate = state.BirthtimeOverride
	}

	f.Meta = meta

	if options.preloadExtended {
		if err := f.LoadExtended(ctx); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// LoadExtended runs the deferred extraction phase and caches the result
// in Meta.Extended.
//
// The phase is guarded: while an extraction is in flight, further calls
// are no-ops, so external utilities are never invoked twice for the same
// file. Once loaded, the cached record is returned without re-running
// extraction; use ReloadExtended to force a fresh pass.
//
// Extraction itself never fails — missing fields stay absent and the
// reasons land in Warnings. The only error returned is the context's.
func (f *File) LoadExtended(ctx context.Context) error {
	if _, ok := f.Extended(); ok {
		return nil
	}
	if !f.extracting.CompareAndSwap(false, true) {
		// An extraction is already in flight.
		return nil
	}
	defer f.extracting.Store(false)

	if err := ctx.Err(); err != nil {
		return err
	}

	meta, warnings := extract.Run(ctx, extract.Options{
		Store:               f.opts.store,
		Prober:              f.opts.prober,
		ArchiveInspector:    f.opts.archiveInspector,
		ExecutableInspector: f.opts.execInspector,
		Timeout:             f.opts.probeTimeout,
	}, f.Path, f.Meta.Kind)

	f.mu.Lock()
	f.Meta.Extended = meta
	f.mu.Unlock()
	f.addWarnings(warnings)

	return ctx.Err()
}

// Extended returns the cached extended record, and whether the extraction
// phase has completed.
func (f *File) Extended() (*ExtendedMetadata, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Meta.Extended, f.Meta.Extended != nil
}

// ReloadExtended discards the cached extended record and runs the
// extraction phase again.
func (f *File) ReloadExtended(ctx context.Context) error {
	f.mu.Lock()
	f.Meta.Extended = nil
	f.mu.Unlock()
	return f.LoadExtended(ctx)
}

// NewSession snapshots the current record and returns a change-tracking
// session over it.
func (f *File) NewSession() *Session {
	return NewSession(f.Meta)
}

func (f *File) addWarnings(warnings []types.Warning) {
	if f.opts.ignoreWarnings || len(warnings) == 0 {
		return
	}
	f.mu.Lock()
	f.Warnings = append(f.Warnings, warnings...)
	f.mu.Unlock()
}

// OpenMany opens multiple files concurrently.
//
// Files are loaded in parallel using up to runtime.NumCPU() goroutines.
// Results are returned in the same order as the input paths. If any file
// fails to open, an error is returned.
//
// Example:
//
//	files, err := filemeta.OpenMany(ctx, paths)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, f := range files {
//		fmt.Printf("%s: %s\n", f.Meta.Name, f.Meta.Kind)
//	}
func OpenMany(ctx context.Context, paths []string, opts ...Option) ([]*File, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU()) // Limit concurrent operations

	results := make([]*File, len(paths))

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			file, err := OpenContext(ctx, path, opts...)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			results[i] = file
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
