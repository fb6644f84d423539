// Package xattrstore provides key/value byte persistence bound to a file,
// backed by the OS extended-attribute facility.
//
// The store is pure CRUD with no format knowledge. It is an explicit handle,
// constructed once and passed to every component that needs attribute
// access; there is no package-level state.
package xattrstore

import (
	"errors"

	"github.com/pkg/xattr"
	"golang.org/x/sys/unix"

	"github.com/simonhull/filemeta/internal/types"
)

// Store reads and writes extended attributes.
//
// The zero value is ready to use. Store exists as an interface seam: tests
// substitute a memory-backed implementation instead of touching real files.
type Store interface {
	// Get returns the attribute value, or (nil, false, nil) when the
	// attribute is absent. The error is non-nil only for real I/O failures.
	Get(path, key string) ([]byte, bool, error)
	Set(path, key string, value []byte) error
	Remove(path, key string) error
	// List returns the names of all attributes present on the file.
	List(path string) ([]string, error)
}

// OS is the Store backed by the operating system's xattr calls.
type OS struct{}

// NewOS returns the OS-backed store.
func NewOS() *OS {
	return &OS{}
}

func (*OS) Get(path, key string) ([]byte, bool, error) {
	data, err := xattr.Get(path, key)
	if err != nil {
		if isAbsent(err) {
			return nil, false, nil
		}
		return nil, false, &types.AttributeError{Path: path, Attr: key, Op: "get", Err: err}
	}
	return data, true, nil
}

func (*OS) Set(path, key string, value []byte) error {
	if err := xattr.Set(path, key, value); err != nil {
		return &types.AttributeError{Path: path, Attr: key, Op: "set", Err: err}
	}
	return nil
}

func (*OS) Remove(path, key string) error {
	if err := xattr.Remove(path, key); err != nil {
		if isAbsent(err) {
			// Removing an absent attribute is a no-op, not a failure.
			return nil
		}
		return &types.AttributeError{Path: path, Attr: key, Op: "remove", Err: err}
	}
	return nil
}

func (*OS) List(path string) ([]string, error) {
	names, err := xattr.List(path)
	if err != nil {
		if isUnsupported(err) {
			return nil, nil
		}
		return nil, &types.AttributeError{Path: path, Op: "list", Err: err}
	}
	return names, nil
}

// isAbsent reports whether err means "no such attribute" rather than a
// real I/O failure. A filesystem without extended-attribute support
// (tmpfs, FAT, some NFS mounts) counts: attributes there are absent,
// not broken.
func isAbsent(err error) bool {
	var xerr *xattr.Error
	if errors.As(err, &xerr) {
		return xerr.Err == xattr.ENOATTR || isUnsupported(err)
	}
	return false
}

func isUnsupported(err error) bool {
	return errors.Is(err, unix.ENOTSUP) || errors.Is(err, unix.EOPNOTSUPP)
}
