// Package fsinfo exposes the platform-specific pieces of file metadata
// that the standard library does not surface.
package fsinfo
