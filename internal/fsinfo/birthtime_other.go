//go:build !darwin

package fsinfo

import (
	"os"
	"time"
)

// BirthTime returns the file's creation time. Platforms without a
// recorded birth time return zero; callers fall back to the modification
// time or to the stored creation-date override.
func BirthTime(os.FileInfo) time.Time {
	return time.Time{}
}
