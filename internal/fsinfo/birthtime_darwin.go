//go:build darwin

package fsinfo

import (
	"os"
	"syscall"
	"time"
)

// BirthTime returns the file's creation time, or zero when the platform
// does not record one.
func BirthTime(info os.FileInfo) time.Time {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return time.Time{}
	}
	return time.Unix(stat.Birthtimespec.Sec, stat.Birthtimespec.Nsec)
}
