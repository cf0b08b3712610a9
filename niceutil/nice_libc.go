//go:build !windows && !linux

package niceutil

import (
	"golang.org/x/sys/unix"
)

// On darwin and the BSDs x/sys goes through the libc getpriority wrapper,
// which already reports the true nice value with errno carried separately.
func readNice() (int, error) {
	return unix.Getpriority(unix.PRIO_PROCESS, pidSelf)
}
