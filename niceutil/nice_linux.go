//go:build linux

package niceutil

import (
	"golang.org/x/sys/unix"
)

// The getpriority(2) syscall returns 20-nice instead of the nice value so
// that the result can never land in the negative errno range. glibc undoes
// the bias; x/sys/unix binds the raw syscall and does not, see notes on
// https://linux.die.net/man/2/getpriority
const kernelNiceBias = 20

func niceFromKernelPriority(prio int) int {
	return kernelNiceBias - prio
}

func readNice() (int, error) {
	prio, err := unix.Getpriority(unix.PRIO_PROCESS, pidSelf)
	if err != nil {
		return 0, err
	}
	return niceFromKernelPriority(prio), nil
}
