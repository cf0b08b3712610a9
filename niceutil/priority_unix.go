//go:build !windows

package niceutil

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// pid 0 targets the caller itself. On Linux/NPTL the niceness is a per-task
// attribute, so "self" is the calling thread; elsewhere it is the process.
const pidSelf = 0

type platformPrioritizer struct{}

// Current returns the niceness of the calling context. The value channel is
// separate from the error channel, so a legitimate negative niceness is
// never mistaken for a failure.
func (platformPrioritizer) Current() (int, error) {
	nice, err := readNice()
	if err != nil {
		return 0, errors.Wrap(err, "getpriority")
	}
	return nice, nil
}

// Set adds incr to the current niceness, following nice(2) semantics. The
// input is handed to setpriority(2) unchecked; the kernel clamps it to the
// scheduler range and decides whether the caller may lower it. The niceness
// is re-read afterwards so the returned value is the one that took effect.
func (p platformPrioritizer) Set(incr int) (int, error) {
	cur, err := p.Current()
	if err != nil {
		return 0, err
	}
	if err := unix.Setpriority(unix.PRIO_PROCESS, pidSelf, cur+incr); err != nil {
		return 0, errors.Wrap(err, "setpriority")
	}
	return p.Current()
}
