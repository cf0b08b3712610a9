package niceutil

import (
	"github.com/pkg/errors"
)

// ThreadPriority enumerates the priority levels a Windows thread can be set
// to, plus the two background processing mode toggles. The integer values
// are the codes the Windows API itself uses, so a ThreadPriority converts to
// and from its wire value by plain conversion.
//
// The enumeration is closed: exactly these nine codes are valid and
// ParseThreadPriority rejects everything else. The two mode toggles are not
// priorities; they switch reduced resource scheduling on and off for the
// calling thread.
type ThreadPriority int

const (
	ThreadModeBackgroundBegin  ThreadPriority = 0x00010000
	ThreadModeBackgroundEnd    ThreadPriority = 0x00020000
	ThreadPriorityAboveNormal  ThreadPriority = 1
	ThreadPriorityBelowNormal  ThreadPriority = -1
	ThreadPriorityHighest      ThreadPriority = 2
	ThreadPriorityIdle         ThreadPriority = -15
	ThreadPriorityLowest       ThreadPriority = -2
	ThreadPriorityNormal       ThreadPriority = 0
	ThreadPriorityTimeCritical ThreadPriority = 15
)

// ErrInvalidPriority reports an integer outside the nine recognized thread
// priority codes. Use errors.Is to test for it.
var ErrInvalidPriority = errors.New("invalid priority")

// ParseThreadPriority validates an integer against the closed set of thread
// priority codes. Unknown values fail with ErrInvalidPriority; they are
// never clamped or rounded to a nearby level. The validation is pure and
// touches no OS state.
func ParseThreadPriority(value int) (ThreadPriority, error) {
	switch p := ThreadPriority(value); p {
	case ThreadModeBackgroundBegin, ThreadModeBackgroundEnd,
		ThreadPriorityAboveNormal, ThreadPriorityBelowNormal,
		ThreadPriorityHighest, ThreadPriorityIdle, ThreadPriorityLowest,
		ThreadPriorityNormal, ThreadPriorityTimeCritical:
		return p, nil
	}
	return 0, errors.Wrapf(ErrInvalidPriority, "%d is not a valid priority on Windows", value)
}

// String implements the fmt.Stringer interface
func (p ThreadPriority) String() string {
	switch p {
	case ThreadModeBackgroundBegin:
		return "Background Begin"
	case ThreadModeBackgroundEnd:
		return "Background End"
	case ThreadPriorityAboveNormal:
		return "Above Normal"
	case ThreadPriorityBelowNormal:
		return "Below Normal"
	case ThreadPriorityHighest:
		return "Highest"
	case ThreadPriorityIdle:
		return "Idle"
	case ThreadPriorityLowest:
		return "Lowest"
	case ThreadPriorityNormal:
		return "Normal"
	case ThreadPriorityTimeCritical:
		return "Time Critical"
	}
	return "Unknown"
}
