//go:build windows

package niceutil

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

// x/sys/windows wraps the process priority class calls but not the
// per-thread ones, so those are bound here directly.
var (
	kernel32              = windows.NewLazySystemDLL("kernel32.dll")
	procGetCurrentThread  = kernel32.NewProc("GetCurrentThread")
	procGetThreadPriority = kernel32.NewProc("GetThreadPriority")
	procSetThreadPriority = kernel32.NewProc("SetThreadPriority")
)

// Value GetThreadPriority overloads to signal failure. A real priority code
// can never reach it, so no errno-style disambiguation is needed here.
const threadPriorityErrorReturn = 0x7fffffff

// Native THREAD_PRIORITY_* and THREAD_MODE_BACKGROUND_* values, from
// processthreadsapi.h.
const (
	threadModeBackgroundBegin  = 0x00010000
	threadModeBackgroundEnd    = 0x00020000
	threadPriorityAboveNormal  = 1
	threadPriorityBelowNormal  = -1
	threadPriorityHighest      = 2
	threadPriorityIdle         = -15
	threadPriorityLowest       = -2
	threadPriorityNormal       = 0
	threadPriorityTimeCritical = 15
)

// native maps a validated level to the constant SetThreadPriority expects.
// The mapping is exhaustive over the nine levels ParseThreadPriority can
// produce.
func (p ThreadPriority) native() int32 {
	switch p {
	case ThreadModeBackgroundBegin:
		return threadModeBackgroundBegin
	case ThreadModeBackgroundEnd:
		return threadModeBackgroundEnd
	case ThreadPriorityAboveNormal:
		return threadPriorityAboveNormal
	case ThreadPriorityBelowNormal:
		return threadPriorityBelowNormal
	case ThreadPriorityHighest:
		return threadPriorityHighest
	case ThreadPriorityIdle:
		return threadPriorityIdle
	case ThreadPriorityLowest:
		return threadPriorityLowest
	case ThreadPriorityNormal:
		return threadPriorityNormal
	case ThreadPriorityTimeCritical:
		return threadPriorityTimeCritical
	}
	return threadPriorityNormal
}

// currentThread returns the pseudo handle for the calling thread. It is
// re-acquired on every call, never stored, and needs no CloseHandle.
func currentThread() uintptr {
	h, _, _ := procGetCurrentThread.Call()
	return h
}

type platformPrioritizer struct{}

// Current returns the priority code of the calling thread via
// GetThreadPriority. The raw code is returned as is, not decoded to a level
// name.
func (platformPrioritizer) Current() (int, error) {
	ret, _, lastErr := procGetThreadPriority.Call(currentThread())
	if int32(ret) == threadPriorityErrorReturn {
		return 0, errors.Wrap(lastErr, "GetThreadPriority")
	}
	return int(int32(ret)), nil
}

// Set validates value against the nine thread priority codes and applies it
// to the calling thread. Unknown codes fail before any OS call is made. On
// success the applied code is returned without re-querying the OS.
func (platformPrioritizer) Set(value int) (int, error) {
	level, err := ParseThreadPriority(value)
	if err != nil {
		return 0, err
	}
	ret, _, lastErr := procSetThreadPriority.Call(currentThread(), uintptr(level.native()))
	if ret == 0 {
		return 0, errors.Wrap(lastErr, "SetThreadPriority")
	}
	return int(level), nil
}
