// Package niceutil reads and adjusts the OS scheduling priority of the
// calling execution context. On Unix this is the niceness of the calling
// process (more negative = scheduled more favorably); on Windows it is the
// priority level of the calling thread, expressed as the integer codes
// accepted by SetThreadPriority. The two models genuinely differ and no
// emulation of one on the other is attempted.
package niceutil

// Prioritizer is the platform capability for priority access. Current
// returns the effective priority of the calling context. Set applies an
// integer value to it and returns the value that took effect: on Unix the
// input is a relative niceness adjustment, on Windows an absolute thread
// priority code validated against ThreadPriority.
type Prioritizer interface {
	Current() (int, error)
	Set(value int) (int, error)
}

// Default returns the Prioritizer for the platform this binary was built
// for. There are exactly two variants, chosen at compile time.
func Default() Prioritizer {
	return platformPrioritizer{}
}

// GetCurrentProcessPriority returns the current scheduling priority of the
// calling context: the niceness of the calling process on Unix, the priority
// code of the calling thread on Windows.
func GetCurrentProcessPriority() (int, error) {
	return platformPrioritizer{}.Current()
}

// Nice adjusts the scheduling priority of the calling context and returns
// the value that took effect. Called with no argument it applies 0, meaning
// "no change" on Unix and "normal" on Windows.
//
// On Unix incr is added to the current niceness, as nice(2) does; the
// resulting absolute niceness is returned, after any clamping the OS applies.
// On Windows incr must be one of the ThreadPriority codes and is applied to
// the calling thread via SetThreadPriority.
func Nice(incr ...int) (int, error) {
	value := 0
	if len(incr) > 0 {
		value = incr[0]
	}
	return platformPrioritizer{}.Set(value)
}
