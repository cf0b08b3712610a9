//go:build !windows

package niceutil

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

// lockThread pins the test to one OS thread so every get and set inside it
// observes the same task; on Linux the niceness is per-thread.
func lockThread(t *testing.T) {
	t.Helper()
	runtime.LockOSThread()
	t.Cleanup(runtime.UnlockOSThread)
}

func TestCurrentSucceedsBeforeAnyWrite(t *testing.T) {
	nice, err := GetCurrentProcessPriority()
	require.NoError(t, err)
	require.GreaterOrEqual(t, nice, -20)
	require.LessOrEqual(t, nice, 19)
}

func TestNiceZeroIsNoop(t *testing.T) {
	lockThread(t)

	before, err := GetCurrentProcessPriority()
	require.NoError(t, err)

	got, err := Nice()
	require.NoError(t, err)
	require.Equal(t, before, got)

	got, err = Nice(0)
	require.NoError(t, err)
	require.Equal(t, before, got)
}

// Raising the niceness is one-way for an unprivileged process, so this test
// deliberately runs near the end of the package (name order) and leaves the
// thread deniced.
func TestNiceAccumulates(t *testing.T) {
	lockThread(t)

	start, err := GetCurrentProcessPriority()
	require.NoError(t, err)
	if start > 9 {
		t.Skipf("niceness %d leaves no headroom below the scheduler ceiling", start)
	}

	got, err := Nice(5)
	require.NoError(t, err)
	require.Equal(t, start+5, got)

	got, err = Nice(5)
	require.NoError(t, err)
	require.Equal(t, start+10, got)

	cur, err := GetCurrentProcessPriority()
	require.NoError(t, err)
	require.Equal(t, start+10, cur)
}

func TestDefaultIsPlatformVariant(t *testing.T) {
	lockThread(t)

	p := Default()
	require.NotNil(t, p)

	nice, err := p.Current()
	require.NoError(t, err)

	viaPackage, err := GetCurrentProcessPriority()
	require.NoError(t, err)
	require.Equal(t, viaPackage, nice)
}
