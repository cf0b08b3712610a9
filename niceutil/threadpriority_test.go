package niceutil

import (
	"strconv"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestParseThreadPriorityRoundTrip(t *testing.T) {
	levels := []ThreadPriority{
		ThreadModeBackgroundBegin,
		ThreadModeBackgroundEnd,
		ThreadPriorityAboveNormal,
		ThreadPriorityBelowNormal,
		ThreadPriorityHighest,
		ThreadPriorityIdle,
		ThreadPriorityLowest,
		ThreadPriorityNormal,
		ThreadPriorityTimeCritical,
	}
	require.Len(t, levels, 9)

	for _, level := range levels {
		got, err := ParseThreadPriority(int(level))
		require.NoError(t, err, "code %d", int(level))
		require.Equal(t, level, got)
		require.Equal(t, int(level), int(got))
	}
}

func TestParseThreadPriorityCodes(t *testing.T) {
	tests := []struct {
		code int
		want ThreadPriority
	}{
		{0x00010000, ThreadModeBackgroundBegin},
		{0x00020000, ThreadModeBackgroundEnd},
		{1, ThreadPriorityAboveNormal},
		{-1, ThreadPriorityBelowNormal},
		{2, ThreadPriorityHighest},
		{-15, ThreadPriorityIdle},
		{-2, ThreadPriorityLowest},
		{0, ThreadPriorityNormal},
		{15, ThreadPriorityTimeCritical},
	}
	for _, tt := range tests {
		got, err := ParseThreadPriority(tt.code)
		require.NoError(t, err)
		require.Equal(t, tt.want, got)
	}
}

func TestParseThreadPriorityRejectsUnknownCodes(t *testing.T) {
	for _, code := range []int{3, 100, -16, 99, -3, 16, 14, 0x00030000, 0x00010001} {
		got, err := ParseThreadPriority(code)
		require.Error(t, err, "code %d", code)
		require.True(t, errors.Is(err, ErrInvalidPriority))
		require.Contains(t, err.Error(), strconv.Itoa(code))
		require.Contains(t, err.Error(), "is not a valid priority on Windows")
		require.Equal(t, ThreadPriority(0), got)
	}
}

func TestThreadPriorityString(t *testing.T) {
	require.Equal(t, "Normal", ThreadPriorityNormal.String())
	require.Equal(t, "Time Critical", ThreadPriorityTimeCritical.String())
	require.Equal(t, "Background Begin", ThreadModeBackgroundBegin.String())
	require.Equal(t, "Unknown", ThreadPriority(3).String())
}
