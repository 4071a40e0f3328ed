package timex

import "time"

// NowMs returns Unix milliseconds as int64.
func NowMs() int64 { return time.Now().UnixMilli() }

// TicksForMillis converts a millisecond duration to ticks of a freqHz
// source with integer truncation, e.g. 10 ms at 32768 Hz is 327 ticks.
// 64-bit result: callers range-check against their hardware field width.
func TicksForMillis(freqHz uint32, ms uint32) uint64 {
	return uint64(ms) * uint64(freqHz) / 1000
}

// TicksForSeconds converts a whole-second duration to ticks of a freqHz
// source.
func TicksForSeconds(freqHz uint32, s uint32) uint64 {
	return uint64(s) * uint64(freqHz)
}

// SecondsFromTicks converts an accumulated raw count back to whole
// seconds, truncated.
func SecondsFromTicks(freqHz uint32, ticks uint32) uint32 {
	if freqHz == 0 {
		return 0
	}
	return ticks / freqHz
}
