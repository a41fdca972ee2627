// Package timeutil provides the wall-clock helpers used when gating
// campaign windows.  The clock is exposed as a package variable so tests can
// pin it.
package timeutil

import "time"

// NowFunc returns current time. Override in tests for determinism.
var NowFunc = time.Now

// Now is a thin wrapper around NowFunc.
func Now() time.Time { return NowFunc() }

// Unix returns the current time as integer seconds since the epoch.
func Unix() int64 { return Now().Unix() }

// IsTodayAny reports whether any of the unix-second timestamps falls on the
// current local calendar day.  An empty or nil slice yields false.
func IsTodayAny(times []int64) bool {
	now := Now()
	year, month, day := now.Date()
	for _, ts := range times {
		y, m, d := time.Unix(ts, 0).In(now.Location()).Date()
		if y == year && m == month && d == day {
			return true
		}
	}
	return false
}
