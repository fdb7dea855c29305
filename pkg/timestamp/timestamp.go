// Package timestamp formats the wall-clock times that loan and session
// records carry. The textual layout is load-bearing: downstream consumers
// parse it, so it must stay exactly "YYYY-MM-DD HH:MM:SS".
package timestamp

import "time"

// Layout is the canonical timestamp layout for loan and session records.
const Layout = "2006-01-02 15:04:05"

// Format renders t in the canonical layout.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// Now renders the current wall-clock time in the canonical layout.
func Now() string {
	return Format(time.Now())
}

// Parse parses a timestamp previously produced by Format.
func Parse(s string) (time.Time, error) {
	return time.Parse(Layout, s)
}
