package utils

import "time"

// Japan Standard Time (+09:00)
var jstLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Asia/Tokyo"); err == nil {
		return loc
	}
	return time.FixedZone("JST", 9*3600)
}()

func NowUnixSeconds() int64 { return time.Now().Unix() }

// FromUnixSecondsJST converts epoch seconds to JST.
// Returns zero time if t<=0 to let callers decide how to render.
func FromUnixSecondsJST(t int64) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.Unix(t, 0).In(jstLoc)
}

func FormatRFC3339JST(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(jstLoc).Format(time.RFC3339) // e.g. 2025-09-24T15:12:00+09:00
}
