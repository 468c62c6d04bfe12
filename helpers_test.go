package conform_test

import "time"

// timeNow returns a fixed instant for scenario tests that need "a Time
// value" without depending on wall-clock time.
func timeNow() time.Time {
	return time.Date(2024, time.March, 2, 15, 4, 5, 0, time.UTC)
}

func epochMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
