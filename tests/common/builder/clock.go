//go:build unit || e2e

package builder

import "time"

// Now is the fixed instant builders stamp onto entities.
var Now = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

// Day returns midnight UTC of the given day in March 2026.
func Day(d int) time.Time {
	return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC)
}
