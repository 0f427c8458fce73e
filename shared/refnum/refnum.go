// Package refnum generates the human-readable reference numbers used on
// bookings (BU-...) and invoices (RE-...).
package refnum

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// MaxAttempts bounds how often a caller may redraw after a uniqueness
// collision before giving up.
const MaxAttempts = 5

const (
	suffixMin  = 100
	suffixSpan = 900
)

// Generate builds a reference number of the form <PREFIX>-<YYYYMMDD>-<NNN>,
// where NNN is a pseudo-random suffix in [100, 999] drawn from the shared
// math/rand/v2 generator, which is safe for concurrent callers. Collisions on
// the suffix are possible; uniqueness is owned by the store, and callers
// redraw on a unique violation up to MaxAttempts times.
func Generate(prefix string, now time.Time) string {
	suffix := suffixMin + rand.IntN(suffixSpan)

	return fmt.Sprintf("%s-%s-%03d", prefix, now.Format("20060102"), suffix)
}
