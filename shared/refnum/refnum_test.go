package refnum_test

import (
	"regexp"
	"sync"
	"testing"
	"time"

	"passat/shared/refnum"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var referencePattern = regexp.MustCompile(`^(BU|RE)-\d{8}-\d{3}$`)

func TestGenerate_Format(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

	for range 10000 {
		ref := refnum.Generate("BU", now)

		require.Regexp(t, referencePattern, ref)
		assert.Equal(t, "BU-20250310-", ref[:12])
	}
}

func TestGenerate_SuffixRange(t *testing.T) {
	now := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)

	seen := map[string]bool{}

	for range 10000 {
		ref := refnum.Generate("RE", now)

		suffix := ref[len(ref)-3:]
		assert.GreaterOrEqual(t, suffix, "100")
		assert.LessOrEqual(t, suffix, "999")

		seen[ref] = true
	}

	// 900 possible suffixes per day; 10k draws must cover most of them.
	assert.Greater(t, len(seen), 890)
}

func TestGenerate_ConcurrentUse(t *testing.T) {
	now := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	// Booking and invoice creation draw numbers from concurrent requests;
	// every draw has to stay well-formed under parallel use.
	var wg sync.WaitGroup

	for range 8 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for range 1000 {
				ref := refnum.Generate("BU", now)

				if !referencePattern.MatchString(ref) {
					t.Errorf("malformed reference number: %s", ref)

					return
				}
			}
		}()
	}

	wg.Wait()
}

func TestGenerate_RetryFindsFreeNumber(t *testing.T) {
	now := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	// Simulate a store that already holds a few numbers: a redraw within
	// MaxAttempts has to land on a free one.
	taken := map[string]bool{}
	for range 50 {
		taken[refnum.Generate("BU", now)] = true
	}

	found := ""

	for range refnum.MaxAttempts {
		candidate := refnum.Generate("BU", now)
		if !taken[candidate] {
			found = candidate

			break
		}
	}

	require.NotEmpty(t, found, "expected a free number within %d attempts", refnum.MaxAttempts)
	assert.Regexp(t, referencePattern, found)
}
