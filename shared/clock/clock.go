package clock

import (
	"time"

	"passat/shared/timezone"
)

// Clock supplies the current time. Services that stamp dates (booking numbers,
// invoice issue dates) take it as a dependency so tests can pin the day.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func New() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return timezone.Now()
}

// Fixed returns a Clock frozen at the given instant.
func Fixed(t time.Time) Clock {
	return fixedClock{t: t}
}

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time {
	return c.t
}
