package pipeline

import "github.com/jonboulle/clockwork"

// clock is a package-level time source so tests can freeze the year
// cutoff via SetClock. Production code uses the real clock.
var clock = clockwork.NewRealClock()

// SetClock swaps the time source. Pass nil to reset to real time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}

// CurrentYear returns the calendar year used for the temporal filter.
func CurrentYear() int {
	return clock.Now().Year()
}
