// Package clock abstracts the source of the current calendar year so that
// components depending on it stay pure functions of their inputs.
package clock

import "time"

// Clock yields the current calendar year.
type Clock interface {
	Year() int
}

type systemClock struct{}

func (systemClock) Year() int {
	return time.Now().Year()
}

// System returns a Clock backed by the host's wall clock.
func System() Clock {
	return systemClock{}
}

// Fixed is a Clock pinned to one year. Intended for tests.
type Fixed int

// Year returns the pinned year.
func (f Fixed) Year() int {
	return int(f)
}
