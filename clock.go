package sfml

import (
	"time"

	"github.com/phanxgames/sfml/ffi"
)

var clockClass = &Class[ffi.Clock]{
	Name:    "Clock",
	Destroy: func(c *ffi.Clock) { lib().ClockDelete(c) },
}

// Clock measures elapsed time on the foreign monotonic clock. A new clock is
// running.
type Clock struct {
	box *FBox[ffi.Clock]
}

// NewClock creates a running clock.
func NewClock() (*Clock, error) {
	box, err := Acquire(clockClass, lib().ClockNew())
	if err != nil {
		return nil, err
	}
	return &Clock{box: box}, nil
}

func microseconds(us int64) time.Duration {
	return time.Duration(us) * time.Microsecond
}

// ElapsedTime returns the time accumulated while running since the last
// restart or reset.
func (c *Clock) ElapsedTime() time.Duration {
	return microseconds(lib().ClockElapsedTime(c.box.Raw()))
}

// Restart returns the elapsed time, zeroes it and keeps the clock running.
func (c *Clock) Restart() time.Duration {
	return microseconds(lib().ClockRestart(c.box.Raw()))
}

// Reset returns the elapsed time, zeroes it and stops the clock.
func (c *Clock) Reset() time.Duration {
	return microseconds(lib().ClockReset(c.box.Raw()))
}

// Start resumes a stopped clock.
func (c *Clock) Start() { lib().ClockStart(c.box.Raw()) }

// Stop pauses the clock without losing the elapsed time.
func (c *Clock) Stop() { lib().ClockStop(c.box.Raw()) }

// IsRunning reports whether the clock is accumulating time.
func (c *Clock) IsRunning() bool { return lib().ClockIsRunning(c.box.Raw()) }

// Dispose frees the foreign clock.
func (c *Clock) Dispose() { c.box.Dispose() }

// Sleep blocks the calling thread for d, with microsecond resolution.
func Sleep(d time.Duration) {
	lib().Sleep(d.Microseconds())
}
