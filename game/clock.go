package game

// Clock is the monotonic millisecond time source. The caller reads it once
// per frame and passes the value to every operation of that frame.
type Clock interface {
	Now() int64
}

// ManualClock is a Clock advanced by hand, for headless runs and tests.
type ManualClock struct {
	now int64
}

// NewManualClock returns a clock reading start.
func NewManualClock(start int64) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() int64 {
	return c.now
}

// Advance moves the clock forward by d milliseconds and returns the new time.
func (c *ManualClock) Advance(d int64) int64 {
	c.now += d
	return c.now
}
