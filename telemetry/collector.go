package telemetry

import "github.com/pthm-cable/komodo/pet"

// Collector accumulates session events within time windows and produces
// WindowStats and SessionSummary records. It implements game.Observer.
type Collector struct {
	window int64

	session     int
	windowStart int64
	age         int

	// Current window
	feeds        int
	hungerTicks  int
	stageChanges int
	samples      []float64

	// Current session
	startedAt      int64
	hatchedAt      int64
	sessionFeeds   int
	sessionSamples []float64
	open           bool

	done []SessionSummary
}

// NewCollector creates a collector with the given window length in ms.
func NewCollector(window int64) *Collector {
	if window < 1 {
		window = 1
	}
	return &Collector{window: window, hatchedAt: -1}
}

// SessionStarted closes any running session and opens a new one.
func (c *Collector) SessionStarted(now int64) {
	if c.open {
		c.closeSession(now, false)
	}
	c.session++
	c.open = true
	c.startedAt = now
	c.hatchedAt = -1
	c.age = 0
	c.sessionFeeds = 0
	c.sessionSamples = c.sessionSamples[:0]
	c.resetWindow(now)
}

func (c *Collector) Hatched(now int64) {
	c.hatchedAt = now
}

func (c *Collector) StageChanged(_ int64, _, _ pet.Stage, age int) {
	c.stageChanges++
	c.age = age
}

func (c *Collector) HungerTicked(_ int64, hunger int) {
	c.hungerTicks++
	c.sample(hunger)
}

func (c *Collector) Fed(_ int64, hunger int) {
	c.feeds++
	c.sessionFeeds++
	c.sample(hunger)
}

func (c *Collector) Died(now int64, age int) {
	c.age = age
	c.closeSession(now, true)
}

func (c *Collector) sample(hunger int) {
	c.samples = append(c.samples, float64(hunger))
	c.sessionSamples = append(c.sessionSamples, float64(hunger))
}

func (c *Collector) closeSession(now int64, died bool) {
	c.done = append(c.done, SessionSummary{
		Session:     c.session,
		StartedAt:   c.startedAt,
		HatchedAt:   c.hatchedAt,
		EndedAt:     now,
		FinalAge:    c.age,
		Died:        died,
		Feeds:       c.sessionFeeds,
		Lifetime:    float64(now-c.startedAt) / 1000,
		HungerStats: ComputeHungerStats(c.sessionSamples),
	})
	c.open = false
}

// ShouldFlush returns true once the current window has run its length.
func (c *Collector) ShouldFlush(now int64) bool {
	return now-c.windowStart >= c.window
}

// Flush produces a WindowStats for the current window and starts the next.
// The caller provides the present age and fly count.
func (c *Collector) Flush(now int64, age, flies int) WindowStats {
	c.age = age
	stats := WindowStats{
		Session:      c.session,
		WindowStart:  c.windowStart,
		WindowEnd:    now,
		Age:          age,
		Stage:        pet.StageFor(age).String(),
		Flies:        flies,
		Feeds:        c.feeds,
		HungerTicks:  c.hungerTicks,
		StageChanges: c.stageChanges,
		HungerStats:  ComputeHungerStats(c.samples),
	}
	c.resetWindow(now)
	return stats
}

func (c *Collector) resetWindow(now int64) {
	c.windowStart = now
	c.feeds = 0
	c.hungerTicks = 0
	c.stageChanges = 0
	c.samples = c.samples[:0]
}

// Finish closes a session still running at shutdown with its current age.
func (c *Collector) Finish(now int64, age int) {
	if c.open {
		c.age = age
		c.closeSession(now, false)
	}
}

// TakeSessions returns the sessions completed since the last call.
func (c *Collector) TakeSessions() []SessionSummary {
	out := c.done
	c.done = nil
	return out
}

// Session returns the number of the current session, starting at 1.
func (c *Collector) Session() int {
	return c.session
}
