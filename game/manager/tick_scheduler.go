package manager

import (
	"time"
)

// TickScheduler owns the periodic timer that drives ticks. Changing the
// interval cancels the running ticker and schedules a new one, so the new
// interval applies from the next tick on.
type TickScheduler struct {
	ticker   *time.Ticker
	interval time.Duration
	stopped  chan time.Time
}

func NewTickScheduler() *TickScheduler {
	return &TickScheduler{
		// never fires; returned by C() while no ticker is running
		stopped: make(chan time.Time),
	}
}

// Start begins ticking at interval, replacing any running ticker
func (ts *TickScheduler) Start(interval time.Duration) {
	ts.Stop()
	ts.interval = interval
	ts.ticker = time.NewTicker(interval)
}

// Reset cancels the current ticker and schedules a new one with interval
func (ts *TickScheduler) Reset(interval time.Duration) {
	ts.Start(interval)
}

// Stop cancels the running ticker. Safe to call more than once.
func (ts *TickScheduler) Stop() {
	if ts.ticker != nil {
		ts.ticker.Stop()
		ts.ticker = nil
	}
}

// C is the channel ticks are delivered on
func (ts *TickScheduler) C() <-chan time.Time {
	if ts.ticker == nil {
		return ts.stopped
	}
	return ts.ticker.C
}

// Running reports whether a ticker is scheduled
func (ts *TickScheduler) Running() bool {
	return ts.ticker != nil
}

func (ts *TickScheduler) Interval() time.Duration {
	return ts.interval
}
