package fetch

import "time"

const DefaultInterval = 30 * time.Second

// Clock tracks when the last refresh attempt finished.
type Clock struct {
	LastRefreshAt time.Time
	Interval      time.Duration
}

func NewClock(now time.Time, interval time.Duration) Clock {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return Clock{LastRefreshAt: now, Interval: interval}
}

// Due reports whether more than Interval has passed since the last attempt.
func (c Clock) Due(now time.Time) bool {
	return now.Sub(c.LastRefreshAt) > c.Interval
}

// Mark records a completed attempt, successful or not.
func (c *Clock) Mark(now time.Time) {
	c.LastRefreshAt = now
}
