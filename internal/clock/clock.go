package clock

import (
	"sync"
	"time"

	"github.com/go-co-op/gocron"
)

// Ticker delivers a periodic signal on C until Stop is called.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// Clock creates tickers. It lets tests drive the countdown by hand.
type Clock interface {
	NewTicker(interval time.Duration) Ticker
}

// Cron runs each ticker as a gocron job on its own scheduler, so stopping a
// ticker tears down exactly one job.
type Cron struct {
	Location *time.Location
}

func NewCron() Cron {
	return Cron{Location: time.UTC}
}

func (c Cron) NewTicker(interval time.Duration) Ticker {
	location := c.Location
	if location == nil {
		location = time.UTC
	}

	ticker := &cronTicker{
		scheduler: gocron.NewScheduler(location),
		ch:        make(chan time.Time, 1),
	}

	// WaitForSchedule skips the immediate run; the first tick lands one
	// interval after start, like time.Ticker.
	_, err := ticker.scheduler.Every(interval).WaitForSchedule().SingletonMode().Do(ticker.fire)
	if err != nil {
		return newStdTicker(interval)
	}
	ticker.scheduler.StartAsync()
	return ticker
}

type cronTicker struct {
	scheduler *gocron.Scheduler
	ch        chan time.Time
	stopOnce  sync.Once
}

func (t *cronTicker) C() <-chan time.Time {
	return t.ch
}

func (t *cronTicker) Stop() {
	t.stopOnce.Do(t.scheduler.Stop)
}

func (t *cronTicker) fire() {
	// Drop the tick if the consumer is behind, same as time.Ticker.
	select {
	case t.ch <- time.Now():
	default:
	}
}

type stdTicker struct {
	ticker *time.Ticker
}

func newStdTicker(interval time.Duration) *stdTicker {
	return &stdTicker{ticker: time.NewTicker(interval)}
}

func (t *stdTicker) C() <-chan time.Time {
	return t.ticker.C
}

func (t *stdTicker) Stop() {
	t.ticker.Stop()
}
