package clock

import (
	"sync"
	"time"
)

// Manual is a Clock whose tickers only fire when told to.
type Manual struct {
	mu      sync.Mutex
	tickers []*ManualTicker
	created chan *ManualTicker
}

func NewManual() *Manual {
	return &Manual{created: make(chan *ManualTicker, 64)}
}

func (m *Manual) NewTicker(time.Duration) Ticker {
	ticker := &ManualTicker{
		ch:      make(chan time.Time),
		stopped: make(chan struct{}),
	}

	m.mu.Lock()
	m.tickers = append(m.tickers, ticker)
	m.mu.Unlock()

	m.created <- ticker
	return ticker
}

// NextTicker waits for the next ticker to be created.
func (m *Manual) NextTicker(timeout time.Duration) (*ManualTicker, bool) {
	select {
	case ticker := <-m.created:
		return ticker, true
	case <-time.After(timeout):
		return nil, false
	}
}

// Tickers returns every ticker created so far.
func (m *Manual) Tickers() []*ManualTicker {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*ManualTicker, len(m.tickers))
	copy(out, m.tickers)
	return out
}

type ManualTicker struct {
	ch       chan time.Time
	stopped  chan struct{}
	stopOnce sync.Once
}

func (t *ManualTicker) C() <-chan time.Time {
	return t.ch
}

func (t *ManualTicker) Stop() {
	t.stopOnce.Do(func() { close(t.stopped) })
}

// Fire delivers one tick. It reports false if nobody received it in time.
func (t *ManualTicker) Fire(timeout time.Duration) bool {
	select {
	case t.ch <- time.Now():
		return true
	case <-t.stopped:
		return false
	case <-time.After(timeout):
		return false
	}
}

func (t *ManualTicker) Stopped() <-chan struct{} {
	return t.stopped
}

func (t *ManualTicker) IsStopped() bool {
	select {
	case <-t.stopped:
		return true
	default:
		return false
	}
}
