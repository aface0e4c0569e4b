package quiz

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"subject-quiz/internal/clock"
)

const defaultTickInterval = time.Second

type Option func(*Controller)

func WithBudget(seconds int) Option {
	return func(c *Controller) {
		if seconds > 0 {
			c.budget = seconds
		}
	}
}

func WithClock(clk clock.Clock) Option {
	return func(c *Controller) {
		if clk != nil {
			c.clock = clk
		}
	}
}

func WithTickInterval(interval time.Duration) Option {
	return func(c *Controller) {
		if interval > 0 {
			c.interval = interval
		}
	}
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Controller) {
		if log != nil {
			c.log = log
		}
	}
}

// Controller owns one session's State. Every mutation goes through Dispatch,
// and a countdown ticker runs exactly while the state is active.
type Controller struct {
	provider Provider
	budget   int
	clock    clock.Clock
	interval time.Duration
	log      logrus.FieldLogger

	mu         sync.Mutex
	state      State
	stopTicker context.CancelFunc
	tickerDone chan struct{}
	observers  map[int]func(State)
	nextID     int
	closed     bool
	seq        uint64

	// notifyMu orders observer delivery by seq; notified is the last
	// delivered seq.
	notifyMu   sync.Mutex
	notifyCond *sync.Cond
	notified   uint64
}

func NewController(provider Provider, opts ...Option) *Controller {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	c := &Controller{
		provider:  provider,
		budget:    DefaultBudget,
		clock:     clock.NewCron(),
		interval:  defaultTickInterval,
		log:       discard,
		observers: make(map[int]func(State)),
	}
	c.notifyCond = sync.NewCond(&c.notifyMu)
	for _, opt := range opts {
		opt(c)
	}
	c.state = NewState(c.budget)
	return c
}

func (c *Controller) Budget() int {
	return c.budget
}

// State returns a snapshot of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Clone()
}

// Dispatch applies action and returns the resulting snapshot. Observers see
// snapshots in the order the state changed, and Dispatch returns only after
// its own snapshot was delivered.
func (c *Controller) Dispatch(action Action) State {
	return c.dispatch(nil, action)
}

// Subscribe registers fn to receive a snapshot after every dispatch,
// including ticks. fn may read State but must not Dispatch. The returned func
// removes the subscription.
func (c *Controller) Subscribe(fn func(State)) func() {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.observers[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.observers, id)
		c.mu.Unlock()
	}
}

// Close releases the ticker and waits for it to exit. Dispatch after Close
// leaves the state untouched.
func (c *Controller) Close() {
	c.mu.Lock()
	c.closed = true
	c.releaseTickerLocked()
	done := c.tickerDone
	c.mu.Unlock()

	if done != nil {
		<-done
	}
}

// dispatch runs action under the lock. A non-nil owner marks a tick coming
// from a ticker goroutine; once that ticker is released its ticks are dropped.
func (c *Controller) dispatch(owner context.Context, action Action) State {
	c.mu.Lock()
	if c.closed || (owner != nil && owner.Err() != nil) {
		snapshot := c.state.Clone()
		c.mu.Unlock()
		return snapshot
	}

	prev := c.state
	c.state = Reduce(c.state, action, c.provider, c.budget)
	if prev.Status != c.state.Status {
		c.log.WithFields(logrus.Fields{
			"action":    action.Type,
			"subject":   c.state.Subject,
			"from":      prev.Status,
			"to":        c.state.Status,
			"time_left": c.state.TimeLeft,
		}).Debug("quiz state transition")
	}
	c.syncTickerLocked(prev.Status, action)

	c.seq++
	seq := c.seq
	snapshot := c.state.Clone()
	observers := make([]func(State), 0, len(c.observers))
	for _, fn := range c.observers {
		observers = append(observers, fn)
	}
	c.mu.Unlock()

	c.notify(seq, snapshot, observers)
	return snapshot
}

// notify waits until every earlier snapshot has been delivered, then hands
// snapshot to observers.
func (c *Controller) notify(seq uint64, snapshot State, observers []func(State)) {
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()

	for c.notified != seq-1 {
		c.notifyCond.Wait()
	}
	for _, fn := range observers {
		fn(snapshot)
	}
	c.notified = seq
	c.notifyCond.Broadcast()
}

// syncTickerLocked ties the ticker's lifetime to the active status. A start
// while already active replaces the ticker so the fresh countdown gets a
// fresh source.
func (c *Controller) syncTickerLocked(prev Status, action Action) {
	wasActive := prev == StatusActive
	isActive := c.state.Status == StatusActive
	restarted := wasActive && isActive && action.Type == ActionStart

	if wasActive && (!isActive || restarted) {
		c.releaseTickerLocked()
	}
	if isActive && (!wasActive || restarted) {
		c.acquireTickerLocked()
	}
}

func (c *Controller) acquireTickerLocked() {
	if c.closed {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	prevDone := c.tickerDone
	done := make(chan struct{})
	c.stopTicker = cancel
	c.tickerDone = done

	c.log.WithField("subject", c.state.Subject).Debug("countdown ticker acquired")
	go c.runTicker(ctx, prevDone, done)
}

// releaseTickerLocked cancels the running ticker without waiting for it; the
// next acquire waits on its done channel instead.
func (c *Controller) releaseTickerLocked() {
	if c.stopTicker == nil {
		return
	}
	c.stopTicker()
	c.stopTicker = nil
	c.log.WithField("subject", c.state.Subject).Debug("countdown ticker released")
}

func (c *Controller) runTicker(ctx context.Context, prevDone <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	if prevDone != nil {
		<-prevDone
	}
	if ctx.Err() != nil {
		return
	}

	ticker := c.clock.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C():
			c.dispatch(ctx, Tick())
		}
	}
}
