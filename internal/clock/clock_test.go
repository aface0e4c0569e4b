package clock

import (
	"testing"
	"time"
)

func TestCronTickerDeliversAndStops(t *testing.T) {
	ticker := NewCron().NewTicker(50 * time.Millisecond)

	select {
	case <-ticker.C():
	case <-time.After(2 * time.Second):
		ticker.Stop()
		t.Fatalf("no tick within 2s")
	}

	ticker.Stop()
	ticker.Stop()

	// Drain a tick that raced with Stop, then expect silence.
	select {
	case <-ticker.C():
	default:
	}
	select {
	case <-ticker.C():
		t.Fatalf("tick delivered after Stop")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestManualTickerFiresOnlyWhileReceived(t *testing.T) {
	manual := NewManual()
	ticker := manual.NewTicker(time.Second).(*ManualTicker)

	created, ok := manual.NextTicker(time.Second)
	if !ok || created != ticker {
		t.Fatalf("NextTicker = (%v, %v), want the created ticker", created, ok)
	}

	received := make(chan struct{})
	go func() {
		<-ticker.C()
		close(received)
	}()
	if !ticker.Fire(time.Second) {
		t.Fatalf("Fire reported no receiver")
	}
	<-received

	ticker.Stop()
	if !ticker.IsStopped() {
		t.Fatalf("ticker not marked stopped")
	}
	if ticker.Fire(50 * time.Millisecond) {
		t.Fatalf("stopped ticker accepted a tick")
	}
	if got := len(manual.Tickers()); got != 1 {
		t.Fatalf("tickers = %d, want 1", got)
	}
}
