package countdown

import "time"

// Ticker delivers wall-clock ticks.
type Ticker interface {
	C() <-chan time.Time
	// Reset restarts the interval so the next tick is d from now.
	Reset(d time.Duration)
	Stop()
}

// Clock creates tickers. Tests substitute a manual clock.
type Clock interface {
	NewTicker(d time.Duration) Ticker
}

// SystemClock is the Clock backed by the time package.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) NewTicker(d time.Duration) Ticker {
	return systemTicker{ticker: time.NewTicker(d)}
}

type systemTicker struct {
	ticker *time.Ticker
}

func (t systemTicker) C() <-chan time.Time { return t.ticker.C }

func (t systemTicker) Reset(d time.Duration) { t.ticker.Reset(d) }

func (t systemTicker) Stop() { t.ticker.Stop() }
