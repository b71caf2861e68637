// Package countdown implements the auxiliary one-shot timer: set a number
// of minutes, count to zero, done. It shares nothing with the session
// engine's phase cycle on purpose.
package countdown

import (
	"errors"
	"sync"
)

var ErrInvalidMinutes = errors.New("minutes must be greater than zero")

type Countdown struct {
	mu        sync.Mutex
	remaining int
	running   bool
	done      bool
}

func New() *Countdown {
	return &Countdown{}
}

// Start arms the timer with the given minutes. Starting while running is
// a no-op, matching the session engine's idempotent start.
func (c *Countdown) Start(minutes float64) error {
	if minutes <= 0 {
		return ErrInvalidMinutes
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.running {
		return nil
	}
	c.remaining = int(minutes * 60)
	c.running = true
	c.done = false
	return nil
}

// Tick burns down elapsed whole seconds. It reports true exactly once,
// on the tick that reaches zero.
func (c *Countdown) Tick(elapsed int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.running || elapsed <= 0 {
		return false
	}
	c.remaining -= elapsed
	if c.remaining > 0 {
		return false
	}
	c.remaining = 0
	c.running = false
	c.done = true
	return true
}

// Reset stops the timer and clears the display back to zero.
func (c *Countdown) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.remaining = 0
	c.running = false
	c.done = false
}

func (c *Countdown) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

func (c *Countdown) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

func (c *Countdown) Done() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.done
}
