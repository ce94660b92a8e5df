package web

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// mutating requests allowed per client address per minute.
const mutatingPerMinute = 10

// clientLimiter keeps one token bucket per client address. Mutating
// routes consult it before doing any generation, storage, or export
// work.
type clientLimiter struct {
	mu      sync.Mutex
	clients map[string]*rate.Limiter
}

func newClientLimiter() *clientLimiter {
	return &clientLimiter{
		clients: make(map[string]*rate.Limiter),
	}
}

func (c *clientLimiter) allow(addr string) bool {
	c.mu.Lock()
	limiter, ok := c.clients[addr]
	if !ok {
		limiter = rate.NewLimiter(rate.Every(time.Minute/mutatingPerMinute), mutatingPerMinute)
		c.clients[addr] = limiter
	}
	c.mu.Unlock()

	return limiter.Allow()
}
