package cache

import (
	"sync"
	"time"
)

type entry struct {
	v   string
	exp time.Time
}

// TTLCache is an in-memory name cache with per-key expiry.
type TTLCache struct {
	mu sync.RWMutex
	m  map[string]entry
}

func NewTTLCache() *TTLCache {
	return &TTLCache{m: make(map[string]entry)}
}

func (c *TTLCache) GetName(symbol string) (string, bool) {
	c.mu.RLock()
	e, ok := c.m[symbol]
	c.mu.RUnlock()
	if !ok {
		return "", false
	}
	if !e.exp.IsZero() && time.Now().After(e.exp) {
		c.mu.Lock()
		delete(c.m, symbol)
		c.mu.Unlock()
		return "", false
	}
	return e.v, true
}

func (c *TTLCache) SetName(symbol, name string, ttl time.Duration) {
	var exp time.Time
	if ttl > 0 {
		exp = time.Now().Add(ttl)
	}
	c.mu.Lock()
	c.m[symbol] = entry{v: name, exp: exp}
	c.mu.Unlock()
}
