package market

import (
	"sync"
	"time"
)

// CooldownRegistry suppresses re-triggering a symbol that was just traded.
// Entries are evicted lazily when their expiry is observed to have passed.
type CooldownRegistry struct {
	mu       sync.Mutex
	unlockAt map[string]time.Time
}

// NewCooldownRegistry creates an empty registry.
func NewCooldownRegistry() *CooldownRegistry {
	return &CooldownRegistry{unlockAt: make(map[string]time.Time)}
}

// TryAcquire reports whether the symbol may trigger now. When allowed, the
// symbol is immediately locked until now+d, so at most one caller wins per
// cooldown window.
func (r *CooldownRegistry) TryAcquire(symbol string, now time.Time, d time.Duration) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if until, ok := r.unlockAt[symbol]; ok {
		if now.Before(until) {
			return false
		}
		delete(r.unlockAt, symbol)
	}
	r.unlockAt[symbol] = now.Add(d)
	return true
}

// Active reports whether the symbol is currently cooling down, evicting the
// entry if its expiry has passed.
func (r *CooldownRegistry) Active(symbol string, now time.Time) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	until, ok := r.unlockAt[symbol]
	if !ok {
		return false
	}
	if !now.Before(until) {
		delete(r.unlockAt, symbol)
		return false
	}
	return true
}
