package ratelimit

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// Cooldown enforces one submission per key per window. Windows live in
// go-cache so expiry is handled for us.
type Cooldown struct {
	windows *cache.Cache
	period  time.Duration
}

func NewCooldown(period time.Duration) *Cooldown {
	return &Cooldown{
		windows: cache.New(period, 2*period),
		period:  period,
	}
}

// Try consumes the window for key. When the previous window is still open it
// returns the remaining wait and false, leaving the window untouched.
func (c *Cooldown) Try(key string) (time.Duration, bool) {
	if _, expiry, found := c.windows.GetWithExpiration(key); found {
		if remaining := time.Until(expiry); remaining > 0 {
			return remaining, false
		}
	}
	c.windows.Set(key, time.Now(), c.period)
	return 0, true
}

// Reset clears the window for key. Used by tests and admin tooling.
func (c *Cooldown) Reset(key string) {
	c.windows.Delete(key)
}
