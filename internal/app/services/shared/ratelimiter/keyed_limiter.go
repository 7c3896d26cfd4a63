package ratelimiter

import (
	"context"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type keyedClient struct {
	lim  *rate.Limiter
	seen time.Time
}

// KeyedLimiter is an in process token bucket per key. Entries idle longer
// than idleTTL are dropped by Run.
type KeyedLimiter struct {
	mu      sync.Mutex
	clients map[string]*keyedClient
	r       rate.Limit
	burst   int
	idleTTL time.Duration
}

// NewKeyedLimiter allows burst events immediately and then one every
// window/burst.
func NewKeyedLimiter(window time.Duration, burst int) *KeyedLimiter {
	if burst <= 0 {
		burst = 1
	}
	return &KeyedLimiter{
		clients: make(map[string]*keyedClient),
		r:       rate.Every(window / time.Duration(burst)),
		burst:   burst,
		idleTTL: window,
	}
}

func (l *KeyedLimiter) Allow(ctx context.Context, key string) (bool, error) {
	return l.get(strings.ToLower(strings.TrimSpace(key))).Allow(), nil
}

func (l *KeyedLimiter) get(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	if c, ok := l.clients[key]; ok {
		c.seen = time.Now()
		return c.lim
	}
	lim := rate.NewLimiter(l.r, l.burst)
	l.clients[key] = &keyedClient{lim: lim, seen: time.Now()}
	return lim
}

// Run prunes idle entries every minute until ctx is done.
func (l *KeyedLimiter) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.prune(time.Now())
		}
	}
}

func (l *KeyedLimiter) prune(now time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for key, c := range l.clients {
		if now.Sub(c.seen) > l.idleTTL {
			delete(l.clients, key)
		}
	}
}
