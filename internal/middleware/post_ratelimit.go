package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/bethanyfinesse/bridgemindapp/pkg/clientip"
	"golang.org/x/time/rate"
)

// Post-creation rate limit: per-IP, ~6 posts/min with burst 3. Keeps one
// device from flooding the anonymous board while normal posting never hits it.

const (
	postCreateRPS        = 0.1 // ~6/min
	postCreateBurst      = 3
	postCleanupInterval  = 5 * time.Minute
	postCreateLimiterTTL = 30 * time.Minute
)

var (
	postEntries    = make(map[string]*limiterEntry)
	postEntriesMu  sync.Mutex
	postCleanupRun bool
)

func getPostLimiter(ip string) *rate.Limiter {
	postEntriesMu.Lock()
	defer postEntriesMu.Unlock()
	startPostCleanupOnce()
	e, ok := postEntries[ip]
	if !ok {
		e = &limiterEntry{
			limiter: rate.NewLimiter(rate.Limit(postCreateRPS), postCreateBurst),
			lastUse: time.Now(),
		}
		postEntries[ip] = e
	}
	e.lastUse = time.Now()
	return e.limiter
}

func startPostCleanupOnce() {
	if postCleanupRun {
		return
	}
	postCleanupRun = true
	go func() {
		ticker := time.NewTicker(postCleanupInterval)
		defer ticker.Stop()
		for range ticker.C {
			postEntriesMu.Lock()
			now := time.Now()
			for ip, e := range postEntries {
				if now.Sub(e.lastUse) > postCreateLimiterTTL {
					delete(postEntries, ip)
				}
			}
			postEntriesMu.Unlock()
		}
	}()
}

// PostRateLimit applies the stricter posting limit to POST requests only.
// Use on the community post route after the global limiter.
func PostRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			next.ServeHTTP(w, r)
			return
		}
		ip := clientip.RealClientIP(r)
		if !getPostLimiter(ip).Allow() {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"success":false,"message":"You're posting too fast. Please wait a moment."}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}
