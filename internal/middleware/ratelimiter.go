package middleware

import (
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	internal_errors "github.com/itchan-dev/forum-api/internal/errors"
	"github.com/itchan-dev/forum-api/internal/utils"
	"golang.org/x/time/rate"
)

// RateLimiter keeps one token bucket per identity. Buckets unused for
// the expiration time are treated as new and swept at most once per expiration period.
type RateLimiter struct {
	limit      rate.Limit
	burst      int
	expiration time.Duration

	mu        sync.Mutex
	limiters  map[string]*limiterEntry
	lastSweep time.Time
	now       func() time.Time
}

type limiterEntry struct {
	limiter *rate.Limiter
	expires time.Time
}

func NewRateLimiter(rps float64, burst int, expiration time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:      rate.Limit(rps),
		burst:      max(burst, 1),
		expiration: expiration,
		limiters:   make(map[string]*limiterEntry),
		now:        time.Now,
	}
}

func (rl *RateLimiter) Allow(identity string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if now.Sub(rl.lastSweep) >= rl.expiration {
		rl.sweep(now)
	}

	entry, ok := rl.limiters[identity]
	if !ok || now.After(entry.expires) {
		entry = &limiterEntry{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.limiters[identity] = entry
	}
	entry.expires = now.Add(rl.expiration)
	return entry.limiter.AllowN(now, 1)
}

func (rl *RateLimiter) sweep(now time.Time) {
	for id, entry := range rl.limiters {
		if now.After(entry.expires) {
			delete(rl.limiters, id)
		}
	}
	rl.lastSweep = now
}

func RateLimit(rl *RateLimiter, getIdentity func(r *http.Request) (string, error)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := getIdentity(r)
			if err != nil {
				utils.WriteErrorAndStatusCode(w, err)
				return
			}
			if !rl.Allow(identity) {
				utils.WriteErrorAndStatusCode(w, &internal_errors.ErrorWithStatusCode{
					Message:    "Rate limit exceeded, try again later",
					StatusCode: http.StatusTooManyRequests,
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Possible if user was authorized with previous middleware
func GetUsernameFromContext(r *http.Request) (string, error) {
	user := GetUserFromContext(r)
	if user == nil {
		return "", internal_errors.Authentication("Missing authentication")
	}
	return "user_" + user.Username, nil
}

// GetIP extracts the client IP from RemoteAddr.
func GetIP(r *http.Request) (string, error) {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		ip = r.RemoteAddr
	}
	if net.ParseIP(ip) == nil {
		return "", internal_errors.Validation(fmt.Sprintf("invalid IP address: %s", ip))
	}
	return ip, nil
}
