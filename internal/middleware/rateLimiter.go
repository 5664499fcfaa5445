package middleware

import (
	"net"
	"net/http"
	"sync"

	"golang.org/x/time/rate"

	"github.com/nkondratev/doctasks/internal/config"
)

type ipRateLimiter struct {
	mutex    sync.Mutex
	limiters map[string]*rate.Limiter
}

var rateLimiterOnce sync.Once
var sharedRateLimiter *ipRateLimiter

func getIPRateLimiter() *ipRateLimiter {
	rateLimiterOnce.Do(func() {
		sharedRateLimiter = &ipRateLimiter{
			limiters: make(map[string]*rate.Limiter),
		}
	})
	return sharedRateLimiter
}

func (l *ipRateLimiter) getLimiter(ip string) *rate.Limiter {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	limiter, exists := l.limiters[ip]
	if !exists {
		limiter = rate.NewLimiter(rate.Limit(config.RATE_LIMIT_PER_SECOND), config.BURST_RATE_LIMIT_PER_SECOND)
		l.limiters[ip] = limiter
	}
	return limiter
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return forwarded
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
