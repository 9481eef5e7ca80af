package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/heartmarshall/restoration-backend/pkg/ctxutil"
)

// idleEvict is how long a key may go unused before its limiter is dropped.
const idleEvict = 10 * time.Minute

// RateLimiter throttles mutating requests per operator, falling back to the
// remote address for anonymous callers.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*keyedLimiter
	stop     chan struct{}
	stopOnce sync.Once
}

type keyedLimiter struct {
	*rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter starts a sweeper that evicts idle keys every cleanupInterval.
// Call Stop on shutdown.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{
		limiters: make(map[string]*keyedLimiter),
		stop:     make(chan struct{}),
	}
	go rl.sweep(cleanupInterval)
	return rl
}

// Stop ends the sweeper. It is safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

// Limit allows a burst of perMinute mutations that refills evenly over a
// minute. GET, HEAD and OPTIONS are never limited.
func (rl *RateLimiter) Limit(perMinute int) Middleware {
	every := rate.Every(time.Minute / time.Duration(perMinute))
	retryAfter := strconv.Itoa(int(math.Ceil(60.0 / float64(perMinute))))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isReadOnly(r.Method) || rl.limiter(limitKey(r), every, perMinute).Allow() {
				next.ServeHTTP(w, r)
				return
			}
			w.Header().Set("Retry-After", retryAfter)
			writeProblem(w, http.StatusTooManyRequests, problem{Error: "rate limit exceeded", Code: "RATE_LIMITED", Retryable: true})
		})
	}
}

func (rl *RateLimiter) limiter(key string, every rate.Limit, burst int) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	l, ok := rl.limiters[key]
	if !ok {
		l = &keyedLimiter{Limiter: rate.NewLimiter(every, burst)}
		rl.limiters[key] = l
	}
	l.lastSeen = time.Now()
	return l.Limiter
}

func (rl *RateLimiter) sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case now := <-ticker.C:
			rl.mu.Lock()
			for key, l := range rl.limiters {
				if now.Sub(l.lastSeen) > idleEvict {
					delete(rl.limiters, key)
				}
			}
			rl.mu.Unlock()
		}
	}
}

func isReadOnly(method string) bool {
	return method == http.MethodGet || method == http.MethodHead || method == http.MethodOptions
}

func limitKey(r *http.Request) string {
	if id, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
		return "operator:" + id.String()
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "addr:" + host
}
