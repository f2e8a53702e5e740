package handlers

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/username/aktienportfolio/backend/src/logger"
	"github.com/username/aktienportfolio/backend/src/utils"
	"golang.org/x/time/rate"
)

const requestIDHeader = "X-Request-ID"

// RequestLogger tags each request with an ID, stores a request-scoped logger in the
// context and logs one line when the response is complete.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, requestID)

		log := logger.FromContext(r.Context()).With(
			"requestID", requestID,
			"method", r.Method,
			"path", r.URL.Path,
		)
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r.WithContext(logger.WithContext(r.Context(), log)))

		log.Info("Request completed",
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"remoteAddr", r.RemoteAddr)
	})
}

// EnableCORS answers preflight requests and sets CORS headers for allowed origins.
func EnableCORS(allowedOrigins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if allowed[origin] {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, X-Request-ID, If-None-Match")
				w.Header().Set("Access-Control-Expose-Headers", "ETag, X-Request-ID")
				w.Header().Add("Vary", "Origin")
			} else if origin == "" {
				w.Header().Set("Access-Control-Allow-Origin", "*")
			}

			if r.Method == http.MethodOptions {
				logger.FromContext(r.Context()).Debug("Handling OPTIONS preflight request", "path", r.URL.Path, "origin", origin)
				w.WriteHeader(http.StatusOK)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RateLimiter keeps one token bucket per client address. Idle buckets expire from the cache.
type RateLimiter struct {
	limiters *cache.Cache
	every    rate.Limit
	burst    int
	mu       sync.Mutex
}

func NewRateLimiter(interval time.Duration, burst int) *RateLimiter {
	return &RateLimiter{
		limiters: cache.New(10*time.Minute, 20*time.Minute),
		every:    rate.Every(interval),
		burst:    burst,
	}
}

func (rl *RateLimiter) limiterFor(client string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if l, found := rl.limiters.Get(client); found {
		rl.limiters.SetDefault(client, l)
		return l.(*rate.Limiter)
	}
	l := rate.NewLimiter(rl.every, rl.burst)
	rl.limiters.SetDefault(client, l)
	return l
}

func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		client := clientAddress(r)
		if !rl.limiterFor(client).Allow() {
			logger.FromContext(r.Context()).Warn("Rate limit exceeded", "client", client)
			utils.SendJSONError(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientAddress(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
