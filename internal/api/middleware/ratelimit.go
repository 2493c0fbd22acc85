package middleware

import (
	"context"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"github.com/m04kA/SMC-SalonBookingService/internal/api/handlers"
)

const msgRateLimited = "слишком много запросов, попробуйте позже"

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter ограничивает частоту запросов с одного IP (token bucket)
// Корзины клиентов, не появлявшихся дольше idleTTL, удаляются при очистке
type RateLimiter struct {
	mu                sync.Mutex
	clients           map[string]*clientLimiter
	rps               rate.Limit
	burst             int
	trustForwardedFor bool
	idleTTL           time.Duration
	now               func() time.Time
	logger            Logger
}

// RateLimiterConfig параметры ограничителя
type RateLimiterConfig struct {
	RequestsPerSecond float64
	Burst             int
	// TrustForwardedFor включается только за доверенным прокси:
	// тогда ключом служит последний адрес X-Forwarded-For, добавленный прокси
	TrustForwardedFor bool
	IdleTTL           time.Duration
}

// NewRateLimiter создает ограничитель
func NewRateLimiter(cfg RateLimiterConfig, logger Logger) *RateLimiter {
	return &RateLimiter{
		clients:           make(map[string]*clientLimiter),
		rps:               rate.Limit(cfg.RequestsPerSecond),
		burst:             cfg.Burst,
		trustForwardedFor: cfg.TrustForwardedFor,
		idleTTL:           cfg.IdleTTL,
		now:               time.Now,
		logger:            logger,
	}
}

func (l *RateLimiter) limiter(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	client, ok := l.clients[key]
	if !ok {
		client = &clientLimiter{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.clients[key] = client
	}
	client.lastSeen = l.now()
	return client.limiter
}

// Cleanup удаляет корзины, простаивающие дольше idleTTL, и возвращает их число
func (l *RateLimiter) Cleanup() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	deadline := l.now().Add(-l.idleTTL)
	removed := 0
	for key, client := range l.clients {
		if client.lastSeen.Before(deadline) {
			delete(l.clients, key)
			removed++
		}
	}
	return removed
}

// Run периодически чистит простаивающие корзины до отмены ctx
func (l *RateLimiter) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := l.Cleanup(); removed > 0 {
				l.logger.Info("RateLimiter: evicted %d idle clients", removed)
			}
		}
	}
}

// Middleware возвращает 429, когда корзина клиента пуста
func (l *RateLimiter) Middleware() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := l.clientIP(r)
			if !l.limiter(ip).Allow() {
				l.logger.Warn("%s %s - Rate limit exceeded: ip=%s", r.Method, r.URL.Path, ip)
				handlers.RespondTooManyRequests(w, msgRateLimited)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientIP возвращает адрес соединения
// За доверенным прокси берется последний адрес X-Forwarded-For: предыдущие задает клиент
func (l *RateLimiter) clientIP(r *http.Request) string {
	if l.trustForwardedFor {
		if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
			parts := strings.Split(forwarded, ",")
			if last := strings.TrimSpace(parts[len(parts)-1]); last != "" {
				return last
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
