// Package ratelimit throttles repeated requests from one client, such as
// admin password guesses. Each key gets its own token bucket.
package ratelimit

import (
	"fmt"
	"net"
	"net/http"
	"net/netip"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"
)

// Limiter hands out one token bucket per key. Buckets idle for longer
// than the idle window are dropped on the next Allow. Safe for concurrent
// use.
type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	every   rate.Limit
	burst   int
	idle    time.Duration
	now     func() time.Time
}

type bucket struct {
	lim  *rate.Limiter
	seen time.Time
}

// New allows burst requests at once per key, refilled at one token per
// interval.
func New(burst int, interval time.Duration) *Limiter {
	return &Limiter{
		buckets: make(map[string]*bucket),
		every:   rate.Every(interval),
		burst:   burst,
		idle:    time.Duration(burst) * interval * 2,
		now:     time.Now,
	}
}

// Allow consumes a token for key, reporting false when none is left.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{lim: rate.NewLimiter(l.every, l.burst)}
		l.buckets[key] = b
	}
	b.seen = now
	return b.lim.AllowN(now, 1)
}

// Reset forgets key, giving it a full bucket.
func (l *Limiter) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.buckets, key)
}

func (l *Limiter) sweep(now time.Time) {
	for k, b := range l.buckets {
		if now.Sub(b.seen) > l.idle {
			delete(l.buckets, k)
		}
	}
}

// ClientIP returns the host part of RemoteAddr. Forwarding headers are
// ignored here; TrustedProxies.RealIP rewrites RemoteAddr for requests
// that arrive through a known proxy.
func ClientIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// TrustedProxies lists the peers whose forwarding headers are believed.
type TrustedProxies []netip.Prefix

// ParseTrustedProxies reads a comma-separated list of IPs and CIDR ranges.
// An empty string trusts nobody.
func ParseTrustedProxies(s string) (TrustedProxies, error) {
	var out TrustedProxies
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if strings.Contains(part, "/") {
			p, err := netip.ParsePrefix(part)
			if err != nil {
				return nil, fmt.Errorf("trusted proxy %q: %w", part, err)
			}
			out = append(out, p.Masked())
			continue
		}
		a, err := netip.ParseAddr(part)
		if err != nil {
			return nil, fmt.Errorf("trusted proxy %q: %w", part, err)
		}
		a = a.Unmap()
		out = append(out, netip.PrefixFrom(a, a.BitLen()))
	}
	return out, nil
}

// Trusts reports whether the peer in remoteAddr is a trusted proxy.
func (tp TrustedProxies) Trusts(remoteAddr string) bool {
	if len(tp) == 0 {
		return false
	}
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		host = remoteAddr
	}
	a, err := netip.ParseAddr(host)
	if err != nil {
		return false
	}
	a = a.Unmap()
	for _, p := range tp {
		if p.Contains(a) {
			return true
		}
	}
	return false
}

// RealIP applies chi's RealIP middleware only to requests whose peer is
// trusted. Everyone else keeps their socket address.
func (tp TrustedProxies) RealIP(next http.Handler) http.Handler {
	forwarded := middleware.RealIP(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if tp.Trusts(r.RemoteAddr) {
			forwarded.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// LoginLimiter throttles admin sign-in attempts per client IP.
type LoginLimiter struct {
	ip *Limiter
}

// NewLoginLimiter allows 5 quick attempts per IP, then one every 12s.
func NewLoginLimiter() *LoginLimiter {
	return &LoginLimiter{ip: New(5, 12*time.Second)}
}

// Check consumes an attempt for the request's client. When blocked the
// returned message is suitable for the sign-in form.
func (ll *LoginLimiter) Check(r *http.Request) (bool, string) {
	if !ll.ip.Allow(ClientIP(r)) {
		return false, "Too many sign-in attempts. Please wait a minute and try again."
	}
	return true, ""
}

// Succeeded clears the client's attempts after a good password.
func (ll *LoginLimiter) Succeeded(r *http.Request) {
	ll.ip.Reset(ClientIP(r))
}
