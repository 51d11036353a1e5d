package ratelimit

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestLimiter_BurstThenBlocked(t *testing.T) {
	l := New(3, time.Minute)
	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return base }

	for i := 0; i < 3; i++ {
		if !l.Allow("a") {
			t.Fatalf("attempt %d blocked, want allowed", i+1)
		}
	}
	if l.Allow("a") {
		t.Fatal("4th attempt allowed, want blocked")
	}
	if !l.Allow("b") {
		t.Fatal("other key should have its own bucket")
	}

	l.now = func() time.Time { return base.Add(time.Minute) }
	if !l.Allow("a") {
		t.Fatal("expected a token after one interval")
	}
}

func TestLimiter_ResetAndSweep(t *testing.T) {
	l := New(1, time.Second)
	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return base }

	l.Allow("a")
	if l.Allow("a") {
		t.Fatal("expected blocked")
	}
	l.Reset("a")
	if !l.Allow("a") {
		t.Fatal("expected allowed after Reset")
	}

	l.now = func() time.Time { return base.Add(time.Hour) }
	l.Allow("b")
	if _, ok := l.buckets["a"]; ok {
		t.Error("idle bucket should have been swept")
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name   string
		xff    string
		xri    string
		remote string
		want   string
	}{
		{name: "remote addr", remote: "1.2.3.4:5", want: "1.2.3.4"},
		{name: "remote without port", remote: "1.2.3.4", want: "1.2.3.4"},
		{name: "forwarded for ignored", xff: "10.0.0.1, 10.0.0.2", remote: "1.2.3.4:5", want: "1.2.3.4"},
		{name: "real ip ignored", xri: "10.0.0.9", remote: "1.2.3.4:5", want: "1.2.3.4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/admin/login", nil)
			r.RemoteAddr = tt.remote
			if tt.xff != "" {
				r.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.xri != "" {
				r.Header.Set("X-Real-IP", tt.xri)
			}
			if got := ClientIP(r); got != tt.want {
				t.Errorf("ClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseTrustedProxies(t *testing.T) {
	tp, err := ParseTrustedProxies(" 10.0.0.0/8, 127.0.0.1 ,::1,")
	if err != nil {
		t.Fatalf("ParseTrustedProxies: %v", err)
	}
	if len(tp) != 3 {
		t.Fatalf("got %d prefixes, want 3", len(tp))
	}

	tests := []struct {
		remote string
		want   bool
	}{
		{"10.1.2.3:443", true},
		{"127.0.0.1:80", true},
		{"[::1]:80", true},
		{"[::ffff:10.9.9.9]:80", true},
		{"127.0.0.2:80", false},
		{"198.51.100.7:1234", false},
		{"not-an-ip", false},
	}
	for _, tt := range tests {
		if got := tp.Trusts(tt.remote); got != tt.want {
			t.Errorf("Trusts(%q) = %v, want %v", tt.remote, got, tt.want)
		}
	}

	empty, err := ParseTrustedProxies("")
	if err != nil || len(empty) != 0 {
		t.Errorf("empty list: %v, %v", empty, err)
	}
	for _, bad := range []string{"10.0.0.0/33", "proxy.local", "1.2.3"} {
		if _, err := ParseTrustedProxies(bad); err == nil {
			t.Errorf("ParseTrustedProxies(%q) succeeded, want error", bad)
		}
	}
}

func TestTrustedProxies_RealIP(t *testing.T) {
	tp, err := ParseTrustedProxies("10.0.0.0/8")
	if err != nil {
		t.Fatal(err)
	}
	var seen string
	h := tp.RealIP(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = ClientIP(r)
	}))

	tests := []struct {
		name   string
		remote string
		xff    string
		want   string
	}{
		{"trusted proxy forwards", "10.0.0.5:3000", "203.0.113.9", "203.0.113.9"},
		{"untrusted peer keeps socket", "198.51.100.7:1234", "203.0.113.9", "198.51.100.7"},
		{"trusted without header", "10.0.0.5:3000", "", "10.0.0.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/admin/login", nil)
			r.RemoteAddr = tt.remote
			if tt.xff != "" {
				r.Header.Set("X-Forwarded-For", tt.xff)
			}
			h.ServeHTTP(httptest.NewRecorder(), r)
			if seen != tt.want {
				t.Errorf("client = %q, want %q", seen, tt.want)
			}
		})
	}
}

func TestLoginLimiter_RotatedForwardedForStillThrottled(t *testing.T) {
	ll := NewLoginLimiter()
	var tp TrustedProxies
	blocked := 0
	h := tp.RealIP(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ok, _ := ll.Check(r); !ok {
			blocked++
		}
	}))

	for i := 0; i < 100; i++ {
		r := httptest.NewRequest("POST", "/admin/login", nil)
		r.RemoteAddr = "198.51.100.7:40000"
		r.Header.Set("X-Forwarded-For", fmt.Sprintf("10.0.0.%d", i))
		r.Header.Set("X-Real-IP", fmt.Sprintf("10.0.1.%d", i))
		h.ServeHTTP(httptest.NewRecorder(), r)
	}
	if blocked < 95 {
		t.Errorf("blocked %d of 100 attempts with rotating forwarding headers, want at least 95", blocked)
	}
}

func TestLoginLimiter(t *testing.T) {
	ll := NewLoginLimiter()
	r := httptest.NewRequest("POST", "/admin/login", nil)

	for i := 0; i < 5; i++ {
		if ok, _ := ll.Check(r); !ok {
			t.Fatalf("attempt %d blocked", i+1)
		}
	}
	ok, msg := ll.Check(r)
	if ok || msg == "" {
		t.Fatalf("6th attempt: ok=%v msg=%q, want blocked with message", ok, msg)
	}
	ll.Succeeded(r)
	if ok, _ := ll.Check(r); !ok {
		t.Fatal("expected allowed after Succeeded")
	}
}
