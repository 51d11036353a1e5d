package auth_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/ukrconnect/internal/app/system/auth"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const testKey = "test-session-key-must-be-32-chars-long"

func newTestSessionManager(t *testing.T) *auth.SessionManager {
	t.Helper()
	sm, err := auth.NewSessionManager(testKey, "test-session", "", 24*time.Hour, false, zap.NewNop())
	if err != nil {
		t.Fatalf("failed to create session manager: %v", err)
	}
	return sm
}

func gated(t *testing.T, sm *auth.SessionManager, password string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	if err := sm.RequireAdminPassword(string(hash)); err != nil {
		t.Fatalf("RequireAdminPassword: %v", err)
	}
}

// carry copies Set-Cookie headers from a response onto a new request.
func carry(rec *httptest.ResponseRecorder, req *http.Request) *http.Request {
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestNewSessionManager_EmptyKey(t *testing.T) {
	if _, err := auth.NewSessionManager("", "", "", time.Hour, false, zap.NewNop()); err == nil {
		t.Error("expected error for empty session key")
	}
}

func TestRequireAdmin_OpenWithoutPassword(t *testing.T) {
	sm := newTestSessionManager(t)

	rec := httptest.NewRecorder()
	sm.RequireAdmin(okHandler()).ServeHTTP(rec, httptest.NewRequest("GET", "/admin/translations", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("expected open admin area, got %d", rec.Code)
	}
}

func TestRequireAdmin_RedirectsWhenGated(t *testing.T) {
	sm := newTestSessionManager(t)
	gated(t, sm, "hunter22")

	req := httptest.NewRequest("GET", "/admin/translations", nil)
	req.Header.Set("Accept", "text/html")
	rec := httptest.NewRecorder()
	sm.RequireAdmin(okHandler()).ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); !strings.HasPrefix(loc, "/admin/login?return=") {
		t.Errorf("Location = %q", loc)
	}
}

func TestRequireAdmin_APIGets401(t *testing.T) {
	sm := newTestSessionManager(t)
	gated(t, sm, "hunter22")

	rec := httptest.NewRecorder()
	sm.RequireAdmin(okHandler()).ServeHTTP(rec, httptest.NewRequest("GET", "/admin/translations", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestSignInAdmin_ThenAllowed(t *testing.T) {
	sm := newTestSessionManager(t)
	gated(t, sm, "hunter22")

	if sm.CheckPassword("wrong") {
		t.Error("wrong password accepted")
	}
	if !sm.CheckPassword("hunter22") {
		t.Fatal("correct password rejected")
	}

	signIn := httptest.NewRecorder()
	if err := sm.SignInAdmin(signIn, httptest.NewRequest("POST", "/admin/login", nil)); err != nil {
		t.Fatalf("SignInAdmin: %v", err)
	}

	req := carry(signIn, httptest.NewRequest("GET", "/admin/translations", nil))
	rec := httptest.NewRecorder()
	sm.RequireAdmin(okHandler()).ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("signed-in admin got %d", rec.Code)
	}

	out := httptest.NewRecorder()
	if err := sm.SignOut(out, carry(signIn, httptest.NewRequest("POST", "/admin/logout", nil))); err != nil {
		t.Fatalf("SignOut: %v", err)
	}
	if sm.IsAdmin(carry(out, httptest.NewRequest("GET", "/admin", nil))) {
		t.Error("still admin after sign out")
	}
}

func TestFlashes_PopOnce(t *testing.T) {
	sm := newTestSessionManager(t)

	add := httptest.NewRecorder()
	if err := sm.AddFlash(add, httptest.NewRequest("POST", "/admin/translations", nil), "Translation added successfully!"); err != nil {
		t.Fatalf("AddFlash: %v", err)
	}

	read := httptest.NewRecorder()
	got := sm.Flashes(read, carry(add, httptest.NewRequest("GET", "/admin/translations", nil)))
	if len(got) != 1 || got[0] != "Translation added successfully!" {
		t.Fatalf("Flashes = %v", got)
	}

	again := sm.Flashes(httptest.NewRecorder(), carry(read, httptest.NewRequest("GET", "/admin/translations", nil)))
	if len(again) != 0 {
		t.Errorf("flash should be consumed, got %v", again)
	}
}

func TestLoadAdmin_SetsContext(t *testing.T) {
	sm := newTestSessionManager(t)

	var seen bool
	h := sm.LoadAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = auth.IsAdminCtx(r)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))
	if !seen {
		t.Error("ungated manager should mark every request admin")
	}
}

func TestValidatePasswordHash(t *testing.T) {
	if err := auth.ValidatePasswordHash("plaintext"); err == nil {
		t.Error("plaintext accepted as hash")
	}
	hash, _ := bcrypt.GenerateFromPassword([]byte("x"), bcrypt.MinCost)
	if err := auth.ValidatePasswordHash(string(hash)); err != nil {
		t.Errorf("valid hash rejected: %v", err)
	}
}

func TestIsAdmin_TamperedCookieIsNotAdmin(t *testing.T) {
	sm := newTestSessionManager(t)
	gated(t, sm, "pw")

	req := httptest.NewRequest("GET", "/admin", nil)
	req.AddCookie(&http.Cookie{Name: "test-session", Value: "not-a-valid-securecookie"})
	if sm.IsAdmin(req) {
		t.Error("tampered cookie should not grant admin")
	}
}
