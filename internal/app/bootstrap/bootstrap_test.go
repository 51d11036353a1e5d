package bootstrap

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/ukrconnect/internal/app/system/auth"
	"github.com/dalemusser/ukrconnect/internal/app/system/seed"
	"github.com/dalemusser/ukrconnect/internal/testutil"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const testSessionKey = "test-session-key-0123456789abcdef0123"

func validAppConfig() AppConfig {
	return AppConfig{
		MongoURI:           "mongodb://localhost:27017",
		MongoDatabase:      "ukrconnect_test",
		SessionKey:         testSessionKey,
		SessionName:        auth.DefaultSessionName,
		SessionMaxAge:      time.Hour,
		SearchPerTypeLimit: 10,
		PastEventsLimit:    10,
	}
}

func TestValidateConfig(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("GenerateFromPassword: %v", err)
	}

	tests := []struct {
		name    string
		core    *config.CoreConfig
		mutate  func(*AppConfig)
		wantErr bool
	}{
		{name: "defaults", core: &config.CoreConfig{Env: "dev"}},
		{name: "bad uri", core: &config.CoreConfig{Env: "dev"}, mutate: func(c *AppConfig) { c.MongoURI = "postgres://nope" }, wantErr: true},
		{name: "empty database", core: &config.CoreConfig{Env: "dev"}, mutate: func(c *AppConfig) { c.MongoDatabase = "" }, wantErr: true},
		{name: "valid hash", core: &config.CoreConfig{Env: "dev"}, mutate: func(c *AppConfig) { c.AdminPasswordHash = string(hash) }},
		{name: "plain text hash", core: &config.CoreConfig{Env: "dev"}, mutate: func(c *AppConfig) { c.AdminPasswordHash = "secret" }, wantErr: true},
		{name: "zero search limit", core: &config.CoreConfig{Env: "dev"}, mutate: func(c *AppConfig) { c.SearchPerTypeLimit = 0 }, wantErr: true},
		{name: "zero past limit", core: &config.CoreConfig{Env: "dev"}, mutate: func(c *AppConfig) { c.PastEventsLimit = 0 }, wantErr: true},
		{name: "short key in prod", core: &config.CoreConfig{Env: "prod"}, mutate: func(c *AppConfig) { c.SessionKey = "short" }, wantErr: true},
		{name: "trusted proxies", core: &config.CoreConfig{Env: "dev"}, mutate: func(c *AppConfig) { c.TrustedProxies = "10.0.0.0/8, 127.0.0.1" }},
		{name: "bad trusted proxy", core: &config.CoreConfig{Env: "dev"}, mutate: func(c *AppConfig) { c.TrustedProxies = "proxy.internal" }, wantErr: true},
		{name: "short key in dev", core: &config.CoreConfig{Env: "dev"}, mutate: func(c *AppConfig) { c.SessionKey = "short" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validAppConfig()
			if tt.mutate != nil {
				tt.mutate(&cfg)
			}
			err := ValidateConfig(tt.core, cfg, zap.NewNop())
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateConfig() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestEnsureSchema_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	deps := DBDeps{MongoClient: db.Client(), MongoDatabase: db}
	for i := 0; i < 2; i++ {
		if err := EnsureSchema(ctx, &config.CoreConfig{Env: "dev"}, validAppConfig(), deps, zap.NewNop()); err != nil {
			t.Fatalf("EnsureSchema pass %d: %v", i+1, err)
		}
	}
}

func TestStartup_SeedsWhenEnabled(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	cfg := validAppConfig()
	cfg.SeedOnStartup = true
	deps := DBDeps{MongoClient: db.Client(), MongoDatabase: db}
	if err := Startup(ctx, &config.CoreConfig{Env: "dev"}, cfg, deps, zap.NewNop()); err != nil {
		t.Fatalf("Startup: %v", err)
	}

	counts, err := seed.Counts(ctx, db)
	if err != nil {
		t.Fatalf("Counts: %v", err)
	}
	if counts["translations"] == 0 {
		t.Errorf("expected seeded translations, got counts %v", counts)
	}
}

func newTestRouter(t *testing.T, gated bool) http.Handler {
	t.Helper()
	db := testutil.SetupTestDB(t)
	sm, err := auth.NewSessionManager(testSessionKey, "", "", time.Hour, false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewSessionManager: %v", err)
	}
	if gated {
		hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
		if err != nil {
			t.Fatalf("GenerateFromPassword: %v", err)
		}
		if err := sm.RequireAdminPassword(string(hash)); err != nil {
			t.Fatalf("RequireAdminPassword: %v", err)
		}
	}
	deps := DBDeps{MongoClient: db.Client(), MongoDatabase: db}
	return newRouter(validAppConfig(), deps, sm, nil, false, zap.NewNop())
}

func TestRouter_Health(t *testing.T) {
	h := newTestRouter(t, false)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["database"] != "connected" {
		t.Errorf("database = %q, want connected", body["database"])
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID header on every response")
	}
}

func TestRouter_TranslationAPI(t *testing.T) {
	h := newTestRouter(t, false)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/translations?category=all", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Errorf("body = %q, want []", got)
	}
}

func TestRouter_EmptySearchRedirectsHome(t *testing.T) {
	h := newTestRouter(t, false)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/search?q=", nil))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Errorf("Location = %q, want /", loc)
	}
}

func TestRouter_AdminGate(t *testing.T) {
	h := newTestRouter(t, true)

	req := httptest.NewRequest(http.MethodGet, "/admin/translations", nil)
	req.Header.Set("Accept", "text/html")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	want := "/admin/login?return=%2Fadmin%2Ftranslations"
	if loc := rec.Header().Get("Location"); loc != want {
		t.Errorf("Location = %q, want %q", loc, want)
	}
}

func TestRouter_AdminPostWithoutTokenRejected(t *testing.T) {
	h := newTestRouter(t, false)

	req := httptest.NewRequest(http.MethodPost, "/admin/translations", strings.NewReader("ukrainian=x&english=y&category=greetings"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403 from CSRF protection", rec.Code)
	}
}
