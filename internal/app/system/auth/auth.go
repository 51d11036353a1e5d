package auth

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

/*─────────────────────────────────────────────────────────────────────────────*
| Session keys                                                               |
*─────────────────────────────────────────────────────────────────────────────*/

const (
	DefaultSessionName = "ukrconnect-session"

	isAdminKey  = "is_admin"
	signedInKey = "signed_in_at"
)

type ctxKey string

const adminCtxKey ctxKey = "isAdmin"

// SessionManager owns the cookie store used for flash messages and the
// admin sign-in flag. When no admin password hash is configured the admin
// area is open and every request counts as admin.
type SessionManager struct {
	store        *sessions.CookieStore
	name         string
	passwordHash []byte
	logger       *zap.Logger
}

// NewSessionManager builds the cookie store. The `secure` flag marks
// cookies Secure; in local dev over http://localhost pass false.
func NewSessionManager(sessionKey, name, domain string, maxAge time.Duration, secure bool, logger *zap.Logger) (*SessionManager, error) {
	if sessionKey == "" {
		return nil, fmt.Errorf("session key is empty; provide ≥32 random chars")
	}
	if len(sessionKey) < 32 {
		logger.Warn("session key is short; 32+ chars recommended",
			zap.Int("length", len(sessionKey)))
	}
	if name == "" {
		name = DefaultSessionName
	}

	store := sessions.NewCookieStore([]byte(sessionKey))
	store.Options = &sessions.Options{
		Domain:   domain,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	logger.Info("session store initialized",
		zap.String("name", name),
		zap.Bool("secure", secure),
		zap.String("domain", domain))

	return &SessionManager{store: store, name: name, logger: logger}, nil
}

// RequireAdminPassword turns on the admin sign-in gate. hash must be a
// bcrypt hash.
func (sm *SessionManager) RequireAdminPassword(hash string) error {
	if err := ValidatePasswordHash(hash); err != nil {
		return err
	}
	sm.passwordHash = []byte(hash)
	return nil
}

// AdminGateEnabled reports whether /admin requires signing in.
func (sm *SessionManager) AdminGateEnabled() bool {
	return len(sm.passwordHash) > 0
}

// CheckPassword compares password with the configured hash.
func (sm *SessionManager) CheckPassword(password string) bool {
	if !sm.AdminGateEnabled() {
		return false
	}
	return bcrypt.CompareHashAndPassword(sm.passwordHash, []byte(password)) == nil
}

// ValidatePasswordHash checks that hash is a well-formed bcrypt hash.
func ValidatePasswordHash(hash string) error {
	if _, err := bcrypt.Cost([]byte(hash)); err != nil {
		return fmt.Errorf("admin password hash is not a bcrypt hash: %w", err)
	}
	return nil
}

func (sm *SessionManager) session(r *http.Request) *sessions.Session {
	// A decode failure (rotated key, tampered cookie) yields a fresh session.
	sess, err := sm.store.Get(r, sm.name)
	if err != nil {
		if scErr, ok := err.(securecookie.Error); ok && scErr.IsDecode() {
			sm.logger.Debug("discarding unreadable session cookie", zap.Error(err))
		} else {
			sm.logger.Warn("session store error, using fresh session", zap.Error(err))
		}
	}
	return sess
}

// SignInAdmin marks the session as admin.
func (sm *SessionManager) SignInAdmin(w http.ResponseWriter, r *http.Request) error {
	sess := sm.session(r)
	sess.Values[isAdminKey] = true
	sess.Values[signedInKey] = time.Now().UTC().Unix()
	return sess.Save(r, w)
}

// SignOut clears the admin flag.
func (sm *SessionManager) SignOut(w http.ResponseWriter, r *http.Request) error {
	sess := sm.session(r)
	delete(sess.Values, isAdminKey)
	delete(sess.Values, signedInKey)
	return sess.Save(r, w)
}

// IsAdmin reports whether r may use the admin area.
func (sm *SessionManager) IsAdmin(r *http.Request) bool {
	if !sm.AdminGateEnabled() {
		return true
	}
	ok, _ := sm.session(r).Values[isAdminKey].(bool)
	return ok
}

/*─────────────────────────────────────────────────────────────────────────────*
| Flash messages                                                             |
*─────────────────────────────────────────────────────────────────────────────*/

// AddFlash queues msg for the next page render.
func (sm *SessionManager) AddFlash(w http.ResponseWriter, r *http.Request, msg string) error {
	sess := sm.session(r)
	sess.AddFlash(msg)
	return sess.Save(r, w)
}

// Flashes pops every queued message.
func (sm *SessionManager) Flashes(w http.ResponseWriter, r *http.Request) []string {
	sess := sm.session(r)
	raw := sess.Flashes()
	if len(raw) == 0 {
		return nil
	}
	if err := sess.Save(r, w); err != nil {
		sm.logger.Warn("save session after reading flashes", zap.Error(err))
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

/*─────────────────────────────────────────────────────────────────────────────*
| Middleware                                                                 |
*─────────────────────────────────────────────────────────────────────────────*/

// LoadAdmin records the admin flag in the request context so views can
// read it without touching the session.
func (sm *SessionManager) LoadAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), adminCtxKey, sm.IsAdmin(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// IsAdminCtx returns the flag stored by LoadAdmin.
func IsAdminCtx(r *http.Request) bool {
	ok, _ := r.Context().Value(adminCtxKey).(bool)
	return ok
}

// RequireAdmin lets admins through. Others are sent to /admin/login
// (HTML) or get a plain 401 (API).
func (sm *SessionManager) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if sm.IsAdmin(r) {
			next.ServeHTTP(w, r)
			return
		}
		if wantsHTML(r) {
			ret := url.QueryEscape(r.URL.RequestURI())
			http.Redirect(w, r, "/admin/login?return="+ret, http.StatusSeeOther)
			return
		}
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	})
}

func wantsHTML(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}
