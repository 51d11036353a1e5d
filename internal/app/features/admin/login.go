package admin

import (
	"net/http"

	"github.com/dalemusser/ukrconnect/internal/app/system/ratelimit"
	"github.com/dalemusser/ukrconnect/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/dalemusser/waffle/pantry/urlutil"
	"go.uber.org/zap"
)

type loginData struct {
	viewdata.BaseVM
	Error     string
	ReturnURL string
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /admin/login                                                            |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeLogin shows the password form. Without a configured password the
// admin area is open, so the form is skipped.
func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	ret := query.Get(r, "return")
	if !h.SessionMgr.AdminGateEnabled() || h.SessionMgr.IsAdmin(r) {
		http.Redirect(w, r, urlutil.SafeReturn(ret, "", "/admin"), http.StatusSeeOther)
		return
	}
	templates.Render(w, r, "admin_login", loginData{
		BaseVM:    viewdata.NewBaseVM(r, "Admin sign in", "/"),
		ReturnURL: ret,
	})
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /admin/login                                                           |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse login form failed", err, "The form could not be read.", "/admin/login")
		return
	}
	ret := r.PostFormValue("return")

	if ok, msg := h.Logins.Check(r); !ok {
		h.Log.Warn("admin sign-in throttled", zap.String("client", ratelimit.ClientIP(r)))
		w.WriteHeader(http.StatusTooManyRequests)
		templates.Render(w, r, "admin_login", loginData{
			BaseVM:    viewdata.NewBaseVM(r, "Admin sign in", "/"),
			Error:     msg,
			ReturnURL: ret,
		})
		return
	}

	if !h.SessionMgr.CheckPassword(r.PostFormValue("password")) {
		h.Log.Warn("admin sign-in rejected", zap.String("remote", r.RemoteAddr))
		templates.Render(w, r, "admin_login", loginData{
			BaseVM:    viewdata.NewBaseVM(r, "Admin sign in", "/"),
			Error:     "Incorrect password.",
			ReturnURL: ret,
		})
		return
	}

	if err := h.SessionMgr.SignInAdmin(w, r); err != nil {
		h.ErrLog.LogServerError(w, r, "save admin session failed", err, "Could not sign you in.", "/")
		return
	}
	h.Logins.Succeeded(r)
	h.Log.Info("admin signed in", zap.String("remote", r.RemoteAddr))
	http.Redirect(w, r, urlutil.SafeReturn(ret, "", "/admin"), http.StatusSeeOther)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /admin/logout                                                          |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.SessionMgr.SignOut(w, r); err != nil {
		h.Log.Warn("clear admin session failed", zap.Error(err))
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
