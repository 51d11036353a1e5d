// internal/app/features/admin/handler.go
package admin

import (
	uierrors "github.com/dalemusser/ukrconnect/internal/app/features/errors"
	"github.com/dalemusser/ukrconnect/internal/app/system/auth"
	"github.com/dalemusser/ukrconnect/internal/app/system/ratelimit"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the content administration area: the translation
// entry form, the admin landing page and the optional password sign-in.
type Handler struct {
	DB         *mongo.Database
	SessionMgr *auth.SessionManager
	Logins     *ratelimit.LoginLimiter
	ErrLog     *uierrors.ErrorLogger
	Log        *zap.Logger
}

func NewHandler(db *mongo.Database, sessionMgr *auth.SessionManager, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:         db,
		SessionMgr: sessionMgr,
		Logins:     ratelimit.NewLoginLimiter(),
		ErrLog:     errLog,
		Log:        logger,
	}
}
