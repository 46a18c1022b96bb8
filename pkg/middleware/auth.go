package middleware

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"medequip-system/internal/authz"
	apperrors "medequip-system/pkg/errors"
	"medequip-system/pkg/session"
	"medequip-system/pkg/utils"
)

type AuthMiddleware struct {
	store      *session.Store
	cookieName string
	logger     *zap.Logger
}

func NewAuthMiddleware(store *session.Store, cookieName string, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		store:      store,
		cookieName: cookieName,
		logger:     logger,
	}
}

// Auth resolves the session cookie into an authz.Session on the request
// context. No cookie, or an expired session, ends the request with 401.
func (m *AuthMiddleware) Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(m.cookieName)
		if err != nil || cookie.Value == "" {
			return utils.ErrorResponse(c, apperrors.ErrUnauthorized, m.logger)
		}

		sess, err := m.store.Get(c.Request().Context(), cookie.Value)
		if err != nil {
			m.logger.Warn("auth: session lookup failed", zap.Error(err))
			return utils.ErrorResponse(c, apperrors.ErrUnauthorized, m.logger)
		}

		if err := m.store.Touch(c.Request().Context(), sess.ID); err != nil {
			m.logger.Warn("auth: session touch failed", zap.Error(err))
		}

		ctx := authz.WithSession(c.Request().Context(), &authz.Session{
			UserID: sess.UserID,
			Role:   sess.Role,
		})
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireAdmin sits behind Auth on admin-only routes.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !authz.IsAdmin(authz.FromContext(c.Request().Context())) {
			return utils.ErrorResponse(c, apperrors.ErrForbidden, m.logger)
		}
		return next(c)
	}
}
