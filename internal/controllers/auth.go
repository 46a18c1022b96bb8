package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"medequip-system/internal/dto"
	"medequip-system/internal/services"
	"medequip-system/pkg/config"
	apperrors "medequip-system/pkg/errors"
	"medequip-system/pkg/utils"
)

type AuthController struct {
	authService services.AuthServiceInterface
	sessionCfg  config.SessionConfig
	logger      *zap.Logger
}

func NewAuthController(
	authService services.AuthServiceInterface,
	sessionCfg config.SessionConfig,
	logger *zap.Logger,
) *AuthController {
	return &AuthController{
		authService: authService,
		sessionCfg:  sessionCfg,
		logger:      logger,
	}
}

func (c *AuthController) Login(ctx echo.Context) error {
	var payload dto.LoginDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "invalid request body", err), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	sess, profile, err := c.authService.Login(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	ctx.SetCookie(&http.Cookie{
		Name:     c.sessionCfg.CookieName,
		Value:    sess.ID,
		Path:     "/",
		MaxAge:   int(c.sessionCfg.TTL.Seconds()),
		HttpOnly: true,
		Secure:   c.sessionCfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	return utils.SuccessResponse(ctx, profile, "signed in", http.StatusOK)
}

func (c *AuthController) Logout(ctx echo.Context) error {
	cookie, err := ctx.Cookie(c.sessionCfg.CookieName)
	if err == nil && cookie.Value != "" {
		if err := c.authService.Logout(ctx.Request().Context(), cookie.Value); err != nil {
			c.logger.Warn("logout: session destroy failed", zap.Error(err))
		}
	}

	ctx.SetCookie(&http.Cookie{
		Name:     c.sessionCfg.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	return utils.SuccessResponse(ctx, struct{}{}, "signed out", http.StatusOK)
}

func (c *AuthController) Me(ctx echo.Context) error {
	profile, err := c.authService.Profile(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, profile, "profile", http.StatusOK)
}
