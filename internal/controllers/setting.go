package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"medequip-system/internal/dto"
	"medequip-system/internal/services"
	apperrors "medequip-system/pkg/errors"
	"medequip-system/pkg/utils"
)

type SettingController struct {
	settingService services.SettingServiceInterface
	logger         *zap.Logger
}

func NewSettingController(service services.SettingServiceInterface, logger *zap.Logger) *SettingController {
	return &SettingController{
		settingService: service,
		logger:         logger,
	}
}

func (c *SettingController) FindSetting(ctx echo.Context) error {
	key := ctx.Param("key")
	if key == "" {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "missing setting key", nil), c.logger)
	}

	res, err := c.settingService.FindSetting(ctx.Request().Context(), key)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "setting", http.StatusOK)
}

func (c *SettingController) UpsertSetting(ctx echo.Context) error {
	key := ctx.Param("key")
	if key == "" {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "missing setting key", nil), c.logger)
	}

	var payload dto.UpdateSettingDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "invalid request body", err), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.settingService.UpsertSetting(ctx.Request().Context(), key, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "setting updated", http.StatusOK)
}
