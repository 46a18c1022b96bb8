package routes

import (
	"github.com/labstack/echo/v4"

	"medequip-system/internal/controllers"
	"medequip-system/pkg/middleware"
)

// Settings are readable by any signed-in user; only admins may write.
func runSettingRouter(g *echo.Group, ctrl *controllers.SettingController, authMW *middleware.AuthMiddleware) {
	g.GET("/settings/:key", ctrl.FindSetting)
	g.POST("/settings/:key", ctrl.UpsertSetting, authMW.RequireAdmin)
}
