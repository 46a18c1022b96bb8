package routes

import (
	"github.com/labstack/echo/v4"

	"medequip-system/internal/controllers"
)

func runAuthRouter(public *echo.Group, secure *echo.Group, ctrl *controllers.AuthController) {
	public.POST("/auth/login", ctrl.Login)
	secure.POST("/auth/logout", ctrl.Logout)
	secure.GET("/auth/me", ctrl.Me)
}
