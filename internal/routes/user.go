package routes

import (
	"github.com/labstack/echo/v4"

	"medequip-system/internal/controllers"
	"medequip-system/pkg/middleware"
)

func runUserRouter(g *echo.Group, ctrl *controllers.UserController, authMW *middleware.AuthMiddleware) {
	users := g.Group("/users", authMW.RequireAdmin)
	users.GET("", ctrl.GetUsers)
	users.POST("", ctrl.CreateUser)
	users.PUT("/:id", ctrl.UpdateUser)
	users.DELETE("/:id", ctrl.DeleteUser)
}
