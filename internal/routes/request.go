package routes

import (
	"github.com/labstack/echo/v4"

	"medequip-system/internal/controllers"
)

func runRequestRouter(g *echo.Group, ctrl *controllers.RequestController) {
	g.GET("/requests", ctrl.GetRequests)
	g.GET("/requests/:id", ctrl.FindRequest)
	g.POST("/requests", ctrl.CreateRequest)
	g.PUT("/requests/:id", ctrl.UpdateRequest)
	g.DELETE("/requests/:id", ctrl.DeleteRequest)
}
