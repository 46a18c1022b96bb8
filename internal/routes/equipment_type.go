package routes

import (
	"github.com/labstack/echo/v4"

	"medequip-system/internal/controllers"
	"medequip-system/pkg/middleware"
)

func runEquipmentTypeRouter(g *echo.Group, ctrl *controllers.EquipmentTypeController, authMW *middleware.AuthMiddleware) {
	g.GET("/equipment-types", ctrl.GetEquipmentTypes)
	g.GET("/equipment-types/:id", ctrl.FindEquipmentType)
	g.POST("/equipment-types", ctrl.CreateEquipmentType, authMW.RequireAdmin)
	g.PUT("/equipment-types/:id", ctrl.UpdateEquipmentType, authMW.RequireAdmin)
	g.DELETE("/equipment-types/:id", ctrl.DeleteEquipmentType, authMW.RequireAdmin)
}
