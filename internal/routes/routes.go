package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"medequip-system/internal/controllers"
	"medequip-system/internal/repositories"
	"medequip-system/internal/services"
	"medequip-system/pkg/config"
	"medequip-system/pkg/mailer"
	"medequip-system/pkg/middleware"
	"medequip-system/pkg/session"
)

// InitRouter wires repositories, services and controllers and mounts
// every route under /api. Routes that mutate shared reference data
// (users, equipment types, settings) additionally require the ADMIN role.
func InitRouter(
	e *echo.Echo,
	dbConn *pgxpool.Pool,
	redisClient *redis.Client,
	sessions *session.Store,
	logger *zap.Logger,
	cfg *config.Config,
) {
	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(sessions, cfg.Session.CookieName, logger)

	userRepo := repositories.NewUserRepository(dbConn, logger)
	typeRepo := repositories.NewEquipmentTypeRepository(dbConn)
	equipmentRepo := repositories.NewEquipmentRepository(dbConn, logger)
	requestRepo := repositories.NewRequestRepository(dbConn, logger)
	settingRepo := repositories.NewSettingRepository(dbConn)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	authService := services.NewAuthService(userRepo, sessions, logger)
	userService := services.NewUserService(userRepo, logger)
	typeService := services.NewEquipmentTypeService(typeRepo, logger)
	equipmentService := services.NewEquipmentService(equipmentRepo, logger)
	settingService := services.NewSettingService(settingRepo, cacheRepo, logger)
	notificationService := services.NewEmailNotificationService(
		settingService, userRepo, mailer.NewSMTPMailer(cfg.SMTP), logger,
	)
	requestService := services.NewRequestService(requestRepo, notificationService, logger)

	authController := controllers.NewAuthController(authService, cfg.Session, logger)
	userController := controllers.NewUserController(userService, logger)
	typeController := controllers.NewEquipmentTypeController(typeService, logger)
	equipmentController := controllers.NewEquipmentController(equipmentService, logger)
	requestController := controllers.NewRequestController(requestService, logger)
	settingController := controllers.NewSettingController(settingService, logger)

	secure := api.Group("", authMW.Auth)

	runAuthRouter(api, secure, authController)
	runUserRouter(secure, userController, authMW)
	runEquipmentTypeRouter(secure, typeController, authMW)
	runEquipmentRouter(secure, equipmentController)
	runRequestRouter(secure, requestController)
	runSettingRouter(secure, settingController, authMW)

	logger.Info("router initialized")
}
