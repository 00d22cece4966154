package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/deltanet/helpdesk-api/api/swagger"
	"github.com/deltanet/helpdesk-api/internal/handler"
	"github.com/deltanet/helpdesk-api/internal/middleware"
	"github.com/deltanet/helpdesk-api/internal/repository"
	"github.com/deltanet/helpdesk-api/internal/service"
	"github.com/deltanet/helpdesk-api/pkg/config"
	"github.com/deltanet/helpdesk-api/pkg/database"
	"github.com/deltanet/helpdesk-api/pkg/logger"
	corsmiddleware "github.com/deltanet/helpdesk-api/pkg/middleware/cors"
	reqidmiddleware "github.com/deltanet/helpdesk-api/pkg/middleware/requestid"
)

// @title Deltanet Helpdesk API
// @version 1.0.0
// @description Ticket, hour-registration and activity tracking backend
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewMySQL(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to database", "error", err)
	}
	defer db.Close()

	catalogRepo := repository.NewCatalogRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	hourRecordRepo := repository.NewHourRecordRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	userRepo := repository.NewUserRepository(db)

	catalogSvc := service.NewCatalogService(catalogRepo, logr)
	activitySvc := service.NewActivityService(activityRepo, nil, logr)
	hourRecordSvc := service.NewHourRecordService(hourRecordRepo, nil, logr)
	projectSvc := service.NewProjectService(projectRepo, nil, logr)
	authSvc := service.NewAuthService(userRepo, nil, logr, cfg.Auth)
	metricsSvc := service.NewMetricsService()

	catalogHandler := handler.NewCatalogHandler(catalogSvc)
	activityHandler := handler.NewActivityHandler(activitySvc)
	hourRecordHandler := handler.NewHourRecordHandler(hourRecordSvc)
	projectHandler := handler.NewProjectHandler(projectSvc)
	authHandler := handler.NewAuthHandler(authSvc)
	healthHandler := handler.NewHealthHandler(db)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", healthHandler.Health)
	r.GET("/ready", healthHandler.Ready)
	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	if cfg.Auth.Enabled {
		api.POST("/auth/login", authHandler.Login)
		api.Use(middleware.JWT(authSvc))
	}

	api.GET("/catalog/services", catalogHandler.ListServices)
	api.GET("/areas", catalogHandler.ListAreas)
	api.GET("/user-types", catalogHandler.ListUserTypes)
	api.GET("/record-types", catalogHandler.ListRecordTypes)

	api.POST("/activities", activityHandler.Create)
	api.PUT("/activities", activityHandler.Update)
	api.GET("/activities", activityHandler.List)

	api.POST("/hour-records", hourRecordHandler.Create)
	api.GET("/hour-records", hourRecordHandler.List)
	api.PUT("/hour-records", hourRecordHandler.Update)
	api.DELETE("/hour-records", hourRecordHandler.Delete)
	api.POST("/hour-records/activate", hourRecordHandler.Activate)

	api.GET("/projects", projectHandler.List)
	api.POST("/projects", projectHandler.Create)
	api.DELETE("/projects", projectHandler.Delete)
	api.POST("/projects/activate", projectHandler.Activate)
	api.GET("/projects/export", projectHandler.Export)
	api.PUT("/projects/:id", projectHandler.Update)
	api.PUT("/projects/:id/ticket", projectHandler.UpdateTicket)
	api.POST("/projects/:id/advance-status", projectHandler.AdvanceStatus)
	api.POST("/projects/:id/reassign-owner", projectHandler.ReassignOwner)
	api.POST("/projects/:id/reassign-area", projectHandler.ReassignArea)
	api.POST("/projects/:id/reopen", projectHandler.Reopen)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
