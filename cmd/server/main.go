package main

import (
	"flag"
	"os"
	"time"

	"taskhub/internal/config"
	"taskhub/internal/handler"
	"taskhub/internal/logger"
	"taskhub/internal/middleware"
	"taskhub/internal/model"
	"taskhub/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	configFile := flag.String("config", "", "config file path (e.g. etc/config-dev.yaml)")
	flag.Parse()

	cfg := config.Load(*configFile)
	logger.Init(cfg.Log)
	middleware.SetSecret(cfg.JWT.Secret)

	db, err := cfg.OpenGormDB()
	if err != nil {
		logger.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	if err := model.AutoMigrate(db); err != nil {
		logger.Error("migrate failed", "err", err)
		os.Exit(1)
	}

	summarizer := service.NewHFSummarizer(cfg.AI.BaseURL, cfg.AI.APIKey,
		time.Duration(cfg.AI.TimeoutSeconds)*time.Second)

	authSvc := service.NewAuthService(db)
	projectSvc := service.NewProjectService(db)
	taskSvc := service.NewTaskService(db)
	analyticsSvc := service.NewAnalyticsService(db)

	jwtTTL := time.Duration(cfg.JWT.TTLHours) * time.Hour
	authH := handler.NewAuthHandler(authSvc, jwtTTL)
	projectH := handler.NewProjectHandler(projectSvc, summarizer)
	taskH := handler.NewTaskHandler(taskSvc)
	analyticsH := handler.NewAnalyticsHandler(analyticsSvc)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.POST("/api/register", authH.Register)
	r.POST("/api/login", authH.Login)

	api := r.Group("/api", middleware.JWTAuth())
	api.GET("/users", authH.ListUsers)
	api.POST("/users/password", authH.ChangePassword)

	api.GET("/projects", projectH.List)
	api.POST("/projects", projectH.Create)
	api.PUT("/projects/:id", projectH.Edit)
	api.DELETE("/projects/:id", projectH.Delete)
	api.POST("/projects/:id/users", projectH.AddUser)
	api.DELETE("/projects/:id/users/:userId", projectH.RemoveUser)
	api.POST("/projects/summary", projectH.GenerateSummary)

	api.GET("/tasks", taskH.List)
	api.POST("/tasks", taskH.Create)
	api.PUT("/tasks/:id", taskH.Update)
	api.PATCH("/tasks/:id/status", taskH.UpdateStatus)
	api.DELETE("/tasks/:id", taskH.Delete)

	api.GET("/analytics/tasks", analyticsH.TaskStats)
	api.GET("/analytics/projects", analyticsH.ProjectStats)
	api.GET("/analytics/users", analyticsH.UserStats)
	api.GET("/analytics/created-vs-assigned", analyticsH.CreatedVsAssigned)
	api.GET("/analytics/quality", analyticsH.ProjectQuality)

	logger.Info("server starting", "addr", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Error("server failed", "err", err)
	}
}
