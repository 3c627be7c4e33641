package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/social-mini/api-go/config"
	"github.com/social-mini/api-go/logger"
	"github.com/social-mini/api-go/middleware"
	"github.com/social-mini/api-go/routes"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logger.L.Info("no .env file, using process environment")
	}

	cfg := config.Load()
	db := config.InitDB(cfg)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.RequestLogger(), gin.Recovery())

	routes.SetupRoutes(r, db, cfg)

	logger.L.Info("starting server", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.L.Fatal("server stopped", zap.Error(err))
	}
}
