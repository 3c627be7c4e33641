package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/social-mini/api-go/config"
	"github.com/social-mini/api-go/controllers"
	"github.com/social-mini/api-go/middleware"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	// Initialize controllers
	authController := controllers.NewAuthController(db, cfg)
	postController := controllers.NewPostController(db)
	interactionController := controllers.NewInteractionController(db)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Social Mini API"})
	})

	auth := r.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/token", authController.Login)
	}

	public := r.Group("/")

	protected := r.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg, db))

	SetupPostRoutes(public, protected, postController)
	SetupInteractionRoutes(public, protected, interactionController)
}
