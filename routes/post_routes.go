package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/social-mini/api-go/controllers"
)

func SetupPostRoutes(public, protected *gin.RouterGroup, postController *controllers.PostController) {
	public.GET("/posts/", postController.ListPosts)

	protected.POST("/posts/", postController.CreatePost)
	protected.PUT("/posts/:id", postController.UpdatePost)
	protected.DELETE("/posts/:id", postController.DeletePost)
}
