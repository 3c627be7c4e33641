package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/social-mini/api-go/controllers"
)

func SetupInteractionRoutes(public, protected *gin.RouterGroup, interactionController *controllers.InteractionController) {
	public.GET("/posts/:id/likes", interactionController.GetPostLikes)
	public.GET("/posts/:id/comments", interactionController.ListComments)

	protected.POST("/posts/:id/like", interactionController.LikePost)
	protected.DELETE("/posts/:id/like", interactionController.UnlikePost)

	protected.POST("/posts/:id/comments", interactionController.CreateComment)
	protected.DELETE("/comments/:id", interactionController.DeleteComment)

	protected.POST("/users/:id/follow", interactionController.FollowUser)
	protected.DELETE("/users/:id/follow", interactionController.UnfollowUser)
	protected.GET("/users/me/following", interactionController.GetMyFollowing)
	protected.GET("/users/me/followers", interactionController.GetMyFollowers)
}
