package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/social-mini/api-go/models"
	"github.com/social-mini/api-go/utils"
)

type InteractionController struct {
	DB *gorm.DB
}

func NewInteractionController(db *gorm.DB) *InteractionController {
	return &InteractionController{DB: db}
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return uint(id), true
}

// LikePost is idempotent: liking an already-liked post returns the existing
// record without error.
func (ic *InteractionController) LikePost(c *gin.Context) {
	user := utils.CurrentUser(c)

	postID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var post models.Post
	if err := ic.DB.First(&post, postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	var existing models.Like
	if err := ic.DB.Where("user_id = ? AND post_id = ?", user.ID, postID).First(&existing).Error; err == nil {
		c.JSON(http.StatusOK, existing)
		return
	}

	like := models.Like{UserID: user.ID, PostID: postID}
	if err := ic.DB.Create(&like).Error; err != nil {
		if utils.IsUniqueViolation(err) {
			// Lost the race against a concurrent like from the same user.
			ic.DB.Where("user_id = ? AND post_id = ?", user.ID, postID).First(&like)
			c.JSON(http.StatusOK, like)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to like post"})
		return
	}

	c.JSON(http.StatusCreated, like)
}

// UnlikePost deletes the like if present; absence is not an error.
func (ic *InteractionController) UnlikePost(c *gin.Context) {
	user := utils.CurrentUser(c)

	postID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ic.DB.Where("user_id = ? AND post_id = ?", user.ID, postID).Delete(&models.Like{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unlike post"})
		return
	}

	c.Status(http.StatusNoContent)
}

func (ic *InteractionController) GetPostLikes(c *gin.Context) {
	postID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var count int64
	if err := ic.DB.Model(&models.Like{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count likes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"post_id":     postID,
		"likes_count": count,
	})
}

type CommentRequest struct {
	Content string `json:"content" binding:"required"`
}

func (ic *InteractionController) CreateComment(c *gin.Context) {
	user := utils.CurrentUser(c)

	postID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var post models.Post
	if err := ic.DB.First(&post, postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	comment := models.Comment{
		UserID:  user.ID,
		PostID:  postID,
		Content: req.Content,
	}
	if err := ic.DB.Create(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create comment"})
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// ListComments returns a post's comments newest first. The ordering is part
// of the API contract.
func (ic *InteractionController) ListComments(c *gin.Context) {
	postID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var comments []models.Comment
	if err := ic.DB.Where("post_id = ?", postID).Order("created_at DESC").Find(&comments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch comments"})
		return
	}

	c.JSON(http.StatusOK, comments)
}

func (ic *InteractionController) DeleteComment(c *gin.Context) {
	user := utils.CurrentUser(c)

	commentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var comment models.Comment
	if err := ic.DB.First(&comment, commentID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}

	if comment.UserID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	if err := ic.DB.Delete(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete comment"})
		return
	}

	c.Status(http.StatusNoContent)
}

// FollowUser is idempotent like LikePost; following an already-followed user
// returns the existing record.
func (ic *InteractionController) FollowUser(c *gin.Context) {
	user := utils.CurrentUser(c)

	targetID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if targetID == user.ID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot follow yourself"})
		return
	}

	var target models.User
	if err := ic.DB.First(&target, targetID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var existing models.Follow
	if err := ic.DB.Where("follower_id = ? AND user_id = ?", user.ID, targetID).First(&existing).Error; err == nil {
		c.JSON(http.StatusOK, existing)
		return
	}

	follow := models.Follow{FollowerID: user.ID, UserID: targetID}
	if err := ic.DB.Create(&follow).Error; err != nil {
		if utils.IsUniqueViolation(err) {
			ic.DB.Where("follower_id = ? AND user_id = ?", user.ID, targetID).First(&follow)
			c.JSON(http.StatusOK, follow)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to follow user"})
		return
	}

	c.JSON(http.StatusCreated, follow)
}

// UnfollowUser deletes the follow edge if present; absence is not an error.
func (ic *InteractionController) UnfollowUser(c *gin.Context) {
	user := utils.CurrentUser(c)

	targetID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ic.DB.Where("follower_id = ? AND user_id = ?", user.ID, targetID).Delete(&models.Follow{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unfollow user"})
		return
	}

	c.Status(http.StatusNoContent)
}

func (ic *InteractionController) GetMyFollowing(c *gin.Context) {
	user := utils.CurrentUser(c)

	var follows []models.Follow
	if err := ic.DB.Where("follower_id = ?", user.ID).Find(&follows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch following"})
		return
	}

	c.JSON(http.StatusOK, follows)
}

func (ic *InteractionController) GetMyFollowers(c *gin.Context) {
	user := utils.CurrentUser(c)

	var follows []models.Follow
	if err := ic.DB.Where("user_id = ?", user.ID).Find(&follows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch followers"})
		return
	}

	c.JSON(http.StatusOK, follows)
}
