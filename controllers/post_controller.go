// File: /controllers/post_controller.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ryanneekidev/rline-backend/middleware"
	"github.com/ryanneekidev/rline-backend/repositories"
	"github.com/ryanneekidev/rline-backend/utils"
)

type PostController struct {
	posts *repositories.PostRepository
}

func NewPostController(posts *repositories.PostRepository) *PostController {
	return &PostController{posts: posts}
}

type CreatePostRequest struct {
	Title      string `json:"title" binding:"required"`
	Content    string `json:"content" binding:"required"`
	PostStatus string `json:"postStatus"`
}

type GetPostRequest struct {
	PostID string `json:"postId" binding:"required"`
}

type LikeRequest struct {
	PostID string `json:"postId" binding:"required"`
}

type DislikeRequest struct {
	PostID string `json:"postId" binding:"required"`
	LikeID string `json:"likeId" binding:"required"`
}

type CreateCommentRequest struct {
	PostID  string `json:"postId" binding:"required"`
	Content string `json:"content" binding:"required"`
}

func (pc *PostController) GetPosts(c *gin.Context) {
	posts, err := pc.posts.GetPosts(c.Request.Context())
	if err != nil {
		utils.SendMessage(c, http.StatusInternalServerError, "Failed to fetch posts")
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (pc *PostController) GetPost(c *gin.Context) {
	var req GetPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendMessage(c, http.StatusBadRequest, "Missing post id!")
		return
	}

	post, err := pc.posts.GetPost(c.Request.Context(), req.PostID)
	if err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			utils.SendMessage(c, http.StatusNotFound, "Post not found")
			return
		}
		utils.SendMessage(c, http.StatusInternalServerError, "Failed to fetch post")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"post":    post,
		"message": "Post retrieved successfully",
	})
}

func (pc *PostController) CreatePost(c *gin.Context) {
	claims, ok := middleware.CurrentUser(c)
	if !ok {
		utils.SendMessage(c, http.StatusForbidden, "You are unauthorized to access this endpoint!")
		return
	}

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendMessage(c, http.StatusBadRequest, "Missing post title or content!")
		return
	}

	if _, err := pc.posts.CreatePost(c.Request.Context(), req.Title, req.Content, claims.ID, req.PostStatus); err != nil {
		utils.SendMessage(c, http.StatusInternalServerError, "Failed to create post")
		return
	}

	utils.SendMessage(c, http.StatusCreated, "Post created successfully")
}

func (pc *PostController) LikePost(c *gin.Context) {
	claims, ok := middleware.CurrentUser(c)
	if !ok {
		utils.SendMessage(c, http.StatusForbidden, "You are unauthorized to access this endpoint!")
		return
	}

	var req LikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendMessage(c, http.StatusBadRequest, "Missing post id!")
		return
	}

	like, err := pc.posts.LikePost(c.Request.Context(), claims.ID, req.PostID)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrPostNotFound):
			utils.SendMessage(c, http.StatusNotFound, "Post not found")
		case errors.Is(err, repositories.ErrAlreadyLiked):
			utils.SendMessage(c, http.StatusConflict, "Post already liked")
		default:
			utils.SendMessage(c, http.StatusInternalServerError, "Failed to like post")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"like":    like,
		"message": "Post liked successfully",
	})
}

func (pc *PostController) DislikePost(c *gin.Context) {
	claims, ok := middleware.CurrentUser(c)
	if !ok {
		utils.SendMessage(c, http.StatusForbidden, "You are unauthorized to access this endpoint!")
		return
	}

	var req DislikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendMessage(c, http.StatusBadRequest, "Missing post id or like id!")
		return
	}

	if err := pc.posts.DislikePost(c.Request.Context(), claims.ID, req.PostID, req.LikeID); err != nil {
		if errors.Is(err, repositories.ErrLikeNotFound) {
			utils.SendMessage(c, http.StatusNotFound, "Like not found")
			return
		}
		utils.SendMessage(c, http.StatusInternalServerError, "Failed to dislike post")
		return
	}

	utils.SendMessage(c, http.StatusOK, "Post disliked successfully")
}

func (pc *PostController) CreateComment(c *gin.Context) {
	claims, ok := middleware.CurrentUser(c)
	if !ok {
		utils.SendMessage(c, http.StatusForbidden, "You are unauthorized to access this endpoint!")
		return
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendMessage(c, http.StatusBadRequest, "Missing post id or comment content!")
		return
	}

	if _, err := pc.posts.CreateComment(c.Request.Context(), req.Content, claims.ID, req.PostID); err != nil {
		switch {
		case errors.Is(err, repositories.ErrPostNotFound), errors.Is(err, repositories.ErrUserNotFound):
			utils.SendMessage(c, http.StatusNotFound, "Post or author not found")
		default:
			utils.SendMessage(c, http.StatusInternalServerError, "Failed to create comment")
		}
		return
	}

	utils.SendMessage(c, http.StatusOK, "Comment created successfully")
}
