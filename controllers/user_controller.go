// File: /controllers/user_controller.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ryanneekidev/rline-backend/middleware"
	"github.com/ryanneekidev/rline-backend/repositories"
	"github.com/ryanneekidev/rline-backend/services"
	"github.com/ryanneekidev/rline-backend/utils"
)

type UserController struct {
	follows *repositories.FollowRepository
	cache   *services.FollowCacheService
}

func NewUserController(follows *repositories.FollowRepository, cache *services.FollowCacheService) *UserController {
	return &UserController{follows: follows, cache: cache}
}

type FollowRequest struct {
	FollowingID string `json:"followingId" binding:"required"`
}

func (uc *UserController) FollowUser(c *gin.Context) {
	claims, ok := middleware.CurrentUser(c)
	if !ok {
		utils.SendMessage(c, http.StatusForbidden, "You are unauthorized to access this endpoint!")
		return
	}

	var req FollowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendMessage(c, http.StatusBadRequest, "Missing following id!")
		return
	}

	ctx := c.Request.Context()

	follow, err := uc.follows.Follow(ctx, claims.ID, req.FollowingID)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrSelfFollow):
			utils.SendMessage(c, http.StatusBadRequest, "You cannot follow yourself")
		case errors.Is(err, repositories.ErrAlreadyFollowing):
			utils.SendMessage(c, http.StatusConflict, "Already following this user")
		default:
			utils.SendMessage(c, http.StatusInternalServerError, "Failed to follow user")
		}
		return
	}

	uc.cache.Invalidate(ctx, claims.ID, req.FollowingID)

	c.JSON(http.StatusOK, gin.H{
		"follow":  follow,
		"message": "User followed successfully",
	})
}

func (uc *UserController) UnfollowUser(c *gin.Context) {
	claims, ok := middleware.CurrentUser(c)
	if !ok {
		utils.SendMessage(c, http.StatusForbidden, "You are unauthorized to access this endpoint!")
		return
	}

	var req FollowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendMessage(c, http.StatusBadRequest, "Missing following id!")
		return
	}

	ctx := c.Request.Context()

	if err := uc.follows.Unfollow(ctx, claims.ID, req.FollowingID); err != nil {
		if errors.Is(err, repositories.ErrFollowNotFound) {
			utils.SendMessage(c, http.StatusNotFound, "Follow relationship not found")
			return
		}
		utils.SendMessage(c, http.StatusInternalServerError, "Failed to unfollow user")
		return
	}

	uc.cache.Invalidate(ctx, claims.ID, req.FollowingID)

	utils.SendMessage(c, http.StatusOK, "User unfollowed successfully")
}

func (uc *UserController) GetFollowers(c *gin.Context) {
	userID := c.Param("userId")

	followers, err := uc.follows.GetFollowers(c.Request.Context(), userID)
	if err != nil {
		utils.SendMessage(c, http.StatusInternalServerError, "Failed to get followers")
		return
	}

	c.JSON(http.StatusOK, gin.H{"followers": followers})
}

func (uc *UserController) GetFollowing(c *gin.Context) {
	userID := c.Param("userId")

	following, err := uc.follows.GetFollowing(c.Request.Context(), userID)
	if err != nil {
		utils.SendMessage(c, http.StatusInternalServerError, "Failed to get following")
		return
	}

	c.JSON(http.StatusOK, gin.H{"following": following})
}

func (uc *UserController) IsFollowing(c *gin.Context) {
	claims, ok := middleware.CurrentUser(c)
	if !ok {
		utils.SendMessage(c, http.StatusForbidden, "You are unauthorized to access this endpoint!")
		return
	}

	followingID := c.Param("userId")

	isFollowing, err := uc.follows.IsFollowing(c.Request.Context(), claims.ID, followingID)
	if err != nil {
		utils.SendMessage(c, http.StatusInternalServerError, "Failed to check follow status")
		return
	}

	c.JSON(http.StatusOK, gin.H{"isFollowing": isFollowing})
}

func (uc *UserController) GetFollowCounts(c *gin.Context) {
	userID := c.Param("userId")
	ctx := c.Request.Context()

	if counts, ok := uc.cache.GetCounts(ctx, userID); ok {
		c.JSON(http.StatusOK, counts)
		return
	}

	counts, err := uc.follows.GetFollowCounts(ctx, userID)
	if err != nil {
		utils.SendMessage(c, http.StatusInternalServerError, "Failed to get follow counts")
		return
	}

	uc.cache.SetCounts(ctx, userID, counts)

	c.JSON(http.StatusOK, counts)
}
