// File: /routes/routes.go
package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/ryanneekidev/rline-backend/auth"
	"github.com/ryanneekidev/rline-backend/config"
	"github.com/ryanneekidev/rline-backend/controllers"
	"github.com/ryanneekidev/rline-backend/middleware"
	"github.com/ryanneekidev/rline-backend/repositories"
	"github.com/ryanneekidev/rline-backend/services"
)

const followCountsCacheTTL = 30 * time.Second

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, cache *redis.Client) {
	tokens := auth.NewTokenManager(cfg.AccessSecret, cfg.RefreshSecret, cfg.AccessTTL, cfg.RefreshTTL)

	userRepo := repositories.NewUserRepository(db)
	postRepo := repositories.NewPostRepository(db)
	followRepo := repositories.NewFollowRepository(db)
	followCache := services.NewFollowCacheService(cache, followCountsCacheTTL)

	authController := controllers.NewAuthController(userRepo, postRepo, tokens, cfg)
	postController := controllers.NewPostController(postRepo)
	userController := controllers.NewUserController(followRepo, followCache)

	guard := middleware.AuthRequired(tokens)

	// Public routes
	r.GET("/", authController.Welcome)
	r.POST("/register", authController.Register)
	r.POST("/login", authController.Login)
	r.POST("/refresh", authController.Refresh)
	r.GET("/posts", postController.GetPosts)
	r.POST("/post", postController.GetPost)
	r.GET("/users/:userId/followers", userController.GetFollowers)
	r.GET("/users/:userId/following", userController.GetFollowing)
	r.GET("/users/:userId/follow-counts", userController.GetFollowCounts)

	// Protected routes
	r.GET("/private", guard, authController.Private)
	r.POST("/posts", guard, postController.CreatePost)
	r.POST("/posts/like", guard, postController.LikePost)
	r.POST("/posts/dislike", guard, postController.DislikePost)
	r.POST("/comment", guard, postController.CreateComment)
	r.POST("/users/follow", guard, userController.FollowUser)
	r.POST("/users/unfollow", guard, userController.UnfollowUser)
	r.GET("/users/:userId/is-following", guard, userController.IsFollowing)
}
