// File: /controllers/auth_controller.go
package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ryanneekidev/rline-backend/auth"
	"github.com/ryanneekidev/rline-backend/config"
	"github.com/ryanneekidev/rline-backend/middleware"
	"github.com/ryanneekidev/rline-backend/repositories"
	"github.com/ryanneekidev/rline-backend/utils"
)

const (
	msgMissingCredentials  = "Missing username or password!"
	msgMissingFields       = "Missing username, password or email!"
	msgInvalidCredentials  = "Incorrect username or password"
	msgPasswordMismatch    = "Passwords do not match!"
	msgNoRefreshToken      = "No refresh token provided!"
	msgInvalidRefreshToken = "Your refresh token is invalid or has expired!"
	msgLoginSuccess        = "Successfully logged in!"
	msgRefreshSuccess      = "Successfully refreshed access token for user "
	msgUserCreated         = "User created successfully!"

	refreshCookieMaxAge = 24 * 60 * 60
)

type AuthController struct {
	users  *repositories.UserRepository
	posts  *repositories.PostRepository
	tokens *auth.TokenManager
	cfg    *config.Config
}

func NewAuthController(users *repositories.UserRepository, posts *repositories.PostRepository, tokens *auth.TokenManager, cfg *config.Config) *AuthController {
	return &AuthController{users: users, posts: posts, tokens: tokens, cfg: cfg}
}

type RegisterRequest struct {
	Username          string `json:"username"`
	Password          string `json:"password"`
	ConfirmedPassword string `json:"confirmedPassword"`
	Email             string `json:"email"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendRegisterFailure(c, http.StatusBadRequest, msgMissingFields)
		return
	}

	if req.Username == "" || req.Password == "" || req.Email == "" {
		utils.SendRegisterFailure(c, http.StatusBadRequest, msgMissingFields)
		return
	}

	// Confirmation is optional; when supplied it has to match.
	if req.ConfirmedPassword != "" && req.Password != req.ConfirmedPassword {
		utils.SendRegisterFailure(c, http.StatusBadRequest, msgPasswordMismatch)
		return
	}

	if !utils.IsValidEmail(req.Email) {
		utils.SendRegisterFailure(c, http.StatusBadRequest, fmt.Sprintf("Email address %s is not valid", req.Email))
		return
	}

	ctx := c.Request.Context()

	usernameTaken, err := ac.users.UsernameExists(ctx, req.Username)
	if err != nil {
		utils.SendMessage(c, http.StatusInternalServerError, "Failed to create user")
		return
	}
	emailTaken, err := ac.users.EmailExists(ctx, req.Email)
	if err != nil {
		utils.SendMessage(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	// Report the most specific conflict: both taken, username taken, or
	// email taken.
	switch {
	case usernameTaken && emailTaken:
		utils.SendRegisterFailure(c, http.StatusBadRequest,
			fmt.Sprintf("Username %s and email address %s are not available", req.Username, req.Email))
		return
	case usernameTaken:
		utils.SendRegisterFailure(c, http.StatusBadRequest,
			fmt.Sprintf("Username %s is not available", req.Username))
		return
	case emailTaken:
		utils.SendRegisterFailure(c, http.StatusBadRequest,
			fmt.Sprintf("Email address %s is not available", req.Email))
		return
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		utils.SendMessage(c, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	if _, err := ac.users.CreateUser(ctx, req.Username, req.Email, hashedPassword); err != nil {
		// A racing insert can still trip the unique indexes after the
		// checks above passed; surface the store's own code.
		var conflict *repositories.ConflictError
		if errors.As(err, &conflict) {
			utils.SendConflict(c, http.StatusBadRequest, conflict.Message, conflict.Code)
			return
		}
		utils.SendMessage(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": msgUserCreated, "pass": true})
}

func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendMessage(c, http.StatusBadRequest, msgMissingCredentials)
		return
	}

	if req.Username == "" || req.Password == "" {
		utils.SendMessage(c, http.StatusBadRequest, msgMissingCredentials)
		return
	}

	ctx := c.Request.Context()

	// Unknown username and wrong password are indistinguishable to the
	// caller.
	user, err := ac.users.GetByUsername(ctx, req.Username)
	if err != nil {
		utils.SendMessage(c, http.StatusUnauthorized, msgInvalidCredentials)
		return
	}

	if err := auth.CheckPassword(user.Password, req.Password); err != nil {
		utils.SendMessage(c, http.StatusUnauthorized, msgInvalidCredentials)
		return
	}

	accessToken, err := ac.tokens.IssueAccess(user)
	if err != nil {
		utils.SendMessage(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}
	refreshToken, err := ac.tokens.IssueRefresh(user)
	if err != nil {
		utils.SendMessage(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	likes, err := ac.posts.GetUserLikedPosts(ctx, user.ID)
	if err != nil {
		utils.SendMessage(c, http.StatusInternalServerError, "Failed to load liked posts")
		return
	}

	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(ac.cfg.RefreshCookieName(), refreshToken, refreshCookieMaxAge, "/", ac.cfg.CookieDomain, true, true)

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("%s (%s)", msgLoginSuccess, user.Username),
		"token":   accessToken,
		"likes":   likes,
	})
}

// Refresh exchanges a valid refresh cookie for a fresh access token. The
// refresh token itself is not rotated and the credential store is not
// consulted; the signature alone is trusted.
func (ac *AuthController) Refresh(c *gin.Context) {
	refreshToken, err := c.Cookie(ac.cfg.RefreshCookieName())
	if err != nil || refreshToken == "" {
		utils.SendMessage(c, http.StatusBadRequest, msgNoRefreshToken)
		return
	}

	claims, err := ac.tokens.ParseRefresh(refreshToken)
	if err != nil {
		utils.SendMessage(c, http.StatusForbidden, msgInvalidRefreshToken)
		return
	}

	accessToken, err := ac.tokens.Reissue(claims)
	if err != nil {
		utils.SendMessage(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": msgRefreshSuccess + claims.Username,
		"token":   accessToken,
	})
}

func (ac *AuthController) Welcome(c *gin.Context) {
	utils.SendMessage(c, http.StatusOK, ac.cfg.WelcomeMessage)
}

func (ac *AuthController) Private(c *gin.Context) {
	claims, ok := middleware.CurrentUser(c)
	if !ok {
		utils.SendMessage(c, http.StatusForbidden, "You are unauthorized to access this endpoint!")
		return
	}
	utils.SendMessage(c, http.StatusOK, fmt.Sprintf("Welcome to the private endpoint, %s!", claims.Username))
}
