package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"finabiz/internal/config"
	apperrors "finabiz/internal/errors"
	"finabiz/internal/middleware"
	"finabiz/internal/models"
	"finabiz/internal/services"
)

// AuthHandler handles registration, login, and the legacy user endpoints
// consumed by the existing client application.
type AuthHandler struct {
	userService services.UserServicer
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userService services.UserServicer) *AuthHandler {
	return &AuthHandler{userService: userService}
}

// RegisterRequest represents the registration request payload. The wire
// field names are those of the original API.
type RegisterRequest struct {
	Name     string `json:"nombre" binding:"required,max=50"`
	Email    string `json:"correo" binding:"required,email,max=100"`
	Password string `json:"password" binding:"required,max=128"`
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Email    string `json:"correo" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest represents the token refresh request payload
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// userSummary maps a user to the legacy wire payload. The password hash is
// never part of any payload.
func userSummary(user *models.User) gin.H {
	return gin.H{
		"id":     user.ID,
		"nombre": user.Name,
		"correo": user.Email,
	}
}

// userSummaryWithPhoto is userSummary plus the profile photo reference.
func userSummaryWithPhoto(user *models.User) gin.H {
	summary := userSummary(user)
	summary["foto_perfil"] = user.ProfilePhoto
	return summary
}

// Register handles user registration
// @Summary     Register a new user
// @Description Register a new user with name, email, and password
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body RegisterRequest true "User registration data"
// @Success     200 {object} map[string]interface{} "User registered"
// @Failure     400 {object} ErrorResponse "Missing fields or duplicate email"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /api/registrar/ [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.ErrValidation)
		return
	}

	user, err := h.userService.Register(req.Name, req.Email, req.Password)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User registered successfully",
		"user":    userSummary(user),
	})
}

// Login handles user login
// @Summary     Login user
// @Description Authenticate a user and issue an access/refresh token pair
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body LoginRequest true "User login credentials"
// @Success     200 {object} map[string]interface{} "User authenticated"
// @Failure     400 {object} ErrorResponse "Missing fields"
// @Failure     401 {object} ErrorResponse "Incorrect password"
// @Failure     404 {object} ErrorResponse "Unknown email"
// @Router      /api/login/ [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.ErrValidation)
		return
	}

	user, err := h.userService.Authenticate(req.Email, req.Password)
	if err != nil {
		respondWithError(c, err)
		return
	}

	accessToken, refreshToken, err := h.issueTokenPair(user)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"user":    userSummaryWithPhoto(user),
		"tokens": gin.H{
			"access":  accessToken,
			"refresh": refreshToken,
		},
	})
}

// Refresh rotates the token pair from a valid refresh token
// @Summary     Refresh token pair
// @Description Exchange a refresh token for a new access/refresh token pair
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body RefreshRequest true "Refresh token"
// @Success     200 {object} map[string]interface{} "New token pair"
// @Failure     401 {object} ErrorResponse "Invalid token"
// @Router      /api/v1/auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.ErrValidation)
		return
	}

	claims, err := middleware.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		respondWithError(c, apperrors.ErrInvalidToken)
		return
	}

	// A rotated-out token hashes differently from the stored digest.
	storedHash, err := h.userService.GetRefreshTokenHash(claims.UserID)
	if err != nil || storedHash != middleware.HashToken(req.RefreshToken) {
		respondWithError(c, apperrors.ErrInvalidToken)
		return
	}

	user, err := h.userService.GetUserByID(claims.UserID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	accessToken, refreshToken, err := h.issueTokenPair(user)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"tokens": gin.H{
			"access":  accessToken,
			"refresh": refreshToken,
		},
	})
}

// ListUsers returns all user summaries. Behind the auth middleware; the
// original exposed it publicly for testing only.
// @Summary     List users
// @Description List all registered users (testing endpoint)
// @Tags        users
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "User list"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /api/usuarios/ [get]
func (h *AuthHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers()
	if err != nil {
		respondWithError(c, err)
		return
	}

	summaries := make([]gin.H, 0, len(users))
	for i := range users {
		summaries = append(summaries, userSummaryWithPhoto(&users[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"usuarios": summaries,
	})
}

// Health reports server liveness
// @Summary     Health check
// @Description Verify the server is running
// @Tags        health
// @Produce     json
// @Success     200 {object} map[string]interface{} "Status payload"
// @Router      /api/health/ [get]
func (h *AuthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Finabiz server is running",
		"app":     config.Get().AppName,
	})
}

// GetProfile returns the authenticated user's profile
// @Summary     Get user profile
// @Description Get the authenticated user's profile information
// @Tags        users
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "User profile"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /api/v1/profile [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	user, err := h.userService.GetUserByID(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    userSummaryWithPhoto(user),
	})
}

// issueTokenPair generates and persists a fresh access/refresh token pair.
func (h *AuthHandler) issueTokenPair(user *models.User) (string, string, error) {
	accessToken, err := middleware.GenerateAccessToken(user)
	if err != nil {
		return "", "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	refreshToken, err := middleware.GenerateRefreshToken(user)
	if err != nil {
		return "", "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := h.userService.StoreRefreshTokenHash(user.ID, middleware.HashToken(refreshToken)); err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}
