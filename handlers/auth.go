package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"surfbrew/middleware"
	"surfbrew/services/user"
)

// AuthHandler exposes registration, login and identity endpoints.
type AuthHandler struct {
	Service user.UserService
	Logger  *zap.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc user.UserService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{Service: svc, Logger: logger}
}

// Register creates a new operator account.
func (h *AuthHandler) Register(c *gin.Context) {
	var input user.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	account, err := h.Service.Register(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
			return
		}
		h.Logger.Error("registration failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": account.ID})
}

// Login verifies credentials and returns a bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	token, err := h.Service.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		h.Logger.Error("login failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Login temporarily unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"access_token": token, "token_type": "bearer"})
}

// Me returns the account the request's token was issued for.
func (h *AuthHandler) Me(c *gin.Context) {
	email := c.GetString(middleware.CtxUserEmail)
	account, err := h.Service.GetByEmail(c.Request.Context(), email)
	if err != nil || account == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, account)
}
