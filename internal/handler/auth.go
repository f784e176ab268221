package handler

import (
	"net/http"
	"time"

	"taskhub/internal/logger"
	"taskhub/internal/middleware"
	"taskhub/internal/model"
	"taskhub/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth   *service.AuthService
	jwtTTL time.Duration
}

func NewAuthHandler(auth *service.AuthService, jwtTTL time.Duration) *AuthHandler {
	return &AuthHandler{auth: auth, jwtTTL: jwtTTL}
}

// POST /api/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	u, err := h.auth.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	logger.Info("register.ok", "uid", u.ID, "email", u.Email)
	c.JSON(http.StatusCreated, u)
}

// POST /api/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	u, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		logger.Warn("login.failed", "email", req.Email)
		writeError(c, err)
		return
	}

	token, err := middleware.GenerateToken(u.ID, u.Name, h.jwtTTL)
	if err != nil {
		writeError(c, err)
		return
	}

	logger.Info("login.ok", "uid", u.ID, "name", u.Name)
	c.JSON(http.StatusOK, model.LoginResponse{Token: token, User: *u})
}

// POST /api/users/password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req model.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.auth.ChangePassword(c.Request.Context(), currentUserID(c), req.OldPassword, req.NewPassword); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// GET /api/users
func (h *AuthHandler) ListUsers(c *gin.Context) {
	users, err := h.auth.ListUsers(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	if users == nil {
		users = []model.User{}
	}
	c.JSON(http.StatusOK, users)
}
