package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/devconnector-backend/internal/logger"
	"github.com/yungbote/devconnector-backend/internal/services"
	"github.com/yungbote/devconnector-backend/internal/types"
)

type AuthHandler struct {
	log         *logger.Logger
	authService services.AuthService
}

func NewAuthHandler(log *logger.Logger, authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		log:         log.With("handler", "AuthHandler"),
		authService: authService,
	}
}

// POST /api/users
func (ah *AuthHandler) Register(c *gin.Context) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid request body"})
		return
	}
	user := types.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}
	token, err := ah.authService.RegisterUser(c.Request.Context(), &user)
	if err != nil {
		RespondServiceError(c, ah.log, err)
		return
	}
	RespondOK(c, gin.H{"token": token})
}

// POST /api/auth
func (ah *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid request body"})
		return
	}
	token, err := ah.authService.LoginUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		RespondServiceError(c, ah.log, err)
		return
	}
	RespondOK(c, gin.H{"token": token})
}

// GET /api/auth
func (ah *AuthHandler) CurrentUser(c *gin.Context) {
	user, err := ah.authService.CurrentUser(c.Request.Context())
	if err != nil {
		RespondServiceError(c, ah.log, err)
		return
	}
	RespondOK(c, user)
}
