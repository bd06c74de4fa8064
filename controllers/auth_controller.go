package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/florett/florett-backend/services"
)

// AuthController handles admin login.
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new AuthController.
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

type loginRequest struct {
	Password string `json:"password" binding:"required"`
}

// Login handles POST /auth/login.
func (ac *AuthController) Login(ctx *gin.Context) {
	var req loginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Пароль обязателен"})
		return
	}

	token, svcErr := ac.authService.Login(req.Password)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"token": token})
}
