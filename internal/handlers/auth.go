package handlers

import (
	"github.com/ecosaver/energy-server/internal/middleware"
	"github.com/ecosaver/energy-server/internal/models"
	"github.com/ecosaver/energy-server/internal/repository"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	store   *repository.Store
	jwtAuth *middleware.JWTAuth
}

func NewAuthHandler(store *repository.Store, jwtAuth *middleware.JWTAuth) *AuthHandler {
	return &AuthHandler{
		store:   store,
		jwtAuth: jwtAuth,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

// POST /admin/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	var admin models.AdminUser
	if err := h.store.DB().Where("email = ?", req.Email).First(&admin).Error; err != nil {
		Unauthorized(c, "Invalid credentials")
		return
	}

	if !admin.CheckPassword(req.Password) {
		Unauthorized(c, "Invalid credentials")
		return
	}

	token, err := h.jwtAuth.GenerateToken(admin.ID, admin.Email)
	if err != nil {
		InternalError(c, "Failed to generate token")
		return
	}

	OK(c, LoginResponse{
		Token: token,
		Email: admin.Email,
	})
}
