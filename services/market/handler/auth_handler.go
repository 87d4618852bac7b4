package handler

import (
	"net/http"

	model "lot-market/internal/models"
	"lot-market/services/market/helpers"
	"lot-market/utils"

	"github.com/gin-gonic/gin"
)

type AccountServiceInterface interface {
	Register(email, password string) (model.User, error)
	Login(email, password string) (string, model.User, error)
}

type AuthHandler struct {
	service AccountServiceInterface
}

func NewAuthHandler(service AccountServiceInterface) *AuthHandler {
	return &AuthHandler{service: service}
}

// RegisterHandler handles POST /api/auth/register
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var req helpers.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RegisterHandler", err)
		return
	}

	user, err := h.service.Register(req.Email, req.Password)
	if err != nil {
		helpers.RespondError(c, "RegisterHandler", err, map[string]any{"email": req.Email})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, user, "user created successfully")
	helpers.LogSuccess("RegisterHandler", "user created successfully", map[string]any{
		"user_id": user.UserID,
	})
}

// LoginHandler handles POST /api/auth/login
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req helpers.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "LoginHandler", err)
		return
	}

	token, user, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		helpers.RespondError(c, "LoginHandler", err, map[string]any{"email": req.Email})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.LoginResponse{Token: token, User: user}, "login successful")
	helpers.LogSuccess("LoginHandler", "login successful", map[string]any{"user_id": user.UserID})
}
