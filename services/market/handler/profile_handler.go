package handler

import (
	"fmt"
	"net/http"

	"lot-market/internal/marketerrors"
	model "lot-market/internal/models"
	profile "lot-market/internal/profileService"
	"lot-market/services/market/helpers"
	"lot-market/utils"

	"github.com/gin-gonic/gin"
)

type ProfileServiceInterface interface {
	GetProfile(userID string) (profile.Profile, error)
	UpdateProfile(userID string, update profile.ProfileUpdate) (model.User, error)
}

type ProfileHandler struct {
	service ProfileServiceInterface
}

func NewProfileHandler(service ProfileServiceInterface) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// GetProfileHandler handles GET /api/profile?userId=
func (h *ProfileHandler) GetProfileHandler(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		err := fmt.Errorf("%w - missing userId query parameter", marketerrors.ErrValidation)
		utils.JSONError(c, http.StatusBadRequest, err, "missing userId query parameter")
		return
	}

	p, err := h.service.GetProfile(userID)
	if err != nil {
		helpers.RespondError(c, "GetProfileHandler", err, map[string]any{"user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, p, "profile retrieved successfully")
	helpers.LogSuccess("GetProfileHandler", "profile retrieved successfully", map[string]any{
		"user_id":   userID,
		"lot_count": len(p.Lots),
	})
}

// UpdateProfileHandler handles PUT /api/profile
func (h *ProfileHandler) UpdateProfileHandler(c *gin.Context) {
	var req helpers.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateProfileHandler", err)
		return
	}

	user, err := h.service.UpdateProfile(req.UserID, profile.ProfileUpdate{
		Email:     req.Email,
		IsPremium: req.IsPremium,
	})
	if err != nil {
		helpers.RespondError(c, "UpdateProfileHandler", err, map[string]any{"user_id": req.UserID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, user, "profile updated successfully")
	helpers.LogSuccess("UpdateProfileHandler", "profile updated successfully", map[string]any{
		"user_id": user.UserID,
	})
}
