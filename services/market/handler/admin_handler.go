package handler

import (
	"net/http"
	"strconv"
	"time"

	catalog "lot-market/internal/catalogService"
	model "lot-market/internal/models"
	"lot-market/services/market/helpers"
	"lot-market/utils"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes the operator surface: scheduled lot creation, listing
// and deletion. Route access is gated by the admin middleware.
type AdminHandler struct {
	service     CatalogServiceInterface
	adminUserID func() string
}

// NewAdminHandler wires the catalog service; adminUserID supplies the owner
// for lots created without an explicit user_id.
func NewAdminHandler(service CatalogServiceInterface, adminUserID func() string) *AdminHandler {
	return &AdminHandler{service: service, adminUserID: adminUserID}
}

// CreateLotHandler handles POST /api/admin/lots
func (h *AdminHandler) CreateLotHandler(c *gin.Context) {
	var req helpers.AdminCreateLotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AdminCreateLotHandler", err)
		return
	}

	ownerID := req.UserID
	if ownerID == "" {
		ownerID = h.adminUserID()
	}

	endTime := req.EndTime(time.Now().UTC())
	lot, err := h.service.CreateLot(ownerID, catalog.NewLotFields{
		Kind:        req.Kind,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.StartPrice,
		StartPrice:  &req.StartPrice,
		BuyNowPrice: req.BuyNowPrice,
		Tags:        req.Tags,
		Location:    req.Location,
		EndTime:     &endTime,
	})
	if err != nil {
		helpers.RespondError(c, "AdminCreateLotHandler", err, map[string]any{"user_id": ownerID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, lot, "lot created successfully")
	helpers.LogSuccess("AdminCreateLotHandler", "lot created successfully", map[string]any{
		"lot_id":   lot.LotID,
		"end_time": endTime.Format(time.RFC3339),
	})
}

// ListLotsHandler handles GET /api/admin/lots
func (h *AdminHandler) ListLotsHandler(c *gin.Context) {
	kind := c.Query("kind")
	limit, _ := strconv.Atoi(c.Query("limit"))

	lots, err := h.service.ListLots(kind, limit)
	if err != nil {
		helpers.RespondError(c, "AdminListLotsHandler", err, map[string]any{"kind": kind})
		return
	}

	if lots == nil {
		lots = []model.Lot{}
	}

	utils.JSONResponse(c, http.StatusOK, lots, "lots retrieved successfully")
}

// DeleteLotHandler handles DELETE /api/admin/lots/:lot_id
func (h *AdminHandler) DeleteLotHandler(c *gin.Context) {
	lotID := c.Param("lot_id")

	if err := h.service.DeleteLot(lotID); err != nil {
		helpers.RespondError(c, "AdminDeleteLotHandler", err, map[string]any{"lot_id": lotID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "lot deleted successfully")
	helpers.LogSuccess("AdminDeleteLotHandler", "lot deleted successfully", map[string]any{"lot_id": lotID})
}
