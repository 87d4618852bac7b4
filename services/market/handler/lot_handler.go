package handler

import (
	"io"
	"net/http"
	"strconv"
	"time"

	catalog "lot-market/internal/catalogService"
	model "lot-market/internal/models"
	"lot-market/services/market/helpers"
	"lot-market/utils"

	"github.com/gin-gonic/gin"
)

type CatalogServiceInterface interface {
	ListLots(kind string, limit int) ([]model.Lot, error)
	GetLot(lotID string) (model.Lot, error)
	RegisterClick(lotID string) error
	CreateLot(ownerID string, fields catalog.NewLotFields) (model.Lot, error)
	UpdateLot(lotID string, update catalog.LotUpdate) (model.Lot, error)
	DeleteLot(lotID string) error
	PlaceBid(lotID, bidderID string, amount float64) (model.Lot, error)
	GetBidsForLot(lotID string) ([]model.Bid, error)
	AttachImage(lotID string, r io.Reader, filename, contentType string) (model.Lot, error)
}

type LotHandler struct {
	service CatalogServiceInterface
}

func NewLotHandler(service CatalogServiceInterface) *LotHandler {
	return &LotHandler{service: service}
}

// ListLotsHandler handles GET /api/lots
func (h *LotHandler) ListLotsHandler(c *gin.Context) {
	kind := c.Query("kind")
	limit, _ := strconv.Atoi(c.Query("limit"))

	lots, err := h.service.ListLots(kind, limit)
	if err != nil {
		helpers.RespondError(c, "ListLotsHandler", err, map[string]any{"kind": kind})
		return
	}

	if lots == nil {
		lots = []model.Lot{}
	}

	utils.JSONResponse(c, http.StatusOK, lots, "lots retrieved successfully")
	helpers.LogSuccess("ListLotsHandler", "lots retrieved successfully", map[string]any{
		"kind":  kind,
		"count": len(lots),
	})
}

// GetLotHandler handles GET /api/lots/:lot_id
func (h *LotHandler) GetLotHandler(c *gin.Context) {
	lotID := c.Param("lot_id")

	lot, err := h.service.GetLot(lotID)
	if err != nil {
		helpers.RespondError(c, "GetLotHandler", err, map[string]any{"lot_id": lotID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, lot, "lot retrieved successfully")
}

// CreateLotHandler handles POST /api/lots
func (h *LotHandler) CreateLotHandler(c *gin.Context) {
	var req helpers.CreateLotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateLotHandler", err)
		return
	}

	lot, err := h.service.CreateLot(req.UserID, catalog.NewLotFields{
		Kind:        req.Kind,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		BuyNowPrice: req.BuyNowPrice,
		Tags:        req.Tags,
		Images:      req.Images,
		IsPremium:   req.IsPremium,
		Location:    req.Location,
	})
	if err != nil {
		helpers.RespondError(c, "CreateLotHandler", err, map[string]any{"user_id": req.UserID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, lot, "lot created successfully")
	helpers.LogSuccess("CreateLotHandler", "lot created successfully", map[string]any{
		"lot_id":  lot.LotID,
		"user_id": req.UserID,
		"kind":    lot.Kind,
	})
}

// UpdateLotHandler handles PUT /api/lots/:lot_id
func (h *LotHandler) UpdateLotHandler(c *gin.Context) {
	lotID := c.Param("lot_id")

	var req helpers.UpdateLotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateLotHandler", err)
		return
	}

	lot, err := h.service.UpdateLot(lotID, catalog.LotUpdate{
		Kind:        req.Kind,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		BuyNowPrice: req.BuyNowPrice,
		Tags:        req.Tags,
		Images:      req.Images,
		IsPremium:   req.IsPremium,
		Location:    req.Location,
		Active:      req.Active,
	})
	if err != nil {
		helpers.RespondError(c, "UpdateLotHandler", err, map[string]any{"lot_id": lotID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, lot, "lot updated successfully")
	helpers.LogSuccess("UpdateLotHandler", "lot updated successfully", map[string]any{"lot_id": lotID})
}

// DeleteLotHandler handles DELETE /api/lots/:lot_id
func (h *LotHandler) DeleteLotHandler(c *gin.Context) {
	lotID := c.Param("lot_id")

	if err := h.service.DeleteLot(lotID); err != nil {
		helpers.RespondError(c, "DeleteLotHandler", err, map[string]any{"lot_id": lotID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "lot deleted successfully")
	helpers.LogSuccess("DeleteLotHandler", "lot deleted successfully", map[string]any{"lot_id": lotID})
}

// PlaceBidHandler handles POST /api/lots/:lot_id/bid
func (h *LotHandler) PlaceBidHandler(c *gin.Context) {
	lotID := c.Param("lot_id")

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	lot, err := h.service.PlaceBid(lotID, req.UserID, req.Amount)
	if err != nil {
		helpers.RespondError(c, "PlaceBidHandler", err, map[string]any{
			"lot_id":  lotID,
			"user_id": req.UserID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, lot, "bid recorded successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid recorded successfully", map[string]any{
		"lot_id":  lotID,
		"user_id": req.UserID,
		"amount":  req.Amount,
	})
}

// GetBidsHandler handles GET /api/lots/:lot_id/bids
func (h *LotHandler) GetBidsHandler(c *gin.Context) {
	lotID := c.Param("lot_id")

	bids, err := h.service.GetBidsForLot(lotID)
	if err != nil {
		helpers.RespondError(c, "GetBidsHandler", err, map[string]any{"lot_id": lotID})
		return
	}

	if bids == nil {
		bids = []model.Bid{}
	}

	resp := make([]helpers.BidResponse, 0, len(bids))
	for _, b := range bids {
		resp = append(resp, helpers.BidResponse{
			BidID:     b.BidID,
			LotID:     b.LotID,
			UserID:    b.UserID,
			Amount:    b.Amount,
			CreatedAt: b.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	utils.JSONResponse(c, http.StatusOK, resp, "bids retrieved successfully")
}

// RegisterClickHandler handles POST /api/lots/:lot_id/click
func (h *LotHandler) RegisterClickHandler(c *gin.Context) {
	lotID := c.Param("lot_id")

	if err := h.service.RegisterClick(lotID); err != nil {
		helpers.RespondError(c, "RegisterClickHandler", err, map[string]any{"lot_id": lotID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "click recorded")
}

// UploadImageHandler handles POST /api/lots/:lot_id/images
func (h *LotHandler) UploadImageHandler(c *gin.Context) {
	lotID := c.Param("lot_id")

	fileHeader, err := c.FormFile("image")
	if err != nil {
		helpers.HandleBindError(c, "UploadImageHandler", err)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		helpers.RespondError(c, "UploadImageHandler", err, map[string]any{"lot_id": lotID})
		return
	}
	defer file.Close()

	lot, err := h.service.AttachImage(lotID, file, fileHeader.Filename, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		helpers.RespondError(c, "UploadImageHandler", err, map[string]any{"lot_id": lotID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, lot, "image uploaded successfully")
	helpers.LogSuccess("UploadImageHandler", "image uploaded successfully", map[string]any{
		"lot_id": lotID,
		"images": len(lot.Images),
	})
}
