package handler

import (
	"net/http"

	"lot-market/services/market/helpers"
	"lot-market/utils"

	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type TelegramBridgeInterface interface {
	HandleUpdate(update tgbotapi.Update) error
}

type TelegramHandler struct {
	bridge TelegramBridgeInterface
}

func NewTelegramHandler(bridge TelegramBridgeInterface) *TelegramHandler {
	return &TelegramHandler{bridge: bridge}
}

// WebhookHandler handles POST /api/telegram/webhook
func (h *TelegramHandler) WebhookHandler(c *gin.Context) {
	var update tgbotapi.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		helpers.HandleBindError(c, "TelegramWebhookHandler", err)
		return
	}

	if err := h.bridge.HandleUpdate(update); err != nil {
		helpers.RespondError(c, "TelegramWebhookHandler", err, nil)
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "update processed")
}
