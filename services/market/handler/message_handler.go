package handler

import (
	"net/http"

	model "lot-market/internal/models"
	"lot-market/services/market/helpers"
	"lot-market/utils"

	"github.com/gin-gonic/gin"
)

type MessagingServiceInterface interface {
	ListMessages(toUserID, fromUserID string) ([]model.Message, error)
	SendMessage(fromUserID, toUserID, text string, lotID *string) (model.Message, error)
	MarkRead(messageID string) error
}

type MessageHandler struct {
	service MessagingServiceInterface
}

func NewMessageHandler(service MessagingServiceInterface) *MessageHandler {
	return &MessageHandler{service: service}
}

// ListMessagesHandler handles GET /api/messages
func (h *MessageHandler) ListMessagesHandler(c *gin.Context) {
	toUserID := c.Query("toUserId")
	fromUserID := c.Query("fromUserId")

	msgs, err := h.service.ListMessages(toUserID, fromUserID)
	if err != nil {
		helpers.RespondError(c, "ListMessagesHandler", err, map[string]any{
			"to_user_id":   toUserID,
			"from_user_id": fromUserID,
		})
		return
	}

	if msgs == nil {
		msgs = []model.Message{}
	}

	utils.JSONResponse(c, http.StatusOK, msgs, "messages retrieved successfully")
}

// SendMessageHandler handles POST /api/messages
func (h *MessageHandler) SendMessageHandler(c *gin.Context) {
	var req helpers.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SendMessageHandler", err)
		return
	}

	msg, err := h.service.SendMessage(req.FromUserID, req.ToUserID, req.Text, req.LotID)
	if err != nil {
		helpers.RespondError(c, "SendMessageHandler", err, map[string]any{
			"from_user_id": req.FromUserID,
			"to_user_id":   req.ToUserID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, msg, "message sent successfully")
	helpers.LogSuccess("SendMessageHandler", "message sent successfully", map[string]any{
		"message_id":   msg.MessageID,
		"from_user_id": msg.FromUserID,
		"to_user_id":   msg.ToUserID,
	})
}

// MarkReadHandler handles PUT /api/messages/:message_id/read
func (h *MessageHandler) MarkReadHandler(c *gin.Context) {
	messageID := c.Param("message_id")

	if err := h.service.MarkRead(messageID); err != nil {
		helpers.RespondError(c, "MarkReadHandler", err, map[string]any{"message_id": messageID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "message marked read")
}
