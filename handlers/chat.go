package handlers

import (
	"net/http"

	"fixify/middleware"
	"fixify/services/chat"
	"fixify/utils"

	"github.com/gin-gonic/gin"
)

// ChatHandler exposes chat message endpoints.
type ChatHandler struct {
	Svc chat.Service
}

func NewChatHandler(svc chat.Service) *ChatHandler {
	return &ChatHandler{Svc: svc}
}

// GetMessagesHandler returns a chat's messages to a participant.
func (h *ChatHandler) GetMessagesHandler(c *gin.Context) {
	messages, err := h.Svc.GetMessages(c.Request.Context(), middleware.CallerID(c), c.Param("chatId"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

// SendMessageHandler appends a message to a chat.
func (h *ChatHandler) SendMessageHandler(c *gin.Context) {
	var in struct {
		Chat string `json:"chat"`
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	msg, err := h.Svc.SendMessage(c.Request.Context(), middleware.CallerID(c), in.Chat, in.Text)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}
