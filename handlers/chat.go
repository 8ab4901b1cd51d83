package handlers

import (
	"errors"
	"net/http"

	"github.com/Codekiller51/brandconnect-server/services/chat"
	"github.com/Codekiller51/brandconnect-server/utils"

	"github.com/gin-gonic/gin"
)

// ChatHandler exposes client/creative messaging endpoints.
type ChatHandler struct {
	svc chat.ChatService
}

func NewChatHandler(svc chat.ChatService) *ChatHandler {
	return &ChatHandler{svc: svc}
}

// Start opens (or returns) the conversation between the authenticated client
// and a creative.
func (h *ChatHandler) Start(c *gin.Context) {
	accountID, _ := identity(c)
	var req struct {
		CreativeID string `json:"creativeId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid payload", err.Error())
		return
	}

	conv, err := h.svc.StartConversation(c.Request.Context(), accountID, req.CreativeID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Could not start conversation", err.Error())
		return
	}
	c.JSON(http.StatusOK, conv)
}

func (h *ChatHandler) ListConversations(c *gin.Context) {
	accountID, _ := identity(c)
	convs, err := h.svc.ListConversations(c.Request.Context(), accountID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Could not list conversations", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"conversations": convs})
}

func (h *ChatHandler) SendMessage(c *gin.Context) {
	accountID, role := identity(c)
	var req struct {
		Body string `json:"body" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid message payload", err.Error())
		return
	}

	msg, err := h.svc.SendMessage(c.Request.Context(), c.Param("id"), accountID, role, req.Body)
	if err != nil {
		if errors.Is(err, chat.ErrNotParticipant) {
			utils.JSONError(c, http.StatusForbidden, "Not a participant", "")
			return
		}
		utils.JSONError(c, http.StatusNotFound, "Could not send message", err.Error())
		return
	}
	c.JSON(http.StatusCreated, msg)
}

func (h *ChatHandler) ListMessages(c *gin.Context) {
	accountID, _ := identity(c)
	page, pageSize := pageParams(c)

	msgs, err := h.svc.ListMessages(c.Request.Context(), c.Param("id"), accountID, page, pageSize)
	if err != nil {
		if errors.Is(err, chat.ErrNotParticipant) {
			utils.JSONError(c, http.StatusForbidden, "Not a participant", "")
			return
		}
		utils.JSONError(c, http.StatusNotFound, "Could not list messages", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": msgs})
}
