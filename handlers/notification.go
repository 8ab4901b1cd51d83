package handlers

import (
	"net/http"

	"github.com/Codekiller51/brandconnect-server/services/notification"
	"github.com/Codekiller51/brandconnect-server/utils"

	"github.com/gin-gonic/gin"
)

// NotificationHandler exposes the in-app notification feed.
type NotificationHandler struct {
	svc notification.NotificationService
}

func NewNotificationHandler(svc notification.NotificationService) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

func (h *NotificationHandler) List(c *gin.Context) {
	accountID, _ := identity(c)
	page, pageSize := pageParams(c)
	unreadOnly := c.Query("unread") == "true"

	notifications, err := h.svc.ListForRecipient(c.Request.Context(), accountID, unreadOnly, page, pageSize)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Could not list notifications", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	accountID, _ := identity(c)
	if err := h.svc.MarkRead(c.Request.Context(), c.Param("id"), accountID); err != nil {
		utils.JSONError(c, http.StatusNotFound, "Could not mark notification read", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "marked read"})
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	accountID, _ := identity(c)
	if err := h.svc.MarkAllRead(c.Request.Context(), accountID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Could not mark notifications read", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "all marked read"})
}

func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	accountID, _ := identity(c)
	count, err := h.svc.CountUnread(c.Request.Context(), accountID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Could not count notifications", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"unread": count})
}
