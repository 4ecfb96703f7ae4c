package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pocketledger/internal/notify"
)

// NotificationHandler exposes the banner feed to the client.
type NotificationHandler struct {
	feed *notify.Feed
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(feed *notify.Feed) *NotificationHandler {
	return &NotificationHandler{feed: feed}
}

// GetNotifications returns recent notifications, newest first.
func (h *NotificationHandler) GetNotifications(c *gin.Context) {
	limit := 0
	if v := c.Query("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = parsed
	}

	c.JSON(http.StatusOK, gin.H{"notifications": h.feed.Recent(limit)})
}

// DismissNotification removes a banner before its duration elapses.
func (h *NotificationHandler) DismissNotification(c *gin.Context) {
	if !h.feed.Dismiss(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification dismissed"})
}
