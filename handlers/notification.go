package handlers

import (
	"net/http"

	"fixify/middleware"
	"fixify/services/notification"
	"fixify/utils"

	"github.com/gin-gonic/gin"
)

// NotificationHandler exposes the recipient-facing notification endpoints.
type NotificationHandler struct {
	Svc notification.Dispatcher
}

func NewNotificationHandler(svc notification.Dispatcher) *NotificationHandler {
	return &NotificationHandler{Svc: svc}
}

// ListHandler returns the caller's notifications, newest first.
func (h *NotificationHandler) ListHandler(c *gin.Context) {
	notifications, err := h.Svc.ListForUser(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// MarkReadHandler flips one notification's read flag.
func (h *NotificationHandler) MarkReadHandler(c *gin.Context) {
	if err := h.Svc.MarkRead(c.Request.Context(), middleware.CallerID(c), c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}

// MarkAllReadHandler flips every unread notification of the caller.
func (h *NotificationHandler) MarkAllReadHandler(c *gin.Context) {
	if err := h.Svc.MarkAllRead(c.Request.Context(), middleware.CallerID(c)); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "All notifications marked as read"})
}

// MarkAllReadAliasHandler serves PUT /notifications/:id. gin cannot register
// a static sibling of a route parameter, so the collection-level read-all
// mutation arrives here as the parameter value. Anything else is unknown.
func (h *NotificationHandler) MarkAllReadAliasHandler(c *gin.Context) {
	if c.Param("id") != "read-all" {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	h.MarkAllReadHandler(c)
}
