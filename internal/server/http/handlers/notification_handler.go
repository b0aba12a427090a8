package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/minhvn/sourcehub/internal/server/http/dto"
)

// defaultNotificationLimit caps unbounded inbox reads.
const defaultNotificationLimit = 50

// NotificationHandler manages notification inbox endpoints.
type NotificationHandler struct {
	facade NotificationFacade
}

// NewNotificationHandler constructs NotificationHandler.
func NewNotificationHandler(facade NotificationFacade) *NotificationHandler {
	return &NotificationHandler{facade: facade}
}

// List handles GET /api/notifications.
func (h *NotificationHandler) List(c *gin.Context) {
	unreadOnly := c.Query("unread") == "true"

	limit := defaultNotificationLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.Status(http.StatusBadRequest)
			return
		}
		limit = n
	}

	list, err := h.facade.Notifications(c.Request.Context(), CurrentUserID(c), unreadOnly, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToNotificationResponses(list))
}

// UnreadCount handles GET /api/notifications/unread-count.
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	count, err := h.facade.UnreadCount(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UnreadCountResponse{Count: count})
}

// SetRead handles PATCH /api/notifications/:id.
func (h *NotificationHandler) SetRead(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req dto.NotificationReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	n, err := h.facade.SetNotificationRead(c.Request.Context(), CurrentUserID(c), id, req.Read)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToNotificationResponse(*n))
}

// MarkAllRead handles POST /api/notifications/read-all.
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	if err := h.facade.MarkAllNotificationsRead(c.Request.Context(), CurrentUserID(c)); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Delete handles DELETE /api/notifications/:id.
func (h *NotificationHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.facade.DeleteNotification(c.Request.Context(), CurrentUserID(c), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
