package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/linskybing/crf-go/notify"
	"github.com/linskybing/crf-go/repositories"
	"github.com/linskybing/crf-go/response"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type NotificationHandler struct {
	repo repositories.NotificationRepo
	hub  *notify.Hub
}

func NewNotificationHandler(repo repositories.NotificationRepo, hub *notify.Hub) *NotificationHandler {
	return &NotificationHandler{repo: repo, hub: hub}
}

func (h *NotificationHandler) List(c *gin.Context) {
	uid, ok := actorID(c)
	if !ok {
		return
	}
	notifications, err := h.repo.ListByUser(uid)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: notifications})
}

func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	uid, ok := actorID(c)
	if !ok {
		return
	}
	count, err := h.repo.CountUnread(uid)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"unread": count})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	uid, ok := actorID(c)
	if !ok {
		return
	}
	if err := h.repo.MarkRead(c.Param("id"), uid); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Notification marked as read"})
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	uid, ok := actorID(c)
	if !ok {
		return
	}
	if err := h.repo.MarkAllRead(uid); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "All notifications marked as read"})
}

// Stream upgrades to a websocket and keeps the connection registered until
// the client goes away. Pushes arrive from the dispatcher via the hub.
func (h *NotificationHandler) Stream(c *gin.Context) {
	uid, ok := actorID(c)
	if !ok {
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Println("Failed to upgrade websocket:", err)
		return
	}
	h.hub.Register(uid, conn)
	defer func() {
		h.hub.Unregister(uid, conn)
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
