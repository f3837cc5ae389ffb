package notify

import (
	"encoding/json"
	"log"

	"github.com/google/uuid"
	"github.com/linskybing/crf-go/models"
	"github.com/linskybing/crf-go/repositories"
	"gorm.io/datatypes"
)

// Dispatcher delivers workflow notifications. The workflow decides who and
// what; delivery mechanics live here.
type Dispatcher interface {
	NotifyUser(userID uint, kind models.NotificationKind, payload map[string]any) error
	NotifyRole(role string, kind models.NotificationKind, payload map[string]any) error
}

// DBDispatcher persists a notification row per recipient and pushes a frame
// to any websocket session the recipient has open.
type DBDispatcher struct {
	Notifications repositories.NotificationRepo
	Users         repositories.UserRepo
	Hub           *Hub
}

func NewDBDispatcher(notifications repositories.NotificationRepo, users repositories.UserRepo, hub *Hub) *DBDispatcher {
	return &DBDispatcher{
		Notifications: notifications,
		Users:         users,
		Hub:           hub,
	}
}

func (d *DBDispatcher) NotifyUser(userID uint, kind models.NotificationKind, payload map[string]any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	notification := &models.Notification{
		ID:      uuid.NewString(),
		UserID:  userID,
		Kind:    kind,
		Payload: datatypes.JSON(raw),
	}
	if err := d.Notifications.Create(notification); err != nil {
		return err
	}

	if d.Hub != nil {
		frame, err := json.Marshal(notification)
		if err == nil {
			d.Hub.Push(userID, frame)
		}
	}
	return nil
}

func (d *DBDispatcher) NotifyRole(role string, kind models.NotificationKind, payload map[string]any) error {
	users, err := d.Users.ListByRole(role)
	if err != nil {
		return err
	}
	for _, user := range users {
		if err := d.NotifyUser(user.ID, kind, payload); err != nil {
			log.Printf("notify user %d failed: %v", user.ID, err)
		}
	}
	return nil
}
