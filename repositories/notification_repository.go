package repositories

import (
	"time"

	"github.com/linskybing/crf-go/db"
	"github.com/linskybing/crf-go/models"
)

type NotificationRepo interface {
	Create(notification *models.Notification) error
	ListByUser(userID uint) ([]models.Notification, error)
	CountUnread(userID uint) (int64, error)
	MarkRead(id string, userID uint) error
	MarkAllRead(userID uint) error
}

type DBNotificationRepo struct{}

func (r *DBNotificationRepo) Create(notification *models.Notification) error {
	return db.DB.Create(notification).Error
}

func (r *DBNotificationRepo) ListByUser(userID uint) ([]models.Notification, error) {
	var notifications []models.Notification
	err := db.DB.Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(50).
		Find(&notifications).Error
	return notifications, err
}

func (r *DBNotificationRepo) CountUnread(userID uint) (int64, error) {
	var count int64
	err := db.DB.Model(&models.Notification{}).
		Where("user_id = ? AND read_at IS NULL", userID).
		Count(&count).Error
	return count, err
}

func (r *DBNotificationRepo) MarkRead(id string, userID uint) error {
	now := time.Now()
	return db.DB.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("read_at", &now).Error
}

func (r *DBNotificationRepo) MarkAllRead(userID uint) error {
	now := time.Now()
	return db.DB.Model(&models.Notification{}).
		Where("user_id = ? AND read_at IS NULL", userID).
		Update("read_at", &now).Error
}
