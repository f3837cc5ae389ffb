package models

import (
	"time"

	"gorm.io/datatypes"
)

type NotificationKind string

const (
	NotifCrfCreated       NotificationKind = "crf_created"
	NotifCrfAssigned      NotificationKind = "crf_assigned"
	NotifCrfVerified      NotificationKind = "crf_verified"
	NotifCrfVerifiedByHOU NotificationKind = "crf_verified_by_hou"
)

type Notification struct {
	ID        string           `gorm:"primaryKey;size:36" json:"id"`
	UserID    uint             `gorm:"not null;index" json:"user_id"`
	Kind      NotificationKind `gorm:"size:30;not null" json:"kind"`
	Payload   datatypes.JSON   `json:"payload"`
	ReadAt    *time.Time       `json:"read_at"`
	CreatedAt time.Time        `gorm:"autoCreateTime" json:"created_at"`
}
