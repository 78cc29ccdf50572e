// file: internals/features/notifications/model/notification_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Notification rows are the durable side of the fire-and-forget event
// contract. Delivery (websocket, email, ...) is an external concern.
type NotificationModel struct {
	NotificationID           uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:notification_id" json:"notification_id"`
	NotificationEvent        string     `gorm:"type:varchar(64);not null;column:notification_event" json:"notification_event"`
	NotificationUserID       *uuid.UUID `gorm:"type:uuid;index;column:notification_user_id" json:"notification_user_id,omitempty"`
	NotificationSubmissionID uuid.UUID  `gorm:"type:uuid;not null;index;column:notification_submission_id" json:"notification_submission_id"`

	NotificationPayload datatypes.JSONMap `gorm:"type:jsonb;column:notification_payload" json:"notification_payload,omitempty"`

	NotificationRead      bool      `gorm:"not null;default:false;column:notification_read" json:"notification_read"`
	NotificationCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:notification_created_at" json:"notification_created_at"`
}

func (NotificationModel) TableName() string { return "notifications" }
