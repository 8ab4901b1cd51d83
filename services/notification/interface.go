package notification

import (
	"context"

	"github.com/Codekiller51/brandconnect-server/models"
)

// recipientInfo is the contact surface for one delivery target.
type recipientInfo struct {
	Email       string
	PhoneNumber string
	FCMToken    string
}

// NotificationService persists in-app notifications and fans them out over
// push, email and SMS. Outbound deliveries are best effort: a failed channel
// is logged and skipped, it never fails the triggering operation.
type NotificationService interface {
	Notify(ctx context.Context, n *models.Notification) error
	ListForRecipient(ctx context.Context, recipientID string, unreadOnly bool, page, pageSize int) ([]models.Notification, error)
	MarkRead(ctx context.Context, id, recipientID string) error
	MarkAllRead(ctx context.Context, recipientID string) error
	CountUnread(ctx context.Context, recipientID string) (int64, error)
}
