package notification

import (
	"context"
	"fmt"
	"time"

	creativeRepo "github.com/Codekiller51/brandconnect-server/database/repository/creative"
	notificationRepo "github.com/Codekiller51/brandconnect-server/database/repository/notification"
	userRepo "github.com/Codekiller51/brandconnect-server/database/repository/user"
	"github.com/Codekiller51/brandconnect-server/models"
	"github.com/Codekiller51/brandconnect-server/utils"

	"firebase.google.com/go/v4/messaging"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	store     notificationRepo.NotificationRepository
	users     userRepo.UserRepository
	creatives creativeRepo.CreativeRepository
}

func NewDefaultNotificationService(
	store notificationRepo.NotificationRepository,
	users userRepo.UserRepository,
	creatives creativeRepo.CreativeRepository,
) (*DefaultNotificationService, error) {
	if store == nil || users == nil || creatives == nil {
		return nil, fmt.Errorf("notification service initialization error: nil dependency")
	}
	return &DefaultNotificationService{store: store, users: users, creatives: creatives}, nil
}

// Notify writes the in-app record, then fans out to every contact channel the
// recipient has. The in-app write is the only delivery that can fail Notify.
func (s *DefaultNotificationService) Notify(ctx context.Context, n *models.Notification) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	if err := s.store.Create(ctx, n); err != nil {
		return fmt.Errorf("Notify: failed to persist notification: %w", err)
	}

	info, err := s.lookup(ctx, n.RecipientID, n.RecipientRole)
	if err != nil {
		utils.GetLogger().Warn("Notify: recipient lookup failed, skipping outbound delivery",
			zap.String("recipientID", n.RecipientID), zap.Error(err))
		return nil
	}

	if info.FCMToken != "" {
		if err := s.sendPush(ctx, info.FCMToken, n); err != nil {
			utils.GetLogger().Warn("Notify: push delivery failed",
				zap.String("recipientID", n.RecipientID), zap.Error(err))
		}
	}
	if info.Email != "" {
		if err := sendEmail(info.Email, n.Title, n.Body); err != nil {
			utils.GetLogger().Warn("Notify: email delivery failed",
				zap.String("recipientID", n.RecipientID), zap.Error(err))
		}
	}
	if info.PhoneNumber != "" {
		if err := sendSMS(ctx, info.PhoneNumber, n.Body); err != nil {
			utils.GetLogger().Warn("Notify: sms delivery failed",
				zap.String("recipientID", n.RecipientID), zap.Error(err))
		}
	}
	return nil
}

func (s *DefaultNotificationService) lookup(ctx context.Context, recipientID, recipientRole string) (*recipientInfo, error) {
	projection := bson.M{"email": 1, "phoneNumber": 1, "fcmToken": 1}
	switch recipientRole {
	case utils.RoleCreative:
		c, err := s.creatives.GetByIDWithProjection(ctx, recipientID, projection)
		if err != nil {
			return nil, err
		}
		if c == nil {
			return nil, fmt.Errorf("creative %s not found", recipientID)
		}
		return &recipientInfo{Email: c.Email, PhoneNumber: c.PhoneNumber, FCMToken: c.FCMToken}, nil
	default:
		u, err := s.users.GetByIDWithProjection(ctx, recipientID, projection)
		if err != nil {
			return nil, err
		}
		if u == nil {
			return nil, fmt.Errorf("user %s not found", recipientID)
		}
		return &recipientInfo{Email: u.Email, PhoneNumber: u.PhoneNumber, FCMToken: u.FCMToken}, nil
	}
}

func (s *DefaultNotificationService) sendPush(ctx context.Context, token string, n *models.Notification) error {
	if utils.FCMClient == nil {
		return fmt.Errorf("FCM client not initialized")
	}
	data := map[string]string{"type": n.Type, "role": n.RecipientRole}
	for k, v := range n.Data {
		data[k] = v
	}
	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: n.Title,
			Body:  n.Body,
		},
		Data: data,
	}
	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send FCM message: %w", err)
	}
	return nil
}

func (s *DefaultNotificationService) ListForRecipient(ctx context.Context, recipientID string, unreadOnly bool, page, pageSize int) ([]models.Notification, error) {
	return s.store.ListByRecipient(ctx, recipientID, unreadOnly, page, pageSize)
}

func (s *DefaultNotificationService) MarkRead(ctx context.Context, id, recipientID string) error {
	return s.store.MarkRead(ctx, id, recipientID)
}

func (s *DefaultNotificationService) MarkAllRead(ctx context.Context, recipientID string) error {
	return s.store.MarkAllRead(ctx, recipientID)
}

func (s *DefaultNotificationService) CountUnread(ctx context.Context, recipientID string) (int64, error) {
	return s.store.CountUnread(ctx, recipientID)
}
