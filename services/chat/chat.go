package chat

import (
	"context"
	"errors"
	"fmt"
	"time"

	messageRepo "github.com/Codekiller51/brandconnect-server/database/repository/message"
	"github.com/Codekiller51/brandconnect-server/models"
	"github.com/Codekiller51/brandconnect-server/services/notification"
	"github.com/Codekiller51/brandconnect-server/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrNotParticipant is returned when a caller touches a conversation they are
// not part of.
var ErrNotParticipant = errors.New("not a participant of this conversation")

// ChatService handles client/creative messaging.
type ChatService interface {
	StartConversation(ctx context.Context, clientID, creativeID string) (*models.Conversation, error)
	ListConversations(ctx context.Context, participantID string) ([]models.Conversation, error)
	SendMessage(ctx context.Context, conversationID, senderID, senderRole, body string) (*models.Message, error)
	ListMessages(ctx context.Context, conversationID, readerID string, page, pageSize int) ([]models.Message, error)
}

// DefaultChatService is the production implementation.
type DefaultChatService struct {
	repo     messageRepo.MessageRepository
	notifier notification.NotificationService
}

func NewDefaultChatService(repo messageRepo.MessageRepository, notifier notification.NotificationService) *DefaultChatService {
	return &DefaultChatService{repo: repo, notifier: notifier}
}

func (s *DefaultChatService) StartConversation(ctx context.Context, clientID, creativeID string) (*models.Conversation, error) {
	return s.repo.GetOrCreateConversation(ctx, clientID, creativeID)
}

func (s *DefaultChatService) ListConversations(ctx context.Context, participantID string) ([]models.Conversation, error) {
	return s.repo.ListConversations(ctx, participantID)
}

// SendMessage appends to the conversation and pings the other party.
func (s *DefaultChatService) SendMessage(ctx context.Context, conversationID, senderID, senderRole, body string) (*models.Message, error) {
	conv, err := s.authorize(ctx, conversationID, senderID)
	if err != nil {
		return nil, err
	}

	msg := &models.Message{
		ID:             uuid.New().String(),
		ConversationID: conversationID,
		SenderID:       senderID,
		SenderRole:     senderRole,
		Body:           body,
		CreatedAt:      time.Now(),
	}
	if err := s.repo.AppendMessage(ctx, msg); err != nil {
		return nil, fmt.Errorf("SendMessage: %w", err)
	}

	s.notifyRecipient(ctx, conv, msg)
	return msg, nil
}

// ListMessages returns a page of history and marks the reader's side read.
func (s *DefaultChatService) ListMessages(ctx context.Context, conversationID, readerID string, page, pageSize int) ([]models.Message, error) {
	if _, err := s.authorize(ctx, conversationID, readerID); err != nil {
		return nil, err
	}

	msgs, err := s.repo.ListMessages(ctx, conversationID, page, pageSize)
	if err != nil {
		return nil, err
	}
	if err := s.repo.MarkRead(ctx, conversationID, readerID); err != nil {
		utils.GetLogger().Warn("ListMessages: mark read failed",
			zap.String("conversationID", conversationID), zap.Error(err))
	}
	return msgs, nil
}

func (s *DefaultChatService) authorize(ctx context.Context, conversationID, participantID string) (*models.Conversation, error) {
	conv, err := s.repo.GetConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if conv == nil {
		return nil, fmt.Errorf("conversation %s not found", conversationID)
	}
	if conv.ClientID != participantID && conv.CreativeID != participantID {
		return nil, ErrNotParticipant
	}
	return conv, nil
}

func (s *DefaultChatService) notifyRecipient(ctx context.Context, conv *models.Conversation, msg *models.Message) {
	if s.notifier == nil {
		return
	}
	recipientID, recipientRole := conv.CreativeID, utils.RoleCreative
	if msg.SenderID == conv.CreativeID {
		recipientID, recipientRole = conv.ClientID, utils.RoleClient
	}

	body := msg.Body
	if len(body) > 80 {
		body = body[:77] + "..."
	}
	err := s.notifier.Notify(ctx, &models.Notification{
		RecipientID:   recipientID,
		RecipientRole: recipientRole,
		Type:          models.NotificationNewMessage,
		Title:         "New message",
		Body:          body,
		Data:          map[string]string{"conversationId": conv.ID, "messageId": msg.ID},
	})
	if err != nil {
		utils.GetLogger().Warn("notifyRecipient: notification failed",
			zap.String("conversationID", conv.ID), zap.Error(err))
	}
}
