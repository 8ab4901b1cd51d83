package messageRepo

import (
	"context"

	"github.com/Codekiller51/brandconnect-server/models"
)

// MessageRepository persists conversations and chat messages.
type MessageRepository interface {
	// GetOrCreateConversation returns the conversation for a client/creative
	// pair, creating it on first contact.
	GetOrCreateConversation(ctx context.Context, clientID, creativeID string) (*models.Conversation, error)
	GetConversation(ctx context.Context, id string) (*models.Conversation, error)
	ListConversations(ctx context.Context, participantID string) ([]models.Conversation, error)
	AppendMessage(ctx context.Context, msg *models.Message) error
	ListMessages(ctx context.Context, conversationID string, page, pageSize int) ([]models.Message, error)
	MarkRead(ctx context.Context, conversationID, readerID string) error
	CountUnread(ctx context.Context, conversationID, readerID string) (int64, error)
}
