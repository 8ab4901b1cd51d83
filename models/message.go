package models

import "time"

// Conversation links a client and a creative. One conversation per pair.
type Conversation struct {
	ID            string    `bson:"id" json:"id"`
	ClientID      string    `bson:"clientId" json:"clientId"`
	CreativeID    string    `bson:"creativeId" json:"creativeId"`
	LastMessage   string    `bson:"lastMessage,omitempty" json:"lastMessage,omitempty"`
	LastMessageAt time.Time `bson:"lastMessageAt" json:"lastMessageAt"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}

// Message is a single chat message within a conversation.
type Message struct {
	ID             string    `bson:"id" json:"id"`
	ConversationID string    `bson:"conversationId" json:"conversationId"`
	SenderID       string    `bson:"senderId" json:"senderId"`
	SenderRole     string    `bson:"senderRole" json:"senderRole"` // "client" or "creative"
	Body           string    `bson:"body" json:"body"`
	Read           bool      `bson:"read" json:"read"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
}

// SendMessageRequest is the payload for sending a chat message.
type SendMessageRequest struct {
	Body string `json:"body" binding:"required"`
}
