package messageRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/Codekiller51/brandconnect-server/database"
	"github.com/Codekiller51/brandconnect-server/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoMessageRepo implements MessageRepository using MongoDB.
type MongoMessageRepo struct {
	convColl *mongo.Collection
	msgColl  *mongo.Collection
}

// NewMongoMessageRepo constructs a new instance of MongoMessageRepo.
func NewMongoMessageRepo() *MongoMessageRepo {
	return &MongoMessageRepo{
		convColl: database.DB().Collection("conversations"),
		msgColl:  database.DB().Collection("messages"),
	}
}

func (repo *MongoMessageRepo) GetOrCreateConversation(ctx context.Context, clientID, creativeID string) (*models.Conversation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"clientId": clientID, "creativeId": creativeID}
	update := bson.M{
		"$setOnInsert": bson.M{
			"id":         uuid.New().String(),
			"clientId":   clientID,
			"creativeId": creativeID,
			"createdAt":  time.Now(),
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var conv models.Conversation
	if err := repo.convColl.FindOneAndUpdate(ctx, filter, update, opts).Decode(&conv); err != nil {
		return nil, fmt.Errorf("error getting conversation: %w", err)
	}
	return &conv, nil
}

func (repo *MongoMessageRepo) GetConversation(ctx context.Context, id string) (*models.Conversation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var conv models.Conversation
	if err := repo.convColl.FindOne(ctx, bson.M{"id": id}).Decode(&conv); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching conversation %s: %w", id, err)
	}
	return &conv, nil
}

func (repo *MongoMessageRepo) ListConversations(ctx context.Context, participantID string) ([]models.Conversation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"$or": []bson.M{
		{"clientId": participantID},
		{"creativeId": participantID},
	}}
	opts := options.Find().SetSort(bson.D{{Key: "lastMessageAt", Value: -1}})

	cursor, err := repo.convColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing conversations: %w", err)
	}
	defer cursor.Close(ctx)

	var convs []models.Conversation
	if err := cursor.All(ctx, &convs); err != nil {
		return nil, fmt.Errorf("error decoding conversations: %w", err)
	}
	return convs, nil
}

func (repo *MongoMessageRepo) AppendMessage(ctx context.Context, msg *models.Message) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.msgColl.InsertOne(ctx, msg); err != nil {
		return fmt.Errorf("error inserting message: %w", err)
	}

	_, err := repo.convColl.UpdateOne(ctx,
		bson.M{"id": msg.ConversationID},
		bson.M{"$set": bson.M{"lastMessage": msg.Body, "lastMessageAt": msg.CreatedAt}},
	)
	if err != nil {
		return fmt.Errorf("error updating conversation preview: %w", err)
	}
	return nil
}

func (repo *MongoMessageRepo) ListMessages(ctx context.Context, conversationID string, page, pageSize int) ([]models.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 200 {
		pageSize = 50
	}
	opts := options.Find().
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize)).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := repo.msgColl.Find(ctx, bson.M{"conversationId": conversationID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing messages: %w", err)
	}
	defer cursor.Close(ctx)

	var msgs []models.Message
	if err := cursor.All(ctx, &msgs); err != nil {
		return nil, fmt.Errorf("error decoding messages: %w", err)
	}
	return msgs, nil
}

// MarkRead marks every message not sent by readerID as read.
func (repo *MongoMessageRepo) MarkRead(ctx context.Context, conversationID, readerID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := repo.msgColl.UpdateMany(ctx,
		bson.M{"conversationId": conversationID, "senderId": bson.M{"$ne": readerID}, "read": false},
		bson.M{"$set": bson.M{"read": true}},
	)
	if err != nil {
		return fmt.Errorf("error marking messages read: %w", err)
	}
	return nil
}

func (repo *MongoMessageRepo) CountUnread(ctx context.Context, conversationID, readerID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	n, err := repo.msgColl.CountDocuments(ctx, bson.M{
		"conversationId": conversationID,
		"senderId":       bson.M{"$ne": readerID},
		"read":           false,
	})
	if err != nil {
		return 0, fmt.Errorf("error counting unread messages: %w", err)
	}
	return n, nil
}

// EnsureIndexes creates the chat indexes. The clientId+creativeId pair is
// unique so first contact cannot race into two conversations.
func (repo *MongoMessageRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := repo.convColl.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "clientId", Value: 1}, {Key: "creativeId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}); err != nil {
		return err
	}

	_, err := repo.msgColl.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "conversationId", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	return err
}
