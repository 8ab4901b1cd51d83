package availabilityRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/Codekiller51/brandconnect-server/database"
	"github.com/Codekiller51/brandconnect-server/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAvailabilityRepo implements AvailabilityRepository using MongoDB.
type MongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo constructs a new instance of MongoAvailabilityRepo.
func NewMongoAvailabilityRepo() *MongoAvailabilityRepo {
	return &MongoAvailabilityRepo{coll: database.DB().Collection("availability")}
}

func (repo *MongoAvailabilityRepo) GetByCreativeID(ctx context.Context, creativeID string) (*models.AvailabilitySettings, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var settings models.AvailabilitySettings
	if err := repo.coll.FindOne(ctx, bson.M{"creativeId": creativeID}).Decode(&settings); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching availability for %s: %w", creativeID, err)
	}
	return &settings, nil
}

func (repo *MongoAvailabilityRepo) Upsert(ctx context.Context, settings *models.AvailabilitySettings) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	settings.UpdatedAt = time.Now()
	opts := options.Replace().SetUpsert(true)
	if _, err := repo.coll.ReplaceOne(ctx, bson.M{"creativeId": settings.CreativeID}, settings, opts); err != nil {
		return fmt.Errorf("error saving availability for %s: %w", settings.CreativeID, err)
	}
	return nil
}

func (repo *MongoAvailabilityRepo) Delete(ctx context.Context, creativeID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.DeleteOne(ctx, bson.M{"creativeId": creativeID}); err != nil {
		return fmt.Errorf("error deleting availability for %s: %w", creativeID, err)
	}
	return nil
}

// EnsureIndexes creates the unique creativeId index.
func (repo *MongoAvailabilityRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := repo.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "creativeId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
