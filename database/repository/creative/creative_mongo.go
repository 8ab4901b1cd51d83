package creativeRepo

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

// MongoCreativeRepo implements CreativeRepository using MongoDB.
type MongoCreativeRepo struct {
	coll *mongo.Collection
}

// NewMongoCreativeRepo constructs a new instance of MongoCreativeRepo.
func NewMongoCreativeRepo() *MongoCreativeRepo {
	return &MongoCreativeRepo{coll: database.DB().Collection("creatives")}
}

func (repo *MongoCreativeRepo) Create(ctx context.Context, creative *models.Creative) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, creative); err != nil {
		return fmt.Errorf("error creating creative: %w", err)
	}
	return nil
}

func (repo *MongoCreativeRepo) GetByID(ctx context.Context, id string) (*models.Creative, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var creative models.Creative
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&creative); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching creative %s: %w", id, err)
	}
	return &creative, nil
}

func (repo *MongoCreativeRepo) GetByEmail(ctx context.Context, email string) (*models.Creative, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var creative models.Creative
	if err := repo.coll.FindOne(ctx, bson.M{"email": email}).Decode(&creative); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching creative by email: %w", err)
	}
	return &creative, nil
}

func (repo *MongoCreativeRepo) GetByIDWithProjection(ctx context.Context, id string, projection bson.M) (*models.Creative, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.FindOne().SetProjection(projection)
	var creative models.Creative
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}, opts).Decode(&creative); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching creative %s: %w", id, err)
	}
	return &creative, nil
}

func (repo *MongoCreativeRepo) Update(ctx context.Context, creative *models.Creative) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": creative.ID}, bson.M{"$set": creative})
	if err != nil {
		return fmt.Errorf("error updating creative %s: %w", creative.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("creative %s not found", creative.ID)
	}
	return nil
}

func (repo *MongoCreativeRepo) UpdateFields(ctx context.Context, id string, fields bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	fields["updatedAt"] = time.Now()
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("error updating creative fields for %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("creative %s not found", id)
	}
	return nil
}

func (repo *MongoCreativeRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.DeleteOne(ctx, bson.M{"id": id}); err != nil {
		return fmt.Errorf("error deleting creative %s: %w", id, err)
	}
	return nil
}

func (repo *MongoCreativeRepo) ListByStatus(ctx context.Context, status string, page, pageSize int) ([]models.Creative, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	opts := options.Find().
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize)).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := repo.coll.Find(ctx, bson.M{"status": status}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing creatives by status: %w", err)
	}
	defer cursor.Close(ctx)

	var creatives []models.Creative
	if err := cursor.All(ctx, &creatives); err != nil {
		return nil, fmt.Errorf("error decoding creatives: %w", err)
	}
	return creatives, nil
}

func (repo *MongoCreativeRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	n, err := repo.coll.CountDocuments(ctx, bson.M{"status": status})
	if err != nil {
		return 0, fmt.Errorf("error counting creatives: %w", err)
	}
	return n, nil
}

func (repo *MongoCreativeRepo) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	n, err := repo.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("error counting creatives: %w", err)
	}
	return n, nil
}

// GetService pulls a single service offering off a creative's profile.
func (repo *MongoCreativeRepo) GetService(ctx context.Context, creativeID, serviceID string) (*models.Service, error) {
	creative, err := repo.GetByIDWithProjection(ctx, creativeID, bson.M{"services": 1})
	if err != nil {
		return nil, err
	}
	if creative == nil {
		return nil, fmt.Errorf("creative %s not found", creativeID)
	}
	for _, svc := range creative.Services {
		if svc.ID == serviceID {
			return &svc, nil
		}
	}
	return nil, fmt.Errorf("service %s not found on creative %s", serviceID, creativeID)
}

func (repo *MongoCreativeRepo) AddPortfolioItem(ctx context.Context, creativeID string, item models.PortfolioItem) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := repo.coll.UpdateOne(ctx,
		bson.M{"id": creativeID},
		bson.M{"$push": bson.M{"portfolio": item}},
	)
	if err != nil {
		return fmt.Errorf("error adding portfolio item: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("creative %s not found", creativeID)
	}
	return nil
}

func (repo *MongoCreativeRepo) RemovePortfolioItem(ctx context.Context, creativeID, itemID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := repo.coll.UpdateOne(ctx,
		bson.M{"id": creativeID},
		bson.M{"$pull": bson.M{"portfolio": bson.M{"id": itemID}}},
	)
	if err != nil {
		return fmt.Errorf("error removing portfolio item: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("creative %s not found", creativeID)
	}
	return nil
}

// ApplyRating writes a recomputed rating aggregate onto the profile.
func (repo *MongoCreativeRepo) ApplyRating(ctx context.Context, creativeID string, rating float64, reviewCount int) error {
	return repo.UpdateFields(ctx, creativeID, bson.M{
		"rating":      rating,
		"reviewCount": reviewCount,
	})
}
