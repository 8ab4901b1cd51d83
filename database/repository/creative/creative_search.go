package creativeRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/Codekiller51/brandconnect-server/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Search returns approved, non-suspended creatives matching the browse
// filters, best rated first.
func (repo *MongoCreativeRepo) Search(ctx context.Context, q models.CreativeSearchQuery) ([]models.Creative, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"status":    models.CreativeStatusApproved,
		"suspended": false,
	}
	if q.Category != "" {
		filter["category"] = q.Category
	}
	if q.Region != "" {
		filter["region"] = q.Region
	}
	if q.MinRating > 0 {
		filter["rating"] = bson.M{"$gte": q.MinRating}
	}
	if q.Text != "" {
		filter["$or"] = []bson.M{
			{"fullName": bson.M{"$regex": q.Text, "$options": "i"}},
			{"businessName": bson.M{"$regex": q.Text, "$options": "i"}},
			{"bio": bson.M{"$regex": q.Text, "$options": "i"}},
		}
	}

	page := q.Page
	if page < 1 {
		page = 1
	}
	pageSize := q.PageSize
	if pageSize < 1 || pageSize > 50 {
		pageSize = 20
	}

	opts := options.Find().
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize)).
		SetSort(bson.D{{Key: "rating", Value: -1}, {Key: "reviewCount", Value: -1}})

	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error searching creatives: %w", err)
	}
	defer cursor.Close(ctx)

	var creatives []models.Creative
	if err := cursor.All(ctx, &creatives); err != nil {
		return nil, fmt.Errorf("error decoding search results: %w", err)
	}
	return creatives, nil
}
