package bookingRepo

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

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new instance of MongoBookingRepo.
func NewMongoBookingRepo() *MongoBookingRepo {
	return &MongoBookingRepo{coll: database.DB().Collection("bookings")}
}

// activeOverlapFilter matches active bookings whose window overlaps
// [start, end) on the given creative and date. Times are zero-padded "HH:mm"
// strings, so lexicographic comparison matches chronological order.
func activeOverlapFilter(creativeID, date, start, end string) bson.M {
	return bson.M{
		"creative_id": creativeID,
		"date":        date,
		"status":      bson.M{"$in": models.ActiveBookingStatuses},
		"start_time":  bson.M{"$lt": end},
		"end_time":    bson.M{"$gt": start},
	}
}

// CreateIfFree re-checks for conflicts and inserts in a single transaction so
// two clients racing for the same window cannot both win.
func (repo *MongoBookingRepo) CreateIfFree(ctx context.Context, booking *models.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client := repo.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		filter := activeOverlapFilter(booking.CreativeID, booking.Date, booking.StartTime, booking.EndTime)
		n, err := repo.coll.CountDocuments(sc, filter)
		if err != nil {
			return fmt.Errorf("conflict check failed: %w", err)
		}
		if n > 0 {
			return ErrSlotTaken
		}
		if _, err := repo.coll.InsertOne(sc, booking); err != nil {
			return fmt.Errorf("insert booking failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if err == ErrSlotTaken {
			return ErrSlotTaken
		}
		return fmt.Errorf("booking transaction failed: %w", err)
	}
	return nil
}

func (repo *MongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching booking %s: %w", id, err)
	}
	return &booking, nil
}

func (repo *MongoBookingRepo) UpdateStatus(ctx context.Context, id, status string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := repo.coll.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("error updating booking %s status: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("booking %s not found", id)
	}
	return nil
}

func (repo *MongoBookingRepo) SetPaymentID(ctx context.Context, id, paymentID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := repo.coll.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"payment_id": paymentID, "updated_at": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("error setting payment on booking %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("booking %s not found", id)
	}
	return nil
}

// ActiveWindows returns the time windows of pending/confirmed bookings for a
// creative on a date, as consumed by the slot conflict filter.
func (repo *MongoBookingRepo) ActiveWindows(ctx context.Context, creativeID, date string) ([]models.BookingWindow, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"creative_id": creativeID,
		"date":        date,
		"status":      bson.M{"$in": models.ActiveBookingStatuses},
	}
	opts := options.Find().
		SetProjection(bson.M{"start_time": 1, "end_time": 1}).
		SetSort(bson.D{{Key: "start_time", Value: 1}})

	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching active bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding active bookings: %w", err)
	}

	windows := make([]models.BookingWindow, 0, len(bookings))
	for _, b := range bookings {
		windows = append(windows, b.Window())
	}
	return windows, nil
}

func (repo *MongoBookingRepo) ListByClient(ctx context.Context, clientID string, page, pageSize int) ([]models.Booking, error) {
	return repo.list(ctx, bson.M{"client_id": clientID}, page, pageSize)
}

func (repo *MongoBookingRepo) ListByCreative(ctx context.Context, creativeID string, page, pageSize int) ([]models.Booking, error) {
	return repo.list(ctx, bson.M{"creative_id": creativeID}, page, pageSize)
}

func (repo *MongoBookingRepo) ListByCreativeAndDate(ctx context.Context, creativeID, date string) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "start_time", Value: 1}})
	cursor, err := repo.coll.Find(ctx, bson.M{"creative_id": creativeID, "date": date}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}

func (repo *MongoBookingRepo) list(ctx context.Context, filter bson.M, page, pageSize int) ([]models.Booking, error) {
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
		SetSort(bson.D{{Key: "date", Value: -1}, {Key: "start_time", Value: -1}})

	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}

func (repo *MongoBookingRepo) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	n, err := repo.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("error counting bookings: %w", err)
	}
	return n, nil
}

// CountCreatedSince counts bookings whose date is on or after the given
// "YYYY-MM-DD" date.
func (repo *MongoBookingRepo) CountCreatedSince(ctx context.Context, since string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	n, err := repo.coll.CountDocuments(ctx, bson.M{"date": bson.M{"$gte": since}})
	if err != nil {
		return 0, fmt.Errorf("error counting recent bookings: %w", err)
	}
	return n, nil
}

// CompletedRevenue sums total_amount across completed bookings.
func (repo *MongoBookingRepo) CompletedRevenue(ctx context.Context) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"status": models.BookingStatusCompleted}}},
		{{Key: "$group", Value: bson.M{"_id": nil, "total": bson.M{"$sum": "$total_amount"}}}},
	}
	cursor, err := repo.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("error aggregating revenue: %w", err)
	}
	defer cursor.Close(ctx)

	var out []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &out); err != nil {
		return 0, fmt.Errorf("error decoding revenue aggregate: %w", err)
	}
	if len(out) == 0 {
		return 0, nil
	}
	return out[0].Total, nil
}
