package reviewRepo

import (
	"context"

	"github.com/Codekiller51/brandconnect-server/models"
)

// ReviewRepository defines persistence operations for reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	GetByID(ctx context.Context, id string) (*models.Review, error)
	GetByBookingID(ctx context.Context, bookingID string) (*models.Review, error)
	ListByCreative(ctx context.Context, creativeID string, includeHidden bool, page, pageSize int) ([]models.Review, error)
	SetReply(ctx context.Context, id, reply string) error
	SetHidden(ctx context.Context, id string, hidden bool) error
	// Aggregate returns the average rating and count of visible reviews for a
	// creative.
	Aggregate(ctx context.Context, creativeID string) (avg float64, count int, err error)
	AverageRatingAll(ctx context.Context) (float64, error)
}
